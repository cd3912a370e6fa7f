// Package core has the loading, metric derivation and reporting logic for
// translation statistics exports.
package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arshaad-deriv/lingostat/internal/contract"
	"github.com/arshaad-deriv/lingostat/schema"
)

// ErrNoData signals that the input directory produced no usable records.
// Callers report it as an empty-result condition, not a failure.
var ErrNoData = errors.New("no data available")

// Fallbacks for absent language fields. Counts default to zero through the
// typed export structs; these are the only non-zero defaults in the mapping.
const (
	unknownLanguageName = "Unknown"
	unknownLanguageCode = "unknown"
)

// LoadDirectory enumerates export files in cfg.Dir, parses each one, and
// flattens the nested per-language statistics into the primary record table.
// A file that fails to parse is skipped with a warning; the run continues.
func LoadDirectory(cfg *contract.Config) (*schema.LoadResult, error) {
	files, err := listExportFiles(cfg.Dir)
	if err != nil {
		return nil, err
	}

	result := &schema.LoadResult{FilesFound: len(files)}
	for _, path := range files {
		export, err := parseExportFile(path)
		if err != nil {
			result.Warnings = append(result.Warnings, schema.LoadWarning{
				File:   filepath.Base(path),
				Reason: err.Error(),
			})
			continue
		}
		result.Records = append(result.Records, flattenExport(export, path)...)
	}

	deriveMetrics(result.Records)
	return result, nil
}

// listExportFiles returns the export files in dir, sorted for deterministic
// traversal. Subdirectories are not descended into.
func listExportFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %q: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), contract.ExportExtension) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// parseExportFile reads and decodes a single export document.
func parseExportFile(path string) (*schema.Export, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read failed: %w", err)
	}

	var export schema.Export
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return &export, nil
}

// flattenExport emits one record per (language, method) block that has at
// least one non-zero count. All-zero blocks are dropped.
func flattenExport(export *schema.Export, path string) []schema.Record {
	project := export.Name
	if project == "" {
		project = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	var records []schema.Record
	for i := range export.Data {
		entry := &export.Data[i]
		langName := entry.Language.Name
		if langName == "" {
			langName = unknownLanguageName
		}
		langCode := entry.Language.Code
		if langCode == "" {
			langCode = unknownLanguageCode
		}

		for _, method := range schema.AllMethods {
			node := entry.Node(method)
			if node == nil || node.Cumulative.IsZero() {
				continue
			}
			cum := node.Cumulative
			records = append(records, schema.Record{
				Project:             project,
				Language:            langName,
				LanguageCode:        langCode,
				Method:              method,
				ApprovedWithoutEdit: cum.ApprovedWithoutEdit,
				PostEditedMinor:     cum.PostEdited.Minor,
				PostEditedModerate:  cum.PostEdited.Moderate,
				PostEditedMajor:     cum.PostEdited.Major,
				PostEditedOther:     cum.PostEdited.Other,
				WeightedUnits:       cum.WeightedUnits,
				DateFrom:            export.DateRange.From,
				DateTo:              export.DateRange.To,
				Temporal:            node.Temporal,
			})
		}
	}
	return records
}

// FilterRecords applies the configured project/language/method filters.
// Empty filters pass everything through.
func FilterRecords(records []schema.Record, cfg *contract.Config) []schema.Record {
	if len(cfg.Projects) == 0 && len(cfg.Languages) == 0 && len(cfg.Methods) == 0 {
		return records
	}

	projects := toSet(cfg.Projects)
	languages := toSet(cfg.Languages)
	methods := make(map[schema.Method]struct{}, len(cfg.Methods))
	for _, m := range cfg.Methods {
		methods[m] = struct{}{}
	}

	var out []schema.Record
	for _, r := range records {
		if len(projects) > 0 {
			if _, ok := projects[r.Project]; !ok {
				continue
			}
		}
		if len(languages) > 0 {
			if _, ok := languages[r.Language]; !ok {
				continue
			}
		}
		if len(methods) > 0 {
			if _, ok := methods[r.Method]; !ok {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
