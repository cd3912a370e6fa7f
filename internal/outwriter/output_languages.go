package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/arshaad-deriv/lingostat/internal/contract"
	"github.com/arshaad-deriv/lingostat/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintLanguages outputs the per-language difficulty ranking, dispatching
// based on the output format configured.
func PrintLanguages(summaries []schema.LanguageSummary, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := precisionFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := renderOutput(cfg.OutputFile, func(w io.Writer) error {
			return writeLanguageJSON(w, summaries)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := renderOutput(cfg.OutputFile, func(w io.Writer) error {
			return writeLanguageCSV(w, summaries, fmtFloat)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for languages; use records or timeseries")
	default:
		return renderOutput(cfg.OutputFile, func(w io.Writer) error {
			return writeLanguageTable(summaries, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeLanguageTable generates and writes the human-readable table.
func writeLanguageTable(summaries []schema.LanguageSummary, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Language", "Records", "Strings", "Approval", "Intervention", "Critical", "Difficulty", "Label"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	for i, s := range summaries {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateText(s.Language, nameWidth),
			fmt.Sprintf(intFmt, s.Records),
			strconv.FormatInt(s.TotalStrings, 10),
			fmtFloat(s.MeanApprovalRate),
			fmtFloat(s.MeanInterventionRate),
			fmtFloat(s.MeanCriticalRate),
			fmtFloat(s.DifficultyScore),
			label(s.MeanApprovalRate, cfg),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing %d languages, hardest first\n", len(summaries)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeLanguageCSV writes the language ranking in CSV format.
func writeLanguageCSV(w io.Writer, summaries []schema.LanguageSummary, fmtFloat func(float64) string) error {
	header := []string{
		"rank",
		"language",
		"code",
		"records",
		"total_strings",
		"mean_approval_rate",
		"mean_intervention_rate",
		"mean_critical_rate",
		"difficulty_score",
		"label",
	}
	return renderCSV(w, header, func(csvWriter *csv.Writer) error {
		for i, s := range summaries {
			rec := []string{
				strconv.Itoa(i + 1),
				s.Language,
				s.Code,
				strconv.Itoa(s.Records),
				strconv.FormatInt(s.TotalStrings, 10),
				fmtFloat(s.MeanApprovalRate),
				fmtFloat(s.MeanInterventionRate),
				fmtFloat(s.MeanCriticalRate),
				fmtFloat(s.DifficultyScore),
				contract.GetPlainLabel(s.MeanApprovalRate),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeLanguageJSON writes the language ranking in JSON format.
func writeLanguageJSON(w io.Writer, summaries []schema.LanguageSummary) error {
	type JSONLanguageResult struct {
		Rank  int    `json:"rank"`
		Label string `json:"label"`
		schema.LanguageSummary
	}

	output := make([]JSONLanguageResult, len(summaries))
	for i, s := range summaries {
		output[i] = JSONLanguageResult{
			Rank:            i + 1,
			Label:           contract.GetPlainLabel(s.MeanApprovalRate),
			LanguageSummary: s,
		}
	}
	return renderJSON(w, output)
}
