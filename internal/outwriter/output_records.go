package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/arshaad-deriv/lingostat/internal/contract"
	"github.com/arshaad-deriv/lingostat/internal/parquet"
	"github.com/arshaad-deriv/lingostat/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintRecords outputs the ranked record table, dispatching based on the
// output format configured.
func PrintRecords(records []schema.Record, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := precisionFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeRecordJSONResults(records, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeRecordCSVResults(records, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeRecordParquetResults(records, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return renderOutput(cfg.OutputFile, func(w io.Writer) error {
			return writeRecordTable(records, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeRecordJSONResults handles opening the file and calling the JSON writer.
func writeRecordJSONResults(records []schema.Record, cfg *contract.Config) error {
	return renderOutput(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForRecords(w, records)
	}, "Wrote JSON")
}

// writeRecordCSVResults handles opening the file and calling the CSV writer.
func writeRecordCSVResults(records []schema.Record, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return renderOutput(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForRecords(csvWriter, records, fmtFloat, intFmt)
	}, "Wrote CSV")
}

// writeRecordParquetResults writes the record table to a Parquet file.
// Parquet is a binary format, so an output file is mandatory.
func writeRecordParquetResults(records []schema.Record, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	if err := parquet.WriteRecordsParquet(parquet.ConvertRecords(records), cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	return nil
}

// writeRecordTable generates and writes the human-readable table.
func writeRecordTable(records []schema.Record, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Project", "Language", "Method", "Strings", "Approval", "Critical", "Quality", "Label"}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	nameWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	for i, r := range records {
		row := []string{
			strconv.Itoa(i + 1), // Rank
			contract.TruncateText(r.Project, nameWidth),  // Project
			contract.TruncateText(r.Language, nameWidth), // Language
			string(r.Method),                    // Method
			fmt.Sprintf(intFmt, r.TotalStrings), // Strings
			fmtFloat(r.ApprovalRate),            // Approval
			fmtFloat(r.CriticalEditRate),        // Critical
			fmtFloat(r.QualityScore),            // Quality
			label(r.ApprovalRate, cfg),          // Label
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	// Compute summary stats
	numRecords := len(records)
	totalStrings := 0
	totalCritical := 0
	for _, r := range records {
		totalStrings += r.TotalStrings
		totalCritical += r.PostEditedOther
	}
	if _, err := fmt.Fprintf(writer, "Showing top %d records (total strings: %d, critical edits: %d)\n", numRecords, totalStrings, totalCritical); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForRecords writes the record table in CSV format.
func writeCSVResultsForRecords(w *csv.Writer, records []schema.Record, fmtFloat func(float64) string, intFmt string) error {
	// CSV header
	header := []string{
		"rank",
		"project",
		"language",
		"language_code",
		"method",
		"total_strings",
		"approved_without_edit",
		"post_edited_total",
		"approval_rate",
		"intervention_rate",
		"critical_edit_rate",
		"minor_edit_rate",
		"quality_score",
		"risk_score",
		"label",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, r := range records {
		rec := []string{
			strconv.Itoa(i + 1),                        // Rank
			r.Project,                                  // Project
			r.Language,                                 // Language
			r.LanguageCode,                             // Language Code
			string(r.Method),                           // Method
			fmt.Sprintf(intFmt, r.TotalStrings),        // Total Strings
			fmt.Sprintf(intFmt, r.ApprovedWithoutEdit), // Approved Without Edit
			fmt.Sprintf(intFmt, r.TotalPostEdited),     // Post Edited Total
			fmtFloat(r.ApprovalRate),                   // Approval Rate
			fmtFloat(r.HumanInterventionRate),          // Intervention Rate
			fmtFloat(r.CriticalEditRate),               // Critical Edit Rate
			fmtFloat(r.MinorEditRate),                  // Minor Edit Rate
			fmtFloat(r.QualityScore),                   // Quality Score
			fmtFloat(r.RiskScore),                      // Risk Score
			contract.GetPlainLabel(r.ApprovalRate),     // Label
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForRecords writes the record table in JSON format.
func writeJSONResultsForRecords(w io.Writer, records []schema.Record) error {
	// 1. Prepare the data structure for JSON with rank and label added
	type JSONRecordResult struct {
		Rank  int    `json:"rank"`
		Label string `json:"label"`
		schema.Record
	}

	output := make([]JSONRecordResult, len(records))
	for i, r := range records {
		r.Temporal = nil // Internal carry-through, not part of the report
		output[i] = JSONRecordResult{
			Rank:   i + 1,
			Label:  contract.GetPlainLabel(r.ApprovalRate),
			Record: r,
		}
	}

	// 2. Use the generic JSON writer
	return renderJSON(w, output)
}
