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

// PrintSummary outputs the executive rollup, dispatching based on the output
// format configured.
func PrintSummary(report *schema.SummaryReport, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := precisionFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := renderOutput(cfg.OutputFile, func(w io.Writer) error {
			return renderJSON(w, report)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := renderOutput(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryCSV(w, report, fmtFloat)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for summary; use records or timeseries")
	default:
		return renderOutput(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryText(report, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote summary")
	}
	return nil
}

// writeSummaryText writes the human-readable summary report.
func writeSummaryText(report *schema.SummaryReport, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	fmt.Fprintln(writer, "Corpus")
	fmt.Fprintf(writer, "  Records:   %d across %d projects and %d languages\n",
		report.TotalRecords, report.Projects, report.Languages)
	fmt.Fprintf(writer, "  Strings:   %d\n", report.TotalStrings)
	fmt.Fprintf(writer, "  Mean intervention rate: %s%%\n", fmtFloat(report.MeanInterventionRate))
	fmt.Fprintf(writer, "  Mean critical rate:     %s%%\n", fmtFloat(report.MeanCriticalRate))
	fmt.Fprintln(writer)

	// Per-method comparison table
	fmt.Fprintln(writer, "Methods")
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Method", "Records", "Strings", "Approval", "Intervention", "Critical", "Quality", "Label"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	var data [][]string
	for _, m := range report.Methods {
		data = append(data, []string{
			string(m.Method),
			fmt.Sprintf(intFmt, m.Records),
			strconv.FormatInt(m.TotalStrings, 10),
			fmtFloat(m.MeanApprovalRate),
			fmtFloat(m.MeanInterventionRate),
			fmtFloat(m.MeanCriticalRate),
			fmtFloat(m.MeanQualityScore),
			label(m.MeanApprovalRate, cfg),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if report.BestMethod != "" {
		fmt.Fprintf(writer, "Best method %s leads worst method %s by %s approval points\n",
			report.BestMethod, report.WorstMethod, fmtFloat(report.ApprovalGap))
	}
	fmt.Fprintln(writer)

	fmt.Fprintln(writer, "Benchmark bands")
	for _, b := range report.Bands {
		fmt.Fprintf(writer, "  %-10s %d records (%s%%)\n", b.Band, b.Records, fmtFloat(b.Share))
	}
	fmt.Fprintln(writer)

	fmt.Fprintln(writer, "Post-edit severity")
	for _, t := range report.Tiers {
		fmt.Fprintf(writer, "  %-18s %d\n", t.Label, t.Count)
	}
	fmt.Fprintln(writer)

	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeSummaryCSV writes the per-method rollup in CSV format. The corpus
// totals and band shares live in the JSON output; CSV keeps the method
// comparison, which is the part people feed into spreadsheets.
func writeSummaryCSV(w io.Writer, report *schema.SummaryReport, fmtFloat func(float64) string) error {
	header := []string{
		"method",
		"records",
		"total_strings",
		"mean_approval_rate",
		"mean_intervention_rate",
		"mean_critical_rate",
		"mean_quality_score",
		"label",
	}
	return renderCSV(w, header, func(csvWriter *csv.Writer) error {
		for _, m := range report.Methods {
			rec := []string{
				string(m.Method),
				strconv.Itoa(m.Records),
				strconv.FormatInt(m.TotalStrings, 10),
				fmtFloat(m.MeanApprovalRate),
				fmtFloat(m.MeanInterventionRate),
				fmtFloat(m.MeanCriticalRate),
				fmtFloat(m.MeanQualityScore),
				contract.GetPlainLabel(m.MeanApprovalRate),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
