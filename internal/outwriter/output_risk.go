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

// PrintRisk outputs the flagged high-risk combinations and the review impact
// estimate, dispatching based on the output format configured.
func PrintRisk(report *schema.RiskReport, cfg *contract.Config, duration time.Duration) error {
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
			return writeRiskCSV(w, report, fmtFloat)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for risk; use records or timeseries")
	default:
		return renderOutput(cfg.OutputFile, func(w io.Writer) error {
			return writeRiskText(report, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote report")
	}
	return nil
}

// writeRiskText writes the human-readable risk report.
func writeRiskText(report *schema.RiskReport, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	if len(report.Entries) == 0 {
		fmt.Fprintln(writer, "No combinations flagged for review")
	} else {
		table := tablewriter.NewWriter(writer)
		table.Header([]string{"Rank", "Project", "Language", "Method", "Strings", "Approval", "Critical", "Risk", "Label"})
		table.Configure(func(cfg *tablewriter.Config) {
			cfg.Row.Alignment.Global = tw.AlignRight
		})

		nameWidth := getMaxTableNameWidth(cfg)
		var data [][]string
		for i, e := range report.Entries {
			data = append(data, []string{
				strconv.Itoa(i + 1),
				contract.TruncateText(e.Project, nameWidth),
				contract.TruncateText(e.Language, nameWidth),
				string(e.Method),
				fmt.Sprintf(intFmt, e.TotalStrings),
				fmtFloat(e.ApprovalRate),
				fmtFloat(e.CriticalEditRate),
				fmtFloat(e.RiskScore),
				riskLabel(e.RiskScore, cfg),
			})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
		fmt.Fprintf(writer, "Flagged %d combinations (critical rate above %s%% or approval below 30%%)\n",
			len(report.Entries), fmtFloat(report.CriticalRateP75))
	}
	fmt.Fprintln(writer)

	impact := report.Impact
	fmt.Fprintln(writer, "Review impact")
	fmt.Fprintf(writer, "  Strings reviewed:    %d\n", impact.TotalStrings)
	fmt.Fprintf(writer, "  Critical edits:      %d\n", impact.CriticalEdits)
	fmt.Fprintf(writer, "  Error cost avoided:  $%s\n", fmtFloat(impact.CriticalErrorCost))
	fmt.Fprintf(writer, "  Review cost:         $%s\n", fmtFloat(impact.HumanReviewCost))
	fmt.Fprintf(writer, "  ROI multiplier:      %sx\n", fmtFloat(impact.ROIMultiplier))
	fmt.Fprintf(writer, "  Risk reduction:      %s%%\n", fmtFloat(impact.RiskReduction))
	fmt.Fprintln(writer)

	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeRiskCSV writes the flagged combinations in CSV format.
func writeRiskCSV(w io.Writer, report *schema.RiskReport, fmtFloat func(float64) string) error {
	header := []string{
		"rank",
		"project",
		"language",
		"method",
		"total_strings",
		"approval_rate",
		"critical_edit_rate",
		"risk_score",
		"label",
	}
	return renderCSV(w, header, func(csvWriter *csv.Writer) error {
		for i, e := range report.Entries {
			rec := []string{
				strconv.Itoa(i + 1),
				e.Project,
				e.Language,
				string(e.Method),
				strconv.Itoa(e.TotalStrings),
				fmtFloat(e.ApprovalRate),
				fmtFloat(e.CriticalEditRate),
				fmtFloat(e.RiskScore),
				contract.GetPlainRiskLabel(e.RiskScore),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
