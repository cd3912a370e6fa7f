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

// PrintTimeseries outputs the date-indexed table and the fitted trend,
// dispatching based on the output format configured.
func PrintTimeseries(rows []schema.TemporalRecord, report *schema.TrendReport, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := precisionFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := renderOutput(cfg.OutputFile, func(w io.Writer) error {
			return writeTimeseriesJSON(w, rows, report)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := renderOutput(cfg.OutputFile, func(w io.Writer) error {
			return writeTimeseriesCSV(w, rows, fmtFloat)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeTimeseriesParquet(rows, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		return renderOutput(cfg.OutputFile, func(w io.Writer) error {
			return writeTimeseriesText(rows, report, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote timeseries")
	}
	return nil
}

// writeTimeseriesParquet writes the daily rows to a Parquet file. Parquet is
// a binary format, so an output file is mandatory.
func writeTimeseriesParquet(rows []schema.TemporalRecord, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	if err := parquet.WriteTimeseriesParquet(parquet.ConvertTemporalRecords(rows), cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	return nil
}

// writeTimeseriesText writes the day-level rollup and the fitted trend. The
// per-record rows are kept for CSV, JSON and Parquet; the table view would
// drown the reader in (project, language, method) rows per day.
func writeTimeseriesText(rows []schema.TemporalRecord, report *schema.TrendReport, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Date", "Strings", "Approval", "Intervention", "Critical"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, d := range report.Days {
		data = append(data, []string{
			d.Date.Format(contract.DateFormat),
			fmt.Sprintf(intFmt, d.TotalStrings),
			fmtFloat(d.MeanApprovalRate),
			fmtFloat(d.MeanInterventionRate),
			fmt.Sprintf(intFmt, d.CriticalEdits),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(writer, "Quality trend: %s (slope %s approval points per day over %d days, %d daily rows)\n",
		report.Direction, fmtFloat(report.Slope), report.SpanDays, len(rows))

	if len(report.Weekdays) > 0 {
		fmt.Fprintln(writer)
		fmt.Fprintln(writer, "Approval by weekday")
		for _, wd := range report.Weekdays {
			fmt.Fprintf(writer, "  %-10s %s%% over %d days\n", wd.Name, fmtFloat(wd.MeanApprovalRate), wd.Days)
		}
	}
	fmt.Fprintln(writer)

	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeTimeseriesCSV writes the full date-indexed table in CSV format.
func writeTimeseriesCSV(w io.Writer, rows []schema.TemporalRecord, fmtFloat func(float64) string) error {
	header := []string{
		"date",
		"project",
		"language",
		"method",
		"approved_without_edit",
		"total_strings",
		"approval_rate",
		"intervention_rate",
		"critical_edits",
	}
	return renderCSV(w, header, func(csvWriter *csv.Writer) error {
		for _, r := range rows {
			rec := []string{
				r.Date.Format(contract.DateFormat),
				r.Project,
				r.Language,
				string(r.Method),
				strconv.Itoa(r.ApprovedWithoutEdit),
				strconv.Itoa(r.TotalStrings),
				fmtFloat(r.ApprovalRate),
				fmtFloat(r.InterventionRate),
				strconv.Itoa(r.CriticalEdits),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeTimeseriesJSON writes the rows and the trend report together.
func writeTimeseriesJSON(w io.Writer, rows []schema.TemporalRecord, report *schema.TrendReport) error {
	type JSONTimeseriesResult struct {
		Rows  []schema.TemporalRecord `json:"rows"`
		Trend *schema.TrendReport     `json:"trend"`
	}
	return renderJSON(w, JSONTimeseriesResult{Rows: rows, Trend: report})
}
