package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/arshaad-deriv/lingostat/internal/contract"
	"github.com/arshaad-deriv/lingostat/schema"
)

// metricDefinition is one derived metric with its formula and reading guide.
type metricDefinition struct {
	Name    string `json:"name"`
	Purpose string `json:"purpose"`
	Formula string `json:"formula"`
	Range   string `json:"range"`
}

// metricsRenderModel is the full definitions page in renderable form.
type metricsRenderModel struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Metrics     []metricDefinition `json:"metrics"`
	Bands       []string           `json:"bands"`
}

// PrintMetricsDefinitions displays the formal definitions of all derived
// metrics. This is a static display that does not require any input data.
func PrintMetricsDefinitions(cfg *contract.Config) error {
	renderModel := buildMetricsRenderModel()

	switch cfg.Output {
	case schema.JSONOut:
		return renderOutput(cfg.OutputFile, func(w io.Writer) error {
			return renderJSON(w, renderModel)
		}, "Wrote JSON")
	case schema.CSVOut:
		return renderOutput(cfg.OutputFile, func(w io.Writer) error {
			return writeMetricsCSV(w, renderModel)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for metrics; use records or timeseries")
	default:
		return renderOutput(cfg.OutputFile, func(w io.Writer) error {
			return writeMetricsText(w, renderModel)
		}, "Wrote text")
	}
}

// writeMetricsText displays metrics in human-readable text format.
func writeMetricsText(w io.Writer, renderModel *metricsRenderModel) error {
	if _, err := fmt.Fprintf(w, "📐 %s\n", renderModel.Title); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "==============================\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", renderModel.Description); err != nil {
		return err
	}

	for _, m := range renderModel.Metrics {
		if _, err := fmt.Fprintf(w, "%s: %s\n", m.Name, m.Purpose); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Formula: %s\n", m.Formula); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Range:   %s\n\n", m.Range); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "🏷️  Benchmark Bands\n"); err != nil {
		return err
	}
	for _, b := range renderModel.Bands {
		if _, err := fmt.Fprintf(w, "   %s\n", b); err != nil {
			return err
		}
	}
	return nil
}

// writeMetricsCSV displays metrics in CSV format.
func writeMetricsCSV(w io.Writer, renderModel *metricsRenderModel) error {
	header := []string{"name", "purpose", "formula", "range"}
	return renderCSV(w, header, func(csvWriter *csv.Writer) error {
		for _, m := range renderModel.Metrics {
			if err := csvWriter.Write([]string{m.Name, m.Purpose, m.Formula, m.Range}); err != nil {
				return err
			}
		}
		return nil
	})
}

// buildMetricsRenderModel constructs the complete render model.
func buildMetricsRenderModel() *metricsRenderModel {
	return &metricsRenderModel{
		Title:       "Translation Quality Metrics",
		Description: "All rates are percentages of total strings for a (project, language, method) row",
		Metrics: []metricDefinition{
			{
				Name:    "approval_rate",
				Purpose: "Share of strings approved without any human edit",
				Formula: "approved_without_edit / total_strings * 100",
				Range:   "0-100, higher is better",
			},
			{
				Name:    "human_intervention_rate",
				Purpose: "Share of strings that needed any post-editing",
				Formula: "post_edited_total / total_strings * 100",
				Range:   "0-100, lower is better",
			},
			{
				Name:    "critical_edit_rate",
				Purpose: "Share of strings with heavy rework (above the 15% edit bucket)",
				Formula: "post_edited_other / total_strings * 100",
				Range:   "0-100, lower is better",
			},
			{
				Name:    "minor_edit_rate",
				Purpose: "Share of strings with light touch-ups (0-5% edit bucket)",
				Formula: "post_edited_0_5 / total_strings * 100",
				Range:   "0-100",
			},
			{
				Name:    "quality_score",
				Purpose: "Severity-weighted quality where heavier edits cost more",
				Formula: "(100*approved + 95*minor + 85*moderate + 70*major + 40*critical) / total_strings",
				Range:   "40-100, higher is better",
			},
			{
				Name:    "risk_score",
				Purpose: "Weighted exposure to moderate and heavier rework",
				Formula: "3*critical_rate + 2*major_rate + 1*moderate_rate",
				Range:   "0-300, lower is better",
			},
			{
				Name:    "difficulty_score",
				Purpose: "How much human attention a language demands",
				Formula: "mean_intervention_rate + 2*mean_critical_rate",
				Range:   "0-300, higher means harder",
			},
		},
		Bands: []string{
			"Excellent: approval above 90%",
			"Good:      approval 70-90%",
			"Poor:      approval 50-70%",
			"Critical:  approval below 50%",
		},
	}
}
