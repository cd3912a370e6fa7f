package cmd

import (
	"github.com/arshaad-deriv/lingostat/core"
	"github.com/arshaad-deriv/lingostat/internal/contract"
	"github.com/spf13/cobra"
)

// timeseriesCmd shows the date-indexed activity table and quality trend.
var timeseriesCmd = &cobra.Command{
	Use:   "timeseries [export-dir]",
	Short: "Show daily activity and the fitted quality trend.",
	Long: `Extract the per-date statistics from the exports into a date-indexed
table, roll it up by day and fit a least-squares trend to the mean daily
approval rate.

The report includes:
- Daily totals with approval, intervention and critical counts
- Trend direction (improving, declining, stable) with the fitted slope
- Mean approval rate by weekday

Use this to:
- Verify that quality moves in the right direction
- Correlate quality dips with releases or engine changes
- Spot weekday patterns in translation throughput

Examples:
  # Daily rollup with trend
  lingostat timeseries ./exports

  # Trend for one language only
  lingostat timeseries ./exports --languages de

  # Per-row export for external charting
  lingostat timeseries ./exports --output csv --output-file daily.csv

  # Columnar export for DuckDB or pandas
  lingostat timeseries ./exports --output parquet --output-file daily.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTimeseries(cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run timeseries analysis", err)
		}
	},
}
