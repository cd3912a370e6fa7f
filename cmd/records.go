package cmd

import (
	"github.com/arshaad-deriv/lingostat/core"
	"github.com/arshaad-deriv/lingostat/internal/contract"
	"github.com/spf13/cobra"
)

// recordsCmd shows the primary per-combination quality table.
var recordsCmd = &cobra.Command{
	Use:   "records [export-dir]",
	Short: "Show quality records per project, language and method.",
	Long: `Load translation statistics exports and rank every (project, language,
method) combination by string volume.

Each record carries the raw counts plus the derived quality metrics, helping you:
- See where most translation volume is produced
- Compare approval rates across methods for the same language
- Spot combinations with heavy post-editing or critical rework
- Feed per-combination metrics into spreadsheets and dashboards

Examples:
  # Rank the top 20 combinations by volume
  lingostat records ./exports --limit 20

  # Only machine translation rows for German
  lingostat records ./exports --methods MT --languages de

  # Export findings to CSV for tracking
  lingostat records ./exports --output csv --output-file records.csv

  # Columnar export for DuckDB or pandas
  lingostat records ./exports --output parquet --output-file records.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRecords(cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run records analysis", err)
		}
	},
}
