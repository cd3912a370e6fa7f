package cmd

import (
	"github.com/arshaad-deriv/lingostat/core"
	"github.com/arshaad-deriv/lingostat/internal/contract"
	"github.com/spf13/cobra"
)

// summaryCmd shows the executive rollup.
var summaryCmd = &cobra.Command{
	Use:   "summary [export-dir]",
	Short: "Show the executive quality rollup across all records.",
	Long: `Aggregate all loaded records into a single report: corpus totals,
per-method comparison, benchmark band distribution and post-edit severity
totals.

Use this to:
- Compare AI, MT and TM quality at a glance
- See what share of output lands in each benchmark band
- Brief stakeholders without exposing per-language detail

Examples:
  # Full corpus rollup
  lingostat summary ./exports

  # Rollup for a single project
  lingostat summary ./exports --projects checkout

  # Machine-readable report
  lingostat summary ./exports --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSummary(cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run summary analysis", err)
		}
	},
}
