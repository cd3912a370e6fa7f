package cmd

import (
	"github.com/arshaad-deriv/lingostat/core"
	"github.com/arshaad-deriv/lingostat/internal/contract"
	"github.com/spf13/cobra"
)

// riskCmd flags combinations that need human review.
var riskCmd = &cobra.Command{
	Use:   "risk [export-dir]",
	Short: "Flag high-risk combinations and estimate review ROI.",
	Long: `Flag (project, language, method) combinations whose critical edit rate
sits in the top quartile of the corpus, or whose approval rate falls below
30%. Flagged rows are ranked by risk score, worst first.

The report closes with a review impact estimate: what the caught critical
errors would have cost, what the human review cost, and the resulting ROI
multiplier.

Use this to:
- Build the review queue for the next cycle
- Justify reviewer budget with a defensible ROI figure
- Watch whether risk concentrates in specific methods

Examples:
  # Flag risky combinations across the corpus
  lingostat risk ./exports

  # Restrict to one project
  lingostat risk ./exports --projects checkout

  # Full report with entries and impact as JSON
  lingostat risk ./exports --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRisk(cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run risk analysis", err)
		}
	},
}
