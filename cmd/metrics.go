package cmd

import (
	"github.com/arshaad-deriv/lingostat/core"
	"github.com/arshaad-deriv/lingostat/internal/contract"
	"github.com/spf13/cobra"
)

// metricsCmd displays the formal definitions of all derived metrics.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Display formulas and definitions for all derived metrics",
	Long: `Show the formal definitions and formulas behind every derived metric.

Provides complete transparency into how records are scored, including:
- Rate definitions and their denominators
- Quality score severity weights
- Risk score multipliers
- Benchmark band thresholds

No export loading is performed - this is purely informational.

Use this to:
- Understand what each metric measures
- Explain scoring logic to your team
- Document scoring methodology

Examples:
  # Show metric definitions
  lingostat metrics

  # Definitions as JSON for docs tooling
  lingostat metrics --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMetrics(cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot display metrics", err)
		}
	},
}
