package cmd

import (
	"github.com/arshaad-deriv/lingostat/core"
	"github.com/arshaad-deriv/lingostat/internal/contract"
	"github.com/spf13/cobra"
)

// languagesCmd ranks target languages by difficulty.
var languagesCmd = &cobra.Command{
	Use:   "languages [export-dir]",
	Short: "Rank target languages by how much human attention they need.",
	Long: `Aggregate records per target language and rank them by difficulty,
hardest first. Difficulty blends the intervention rate with a double-weighted
critical rate, so languages producing heavy rework sort to the top.

Use this to:
- Decide where to spend reviewer budget
- Spot languages where machine output underperforms
- Track whether a difficult language improves over releases

Examples:
  # Rank all languages
  lingostat languages ./exports

  # Only consider AI output
  lingostat languages ./exports --methods AI

  # Top five hardest languages as JSON
  lingostat languages ./exports --limit 5 --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteLanguages(cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run languages analysis", err)
		}
	},
}
