// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/arshaad-deriv/lingostat/internal/contract"
	"golang.org/x/term"
)

// getMaxTableNameWidth calculates the maximum width for project and language
// names in table output based on terminal width.
func getMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 {
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for rank, method and metric columns with borders and
	// padding, then split the rest between the two name columns.
	baseWidth := 55
	available := (termWidth - baseWidth) / 2
	if available < 15 {
		return 15
	}
	if available > 40 {
		return 40
	}
	return available
}

// label returns the benchmark label for an approval rate, colorized when the
// config asks for it.
func label(approvalRate float64, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorLabel(approvalRate)
	}
	return contract.GetPlainLabel(approvalRate)
}

// riskLabel returns the severity label for a risk score, colorized when the
// config asks for it.
func riskLabel(riskScore float64, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorRiskLabel(riskScore)
	}
	return contract.GetPlainRiskLabel(riskScore)
}
