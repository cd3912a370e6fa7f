package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arshaad-deriv/lingostat/schema"
	"github.com/fatih/color"
)

// Color variables for console output.
var (
	ExcellentColor = color.New(color.FgGreen, color.Bold) // approval comfortably high
	GoodColor      = color.New(color.FgCyan)              // acceptable, informational
	PoorColor      = color.New(color.FgYellow)            // standard caution, not bold
	CriticalColor  = color.New(color.FgRed, color.Bold)   // standard danger
)

// GetPlainLabel returns the benchmark band name for a record's approval
// rate. This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(approvalRate float64) string {
	return string(schema.BandForApprovalRate(approvalRate))
}

// GetColorLabel returns a colored band label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the
// appropriate color.
func GetColorLabel(approvalRate float64) string {
	text := GetPlainLabel(approvalRate)

	switch schema.QualityBand(text) {
	case schema.ExcellentBand:
		return ExcellentColor.Sprint(text)
	case schema.GoodBand:
		return GoodColor.Sprint(text)
	case schema.PoorBand:
		return PoorColor.Sprint(text)
	default: // "Critical"
		return CriticalColor.Sprint(text)
	}
}

// Risk label constants.
const (
	SevereRiskValue   = "Severe"
	ElevatedRiskValue = "Elevated"
	GuardedRiskValue  = "Guarded"
	LowRiskValue      = "Low"
)

// GetPlainRiskLabel classifies a risk score. The score is a weighted sum of
// moderate/major/critical edit rates, so its ceiling is 300.
func GetPlainRiskLabel(riskScore float64) string {
	switch {
	case riskScore >= 150:
		return SevereRiskValue
	case riskScore >= 75:
		return ElevatedRiskValue
	case riskScore >= 30:
		return GuardedRiskValue
	default:
		return LowRiskValue
	}
}

// GetColorRiskLabel returns a colored risk label for console output.
func GetColorRiskLabel(riskScore float64) string {
	text := GetPlainRiskLabel(riskScore)

	switch text {
	case SevereRiskValue:
		return CriticalColor.Sprint(text)
	case ElevatedRiskValue:
		return PoorColor.Sprint(text)
	case GuardedRiskValue:
		return GoodColor.Sprint(text)
	default:
		return ExcellentColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for cache storage.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".lingostat_cache.db"
	}
	return filepath.Join(homeDir, ".lingostat_cache.db")
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for run history.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".lingostat_history.db"
	}
	return filepath.Join(homeDir, ".lingostat_history.db")
}

// TruncateText truncates a string to a maximum width with ellipsis prefix.
// Requires maxWidth > 3 so there is room for the "..." prefix and at least
// one character of content.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
