package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/arshaad-deriv/lingostat/internal/contract"
)

// renderOutput resolves the report destination (stdout when target is empty,
// otherwise the named file), runs the render callback against it and, for
// file targets, confirms the save on stderr so piped stdout stays clean.
func renderOutput(target string, render func(io.Writer) error, savedMsg string) error {
	dest, err := contract.SelectOutputFile(target)
	if err != nil {
		return err
	}
	toFile := dest != os.Stdout
	if toFile {
		defer func() { _ = dest.Close() }()
	}

	if err := render(dest); err != nil {
		return err
	}

	if toFile {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", savedMsg, target)
	}
	return nil
}

// renderJSON encodes a report with the two-space indentation every JSON
// surface of the CLI shares.
func renderJSON(w io.Writer, report any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// renderCSV writes the header row, hands the writer to the row callback and
// flushes. Row-level errors pass through unwrapped.
func renderCSV(w io.Writer, header []string, rows func(*csv.Writer) error) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	return rows(cw)
}

// precisionFormatters returns the float formatter honoring the configured
// precision, plus the verb integer columns are printed with.
func precisionFormatters(precision int) (fmtFloat func(float64) string, intFmt string) {
	fmtFloat = func(v float64) string {
		return fmt.Sprintf("%.*f", precision, v)
	}
	return fmtFloat, "%d"
}
