//go:build integration

// Package integration contains integration tests for lingostat.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags integration ./integration
// Or use: make test-integration
package integration

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// verificationExport holds several (language, method) blocks with counts that
// are easy to re-derive by hand. The ground truth below must track any edits.
const verificationExport = `{
  "name": "storefront",
  "dateRange": {"from": "2025-02-01", "to": "2025-02-28"},
  "data": [
    {
      "language": {"name": "German", "code": "de"},
      "ai": {
        "cumulativeStatistics": {
          "approvedWithoutEdit": 80,
          "postEdited": {"0-5": 10, "6-10": 5, "11-15": 3, "other": 2}
        }
      },
      "mt": {
        "cumulativeStatistics": {
          "approvedWithoutEdit": 20,
          "postEdited": {"0-5": 10, "6-10": 10, "11-15": 8, "other": 2}
        }
      }
    },
    {
      "language": {"name": "Thai", "code": "th"},
      "tm": {
        "cumulativeStatistics": {
          "approvedWithoutEdit": 30,
          "postEdited": {"0-5": 10, "6-10": 5, "11-15": 5, "other": 0}
        }
      }
    }
  ]
}`

// groundTruth maps "language/method" to independently computed totals and
// approval rates for the fixture above.
var groundTruth = map[string]struct {
	totalStrings int
	approvalRate float64
}{
	"German/AI": {totalStrings: 100, approvalRate: 80.0},
	"German/MT": {totalStrings: 50, approvalRate: 40.0},
	"Thai/TM":   {totalStrings: 50, approvalRate: 60.0},
}

// recordRow mirrors the fields of the JSON record output that the
// verification needs.
type recordRow struct {
	Rank                int     `json:"rank"`
	Project             string  `json:"project"`
	Language            string  `json:"language"`
	Method              string  `json:"method"`
	ApprovedWithoutEdit int     `json:"approved_without_edit"`
	TotalStrings        int     `json:"total_strings"`
	ApprovalRate        float64 `json:"approval_rate"`
}

// TestRecordsVerification runs lingostat records and verifies totals and
// approval rates against counts recomputed directly from the export fixture.
func TestRecordsVerification(t *testing.T) {
	// Write a fixture export directory
	exportDir := t.TempDir()
	err := os.WriteFile(filepath.Join(exportDir, "storefront.json"), []byte(verificationExport), 0o644)
	require.NoError(t, err)

	// Build lingostat binary
	binDir := t.TempDir()
	lingostatPath := filepath.Join(binDir, "lingostat")
	buildCmd := exec.Command("go", "build", "-o", lingostatPath, ".")
	buildCmd.Dir = ".." // Project root
	err = buildCmd.Run()
	require.NoError(t, err)

	// Run records with JSON output so rows can be decoded instead of scraped
	outFile := filepath.Join(binDir, "records.json")
	cmd := exec.Command(lingostatPath, "records", exportDir,
		"--output", "json", "--output-file", outFile,
		"--cache-backend", "none", "--precision", "1")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "records failed: %s", string(output))

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)

	var rows []recordRow
	require.NoError(t, json.Unmarshal(data, &rows))
	require.Len(t, rows, len(groundTruth))

	// Verify each row against the hand-computed values
	for _, row := range rows {
		key := fmt.Sprintf("%s/%s", row.Language, row.Method)
		t.Run(key, func(t *testing.T) {
			want, ok := groundTruth[key]
			require.True(t, ok, "unexpected row %s", key)

			assert.Equal(t, "storefront", row.Project)
			assert.Equal(t, want.totalStrings, row.TotalStrings,
				"total strings mismatch for %s", key)
			assert.InDelta(t, want.approvalRate, row.ApprovalRate, 0.1,
				"approval rate mismatch for %s", key)
		})
	}

	// Ranks must be contiguous from 1 and ordered
	for i, row := range rows {
		assert.Equal(t, i+1, row.Rank, "rank should match position")
	}
}
