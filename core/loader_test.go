package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arshaad-deriv/lingostat/internal/contract"
	"github.com/arshaad-deriv/lingostat/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleExport = `{
	"name": "checkout",
	"dateRange": {"from": "2025-01-01", "to": "2025-01-31"},
	"data": [
		{
			"language": {"name": "German", "code": "de"},
			"ai": {
				"cumulativeStatistics": {
					"approvedWithoutEdit": 80,
					"postEdited": {"0-5": 10, "6-10": 5, "11-15": 3, "other": 2},
					"weightedUnits": 120.5
				},
				"temporalStatistics": {
					"2025-01-02": {"approvedWithoutEdit": 40, "postEdited": {"0-5": 5}}
				}
			},
			"mt": {
				"cumulativeStatistics": {
					"approvedWithoutEdit": 0,
					"postEdited": {"0-5": 0, "6-10": 0, "11-15": 0, "other": 0},
					"weightedUnits": 0
				}
			}
		},
		{
			"language": {},
			"tm": {
				"cumulativeStatistics": {
					"approvedWithoutEdit": 7,
					"postEdited": {"other": 1}
				}
			}
		}
	]
}`

func writeExport(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "checkout.json", sampleExport)

	result, err := LoadDirectory(&contract.Config{Dir: dir})
	require.NoError(t, err)

	assert.Equal(t, 1, result.FilesFound)
	assert.Empty(t, result.Warnings)
	require.Len(t, result.Records, 2)

	// All-zero MT block is dropped; AI and TM survive.
	ai := result.Records[0]
	assert.Equal(t, "checkout", ai.Project)
	assert.Equal(t, "German", ai.Language)
	assert.Equal(t, "de", ai.LanguageCode)
	assert.Equal(t, schema.AIMethod, ai.Method)
	assert.Equal(t, 100, ai.TotalStrings)
	assert.InDelta(t, 120.5, ai.WeightedUnits, 0.001)
	assert.Equal(t, "2025-01-01", ai.DateFrom)
	assert.Contains(t, ai.Temporal, "2025-01-02")

	// Missing language fields get the documented defaults.
	tm := result.Records[1]
	assert.Equal(t, schema.TMMethod, tm.Method)
	assert.Equal(t, "Unknown", tm.Language)
	assert.Equal(t, "unknown", tm.LanguageCode)
	assert.Equal(t, 8, tm.TotalStrings)
}

func TestLoadDirectoryIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "checkout.json", sampleExport)
	// One edit in each weighted tier over a total of three strings makes the
	// risk sum order-sensitive, so repeated loads must agree bit for bit.
	writeExport(t, dir, "edge.json", `{"data": [{"language": {"name": "Thai", "code": "th"},
		"mt": {"cumulativeStatistics": {"postEdited": {"6-10": 1, "11-15": 1, "other": 1}}}}]}`)

	first, err := LoadDirectory(&contract.Config{Dir: dir})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := LoadDirectory(&contract.Config{Dir: dir})
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestLoadDirectoryBadFileContinues(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "bad.json", "{not json")
	writeExport(t, dir, "good.json", sampleExport)

	result, err := LoadDirectory(&contract.Config{Dir: dir})
	require.NoError(t, err)

	assert.Equal(t, 2, result.FilesFound)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "bad.json", result.Warnings[0].File)
	assert.Len(t, result.Records, 2)
}

func TestLoadDirectoryEmpty(t *testing.T) {
	dir := t.TempDir()

	result, err := LoadDirectory(&contract.Config{Dir: dir})
	require.NoError(t, err)
	assert.True(t, result.Empty())
	assert.Zero(t, result.FilesFound)
}

func TestLoadDirectoryMissingDir(t *testing.T) {
	_, err := LoadDirectory(&contract.Config{Dir: "/nonexistent/path"})
	assert.Error(t, err)
}

func TestLoadDirectoryIgnoresNonExports(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "notes.txt", "hello")
	writeExport(t, dir, "stats.json", sampleExport)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	result, err := LoadDirectory(&contract.Config{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, 1, result.FilesFound)
}

func TestLoadDirectoryProjectNameFallback(t *testing.T) {
	dir := t.TempDir()
	export := `{"data": [{"language": {"name": "French", "code": "fr"},
		"ai": {"cumulativeStatistics": {"approvedWithoutEdit": 3}}}]}`
	writeExport(t, dir, "mobile-app.json", export)

	result, err := LoadDirectory(&contract.Config{Dir: dir})
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "mobile-app", result.Records[0].Project)
}

func TestFilterRecords(t *testing.T) {
	records := []schema.Record{
		{Project: "web", Language: "German", Method: schema.AIMethod},
		{Project: "web", Language: "French", Method: schema.MTMethod},
		{Project: "mobile", Language: "German", Method: schema.TMMethod},
	}

	tests := []struct {
		name string
		cfg  contract.Config
		want int
	}{
		{name: "no filters", cfg: contract.Config{}, want: 3},
		{name: "by project", cfg: contract.Config{Projects: []string{"web"}}, want: 2},
		{name: "by language", cfg: contract.Config{Languages: []string{"German"}}, want: 2},
		{name: "by method", cfg: contract.Config{Methods: []schema.Method{schema.AIMethod}}, want: 1},
		{name: "combined", cfg: contract.Config{Projects: []string{"web"}, Languages: []string{"German"}}, want: 1},
		{name: "no match", cfg: contract.Config{Projects: []string{"desktop"}}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, FilterRecords(records, &tt.cfg), tt.want)
		})
	}
}
