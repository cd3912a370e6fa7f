package core

import (
	"testing"
	"time"

	"github.com/arshaad-deriv/lingostat/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTemporal(t *testing.T) {
	records := []schema.Record{
		{
			Project:  "web",
			Language: "German",
			Method:   schema.AIMethod,
			Temporal: map[string]schema.MethodStats{
				"2025-01-03": {
					ApprovedWithoutEdit: 8,
					PostEdited:          schema.PostEditedBuckets{Minor: 1, Other: 1},
				},
				"2025-01-02": {ApprovedWithoutEdit: 5},
				"not-a-date": {ApprovedWithoutEdit: 3},
				"2025-01-04": {}, // zero-total day
			},
		},
	}

	out := ExtractTemporal(records)
	require.Len(t, out, 2)

	// Sorted by date despite map iteration order.
	assert.Equal(t, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), out[0].Date)
	assert.Equal(t, 5, out[0].TotalStrings)
	assert.InDelta(t, 100.0, out[0].ApprovalRate, 0.001)

	second := out[1]
	assert.Equal(t, 10, second.TotalStrings)
	assert.InDelta(t, 80.0, second.ApprovalRate, 0.001)
	assert.InDelta(t, 20.0, second.InterventionRate, 0.001)
	assert.Equal(t, 1, second.CriticalEdits)
	assert.Equal(t, "web", second.Project)
	assert.Equal(t, schema.AIMethod, second.Method)
}

func TestExtractTemporalStableOrder(t *testing.T) {
	stats := schema.MethodStats{ApprovedWithoutEdit: 1}
	records := []schema.Record{
		{Project: "b", Language: "x", Method: schema.MTMethod, Temporal: map[string]schema.MethodStats{"2025-01-01": stats}},
		{Project: "a", Language: "x", Method: schema.AIMethod, Temporal: map[string]schema.MethodStats{"2025-01-01": stats}},
		{Project: "a", Language: "x", Method: schema.TMMethod, Temporal: map[string]schema.MethodStats{"2025-01-01": stats}},
	}

	out := ExtractTemporal(records)
	require.Len(t, out, 3)
	assert.Equal(t, "a", out[0].Project)
	assert.Equal(t, schema.AIMethod, out[0].Method)
	assert.Equal(t, schema.TMMethod, out[1].Method)
	assert.Equal(t, "b", out[2].Project)
}

func TestExtractTemporalNoTemporalData(t *testing.T) {
	records := []schema.Record{{Project: "web", Language: "German", Method: schema.AIMethod}}
	assert.Empty(t, ExtractTemporal(records))
}
