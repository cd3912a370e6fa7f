package core

import (
	"testing"

	"github.com/arshaad-deriv/lingostat/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		q        float64
		expected float64
	}{
		{name: "empty", values: nil, q: 0.75, expected: 0},
		{name: "single", values: []float64{5}, q: 0.75, expected: 5},
		{name: "median of pair", values: []float64{10, 20}, q: 0.5, expected: 15},
		{name: "p75 interpolated", values: []float64{1, 2, 3, 4}, q: 0.75, expected: 3.25},
		{name: "p75 exact rank", values: []float64{0, 1, 2, 3, 4}, q: 0.75, expected: 3},
		{name: "unsorted input", values: []float64{4, 1, 3, 2}, q: 0.75, expected: 3.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, percentile(tt.values, tt.q), 0.001)
		})
	}
}

func TestBuildRiskReport(t *testing.T) {
	records := []schema.Record{
		{Project: "web", Language: "German", Method: schema.AIMethod,
			ApprovedWithoutEdit: 95, PostEditedMinor: 5},
		{Project: "web", Language: "French", Method: schema.AIMethod,
			ApprovedWithoutEdit: 90, PostEditedMinor: 8, PostEditedOther: 2},
		{Project: "web", Language: "Thai", Method: schema.MTMethod,
			ApprovedWithoutEdit: 60, PostEditedModerate: 20, PostEditedOther: 20},
		{Project: "mobile", Language: "Thai", Method: schema.AIMethod,
			ApprovedWithoutEdit: 20, PostEditedMajor: 40, PostEditedOther: 40},
	}
	deriveMetrics(records)

	report := BuildRiskReport(records)

	// Critical rates are 0, 2, 20, 40; P75 interpolates to 25.
	assert.InDelta(t, 25.0, report.CriticalRateP75, 0.001)

	// The mobile/Thai record is flagged on both conditions; web/Thai on
	// neither (20 <= P75, approval 60 >= 30).
	require.Len(t, report.Entries, 1)
	top := report.Entries[0]
	assert.Equal(t, "mobile", top.Project)
	assert.InDelta(t, 20.0, top.ApprovalRate, 0.001)
	assert.InDelta(t, 40.0, top.CriticalEditRate, 0.001)
	// 3*40 + 2*40 + 1*0
	assert.InDelta(t, 200.0, top.RiskScore, 0.001)
}

func TestBuildRiskReportLowApprovalFlagged(t *testing.T) {
	// Uniform critical rates put everyone at the P75 boundary, so only the
	// low-approval condition can flag a record.
	records := []schema.Record{
		{Project: "a", Language: "x", Method: schema.AIMethod, ApprovedWithoutEdit: 80, PostEditedMinor: 20},
		{Project: "b", Language: "y", Method: schema.AIMethod, ApprovedWithoutEdit: 20, PostEditedMinor: 80},
	}
	deriveMetrics(records)

	report := BuildRiskReport(records)
	require.Len(t, report.Entries, 1)
	assert.Equal(t, "b", report.Entries[0].Project)
}

func TestBuildRiskReportOrderedByScore(t *testing.T) {
	records := []schema.Record{
		{Project: "a", Language: "x", Method: schema.AIMethod, ApprovedWithoutEdit: 10, PostEditedOther: 90},
		{Project: "b", Language: "y", Method: schema.AIMethod, ApprovedWithoutEdit: 25, PostEditedOther: 75},
		{Project: "c", Language: "z", Method: schema.AIMethod, ApprovedWithoutEdit: 95, PostEditedMinor: 5},
	}
	deriveMetrics(records)

	report := BuildRiskReport(records)
	require.GreaterOrEqual(t, len(report.Entries), 2)
	for i := 1; i < len(report.Entries); i++ {
		assert.GreaterOrEqual(t, report.Entries[i-1].RiskScore, report.Entries[i].RiskScore)
	}
}

func TestEstimateImpact(t *testing.T) {
	records := []schema.Record{
		{Project: "web", Language: "German", Method: schema.AIMethod,
			ApprovedWithoutEdit: 600, PostEditedMinor: 300, PostEditedOther: 100},
	}
	deriveMetrics(records)

	est := estimateImpact(records)
	assert.Equal(t, int64(1000), est.TotalStrings)
	assert.Equal(t, int64(100), est.CriticalEdits)
	// 100 critical errors at $100 each.
	assert.InDelta(t, 10000.0, est.CriticalErrorCost, 0.001)
	// 400 post-edited strings at 200/hour and $50/hour.
	assert.InDelta(t, 100.0, est.HumanReviewCost, 0.001)
	assert.InDelta(t, 100.0, est.ROIMultiplier, 0.001)
	// Mean critical rate is 10%.
	assert.InDelta(t, 90.0, est.RiskReduction, 0.001)
}

func TestEstimateImpactNoPostEdits(t *testing.T) {
	records := []schema.Record{
		{Project: "web", Language: "German", Method: schema.TMMethod, ApprovedWithoutEdit: 100},
	}
	deriveMetrics(records)

	est := estimateImpact(records)
	assert.Zero(t, est.HumanReviewCost)
	assert.Zero(t, est.ROIMultiplier)
	assert.InDelta(t, 100.0, est.RiskReduction, 0.001)
}
