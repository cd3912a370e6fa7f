package core

import (
	"testing"
	"time"

	"github.com/arshaad-deriv/lingostat/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestFitSlope(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{name: "too few points", values: []float64{5}, expected: 0},
		{name: "flat", values: []float64{80, 80, 80}, expected: 0},
		{name: "rising", values: []float64{70, 75, 80}, expected: 5},
		{name: "falling", values: []float64{80, 75, 70}, expected: -5},
		{name: "noisy rise", values: []float64{70, 80, 74, 84}, expected: 3.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, fitSlope(tt.values), 0.001)
		})
	}
}

func TestBuildTrendReport(t *testing.T) {
	temporal := []schema.TemporalRecord{
		{Date: day(6), Language: "German", Method: schema.AIMethod, TotalStrings: 10, ApprovalRate: 70, InterventionRate: 30, CriticalEdits: 1},
		{Date: day(6), Language: "French", Method: schema.AIMethod, TotalStrings: 20, ApprovalRate: 80, InterventionRate: 20},
		{Date: day(7), Language: "German", Method: schema.AIMethod, TotalStrings: 15, ApprovalRate: 85, InterventionRate: 15, CriticalEdits: 2},
	}

	report := BuildTrendReport(temporal)

	require.Len(t, report.Days, 2)
	assert.Equal(t, 2, report.SpanDays)

	first := report.Days[0]
	assert.Equal(t, day(6), first.Date)
	assert.Equal(t, 30, first.TotalStrings)
	assert.InDelta(t, 75.0, first.MeanApprovalRate, 0.001)
	assert.InDelta(t, 25.0, first.MeanInterventionRate, 0.001)
	assert.Equal(t, 1, first.CriticalEdits)

	// 75 then 85 means quality is improving.
	assert.InDelta(t, 10.0, report.Slope, 0.001)
	assert.Equal(t, schema.ImprovingTrend, report.Direction)

	// Jan 6 2025 is a Monday.
	require.Len(t, report.Weekdays, 2)
	assert.Equal(t, "Monday", report.Weekdays[0].Name)
	assert.Equal(t, 1, report.Weekdays[0].Days)
	assert.InDelta(t, 75.0, report.Weekdays[0].MeanApprovalRate, 0.001)
	assert.Equal(t, "Tuesday", report.Weekdays[1].Name)
}

func TestBuildTrendReportDeclining(t *testing.T) {
	temporal := []schema.TemporalRecord{
		{Date: day(1), TotalStrings: 10, ApprovalRate: 90},
		{Date: day(2), TotalStrings: 10, ApprovalRate: 80},
	}
	report := BuildTrendReport(temporal)
	assert.Equal(t, schema.DecliningTrend, report.Direction)
	assert.InDelta(t, -10.0, report.Slope, 0.001)
}

func TestBuildTrendReportSingleDayIsStable(t *testing.T) {
	temporal := []schema.TemporalRecord{
		{Date: day(1), TotalStrings: 10, ApprovalRate: 90},
	}
	report := BuildTrendReport(temporal)
	assert.Equal(t, schema.StableTrend, report.Direction)
	assert.Zero(t, report.Slope)
	assert.Equal(t, 1, report.SpanDays)
}

func TestBuildTrendReportEmpty(t *testing.T) {
	report := BuildTrendReport(nil)
	assert.Equal(t, schema.StableTrend, report.Direction)
	assert.Empty(t, report.Days)
	assert.Empty(t, report.Weekdays)
}
