package core

import (
	"math"
	"sort"

	"github.com/arshaad-deriv/lingostat/schema"
)

// Cost assumptions behind the impact estimate. Defaults match the
// localization team's planning figures; they are reported alongside the
// results so downstream consumers can rescale.
const (
	costPerCriticalError = 100.0
	costPerHumanHour     = 50.0
	stringsPerHumanHour  = 200.0
)

// BuildRiskReport flags the (project, language, method) combinations that
// need review: every record whose critical-edit rate sits above the 75th
// percentile of the corpus, or whose approval rate is below 30%. Entries are
// ordered by descending risk score.
func BuildRiskReport(records []schema.Record) *schema.RiskReport {
	rates := make([]float64, 0, len(records))
	for i := range records {
		rates = append(rates, records[i].CriticalEditRate)
	}
	p75 := percentile(rates, 0.75)

	report := &schema.RiskReport{CriticalRateP75: p75}
	for i := range records {
		r := &records[i]
		if r.CriticalEditRate <= p75 && r.ApprovalRate >= 30 {
			continue
		}
		report.Entries = append(report.Entries, schema.RiskEntry{
			Project:          r.Project,
			Language:         r.Language,
			Method:           r.Method,
			TotalStrings:     r.TotalStrings,
			ApprovalRate:     r.ApprovalRate,
			CriticalEditRate: r.CriticalEditRate,
			RiskScore:        r.RiskScore,
		})
	}

	sort.SliceStable(report.Entries, func(i, j int) bool {
		return report.Entries[i].RiskScore > report.Entries[j].RiskScore
	})

	report.Impact = estimateImpact(records)
	return report
}

// estimateImpact prices the human-review effort against the critical errors
// it caught.
func estimateImpact(records []schema.Record) schema.ImpactEstimate {
	var est schema.ImpactEstimate
	var totalPostEdited int64
	var criticalRates []float64
	for i := range records {
		r := &records[i]
		est.TotalStrings += int64(r.TotalStrings)
		est.CriticalEdits += int64(r.PostEditedOther)
		totalPostEdited += int64(r.TotalPostEdited)
		criticalRates = append(criticalRates, r.CriticalEditRate)
	}

	est.CriticalErrorCost = float64(est.CriticalEdits) * costPerCriticalError
	est.HumanReviewCost = float64(totalPostEdited) / stringsPerHumanHour * costPerHumanHour
	if est.HumanReviewCost > 0 {
		est.ROIMultiplier = est.CriticalErrorCost / est.HumanReviewCost
	}
	est.RiskReduction = (1 - schema.Mean(criticalRates)/100) * 100
	return est
}

// percentile returns the q-th quantile of values with linear interpolation
// between closest ranks. Returns 0 for an empty slice.
func percentile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	pos := q * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}
	frac := pos - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}
