package core

import (
	"github.com/arshaad-deriv/lingostat/schema"
)

// deriveMetrics fills in the computed columns on every record in place.
// Records with a zero total keep all rates at zero.
func deriveMetrics(records []schema.Record) {
	for i := range records {
		deriveRecord(&records[i])
	}
}

func deriveRecord(r *schema.Record) {
	r.TotalPostEdited = r.PostEditedMinor + r.PostEditedModerate + r.PostEditedMajor + r.PostEditedOther
	r.TotalStrings = r.ApprovedWithoutEdit + r.TotalPostEdited

	total := float64(r.TotalStrings)
	r.ApprovalRate = schema.Rate(float64(r.ApprovedWithoutEdit), total)
	r.HumanInterventionRate = schema.Rate(float64(r.TotalPostEdited), total)
	r.CriticalEditRate = schema.Rate(float64(r.PostEditedOther), total)
	r.MinorEditRate = schema.Rate(float64(r.PostEditedMinor), total)

	r.QualityScore = qualityScore(r)
	r.RiskScore = riskScore(r)
}

// qualityScore is a weighted average over all strings, where each edit tier
// contributes at its schema weight and untouched approvals count full.
func qualityScore(r *schema.Record) float64 {
	if r.TotalStrings == 0 {
		return 0
	}
	weighted := float64(r.ApprovedWithoutEdit) * schema.ApprovedWeight
	for _, tier := range schema.AllTiers {
		weighted += float64(r.Tier(tier)) * schema.TierWeights[tier]
	}
	return weighted / float64(r.TotalStrings)
}

// riskScore blends the edit-severity rates with fixed multipliers. Unlike
// the plain rates it has no percentage ceiling.
func riskScore(r *schema.Record) float64 {
	if r.TotalStrings == 0 {
		return 0
	}
	total := float64(r.TotalStrings)
	score := 0.0
	// Fixed tier order keeps the float sum deterministic across runs.
	for _, tier := range schema.AllTiers {
		mult, ok := schema.RiskMultipliers[tier]
		if !ok {
			continue
		}
		score += mult * (float64(r.Tier(tier)) / total * 100)
	}
	return score
}
