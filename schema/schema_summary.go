package schema

// MethodSummary aggregates record metrics for a single translation method.
type MethodSummary struct {
	Method               Method  `json:"method"`
	Records              int     `json:"records"`
	TotalStrings         int64   `json:"total_strings"`
	WeightedUnits        float64 `json:"weighted_units"`
	MeanApprovalRate     float64 `json:"mean_approval_rate"`
	MeanInterventionRate float64 `json:"mean_intervention_rate"`
	MeanCriticalRate     float64 `json:"mean_critical_rate"`
	MeanQualityScore     float64 `json:"mean_quality_score"`
}

// BandShare is the share of records falling into one approval-rate band.
type BandShare struct {
	Band    QualityBand `json:"band"`
	Records int         `json:"records"`
	Share   float64     `json:"share"`
}

// TierTotal is the corpus-wide post-edit count for one severity tier.
type TierTotal struct {
	Tier  SeverityTier `json:"tier"`
	Label string       `json:"label"`
	Count int64        `json:"count"`
}

// SummaryReport is the executive rollup across all filtered records.
type SummaryReport struct {
	TotalRecords         int             `json:"total_records"`
	TotalStrings         int64           `json:"total_strings"`
	Projects             int             `json:"projects"`
	Languages            int             `json:"languages"`
	MeanInterventionRate float64         `json:"mean_intervention_rate"`
	MeanCriticalRate     float64         `json:"mean_critical_rate"`
	Methods              []MethodSummary `json:"methods"`
	Bands                []BandShare     `json:"bands"`
	Tiers                []TierTotal     `json:"tiers"`

	// BestMethod and WorstMethod compare mean approval rates; ApprovalGap is
	// the spread between them. Empty when fewer than two methods are present.
	BestMethod  Method  `json:"best_method,omitempty"`
	WorstMethod Method  `json:"worst_method,omitempty"`
	ApprovalGap float64 `json:"approval_gap"`
}

// LanguageSummary aggregates record metrics for a single target language.
// DifficultyScore blends intervention and critical rates so that languages
// needing the most human attention sort first.
type LanguageSummary struct {
	Language             string  `json:"language"`
	Code                 string  `json:"code"`
	Records              int     `json:"records"`
	TotalStrings         int64   `json:"total_strings"`
	MeanApprovalRate     float64 `json:"mean_approval_rate"`
	MeanInterventionRate float64 `json:"mean_intervention_rate"`
	MeanCriticalRate     float64 `json:"mean_critical_rate"`
	DifficultyScore      float64 `json:"difficulty_score"`
}

// RiskEntry is one (project, language, method) row flagged for review.
type RiskEntry struct {
	Project          string  `json:"project"`
	Language         string  `json:"language"`
	Method           Method  `json:"method"`
	TotalStrings     int     `json:"total_strings"`
	ApprovalRate     float64 `json:"approval_rate"`
	CriticalEditRate float64 `json:"critical_edit_rate"`
	RiskScore        float64 `json:"risk_score"`
}

// ImpactEstimate quantifies the business value of human review using the
// platform's cost assumptions.
type ImpactEstimate struct {
	TotalStrings      int64   `json:"total_strings"`
	CriticalEdits     int64   `json:"critical_edits"`
	CriticalErrorCost float64 `json:"critical_error_cost"`
	HumanReviewCost   float64 `json:"human_review_cost"`
	ROIMultiplier     float64 `json:"roi_multiplier"`
	RiskReduction     float64 `json:"risk_reduction"`
}

// RiskReport ranks high-risk combinations and estimates business impact.
type RiskReport struct {
	Entries         []RiskEntry    `json:"entries"`
	CriticalRateP75 float64        `json:"critical_rate_p75"`
	Impact          ImpactEstimate `json:"impact"`
}
