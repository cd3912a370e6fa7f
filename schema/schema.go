// Package schema has models and constants for all parts of lingostat.
package schema

import "time"

// Record is one row of the primary table: the flattened cumulative statistics
// for a single (project, language, method) triple. Raw counts come from the
// loader; rate and score fields are filled in by the metric deriver.
type Record struct {
	Project      string `json:"project"`
	Language     string `json:"language"`
	LanguageCode string `json:"language_code"`
	Method       Method `json:"method"`

	ApprovedWithoutEdit int     `json:"approved_without_edit"`
	PostEditedMinor     int     `json:"post_edited_0_5"`
	PostEditedModerate  int     `json:"post_edited_6_10"`
	PostEditedMajor     int     `json:"post_edited_11_15"`
	PostEditedOther     int     `json:"post_edited_other"`
	WeightedUnits       float64 `json:"weighted_units"`

	DateFrom string `json:"date_from,omitempty"`
	DateTo   string `json:"date_to,omitempty"`

	// Temporal carries the per-date counts through to the temporal extractor.
	// It survives cache round-trips but is omitted from report output.
	Temporal map[string]MethodStats `json:"temporal,omitempty"`

	// Derived columns.
	TotalStrings          int     `json:"total_strings"`
	TotalPostEdited       int     `json:"total_post_edited"`
	ApprovalRate          float64 `json:"approval_rate"`
	HumanInterventionRate float64 `json:"human_intervention_rate"`
	CriticalEditRate      float64 `json:"critical_edit_rate"`
	MinorEditRate         float64 `json:"minor_edit_rate"`
	QualityScore          float64 `json:"quality_score"`
	RiskScore             float64 `json:"risk_score"`
}

// Tier returns the post-edit count for a severity tier.
func (r *Record) Tier(tier SeverityTier) int {
	switch tier {
	case TierMinor:
		return r.PostEditedMinor
	case TierModerate:
		return r.PostEditedModerate
	case TierMajor:
		return r.PostEditedMajor
	case TierOther:
		return r.PostEditedOther
	default:
		return 0
	}
}

// TemporalRecord is one row of the secondary table: a single day's activity
// for a (project, language, method) triple. Rows with a zero daily total are
// never emitted.
type TemporalRecord struct {
	Date                time.Time `json:"date"`
	Project             string    `json:"project"`
	Language            string    `json:"language"`
	Method              Method    `json:"method"`
	ApprovedWithoutEdit int       `json:"approved_without_edit"`
	TotalStrings        int       `json:"total_strings"`
	ApprovalRate        float64   `json:"approval_rate"`
	InterventionRate    float64   `json:"intervention_rate"`
	CriticalEdits       int       `json:"critical_edits"`
}

// LoadWarning records a file that could not be parsed. The run continues
// without it.
type LoadWarning struct {
	File   string `json:"file"`
	Reason string `json:"reason"`
}

// LoadResult is the loader's output: the primary record table plus parse
// diagnostics.
type LoadResult struct {
	Records    []Record      `json:"records"`
	Warnings   []LoadWarning `json:"warnings"`
	FilesFound int           `json:"files_found"`
}

// Empty reports whether the load produced no records.
func (lr *LoadResult) Empty() bool {
	return len(lr.Records) == 0
}
