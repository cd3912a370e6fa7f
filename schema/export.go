package schema

// Export represents one parsed statistics export document. All fields are
// optional in the source format; defaults are applied by the loader in one
// place rather than scattered through the flattening logic.
type Export struct {
	Name      string          `json:"name"`
	DateRange DateRange       `json:"dateRange"`
	Data      []LanguageEntry `json:"data"`
}

// DateRange holds the optional reporting window of an export.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// LanguageEntry holds the per-language statistics inside an export, with up
// to one node per translation method.
type LanguageEntry struct {
	Language LanguageInfo `json:"language"`
	AI       *MethodNode  `json:"ai"`
	MT       *MethodNode  `json:"mt"`
	TM       *MethodNode  `json:"tm"`
}

// LanguageInfo identifies a target language.
type LanguageInfo struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// MethodNode pairs cumulative counts with the per-date breakdown for one
// translation method.
type MethodNode struct {
	Cumulative MethodStats            `json:"cumulativeStatistics"`
	Temporal   map[string]MethodStats `json:"temporalStatistics"`
}

// MethodStats holds the raw counts for one method, either cumulative or for
// a single day.
type MethodStats struct {
	ApprovedWithoutEdit int               `json:"approvedWithoutEdit"`
	PostEdited          PostEditedBuckets `json:"postEdited"`
	WeightedUnits       float64           `json:"weightedUnits"`
}

// PostEditedBuckets holds post-edit counts keyed by severity tier.
type PostEditedBuckets struct {
	Minor    int `json:"0-5"`
	Moderate int `json:"6-10"`
	Major    int `json:"11-15"`
	Other    int `json:"other"`
}

// Node returns the method node for the given translation method, or nil if
// the export has no block for it.
func (e *LanguageEntry) Node(m Method) *MethodNode {
	switch m {
	case AIMethod:
		return e.AI
	case MTMethod:
		return e.MT
	case TMMethod:
		return e.TM
	default:
		return nil
	}
}

// Bucket returns the post-edit count for a severity tier.
func (b PostEditedBuckets) Bucket(tier SeverityTier) int {
	switch tier {
	case TierMinor:
		return b.Minor
	case TierModerate:
		return b.Moderate
	case TierMajor:
		return b.Major
	case TierOther:
		return b.Other
	default:
		return 0
	}
}

// Sum returns the total post-edited count across all tiers.
func (b PostEditedBuckets) Sum() int {
	return b.Minor + b.Moderate + b.Major + b.Other
}

// Total returns the total string count including approvals and post-edits.
func (s MethodStats) Total() int {
	return s.ApprovedWithoutEdit + s.PostEdited.Sum()
}

// IsZero reports whether every count field is zero. Blocks like this are
// dropped during flattening.
func (s MethodStats) IsZero() bool {
	return s.ApprovedWithoutEdit == 0 && s.PostEdited.Sum() == 0 && s.WeightedUnits == 0
}
