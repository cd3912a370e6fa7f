package schema

// Custom string types for type safety.
type (
	// Method represents a translation production method.
	Method string

	// SeverityTier represents a post-edit severity bucket from the export.
	SeverityTier string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for caching.
	DatabaseBackend string

	// QualityBand represents an approval-rate benchmark band.
	QualityBand string

	// TrendDirection represents the direction of a quality trend.
	TrendDirection string
)

// All translation methods supported.
const (
	AIMethod Method = "AI" // Generative AI translation
	MTMethod Method = "MT" // Machine translation
	TMMethod Method = "TM" // Translation memory (human-curated reuse)
)

// Post-edit severity tiers. The keys are opaque bucket identifiers from the
// export format; display names follow the platform's legend.
const (
	TierMinor    SeverityTier = "0-5"
	TierModerate SeverityTier = "6-10"
	TierMajor    SeverityTier = "11-15"
	TierOther    SeverityTier = "other"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All database backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// Approval-rate benchmark bands.
const (
	ExcellentBand QualityBand = "Excellent" // > 90% approval
	GoodBand      QualityBand = "Good"      // 70-90% approval
	PoorBand      QualityBand = "Poor"      // 50-70% approval
	CriticalBand  QualityBand = "Critical"  // < 50% approval
)

// Trend directions for temporal analysis.
const (
	ImprovingTrend TrendDirection = "improving"
	DecliningTrend TrendDirection = "declining"
	StableTrend    TrendDirection = "stable"
)

// ApprovedWeight is the quality weight for strings approved without edits.
const ApprovedWeight = 100.0

// AllMethods returns translation methods in canonical display order.
var AllMethods = []Method{AIMethod, MTMethod, TMMethod}

// AllTiers returns severity tiers from least to most severe.
var AllTiers = []SeverityTier{TierMinor, TierModerate, TierMajor, TierOther}

// ValidMethods lists all valid translation methods.
var ValidMethods = map[Method]struct{}{
	AIMethod: {},
	MTMethod: {},
	TMMethod: {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid database backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// TierWeights maps each severity tier to its quality weight. A post-edit in
// the "other" bucket costs the most quality; a minor touch-up barely counts.
var TierWeights = map[SeverityTier]float64{
	TierMinor:    95,
	TierModerate: 85,
	TierMajor:    70,
	TierOther:    40,
}

// RiskMultipliers maps each severity tier to its risk-score multiplier.
// Minor edits carry no risk weight.
var RiskMultipliers = map[SeverityTier]float64{
	TierModerate: 1,
	TierMajor:    2,
	TierOther:    3,
}

// TierDisplayName returns the human-readable label for a severity tier.
func TierDisplayName(tier SeverityTier) string {
	switch tier {
	case TierMinor:
		return "Minor (0-5%)"
	case TierModerate:
		return "Moderate (6-10%)"
	case TierMajor:
		return "Major (11-15%)"
	case TierOther:
		return "Critical (>15%)"
	default:
		return string(tier)
	}
}

// BandForApprovalRate classifies an approval rate into a benchmark band.
func BandForApprovalRate(rate float64) QualityBand {
	switch {
	case rate > 90:
		return ExcellentBand
	case rate >= 70:
		return GoodBand
	case rate >= 50:
		return PoorBand
	default:
		return CriticalBand
	}
}

// AllBands returns benchmark bands from best to worst.
var AllBands = []QualityBand{ExcellentBand, GoodBand, PoorBand, CriticalBand}
