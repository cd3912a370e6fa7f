package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSplitList tests comma-list splitting and trimming.
func TestSplitList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty", input: "", expected: nil},
		{name: "whitespace only", input: "   ", expected: nil},
		{name: "single", input: "Spanish", expected: []string{"Spanish"}},
		{name: "multiple with spaces", input: "Spanish, French , German", expected: []string{"Spanish", "French", "German"}},
		{name: "trailing comma", input: "Spanish,", expected: []string{"Spanish"}},
		{name: "empty segments", input: ",,Spanish,,", expected: []string{"Spanish"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitList(tt.input))
		})
	}
}

// TestParseMethods tests method filter parsing.
func TestParseMethods(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  []Method
		expectErr bool
	}{
		{name: "empty means no filter", input: "", expected: nil},
		{name: "lowercase", input: "ai,tm", expected: []Method{AIMethod, TMMethod}},
		{name: "uppercase", input: "MT", expected: []Method{MTMethod}},
		{name: "mixed case with spaces", input: " Ai , mt ", expected: []Method{AIMethod, MTMethod}},
		{name: "invalid method", input: "ai,human", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			methods, err := ParseMethods(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, methods)
		})
	}
}

// TestRate tests the guarded percentage helper.
func TestRate(t *testing.T) {
	assert.Equal(t, 0.0, Rate(10, 0))
	assert.Equal(t, 0.0, Rate(0, 0))
	assert.InDelta(t, 80.0, Rate(80, 100), 0.001)
	assert.InDelta(t, 100.0, Rate(5, 5), 0.001)
}

// TestMean tests the mean helper.
func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.InDelta(t, 2.0, Mean([]float64{1, 2, 3}), 0.001)
}

// TestBandForApprovalRate tests benchmark band boundaries.
func TestBandForApprovalRate(t *testing.T) {
	tests := []struct {
		rate     float64
		expected QualityBand
	}{
		{rate: 100, expected: ExcellentBand},
		{rate: 90.01, expected: ExcellentBand},
		{rate: 90, expected: GoodBand},
		{rate: 70, expected: GoodBand},
		{rate: 69.99, expected: PoorBand},
		{rate: 50, expected: PoorBand},
		{rate: 49.99, expected: CriticalBand},
		{rate: 0, expected: CriticalBand},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, BandForApprovalRate(tt.rate), "rate %v", tt.rate)
	}
}

// TestMethodStatsIsZero ensures all-zero blocks are detected.
func TestMethodStatsIsZero(t *testing.T) {
	assert.True(t, MethodStats{}.IsZero())
	assert.False(t, MethodStats{ApprovedWithoutEdit: 1}.IsZero())
	assert.False(t, MethodStats{PostEdited: PostEditedBuckets{Other: 2}}.IsZero())
	assert.False(t, MethodStats{WeightedUnits: 0.5}.IsZero())
}

// TestBucket ensures tier lookup covers all buckets.
func TestBucket(t *testing.T) {
	b := PostEditedBuckets{Minor: 1, Moderate: 2, Major: 3, Other: 4}
	assert.Equal(t, 1, b.Bucket(TierMinor))
	assert.Equal(t, 2, b.Bucket(TierModerate))
	assert.Equal(t, 3, b.Bucket(TierMajor))
	assert.Equal(t, 4, b.Bucket(TierOther))
	assert.Equal(t, 10, b.Sum())
	assert.Equal(t, 0, b.Bucket(SeverityTier("bogus")))
}
