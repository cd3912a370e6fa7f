package schema

import (
	"fmt"
	"strings"
)

// SplitList splits a comma-separated flag value into trimmed, non-empty
// parts. Returns nil for an empty input.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ParseMethods parses a comma-separated method filter like "ai,tm" into
// canonical Method values. An empty input means no filter.
func ParseMethods(s string) ([]Method, error) {
	parts := SplitList(s)
	if len(parts) == 0 {
		return nil, nil
	}
	methods := make([]Method, 0, len(parts))
	for _, p := range parts {
		m := Method(strings.ToUpper(p))
		if _, ok := ValidMethods[m]; !ok {
			return nil, fmt.Errorf("invalid method '%s'. must be ai, mt, tm", p)
		}
		methods = append(methods, m)
	}
	return methods, nil
}

// Rate returns 100*part/total, or 0 when total is zero. Every percentage in
// the pipeline goes through this guard.
func Rate(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return part / total * 100
}

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
