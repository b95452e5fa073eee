package domain

import "strings"

// normalizeSet trims entries, drops empties and guarantees a non-nil slice.
func normalizeSet(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Contains reports whether set holds value.
func Contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}

// CoveredFraction returns the fraction of required present in available.
// An empty required set counts as fully covered.
func CoveredFraction(required, available []string) float64 {
	if len(required) == 0 {
		return 1.0
	}
	matched := 0
	for _, r := range required {
		if Contains(available, r) {
			matched++
		}
	}
	return float64(matched) / float64(len(required))
}

func clampMin(v, min float64) float64 {
	if v < min {
		return min
	}
	return v
}

func clampIntMin(v, min int) int {
	if v < min {
		return min
	}
	return v
}

func clampRange(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
