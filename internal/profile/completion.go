package profile

import (
	"math"
	"strings"
)

const (
	requiredWeight = 40.0
	optionalWeight = 60.0
)

// Estimate computes the weighted completion percentage for a profile form.
// The required-field ratio contributes 40 points and the optional-field ratio
// 60; a field counts as complete when its trimmed value is non-empty. The
// result is rounded to the nearest integer and always sits in [0,100].
//
// It is pure and cheap enough to recompute synchronously on every field
// change. An empty field list counts as vacuously complete; a form with no
// fields at all reports 0.
func Estimate(values map[string]string, required, optional []string) int {
	if len(required) == 0 && len(optional) == 0 {
		return 0
	}

	score := requiredWeight*ratio(values, required) + optionalWeight*ratio(values, optional)
	return int(math.Round(score))
}

func ratio(values map[string]string, fields []string) float64 {
	if len(fields) == 0 {
		return 1
	}
	filled := 0
	for _, field := range fields {
		if strings.TrimSpace(values[field]) != "" {
			filled++
		}
	}
	return float64(filled) / float64(len(fields))
}
