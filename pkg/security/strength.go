package security

import (
	"unicode"

	"github.com/helixcrm/console/pkg/enums"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

const pointsPerCheck = 20

// StrengthFlags reports which of the five character-class checks a password satisfies.
type StrengthFlags struct {
	HasMinLength   bool `json:"has_min_length"`
	HasUppercase   bool `json:"has_uppercase"`
	HasLowercase   bool `json:"has_lowercase"`
	HasNumber      bool `json:"has_number"`
	HasSpecialChar bool `json:"has_special_char"`
}

// Strength is the derived password score. Score is always 20 times the number
// of satisfied flags.
type Strength struct {
	Score int                 `json:"score"`
	Flags StrengthFlags       `json:"flags"`
	Level enums.StrengthLevel `json:"level"`
}

// EvaluateStrength scores a candidate password from its character classes.
// It is pure and recomputed on every keystroke; no state is kept.
func EvaluateStrength(password string) Strength {
	flags := StrengthFlags{
		HasMinLength: len([]rune(password)) >= MinPasswordLength,
	}
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			flags.HasUppercase = true
		case unicode.IsLower(r):
			flags.HasLowercase = true
		case unicode.IsDigit(r):
			flags.HasNumber = true
		default:
			flags.HasSpecialChar = true
		}
	}

	score := 0
	for _, ok := range []bool{flags.HasMinLength, flags.HasUppercase, flags.HasLowercase, flags.HasNumber, flags.HasSpecialChar} {
		if ok {
			score += pointsPerCheck
		}
	}

	return Strength{
		Score: score,
		Flags: flags,
		Level: enums.StrengthFromScore(score),
	}
}

// AcceptableForSubmission reports whether a new password passes the local gate
// applied before any network call.
func (s Strength) AcceptableForSubmission() bool {
	return s.Flags.HasMinLength && s.Score >= 40
}
