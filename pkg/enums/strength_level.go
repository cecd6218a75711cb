package enums

import "fmt"

// StrengthLevel classifies a password strength score.
type StrengthLevel string

const (
	StrengthWeak   StrengthLevel = "weak"
	StrengthMedium StrengthLevel = "medium"
	StrengthStrong StrengthLevel = "strong"
)

var validStrengthLevels = []StrengthLevel{
	StrengthWeak,
	StrengthMedium,
	StrengthStrong,
}

// String implements fmt.Stringer.
func (s StrengthLevel) String() string {
	return string(s)
}

// IsValid reports whether the value is a known StrengthLevel.
func (s StrengthLevel) IsValid() bool {
	for _, candidate := range validStrengthLevels {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseStrengthLevel converts raw input into a StrengthLevel.
func ParseStrengthLevel(value string) (StrengthLevel, error) {
	for _, candidate := range validStrengthLevels {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid strength level %q", value)
}

// StrengthFromScore maps a 0-100 score onto its display classification.
func StrengthFromScore(score int) StrengthLevel {
	switch {
	case score < 40:
		return StrengthWeak
	case score < 70:
		return StrengthMedium
	default:
		return StrengthStrong
	}
}
