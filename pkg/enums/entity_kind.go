package enums

import "fmt"

// EntityKind identifies which table a record belongs to.
type EntityKind string

const (
	EntityKindEmployee EntityKind = "employee"
	EntityKindLead     EntityKind = "lead"
	EntityKindClient   EntityKind = "client"
)

var validEntityKinds = []EntityKind{
	EntityKindEmployee,
	EntityKindLead,
	EntityKindClient,
}

// String implements fmt.Stringer.
func (e EntityKind) String() string {
	return string(e)
}

// IsValid reports whether the value is a known EntityKind.
func (e EntityKind) IsValid() bool {
	for _, candidate := range validEntityKinds {
		if candidate == e {
			return true
		}
	}
	return false
}

// ParseEntityKind converts raw input into an EntityKind.
func ParseEntityKind(value string) (EntityKind, error) {
	for _, candidate := range validEntityKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid entity kind %q", value)
}
