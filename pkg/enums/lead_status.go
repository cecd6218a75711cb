package enums

import "fmt"

// LeadStatus tracks where a lead sits in the pipeline.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusDeclined  LeadStatus = "declined"
)

var validLeadStatuses = []LeadStatus{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusQualified,
	LeadStatusDeclined,
}

// String implements fmt.Stringer.
func (l LeadStatus) String() string {
	return string(l)
}

// IsValid reports whether the value is a known LeadStatus.
func (l LeadStatus) IsValid() bool {
	for _, candidate := range validLeadStatuses {
		if candidate == l {
			return true
		}
	}
	return false
}

// ParseLeadStatus converts raw input into a LeadStatus.
func ParseLeadStatus(value string) (LeadStatus, error) {
	for _, candidate := range validLeadStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid lead status %q", value)
}

// LeadStatuses returns the funnel stages in pipeline order.
func LeadStatuses() []LeadStatus {
	out := make([]LeadStatus, len(validLeadStatuses))
	copy(out, validLeadStatuses)
	return out
}
