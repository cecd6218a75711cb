package enums

import "fmt"

// Section names a top-level console area.
type Section string

const (
	SectionDashboard Section = "dashboard"
	SectionEmployees Section = "employees"
	SectionLeads     Section = "leads"
	SectionClients   Section = "clients"
	SectionInvoices  Section = "invoices"
	SectionSettings  Section = "settings"
)

var validSections = []Section{
	SectionDashboard,
	SectionEmployees,
	SectionLeads,
	SectionClients,
	SectionInvoices,
	SectionSettings,
}

// String implements fmt.Stringer.
func (s Section) String() string {
	return string(s)
}

// IsValid reports whether the value is a known Section.
func (s Section) IsValid() bool {
	for _, candidate := range validSections {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSection converts raw input into a Section.
func ParseSection(value string) (Section, error) {
	for _, candidate := range validSections {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid section %q", value)
}
