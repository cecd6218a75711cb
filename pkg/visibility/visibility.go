package visibility

import (
	"github.com/helixcrm/console/pkg/enums"
	pkgerrors "github.com/helixcrm/console/pkg/errors"
)

// sectionsByRole is the canonical role-to-section matrix. Every role must have
// an entry; NavFor and EnsureSectionVisible both read from it.
var sectionsByRole = map[enums.Role][]enums.Section{
	enums.RoleAdmin: {
		enums.SectionDashboard,
		enums.SectionEmployees,
		enums.SectionLeads,
		enums.SectionClients,
		enums.SectionInvoices,
		enums.SectionSettings,
	},
	enums.RoleCoAdmin: {
		enums.SectionDashboard,
		enums.SectionEmployees,
		enums.SectionLeads,
		enums.SectionClients,
		enums.SectionInvoices,
		enums.SectionSettings,
	},
	enums.RoleManagement: {
		enums.SectionDashboard,
		enums.SectionLeads,
		enums.SectionClients,
		enums.SectionSettings,
	},
	enums.RoleAccounting: {
		enums.SectionDashboard,
		enums.SectionClients,
		enums.SectionInvoices,
		enums.SectionSettings,
	},
	enums.RoleStaff: {
		enums.SectionDashboard,
		enums.SectionSettings,
	},
}

// NavFor returns the sections the given role may open, in navigation order.
func NavFor(role enums.Role) []enums.Section {
	sections, ok := sectionsByRole[role]
	if !ok {
		return nil
	}
	out := make([]enums.Section, len(sections))
	copy(out, sections)
	return out
}

// EnsureSectionVisible enforces the role matrix so restricted sections never
// leak through direct navigation.
func EnsureSectionVisible(role enums.Role, section enums.Section) error {
	if !section.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "section is required")
	}
	if !role.IsValid() {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "unknown role")
	}
	for _, candidate := range sectionsByRole[role] {
		if candidate == section {
			return nil
		}
	}
	return pkgerrors.New(pkgerrors.CodeForbidden, "section not available for role")
}
