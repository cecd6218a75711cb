package visibility

import (
	"testing"

	"github.com/helixcrm/console/pkg/enums"
	pkgerrors "github.com/helixcrm/console/pkg/errors"
)

func TestEveryRoleHasSections(t *testing.T) {
	for _, role := range enums.Roles() {
		nav := NavFor(role)
		if len(nav) == 0 {
			t.Fatalf("role %s has no visible sections", role)
		}
		if nav[0] != enums.SectionDashboard {
			t.Fatalf("role %s should land on the dashboard first, got %s", role, nav[0])
		}
	}
}

func TestStaffCannotOpenInvoices(t *testing.T) {
	err := EnsureSectionVisible(enums.RoleStaff, enums.SectionInvoices)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestAdminSeesEverything(t *testing.T) {
	for _, section := range NavFor(enums.RoleAdmin) {
		if err := EnsureSectionVisible(enums.RoleAdmin, section); err != nil {
			t.Fatalf("admin blocked from %s: %v", section, err)
		}
	}
}

func TestUnknownRoleRejected(t *testing.T) {
	err := EnsureSectionVisible(enums.Role("ghost"), enums.SectionDashboard)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestNavForCopies(t *testing.T) {
	nav := NavFor(enums.RoleAdmin)
	nav[0] = enums.SectionInvoices
	if NavFor(enums.RoleAdmin)[0] != enums.SectionDashboard {
		t.Fatalf("NavFor should return a copy")
	}
}
