package enums

import "fmt"

// Role represents a console-level permissions role.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleCoAdmin    Role = "co_admin"
	RoleManagement Role = "management"
	RoleAccounting Role = "accounting"
	RoleStaff      Role = "staff"
)

var validRoles = []Role{
	RoleAdmin,
	RoleCoAdmin,
	RoleManagement,
	RoleAccounting,
	RoleStaff,
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether the value is a known Role.
func (r Role) IsValid() bool {
	for _, candidate := range validRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseRole converts raw input into a Role.
func ParseRole(value string) (Role, error) {
	for _, candidate := range validRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid role %q", value)
}

// Roles returns every known role in display order.
func Roles() []Role {
	out := make([]Role, len(validRoles))
	copy(out, validRoles)
	return out
}

// Badge returns the badge style rendered next to the role.
func (r Role) Badge() string {
	switch r {
	case RoleAdmin:
		return "danger"
	case RoleCoAdmin:
		return "warning"
	case RoleManagement:
		return "info"
	case RoleAccounting:
		return "success"
	case RoleStaff:
		return "neutral"
	}
	return "neutral"
}

// Icon returns the icon key rendered next to the role.
func (r Role) Icon() string {
	switch r {
	case RoleAdmin:
		return "shield"
	case RoleCoAdmin:
		return "shield-half"
	case RoleManagement:
		return "briefcase"
	case RoleAccounting:
		return "calculator"
	case RoleStaff:
		return "user"
	}
	return "user"
}

// Description returns the human-readable summary shown in role pickers.
func (r Role) Description() string {
	switch r {
	case RoleAdmin:
		return "Full access, including employee and role management"
	case RoleCoAdmin:
		return "Full access except role assignment"
	case RoleManagement:
		return "Manages leads, clients and team schedules"
	case RoleAccounting:
		return "Manages invoices and billing records"
	case RoleStaff:
		return "Views assigned records only"
	}
	return ""
}
