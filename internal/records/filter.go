package records

import (
	"strings"
	"time"

	"github.com/helixcrm/console/pkg/enums"
)

// Filter holds the structured table filters. Empty fields do not constrain
// the result; non-empty fields AND together.
type Filter struct {
	Name     string
	Email    string
	Position string
	Role     enums.Role
	From     time.Time
	To       time.Time
}

// IsZero reports whether no structured filter is active.
func (f Filter) IsZero() bool {
	return f.Name == "" && f.Email == "" && f.Position == "" && f.Role == "" &&
		f.From.IsZero() && f.To.IsZero()
}

// Matches applies the free-text query and the structured fields to one record.
// The query matches when it is a case-insensitive substring of any of the
// record's name, email, position or role.
func (f Filter) Matches(r Record, query string) bool {
	if q := strings.TrimSpace(query); q != "" {
		if !containsFold(r.FullName(), q) &&
			!containsFold(r.Email, q) &&
			!containsFold(r.Position, q) &&
			!containsFold(string(r.Role), q) {
			return false
		}
	}

	if f.Name != "" && !containsFold(r.FullName(), f.Name) {
		return false
	}
	if f.Email != "" && !containsFold(r.Email, f.Email) {
		return false
	}
	if f.Position != "" && !containsFold(r.Position, f.Position) {
		return false
	}
	if f.Role != "" && r.Role != f.Role {
		return false
	}
	if !f.From.IsZero() && r.CreatedAt.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && r.CreatedAt.After(f.To) {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
