package records

import (
	"sort"
	"strings"
)

// SortDirection orders a sorted column.
type SortDirection string

const (
	SortNone       SortDirection = ""
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// Sortable column keys.
const (
	SortKeyName      = "name"
	SortKeyEmail     = "email"
	SortKeyPosition  = "position"
	SortKeyRole      = "role"
	SortKeyCreatedAt = "created_at"
)

// SortConfig captures the active column sort. The zero value means no sort,
// which preserves insertion order.
type SortConfig struct {
	Key       string
	Direction SortDirection
}

// Cycle advances the sort state for a clicked column header: a fresh column
// starts ascending, a second click flips to descending, a third clears the
// sort entirely.
func (s SortConfig) Cycle(key string) SortConfig {
	if s.Key != key {
		return SortConfig{Key: key, Direction: SortAscending}
	}
	switch s.Direction {
	case SortAscending:
		return SortConfig{Key: key, Direction: SortDescending}
	case SortDescending:
		return SortConfig{}
	default:
		return SortConfig{Key: key, Direction: SortAscending}
	}
}

// IsActive reports whether a sort should be applied.
func (s SortConfig) IsActive() bool {
	return s.Key != "" && s.Direction != SortNone
}

// Apply sorts the records in place. The sort is stable: records with equal
// keys keep their relative input order.
func (s SortConfig) Apply(records []Record) {
	if !s.IsActive() {
		return
	}
	sort.SliceStable(records, func(i, j int) bool {
		a := strings.ToLower(sortValue(records[i], s.Key))
		b := strings.ToLower(sortValue(records[j], s.Key))
		if s.Direction == SortDescending {
			return a > b
		}
		return a < b
	})
}

func sortValue(r Record, key string) string {
	switch key {
	case SortKeyName:
		return r.FullName()
	case SortKeyEmail:
		return r.Email
	case SortKeyPosition:
		return r.Position
	case SortKeyRole:
		return string(r.Role)
	case SortKeyCreatedAt:
		return r.CreatedAt.UTC().Format("2006-01-02T15:04:05.000000000")
	default:
		return ""
	}
}
