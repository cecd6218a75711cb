package records

import (
	"strings"
	"time"

	"github.com/helixcrm/console/pkg/enums"
)

// Record is one domain entity (employee, lead or client) shown as a table row.
// ID is unique within a Collection and immutable after creation.
type Record struct {
	ID        int64            `json:"id"`
	Kind      enums.EntityKind `json:"kind"`
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	Email     string           `json:"email"`
	Telephone string           `json:"telephone,omitempty"`
	Position  string           `json:"position,omitempty"`
	Role      enums.Role       `json:"role"`
	TimeZone  string           `json:"time_zone,omitempty"`
	Telegram  string           `json:"telegram,omitempty"`
	WhatsApp  string           `json:"whatsapp,omitempty"`
	Avatar    string           `json:"avatar,omitempty"`

	// Status applies to leads only and stays empty for other kinds.
	Status enums.LeadStatus `json:"status,omitempty"`

	// DeclineReason is set when a lead is declined.
	DeclineReason string `json:"decline_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// FullName joins the name parts for display and filtering.
func (r Record) FullName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}
