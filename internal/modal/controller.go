package modal

import (
	"github.com/helixcrm/console/internal/records"
	"github.com/helixcrm/console/pkg/enums"
	pkgerrors "github.com/helixcrm/console/pkg/errors"
)

// Outcome is the typed result a closing modal emits to its owner.
type Outcome string

const (
	OutcomeConfirmed Outcome = "confirmed"
	OutcomeCancelled Outcome = "cancelled"
)

// Result carries a modal's outcome and, for confirmations, the payload it was
// opened with.
type Result struct {
	Kind    enums.ModalKind
	Outcome Outcome
	Payload *records.Record
}

// Controller governs a single modal's visibility and payload. The lifecycle
// is Closed -> Open(payload) -> Closed; the payload is cleared on every close
// so a reopened modal never shows the previous record.
type Controller struct {
	kind              enums.ModalKind
	allowOutsideClose bool

	open      bool
	payload   *records.Record
	inSuccess bool
}

// NewController builds a closed controller for one modal kind.
func NewController(kind enums.ModalKind, allowOutsideClose bool) *Controller {
	return &Controller{kind: kind, allowOutsideClose: allowOutsideClose}
}

// Kind identifies the modal.
func (c *Controller) Kind() enums.ModalKind {
	return c.kind
}

// IsOpen reports visibility.
func (c *Controller) IsOpen() bool {
	return c.open
}

// InSuccess reports whether the transient success sub-state is showing.
func (c *Controller) InSuccess() bool {
	return c.inSuccess
}

// Payload returns a copy of the record the modal was opened with, or nil for
// a create modal.
func (c *Controller) Payload() *records.Record {
	if c.payload == nil {
		return nil
	}
	copied := *c.payload
	return &copied
}

// Open shows the modal for the given record; nil means a create flow. Opening
// while already open replaces the payload, it never stacks.
func (c *Controller) Open(payload *records.Record) {
	c.open = true
	c.inSuccess = false
	if payload == nil {
		c.payload = nil
		return
	}
	copied := *payload
	c.payload = &copied
}

// Cancel closes the modal, discarding the payload and any in-progress edits.
func (c *Controller) Cancel() Result {
	c.reset()
	return Result{Kind: c.kind, Outcome: OutcomeCancelled}
}

// OutsideClick closes the modal only where outside-click dismissal is
// enabled; the invoice modal disables it to prevent accidental data loss.
// The boolean reports whether the click closed anything.
func (c *Controller) OutsideClick() (Result, bool) {
	if !c.open || !c.allowOutsideClose {
		return Result{}, false
	}
	return c.Cancel(), true
}

// Confirm resolves the modal successfully and emits the payload it was opened
// with. The payload is cleared before the result is returned.
func (c *Controller) Confirm() (Result, error) {
	if !c.open {
		return Result{}, pkgerrors.New(pkgerrors.CodeStateConflict, "modal is not open")
	}
	payload := c.Payload()
	c.reset()
	return Result{Kind: c.kind, Outcome: OutcomeConfirmed, Payload: payload}, nil
}

// MarkSuccess enters the transient success sub-state shown for a fixed delay
// before the owner calls Confirm.
func (c *Controller) MarkSuccess() error {
	if !c.open {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "modal is not open")
	}
	c.inSuccess = true
	return nil
}

func (c *Controller) reset() {
	c.open = false
	c.inSuccess = false
	c.payload = nil
}
