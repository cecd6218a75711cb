package modal

import (
	"github.com/helixcrm/console/internal/records"
	"github.com/helixcrm/console/pkg/enums"
)

// Manager owns one controller per modal kind, so at most one modal of a given
// kind can ever be open. Deletion always routes through the confirmation
// modal; there is no direct destructive path.
type Manager struct {
	controllers map[enums.ModalKind]*Controller
}

// NewManager builds the standard console modal set.
func NewManager() *Manager {
	m := &Manager{controllers: map[enums.ModalKind]*Controller{}}
	for _, kind := range []enums.ModalKind{
		enums.ModalKindCreate,
		enums.ModalKindEdit,
		enums.ModalKindDeleteConfirm,
		enums.ModalKindDetails,
		enums.ModalKindPassword,
	} {
		m.controllers[kind] = NewController(kind, true)
	}
	// Invoice entry is long-form; outside clicks must not discard it.
	m.controllers[enums.ModalKindInvoice] = NewController(enums.ModalKindInvoice, false)
	return m
}

// Get returns the controller for a kind, or nil for unknown kinds.
func (m *Manager) Get(kind enums.ModalKind) *Controller {
	return m.controllers[kind]
}

// Open shows the modal of the given kind for the given record.
func (m *Manager) Open(kind enums.ModalKind, payload *records.Record) *Controller {
	c := m.controllers[kind]
	if c == nil {
		return nil
	}
	c.Open(payload)
	return c
}

// RequestDelete opens the confirmation modal for the target record; the
// destructive commit only happens when that modal confirms.
func (m *Manager) RequestDelete(target records.Record) *Controller {
	return m.Open(enums.ModalKindDeleteConfirm, &target)
}

// CloseAll cancels every open modal, used on sign-out.
func (m *Manager) CloseAll() {
	for _, c := range m.controllers {
		if c.IsOpen() {
			c.Cancel()
		}
	}
}
