// Package notify keeps the console's transient notifications: network and API
// errors, success confirmations, anything the user should see briefly. Entries
// expire after a configured TTL or when dismissed; expiry is evaluated on read
// so the center needs no background timer.
package notify

import (
	"time"

	"github.com/helixcrm/console/pkg/config"
	pkgerrors "github.com/helixcrm/console/pkg/errors"
)

// Kind distinguishes presentation of a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Notification is one visible entry.
type Notification struct {
	ID        int64
	Kind      Kind
	Message   string
	CreatedAt time.Time
}

// Center holds active notifications in arrival order.
type Center struct {
	ttl    time.Duration
	now    func() time.Time
	nextID int64
	items  []Notification
}

// NewCenter builds a Center using the configured TTL.
func NewCenter(cfg config.NotifyConfig) *Center {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 5 * time.Second
	}
	return &Center{ttl: ttl, now: time.Now, nextID: 1}
}

// Push adds a notification and returns its ID for later dismissal.
func (c *Center) Push(kind Kind, message string) int64 {
	id := c.nextID
	c.nextID++
	c.items = append(c.items, Notification{
		ID:        id,
		Kind:      kind,
		Message:   message,
		CreatedAt: c.now(),
	})
	return id
}

// Success, Error and Info are shorthands for the common kinds.
func (c *Center) Success(message string) int64 { return c.Push(KindSuccess, message) }
func (c *Center) Error(message string) int64   { return c.Push(KindError, message) }
func (c *Center) Info(message string) int64    { return c.Push(KindInfo, message) }

// FromError surfaces a failed operation: the coded error's message when one
// exists, the generic public message for its code otherwise. Uncoded errors
// never leak their text to the user.
func (c *Center) FromError(err error) int64 {
	typed := pkgerrors.As(err)
	if typed == nil {
		return c.Push(KindError, pkgerrors.MetadataFor(pkgerrors.CodeInternal).PublicMessage)
	}
	message := typed.Message()
	if message == "" {
		message = pkgerrors.MetadataFor(typed.Code()).PublicMessage
	}
	return c.Push(KindError, message)
}

// Dismiss removes a notification before its TTL elapses. Unknown IDs are a
// no-op; the entry may simply have expired already.
func (c *Center) Dismiss(id int64) {
	for i, item := range c.items {
		if item.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Active returns the notifications still within their TTL, oldest first.
// Expired entries are pruned as a side effect.
func (c *Center) Active() []Notification {
	cutoff := c.now().Add(-c.ttl)

	kept := c.items[:0]
	for _, item := range c.items {
		if item.CreatedAt.After(cutoff) {
			kept = append(kept, item)
		}
	}
	c.items = kept

	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}
