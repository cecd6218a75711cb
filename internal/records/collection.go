package records

import (
	"fmt"
	"time"

	pkgerrors "github.com/helixcrm/console/pkg/errors"
)

// Collection is the full in-memory set of records for one entity type, in
// insertion order. It only lives for the page session; nothing is persisted.
type Collection struct {
	records []Record
	index   map[int64]int
	nextID  int64
}

// NewCollection builds an empty collection.
func NewCollection() *Collection {
	return &Collection{index: map[int64]int{}}
}

// Seed loads pre-existing records, preserving their ids. It fails on duplicate
// or non-positive ids and advances the id sequence past the highest seen.
func (c *Collection) Seed(records []Record) error {
	for _, r := range records {
		if r.ID <= 0 {
			return fmt.Errorf("record id must be positive, got %d", r.ID)
		}
		if _, exists := c.index[r.ID]; exists {
			return fmt.Errorf("duplicate record id %d", r.ID)
		}
		c.index[r.ID] = len(c.records)
		c.records = append(c.records, r)
		if r.ID > c.nextID {
			c.nextID = r.ID
		}
	}
	return nil
}

// Add appends a record, assigning the next id. The passed-in ID field is
// ignored.
func (c *Collection) Add(r Record) Record {
	c.nextID++
	r.ID = c.nextID
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	c.index[r.ID] = len(c.records)
	c.records = append(c.records, r)
	return r
}

// Get returns the record with the given id.
func (c *Collection) Get(id int64) (Record, error) {
	pos, ok := c.index[id]
	if !ok {
		return Record{}, pkgerrors.New(pkgerrors.CodeNotFound, "record not found")
	}
	return c.records[pos], nil
}

// Update replaces the stored record's mutable fields. The id and creation time
// are kept from the stored copy regardless of what the update carries.
func (c *Collection) Update(id int64, updated Record) (Record, error) {
	pos, ok := c.index[id]
	if !ok {
		return Record{}, pkgerrors.New(pkgerrors.CodeNotFound, "record not found")
	}
	updated.ID = id
	updated.Kind = c.records[pos].Kind
	updated.CreatedAt = c.records[pos].CreatedAt
	c.records[pos] = updated
	return updated, nil
}

// Remove deletes the record with the given id, preserving the relative order
// of the rest. It reports whether anything was removed.
func (c *Collection) Remove(id int64) bool {
	pos, ok := c.index[id]
	if !ok {
		return false
	}
	c.records = append(c.records[:pos], c.records[pos+1:]...)
	delete(c.index, id)
	for i := pos; i < len(c.records); i++ {
		c.index[c.records[i].ID] = i
	}
	return true
}

// Len reports how many records the collection holds.
func (c *Collection) Len() int {
	return len(c.records)
}

// All returns a copy of the records in insertion order.
func (c *Collection) All() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}
