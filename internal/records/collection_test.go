package records

import (
	"testing"
	"time"

	"github.com/helixcrm/console/pkg/enums"
	pkgerrors "github.com/helixcrm/console/pkg/errors"
)

func employee(first, last, email string) Record {
	return Record{
		Kind:      enums.EntityKindEmployee,
		FirstName: first,
		LastName:  last,
		Email:     email,
		Role:      enums.RoleStaff,
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	c := NewCollection()

	a := c.Add(employee("Ada", "Lovelace", "ada@example.com"))
	b := c.Add(employee("Grace", "Hopper", "grace@example.com"))

	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", a.ID, b.ID)
	}
}

func TestAddIgnoresCallerProvidedID(t *testing.T) {
	c := NewCollection()

	r := employee("Ada", "Lovelace", "ada@example.com")
	r.ID = 99
	added := c.Add(r)

	if added.ID != 1 {
		t.Fatalf("expected assigned id 1, got %d", added.ID)
	}
}

func TestSeedRejectsDuplicates(t *testing.T) {
	c := NewCollection()

	a := employee("Ada", "Lovelace", "ada@example.com")
	a.ID = 7
	b := employee("Grace", "Hopper", "grace@example.com")
	b.ID = 7

	if err := c.Seed([]Record{a, b}); err == nil {
		t.Fatal("expected duplicate id to be rejected")
	}
}

func TestSeedAdvancesIDSequence(t *testing.T) {
	c := NewCollection()

	r := employee("Ada", "Lovelace", "ada@example.com")
	r.ID = 10
	if err := c.Seed([]Record{r}); err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}

	added := c.Add(employee("Grace", "Hopper", "grace@example.com"))
	if added.ID != 11 {
		t.Fatalf("expected id 11 after seeding id 10, got %d", added.ID)
	}
}

func TestUpdateKeepsIDAndCreatedAt(t *testing.T) {
	c := NewCollection()
	added := c.Add(employee("Ada", "Lovelace", "ada@example.com"))

	changed := added
	changed.ID = 42
	changed.Email = "countess@example.com"
	changed.CreatedAt = time.Now()

	updated, err := c.Update(added.ID, changed)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.ID != added.ID {
		t.Fatalf("id must be immutable; got %d", updated.ID)
	}
	if !updated.CreatedAt.Equal(added.CreatedAt) {
		t.Fatalf("creation time must be immutable")
	}
	if updated.Email != "countess@example.com" {
		t.Fatalf("email was not updated")
	}
}

func TestUpdateMissingRecord(t *testing.T) {
	c := NewCollection()

	_, err := c.Update(5, employee("x", "y", "z@example.com"))
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRemovePreservesOrder(t *testing.T) {
	c := NewCollection()
	a := c.Add(employee("A", "A", "a@example.com"))
	b := c.Add(employee("B", "B", "b@example.com"))
	d := c.Add(employee("D", "D", "d@example.com"))

	if !c.Remove(b.ID) {
		t.Fatal("expected removal to succeed")
	}
	if c.Remove(b.ID) {
		t.Fatal("second removal should report false")
	}

	all := c.All()
	if len(all) != 2 || all[0].ID != a.ID || all[1].ID != d.ID {
		t.Fatalf("unexpected order after removal: %+v", all)
	}

	if _, err := c.Get(d.ID); err != nil {
		t.Fatalf("index should still resolve remaining records: %v", err)
	}
}

func TestSelectionToggleAndClear(t *testing.T) {
	s := NewSelection()

	s.Toggle(1)
	s.Toggle(2)
	s.Toggle(1)

	if s.Has(1) {
		t.Fatal("toggling twice should deselect")
	}
	if !s.Has(2) || s.Count() != 1 {
		t.Fatalf("expected only id 2 selected, got %v", s.IDs())
	}

	s.SelectAll([]int64{3, 4, 5})
	if s.Count() != 3 || s.Has(2) {
		t.Fatalf("SelectAll should replace the set, got %v", s.IDs())
	}

	s.Clear()
	if s.Count() != 0 {
		t.Fatal("Clear should empty the selection")
	}
}
