package records

import (
	"github.com/helixcrm/console/pkg/enums"
	pkgerrors "github.com/helixcrm/console/pkg/errors"
	"github.com/helixcrm/console/pkg/pagination"
)

// Table owns the rendered view of one entity collection: free-text query,
// structured filter, column sort, paging and bulk selection. All invariants
// tying those together live here, in particular that deleting a record always
// drops its id from the selection, and that "select all" means the filtered
// view, not the raw collection.
type Table struct {
	collection *Collection
	selection  *Selection

	query  string
	filter Filter
	sort   SortConfig
	page   pagination.Params
}

// NewTable builds a table over an empty collection.
func NewTable() *Table {
	return &Table{
		collection: NewCollection(),
		selection:  NewSelection(),
	}
}

// Collection exposes the underlying record set.
func (t *Table) Collection() *Collection {
	return t.collection
}

// Selection exposes the current bulk selection.
func (t *Table) Selection() *Selection {
	return t.selection
}

// SetQuery updates the free-text query and resets paging to the first page.
func (t *Table) SetQuery(query string) {
	t.query = query
	t.page.Page = 1
}

// SetFilter replaces the structured filter and resets paging.
func (t *Table) SetFilter(filter Filter) {
	t.filter = filter
	t.page.Page = 1
}

// ResetFilters clears both the query and the structured filter, the action
// offered from the "no records found" empty state.
func (t *Table) ResetFilters() {
	t.query = ""
	t.filter = Filter{}
	t.page.Page = 1
}

// CycleSort advances the sort state for the given column header.
func (t *Table) CycleSort(key string) {
	t.sort = t.sort.Cycle(key)
}

// Sort returns the active sort config.
func (t *Table) Sort() SortConfig {
	return t.sort
}

// SetPage moves the rendered view to the given page and limit.
func (t *Table) SetPage(params pagination.Params) {
	t.page = params
}

// Visible runs the query pipeline: filter, then stable sort. The result is
// the universe "select all" operates on, before paging.
func (t *Table) Visible() []Record {
	filtered := make([]Record, 0, t.collection.Len())
	for _, r := range t.collection.All() {
		if t.filter.Matches(r, t.query) {
			filtered = append(filtered, r)
		}
	}
	t.sort.Apply(filtered)
	return filtered
}

// VisibleIDs returns the ids of the filtered, sorted view.
func (t *Table) VisibleIDs() []int64 {
	visible := t.Visible()
	ids := make([]int64, len(visible))
	for i, r := range visible {
		ids[i] = r.ID
	}
	return ids
}

// Page slices the visible view down to the active page.
func (t *Table) Page() []Record {
	visible := t.Visible()
	start, end := pagination.Bounds(len(visible), t.page)
	return visible[start:end]
}

// IsEmpty reports whether the current view renders the empty state.
func (t *Table) IsEmpty() bool {
	return len(t.Visible()) == 0
}

// SelectAllVisible selects exactly the filtered view's ids.
func (t *Table) SelectAllVisible() {
	t.selection.SelectAll(t.VisibleIDs())
}

// Delete removes one record and its selection entry.
func (t *Table) Delete(id int64) error {
	if !t.collection.Remove(id) {
		return pkgerrors.New(pkgerrors.CodeNotFound, "record not found")
	}
	t.selection.Remove(id)
	return nil
}

// DeleteSelected removes every selected record and clears the selection. The
// two steps are a single operation from the caller's perspective; no partial
// selection state is ever observable.
func (t *Table) DeleteSelected() int {
	removed := 0
	for _, id := range t.selection.IDs() {
		if t.collection.Remove(id) {
			removed++
		}
	}
	t.selection.Clear()
	return removed
}

// SetLeadStatus moves a lead through the pipeline. Declining requires a
// reason recorded on the record; use DeclineLead for that transition.
func (t *Table) SetLeadStatus(id int64, status enums.LeadStatus) (Record, error) {
	r, err := t.collection.Get(id)
	if err != nil {
		return Record{}, err
	}
	if r.Kind != enums.EntityKindLead {
		return Record{}, pkgerrors.New(pkgerrors.CodeStateConflict, "only leads carry a pipeline status")
	}
	if status == enums.LeadStatusDeclined {
		return Record{}, pkgerrors.New(pkgerrors.CodeStateConflict, "declining requires a reason")
	}
	r.Status = status
	r.DeclineReason = ""
	return t.collection.Update(id, r)
}

// DeclineLead marks a lead declined with the given reason. Reason validation
// happens in the forms layer before this is called; an empty reason is still
// rejected here as a last line.
func (t *Table) DeclineLead(id int64, reason string) (Record, error) {
	r, err := t.collection.Get(id)
	if err != nil {
		return Record{}, err
	}
	if r.Kind != enums.EntityKindLead {
		return Record{}, pkgerrors.New(pkgerrors.CodeStateConflict, "only leads carry a pipeline status")
	}
	if reason == "" {
		return Record{}, pkgerrors.New(pkgerrors.CodeValidation, "decline reason is required")
	}
	r.Status = enums.LeadStatusDeclined
	r.DeclineReason = reason
	return t.collection.Update(id, r)
}
