package records

import "sort"

// Selection is the set of record ids currently checked for bulk action. It is
// always a subset of the owning collection's ids; the table removes ids here
// whenever a record is deleted.
type Selection struct {
	ids map[int64]struct{}
}

// NewSelection builds an empty selection.
func NewSelection() *Selection {
	return &Selection{ids: map[int64]struct{}{}}
}

// Toggle flips membership for one id.
func (s *Selection) Toggle(id int64) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

// SelectAll replaces the selection with exactly the given ids.
func (s *Selection) SelectAll(ids []int64) {
	s.ids = make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = map[int64]struct{}{}
}

// Remove drops one id, if present.
func (s *Selection) Remove(id int64) {
	delete(s.ids, id)
}

// Has reports whether the id is selected.
func (s *Selection) Has(id int64) bool {
	_, ok := s.ids[id]
	return ok
}

// Count reports how many ids are selected.
func (s *Selection) Count() int {
	return len(s.ids)
}

// IDs returns the selected ids in ascending order.
func (s *Selection) IDs() []int64 {
	out := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
