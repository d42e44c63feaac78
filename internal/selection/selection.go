// Package selection holds the secondary client state around a list view:
// the set of selected record IDs and the set of visible columns.
package selection

// Tristate summarizes how a selection relates to the loaded page.
type Tristate int

const (
	None Tristate = iota
	Some          // indeterminate: some but not all loaded records selected
	All
)

// Selection is a set of stable record identifiers. Selections deliberately
// survive page navigation so bulk actions can span pages; a record selected
// on page 1 stays selected (though invisible) on page 2. Clear is the
// explicit way out.
type Selection struct {
	ids map[string]struct{}
}

// New returns an empty selection.
func New() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

// Add selects an ID.
func (s *Selection) Add(id string) {
	s.ids[id] = struct{}{}
}

// Remove deselects an ID.
func (s *Selection) Remove(id string) {
	delete(s.ids, id)
}

// Toggle flips an ID's selected state.
func (s *Selection) Toggle(id string) {
	if s.Contains(id) {
		s.Remove(id)
		return
	}
	s.Add(id)
}

// Contains reports whether an ID is selected.
func (s *Selection) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len reports the number of selected IDs, loaded or not.
func (s *Selection) Len() int {
	return len(s.ids)
}

// SelectAll selects every ID on the currently loaded page (set union;
// prior selections from other pages are kept).
func (s *Selection) SelectAll(loaded []string) {
	for _, id := range loaded {
		s.ids[id] = struct{}{}
	}
}

// DeselectAll removes only the loaded page's IDs from the selection.
func (s *Selection) DeselectAll(loaded []string) {
	for _, id := range loaded {
		delete(s.ids, id)
	}
}

// Clear drops the entire selection across all pages.
func (s *Selection) Clear() {
	s.ids = make(map[string]struct{})
}

// State reports whether none, some, or all of the loaded page's records
// are selected. An empty page reports None.
func (s *Selection) State(loaded []string) Tristate {
	if len(loaded) == 0 {
		return None
	}
	selected := 0
	for _, id := range loaded {
		if s.Contains(id) {
			selected++
		}
	}
	switch selected {
	case 0:
		return None
	case len(loaded):
		return All
	}
	return Some
}

// IDs returns the selected IDs in unspecified order.
func (s *Selection) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	return out
}
