package selection

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Column is one displayable list column with its default visibility.
type Column struct {
	ID      string
	Default bool
}

// DefaultContactColumns is the canonical contact column list, in display order.
var DefaultContactColumns = []Column{
	{ID: "name", Default: true},
	{ID: "title", Default: true},
	{ID: "company", Default: true},
	{ID: "email", Default: true},
	{ID: "email_status", Default: true},
	{ID: "stage", Default: true},
	{ID: "seniority", Default: false},
	{ID: "department", Default: false},
	{ID: "industry", Default: false},
	{ID: "phone", Default: false},
	{ID: "city", Default: false},
	{ID: "country", Default: false},
	{ID: "linkedin_url", Default: false},
	{ID: "last_contacted_at", Default: false},
	{ID: "created_at", Default: false},
}

// DefaultCompanyColumns is the canonical company column list, in display order.
var DefaultCompanyColumns = []Column{
	{ID: "name", Default: true},
	{ID: "domain", Default: true},
	{ID: "industry", Default: true},
	{ID: "stage", Default: true},
	{ID: "employees", Default: true},
	{ID: "revenue", Default: false},
	{ID: "founded_year", Default: false},
	{ID: "city", Default: false},
	{ID: "country", Default: false},
	{ID: "technologies", Default: false},
	{ID: "created_at", Default: false},
}

// ColumnSet is a view's visible-column state: the canonical column list
// merged with whatever the user last saved.
type ColumnSet struct {
	defaults []Column
	visible  map[string]bool
}

// NewColumnSet starts from the canonical defaults.
func NewColumnSet(defaults []Column) *ColumnSet {
	cs := &ColumnSet{defaults: defaults, visible: make(map[string]bool, len(defaults))}
	for _, col := range defaults {
		cs.visible[col.ID] = col.Default
	}
	return cs
}

// Visible returns the visible column IDs in canonical display order.
func (cs *ColumnSet) Visible() []string {
	var out []string
	for _, col := range cs.defaults {
		if cs.visible[col.ID] {
			out = append(out, col.ID)
		}
	}
	return out
}

// All returns every column ID in canonical display order.
func (cs *ColumnSet) All() []string {
	out := make([]string, len(cs.defaults))
	for i, col := range cs.defaults {
		out[i] = col.ID
	}
	return out
}

// IsVisible reports whether a column is shown.
func (cs *ColumnSet) IsVisible(id string) bool {
	return cs.visible[id]
}

// Set shows or hides a column. Unknown IDs are rejected.
func (cs *ColumnSet) Set(id string, visible bool) error {
	for _, col := range cs.defaults {
		if col.ID == id {
			cs.visible[id] = visible
			return nil
		}
	}
	return fmt.Errorf("unknown column %q", id)
}

// columnsFile is the saved TOML shape: one visibility flag per column ID.
type columnsFile struct {
	Visible map[string]bool `toml:"visible"`
}

// Load merges saved visibility state over the defaults. Saved columns the
// canonical list no longer declares are dropped; columns added since the
// save keep their default visibility. A missing file is not an error.
func (cs *ColumnSet) Load(path string) error {
	var saved columnsFile
	if _, err := toml.DecodeFile(path, &saved); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("loading columns: %w", err)
	}
	for _, col := range cs.defaults {
		if v, ok := saved.Visible[col.ID]; ok {
			cs.visible[col.ID] = v
		}
	}
	return nil
}

// Save writes the current visibility state.
func (cs *ColumnSet) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("saving columns: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("saving columns: %w", err)
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(columnsFile{Visible: cs.visible})
}
