// Package pagination decides between the two paging strategies the CRM
// API supports and tracks position for whichever one is active.
//
// Cursor mode is the default: the server pages over its own fixed
// ordering (newest first) and hands back opaque cursor tokens. The moment
// a custom sort column is chosen the server can no longer use cursors, so
// the state switches to limit/offset mode. Exactly one mode is active at
// a time, and any transition between them resets position.
package pagination

import (
	"net/url"
	"strconv"

	"github.com/groundswellhq/rolodex/internal/query"
)

// Mode names a paging strategy.
type Mode string

const (
	ModeCursor Mode = "cursor"
	ModeOffset Mode = "offset"
)

// Direction is a sort direction for offset mode.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// DefaultPageSize is used when the caller does not configure one.
const DefaultPageSize = 25

// SelectMode picks the paging strategy for a fetch: cursor unless a
// custom sort column is active.
func SelectMode(sortColumn string) Mode {
	if sortColumn == "" {
		return ModeCursor
	}
	return ModeOffset
}

// State tracks paging position. Cursor/NextCursor/PrevCursor are
// meaningful only in cursor mode; Offset, SortColumn and SortDir only in
// offset mode. PageSize applies to both (it is sent as page_size or limit
// depending on mode).
type State struct {
	PageSize int

	Cursor     string
	NextCursor string
	PrevCursor string

	Offset     int
	SortColumn string
	SortDir    Direction
}

// NewState returns a cursor-mode state with the given page size
// (DefaultPageSize when size <= 0).
func NewState(size int) State {
	if size <= 0 {
		size = DefaultPageSize
	}
	return State{PageSize: size}
}

// Mode reports the active strategy, derived from sort state.
func (s *State) Mode() Mode {
	return SelectMode(s.SortColumn)
}

// SortBy applies the sort-toggle semantics: a new column becomes active
// ascending; the column already active flips direction. Either way the
// state lands in offset mode with position reset.
func (s *State) SortBy(column string) {
	if column == "" {
		s.ClearSort()
		return
	}
	if s.SortColumn == column {
		if s.SortDir == Asc {
			s.SortDir = Desc
		} else {
			s.SortDir = Asc
		}
	} else {
		s.SortColumn = column
		s.SortDir = Asc
	}
	s.ResetPosition()
}

// ClearSort returns to cursor mode with position reset.
func (s *State) ClearSort() {
	s.SortColumn = ""
	s.SortDir = ""
	s.ResetPosition()
}

// ResetPosition drops any paging position in both modes: the cursor and
// any stale tokens extracted from earlier responses, and the offset.
func (s *State) ResetPosition() {
	s.Cursor = ""
	s.NextCursor = ""
	s.PrevCursor = ""
	s.Offset = 0
}

// Ordering returns the wire ordering value for offset mode: the mapped
// sort column, prefixed with "-" when descending. Empty in cursor mode.
func (s *State) Ordering() string {
	if s.SortColumn == "" {
		return ""
	}
	col := query.Key(s.SortColumn)
	if s.SortDir == Desc {
		return "-" + col
	}
	return col
}

// Apply adds the paging parameters for the active mode to a query built
// from filters and search.
func (s *State) Apply(v url.Values) {
	size := s.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	switch s.Mode() {
	case ModeCursor:
		v.Set("page_size", strconv.Itoa(size))
		if s.Cursor != "" {
			v.Set("cursor", s.Cursor)
		}
	case ModeOffset:
		v.Set("limit", strconv.Itoa(size))
		v.Set("offset", strconv.Itoa(s.Offset))
		v.Set("ordering", s.Ordering())
	}
}

// Advance moves to the next page in the active mode. In cursor mode it
// requires a next token and reports whether one was available; in offset
// mode it always succeeds.
func (s *State) Advance() bool {
	switch s.Mode() {
	case ModeCursor:
		if s.NextCursor == "" {
			return false
		}
		s.Cursor = s.NextCursor
	case ModeOffset:
		s.Offset += s.PageSize
	}
	return true
}

// Retreat moves to the previous page. In cursor mode it requires a prev
// token; in offset mode the offset is clamped at zero.
func (s *State) Retreat() bool {
	switch s.Mode() {
	case ModeCursor:
		if s.PrevCursor == "" {
			return false
		}
		s.Cursor = s.PrevCursor
	case ModeOffset:
		if s.Offset == 0 {
			return false
		}
		s.Offset -= s.PageSize
		if s.Offset < 0 {
			s.Offset = 0
		}
	}
	return true
}
