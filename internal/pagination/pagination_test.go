package pagination

import (
	"net/url"
	"testing"
)

func TestSelectMode(t *testing.T) {
	if got := SelectMode(""); got != ModeCursor {
		t.Errorf("no sort column should select cursor mode, got %v", got)
	}
	if got := SelectMode("name"); got != ModeOffset {
		t.Errorf("sort column should select offset mode, got %v", got)
	}
}

func TestNewState_DefaultPageSize(t *testing.T) {
	if s := NewState(0); s.PageSize != DefaultPageSize {
		t.Errorf("expected default page size %d, got %d", DefaultPageSize, s.PageSize)
	}
	if s := NewState(-5); s.PageSize != DefaultPageSize {
		t.Errorf("negative size should fall back to default, got %d", s.PageSize)
	}
	if s := NewState(50); s.PageSize != 50 {
		t.Errorf("expected page size 50, got %d", s.PageSize)
	}
}

func TestSortBy_NewColumnAscending(t *testing.T) {
	s := NewState(25)
	s.SortBy("name")
	if s.SortColumn != "name" || s.SortDir != Asc {
		t.Errorf("new column should sort ascending, got %s %s", s.SortColumn, s.SortDir)
	}
	if s.Mode() != ModeOffset {
		t.Error("sorting should switch to offset mode")
	}
}

func TestSortBy_SameColumnFlips(t *testing.T) {
	s := NewState(25)
	s.SortBy("name")
	s.SortBy("name")
	if s.SortDir != Desc {
		t.Errorf("second toggle should flip to descending, got %s", s.SortDir)
	}
	s.SortBy("name")
	if s.SortDir != Asc {
		t.Errorf("third toggle should flip back to ascending, got %s", s.SortDir)
	}
}

func TestSortBy_DifferentColumnResetsDirection(t *testing.T) {
	s := NewState(25)
	s.SortBy("name")
	s.SortBy("name") // now descending
	s.SortBy("email")
	if s.SortColumn != "email" || s.SortDir != Asc {
		t.Errorf("switching column should start ascending, got %s %s", s.SortColumn, s.SortDir)
	}
}

func TestSortBy_ResetsPosition(t *testing.T) {
	s := NewState(25)
	s.NextCursor = "abc"
	if !s.Advance() {
		t.Fatal("advance with a next cursor should succeed")
	}
	s.SortBy("name")
	if s.Cursor != "" || s.NextCursor != "" || s.Offset != 0 {
		t.Errorf("sort transition should reset position: %+v", s)
	}
}

// Round trip between the modes: cursor position accumulated before a sort,
// offset position accumulated during it, neither surviving the transitions.
func TestModeTransitionRoundTrip(t *testing.T) {
	s := NewState(25)
	s.NextCursor = "tok"
	s.Advance()
	if s.Cursor != "tok" {
		t.Fatalf("expected cursor tok, got %q", s.Cursor)
	}

	s.SortBy("name")
	s.Advance()
	s.Advance()
	if s.Offset != 50 {
		t.Fatalf("expected offset 50 after two advances, got %d", s.Offset)
	}

	s.ClearSort()
	if s.Mode() != ModeCursor {
		t.Error("clearing sort should return to cursor mode")
	}
	if s.Cursor != "" || s.Offset != 0 {
		t.Errorf("position should not survive the return transition: %+v", s)
	}
}

func TestOrdering(t *testing.T) {
	s := NewState(25)
	if got := s.Ordering(); got != "" {
		t.Errorf("cursor mode should have no ordering, got %q", got)
	}
	s.SortBy("emailStatus")
	if got := s.Ordering(); got != "email_status" {
		t.Errorf("ascending ordering = %q, want email_status", got)
	}
	s.SortBy("emailStatus")
	if got := s.Ordering(); got != "-email_status" {
		t.Errorf("descending ordering = %q, want -email_status", got)
	}
}

func TestApply_CursorMode(t *testing.T) {
	s := NewState(25)
	s.Cursor = "abc123"
	v := url.Values{}
	s.Apply(v)
	if got := v.Get("page_size"); got != "25" {
		t.Errorf("page_size = %q, want 25", got)
	}
	if got := v.Get("cursor"); got != "abc123" {
		t.Errorf("cursor = %q, want abc123", got)
	}
	for _, key := range []string{"limit", "offset", "ordering"} {
		if _, ok := v[key]; ok {
			t.Errorf("cursor mode must not send %q", key)
		}
	}
}

func TestApply_CursorMode_FirstPageOmitsCursor(t *testing.T) {
	s := NewState(25)
	v := url.Values{}
	s.Apply(v)
	if _, ok := v["cursor"]; ok {
		t.Error("first page should not send an empty cursor")
	}
}

func TestApply_OffsetMode(t *testing.T) {
	s := NewState(25)
	s.SortBy("name")
	s.Advance()
	v := url.Values{}
	s.Apply(v)
	if got := v.Get("limit"); got != "25" {
		t.Errorf("limit = %q, want 25", got)
	}
	if got := v.Get("offset"); got != "25" {
		t.Errorf("offset = %q, want 25", got)
	}
	if got := v.Get("ordering"); got != "name" {
		t.Errorf("ordering = %q, want name", got)
	}
	for _, key := range []string{"page_size", "cursor"} {
		if _, ok := v[key]; ok {
			t.Errorf("offset mode must not send %q", key)
		}
	}
}

func TestAdvance_CursorRequiresToken(t *testing.T) {
	s := NewState(25)
	if s.Advance() {
		t.Error("advance without a next cursor should fail")
	}
	s.NextCursor = "tok"
	if !s.Advance() {
		t.Error("advance with a next cursor should succeed")
	}
	if s.Cursor != "tok" {
		t.Errorf("cursor = %q, want tok", s.Cursor)
	}
}

func TestRetreat_CursorRequiresToken(t *testing.T) {
	s := NewState(25)
	if s.Retreat() {
		t.Error("retreat without a prev cursor should fail")
	}
	s.PrevCursor = "back"
	if !s.Retreat() {
		t.Error("retreat with a prev cursor should succeed")
	}
	if s.Cursor != "back" {
		t.Errorf("cursor = %q, want back", s.Cursor)
	}
}

func TestRetreat_OffsetClampsAtZero(t *testing.T) {
	s := NewState(25)
	s.SortBy("name")
	if s.Retreat() {
		t.Error("retreat at offset 0 should fail")
	}
	s.Advance()
	if !s.Retreat() {
		t.Error("retreat from offset 25 should succeed")
	}
	if s.Offset != 0 {
		t.Errorf("offset = %d, want 0", s.Offset)
	}
}
