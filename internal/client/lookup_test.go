package client

import (
	"context"
	"testing"
)

func TestLookupValues(t *testing.T) {
	body := `{"results": [
		{"title": "CEO", "weight": 120},
		{"title": "CTO", "weight": 88}
	]}`
	c, req := newTestServer(t, 200, body)

	values, err := c.LookupValues(context.Background(), "titles", "c")
	if err != nil {
		t.Fatalf("LookupValues: %v", err)
	}
	if req.URL.Path != "/v1/lookups/titles/" {
		t.Errorf("path = %q", req.URL.Path)
	}
	if got := req.URL.Query().Get("search"); got != "c" {
		t.Errorf("search = %q", got)
	}
	if len(values) != 2 || values[0] != "CEO" || values[1] != "CTO" {
		t.Errorf("values = %v", values)
	}
}

func TestLookupValues_DeclaredFieldOnly(t *testing.T) {
	// A record without the endpoint's declared display field is skipped,
	// even if it carries other plausible string fields.
	body := `{"results": [
		{"seniority": "VP"},
		{"label": "Director"},
		{"seniority": 7}
	]}`
	c, _ := newTestServer(t, 200, body)

	values, err := c.LookupValues(context.Background(), "seniorities", "")
	if err != nil {
		t.Fatalf("LookupValues: %v", err)
	}
	if len(values) != 1 || values[0] != "VP" {
		t.Errorf("values = %v, want [VP]", values)
	}
}

func TestLookupValues_UnknownEndpoint(t *testing.T) {
	c, _ := newTestServer(t, 200, `{"results": []}`)

	if _, err := c.LookupValues(context.Background(), "colors", ""); err == nil {
		t.Error("unknown endpoint must be rejected before any request")
	}
}

func TestLookupEndpoints_Complete(t *testing.T) {
	want := map[string]bool{
		"titles": true, "seniorities": true, "departments": true,
		"industries": true, "technologies": true, "cities": true,
		"countries": true, "keywords": true,
	}
	got := LookupEndpoints()
	if len(got) != len(want) {
		t.Fatalf("expected %d endpoints, got %v", len(want), got)
	}
	for _, name := range got {
		if !want[name] {
			t.Errorf("unexpected endpoint %q", name)
		}
	}
}
