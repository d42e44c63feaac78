package client

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
)

// Page is one decoded page of list results. Both envelope shapes the API
// returns (cursor-paginated and offset-paginated) decode into it: the
// offset envelope carries a count, the cursor envelope does not.
type Page[T any] struct {
	Records []T

	// Count is the offset envelope's total; HasCount is false for the
	// cursor envelope, which carries none.
	Count    int
	HasCount bool

	// Cursor tokens extracted from the envelope's next/previous URLs.
	// Empty when the corresponding URL is absent or carries no cursor.
	NextCursor string
	PrevCursor string

	// Meta is the server's response metadata (pagination strategy, data
	// replica, timing), passed through untouched.
	Meta map[string]any
}

// pageEnvelope is the raw wire shape shared by both pagination styles.
type pageEnvelope struct {
	Count    *int              `json:"count"`
	Next     string            `json:"next"`
	Previous string            `json:"previous"`
	Results  []json.RawMessage `json:"results"`
	Meta     map[string]any    `json:"meta"`
}

// decodePage unmarshals a list response body. Records that fail to map
// are skipped with a warning rather than failing the page: partial
// results beat total failure.
func decodePage[T any](body []byte, path string) (*Page[T], error) {
	var env pageEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decoding page envelope: %w", err)
	}

	page := &Page[T]{
		Records:    make([]T, 0, len(env.Results)),
		NextCursor: cursorFromURL(env.Next),
		PrevCursor: cursorFromURL(env.Previous),
		Meta:       env.Meta,
	}
	if env.Count != nil {
		page.Count = *env.Count
		page.HasCount = true
	}

	for i, raw := range env.Results {
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			slog.Warn("skipping unmappable record", "path", path, "index", i, "error", err)
			continue
		}
		page.Records = append(page.Records, rec)
	}
	return page, nil
}

// cursorFromURL extracts the cursor query parameter from an opaque
// pagination URL. Returns "" for an empty or unparseable URL.
func cursorFromURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Query().Get("cursor")
}
