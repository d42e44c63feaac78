// Package query translates filter state and a free-text search term into
// the wire-format query parameters the CRM list and count endpoints accept.
//
// Building is deterministic: the same filter state and search term always
// produce the same parameter set, and Encode() of the result (sorted keys,
// per-key value order preserved) is stable enough to serve as a cache key.
package query

import (
	"net/url"
	"strings"
)

// Unset is the in-band sentinel dropdown filters use to mean "not set".
const Unset = "All"

// Field is one named filter field in its declared position. Scalar fields
// carry Value; multi-value fields carry Values. A field is "set" when its
// scalar value is neither empty nor the Unset sentinel, or when its list
// has at least one element.
type Field struct {
	Name   string // UI name (camelCase or already snake_case)
	Value  string
	Values []string
}

// Source is any filter model that can enumerate its full field set in
// declared order. Implementations must return every declared field on
// every call, set or not; Build decides what to drop.
type Source interface {
	Fields() []Field
}

// Build serializes a filter source plus a search term into query
// parameters. Unset fields are omitted entirely; multi-value fields
// contribute one repeated parameter per element, in list order, with
// blank elements dropped. Values are not deduplicated here; insertion
// into the filter model is where duplicates are rejected.
func Build(src Source, search string) url.Values {
	v := url.Values{}
	if s := strings.TrimSpace(search); s != "" {
		v.Set("search", s)
	}
	if src == nil {
		return v
	}
	for _, f := range src.Fields() {
		key := Key(f.Name)
		if len(f.Values) > 0 {
			for _, item := range f.Values {
				item = strings.TrimSpace(item)
				if item == "" {
					continue
				}
				v.Add(key, item)
			}
			continue
		}
		if f.Value == "" || f.Value == Unset {
			continue
		}
		v.Set(key, f.Value)
	}
	return v
}

// CacheKey returns the canonical string form of the filters+search query,
// used to key the count cache. Pagination parameters never appear here.
func CacheKey(src Source, search string) string {
	return Build(src, search).Encode()
}

// keyOverrides maps UI field names whose wire names are not derivable
// mechanically. Anything absent falls through to camelCase→snake_case
// conversion; names that the fallback would mangle (linkedinURL) must be
// listed here, not discovered in production.
var keyOverrides = map[string]string{
	"status":      "stage",
	"tags":        "keywords",
	"excludeTags": "exclude_keywords",
	"emailStatus": "email_status",
	"linkedinURL": "linkedin_url",
}

// Key maps a UI field name to its wire parameter name.
func Key(name string) string {
	if mapped, ok := keyOverrides[name]; ok {
		return mapped
	}
	return snakeCase(name)
}

// snakeCase converts camelCase to snake_case by inserting an underscore
// before each uppercase letter and lowercasing it. Names that are already
// snake_case pass through unchanged.
func snakeCase(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
			b.WriteByte(byte(r - 'A' + 'a'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
