package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
)

// lookupEndpoint is the typed contract for a typeahead value endpoint.
// Each endpoint declares which field of its records carries the display
// string; the client never guesses by inspecting keys at runtime.
type lookupEndpoint struct {
	path  string
	field string
}

var lookupEndpoints = map[string]lookupEndpoint{
	"titles":       {path: "/v1/lookups/titles/", field: "title"},
	"seniorities":  {path: "/v1/lookups/seniorities/", field: "seniority"},
	"departments":  {path: "/v1/lookups/departments/", field: "department"},
	"industries":   {path: "/v1/lookups/industries/", field: "industry"},
	"technologies": {path: "/v1/lookups/technologies/", field: "technology"},
	"cities":       {path: "/v1/lookups/cities/", field: "city"},
	"countries":    {path: "/v1/lookups/countries/", field: "country"},
	"keywords":     {path: "/v1/lookups/keywords/", field: "keyword"},
}

// LookupEndpoints returns the known endpoint names, for CLI help text.
func LookupEndpoints() []string {
	names := make([]string, 0, len(lookupEndpoints))
	for name := range lookupEndpoints {
		names = append(names, name)
	}
	return names
}

// LookupValues fetches the value list for a typeahead endpoint, optionally
// narrowed by a search prefix. Records missing the endpoint's declared
// display field are skipped with a warning.
func (c *HTTPClient) LookupValues(ctx context.Context, endpoint, search string) ([]string, error) {
	ep, ok := lookupEndpoints[endpoint]
	if !ok {
		return nil, fmt.Errorf("unknown lookup endpoint %q", endpoint)
	}

	path := ep.path
	if search != "" {
		q := url.Values{}
		q.Set("search", search)
		path += "?" + q.Encode()
	}

	var resp struct {
		Results []map[string]json.RawMessage `json:"results"`
	}
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	values := make([]string, 0, len(resp.Results))
	for i, rec := range resp.Results {
		raw, ok := rec[ep.field]
		if !ok {
			slog.Warn("lookup record missing declared field", "endpoint", endpoint, "field", ep.field, "index", i)
			continue
		}
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			slog.Warn("lookup field is not a string", "endpoint", endpoint, "field", ep.field, "index", i, "error", err)
			continue
		}
		values = append(values, v)
	}
	return values, nil
}
