package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/groundswellhq/rolodex/internal/idgen"
	"github.com/groundswellhq/rolodex/internal/model"
)

// HTTPClient implements CRMClient against the CRM HTTP/JSON REST API.
type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewHTTPClient creates a client targeting the given base URL
// (e.g. "http://localhost:8000"). When token is non-empty, an
// Authorization header is set on every request. Timeout and retry policy
// belong to the supplied http.Client; pass nil for the default.
func NewHTTPClient(baseURL, token string) *HTTPClient {
	return NewHTTPClientWith(baseURL, token, nil)
}

// NewHTTPClientWith is NewHTTPClient with an explicit underlying
// *http.Client (injected timeouts, test transports).
func NewHTTPClientWith(baseURL, token string, hc *http.Client) *HTTPClient {
	if hc == nil {
		hc = &http.Client{}
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: hc,
	}
}

// Close is a no-op for the HTTP client.
func (c *HTTPClient) Close() error { return nil }

// --- Contacts ---

func (c *HTTPClient) ListContacts(ctx context.Context, params url.Values) (*Page[model.Contact], error) {
	return listPage[model.Contact](ctx, c, "/v1/contacts/", params)
}

func (c *HTTPClient) CountContacts(ctx context.Context, params url.Values) (int, error) {
	return c.count(ctx, "/v1/contacts/count/", params)
}

func (c *HTTPClient) GetContact(ctx context.Context, id string) (*model.Contact, error) {
	var contact model.Contact
	if err := c.doJSON(ctx, http.MethodGet, "/v1/contacts/"+url.PathEscape(id)+"/", nil, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

func (c *HTTPClient) CreateContact(ctx context.Context, req *ContactUpsert) (*model.Contact, error) {
	var contact model.Contact
	if err := c.doJSON(ctx, http.MethodPost, "/v1/contacts/", req, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

func (c *HTTPClient) UpdateContact(ctx context.Context, id string, req *ContactUpsert) (*model.Contact, error) {
	var contact model.Contact
	if err := c.doJSON(ctx, http.MethodPatch, "/v1/contacts/"+url.PathEscape(id)+"/", req, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

func (c *HTTPClient) DeleteContact(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/v1/contacts/"+url.PathEscape(id)+"/", nil, nil)
}

func (c *HTTPClient) GetContactByLinkedin(ctx context.Context, linkedinURL string) (*model.Contact, error) {
	q := url.Values{}
	q.Set("linkedin_url", linkedinURL)
	var contact model.Contact
	if err := c.doJSON(ctx, http.MethodGet, "/v1/contacts/lookup/?"+q.Encode(), nil, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// --- Companies ---

func (c *HTTPClient) ListCompanies(ctx context.Context, params url.Values) (*Page[model.Company], error) {
	return listPage[model.Company](ctx, c, "/v1/companies/", params)
}

func (c *HTTPClient) CountCompanies(ctx context.Context, params url.Values) (int, error) {
	return c.count(ctx, "/v1/companies/count/", params)
}

func (c *HTTPClient) GetCompany(ctx context.Context, id string) (*model.Company, error) {
	var company model.Company
	if err := c.doJSON(ctx, http.MethodGet, "/v1/companies/"+url.PathEscape(id)+"/", nil, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

func (c *HTTPClient) CreateCompany(ctx context.Context, req *CompanyUpsert) (*model.Company, error) {
	var company model.Company
	if err := c.doJSON(ctx, http.MethodPost, "/v1/companies/", req, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

func (c *HTTPClient) UpdateCompany(ctx context.Context, id string, req *CompanyUpsert) (*model.Company, error) {
	var company model.Company
	if err := c.doJSON(ctx, http.MethodPatch, "/v1/companies/"+url.PathEscape(id)+"/", req, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

func (c *HTTPClient) DeleteCompany(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/v1/companies/"+url.PathEscape(id)+"/", nil, nil)
}

func (c *HTTPClient) GetCompanyByLinkedin(ctx context.Context, linkedinURL string) (*model.Company, error) {
	q := url.Values{}
	q.Set("linkedin_url", linkedinURL)
	var company model.Company
	if err := c.doJSON(ctx, http.MethodGet, "/v1/companies/lookup/?"+q.Encode(), nil, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

// --- internal helpers ---

// listPage issues a page request and decodes either envelope shape.
// Response metadata is always requested.
func listPage[T any](ctx context.Context, c *HTTPClient, path string, params url.Values) (*Page[T], error) {
	merged := url.Values{}
	for key, vals := range params {
		merged[key] = vals
	}
	merged.Set("include_meta", "true")

	body, err := c.doRaw(ctx, http.MethodGet, path+"?"+merged.Encode(), nil)
	if err != nil {
		return nil, err
	}
	return decodePage[T](body, path)
}

// count issues a count request with a filters-only query. Callers pass
// the same serialization the count cache keys on, never pagination.
func (c *HTTPClient) count(ctx context.Context, path string, params url.Values) (int, error) {
	fullPath := path
	if encoded := params.Encode(); encoded != "" {
		fullPath += "?" + encoded
	}
	var resp struct {
		Count int `json:"count"`
	}
	if err := c.doJSON(ctx, http.MethodGet, fullPath, nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// doJSON performs an HTTP request with optional JSON body and decodes the
// JSON response. if result is nil, the response body is discarded (for
// DELETE/204 responses).
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, result any) error {
	var bodyReader io.Reader
	contentType := ""
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
		contentType = "application/json"
	}

	respBody, err := c.do(ctx, method, path, bodyReader, contentType)
	if err != nil {
		return err
	}
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// doRaw is doJSON without response decoding, for callers that need the body.
func (c *HTTPClient) doRaw(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	return c.do(ctx, method, path, body, "")
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if reqID, idErr := idgen.Generate(); idErr == nil {
		req.Header.Set("X-Request-ID", reqID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	// 204 No Content: success with no body.
	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var env errorEnvelope
		if json.Unmarshal(respBody, &env) == nil && (env.message() != "" || len(env.FieldErrors) > 0 || len(env.NonFieldErrors) > 0) {
			return nil, &APIError{
				StatusCode:  resp.StatusCode,
				Message:     env.message(),
				FieldErrors: env.FieldErrors,
				NonField:    env.NonFieldErrors,
			}
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	return respBody, nil
}
