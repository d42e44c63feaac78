package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/groundswellhq/rolodex/internal/model"
)

// CreateExportJob asks the server to export every record of the resource
// matching the filters-only query. The job runs server-side; poll GetJob
// until the status is terminal, then fetch the result with DownloadFile.
func (c *HTTPClient) CreateExportJob(ctx context.Context, resource string, params url.Values) (*model.Job, error) {
	body := map[string]string{
		"resource": resource,
		"query":    params.Encode(),
	}
	var job model.Job
	if err := c.doJSON(ctx, http.MethodPost, "/v1/jobs/export/", body, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// CreateImportJob uploads raw file content for a server-side import. The
// client never parses the file; column mapping and validation happen in
// the job, surfaced through the job's error field on failure.
func (c *HTTPClient) CreateImportJob(ctx context.Context, resource, filename string, data io.Reader) (*model.Job, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("resource", resource); err != nil {
		return nil, fmt.Errorf("building import form: %w", err)
	}
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("building import form: %w", err)
	}
	if _, err := io.Copy(part, data); err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("building import form: %w", err)
	}

	respBody, err := c.do(ctx, http.MethodPost, "/v1/jobs/import/", &buf, mw.FormDataContentType())
	if err != nil {
		return nil, err
	}
	var job model.Job
	if len(respBody) == 0 {
		return nil, fmt.Errorf("empty job response")
	}
	if err := json.Unmarshal(respBody, &job); err != nil {
		return nil, fmt.Errorf("decoding job: %w", err)
	}
	return &job, nil
}

// GetJob fetches the current state of a background job.
func (c *HTTPClient) GetJob(ctx context.Context, id string) (*model.Job, error) {
	var job model.Job
	if err := c.doJSON(ctx, http.MethodGet, "/v1/jobs/"+url.PathEscape(id)+"/", nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// DownloadFile streams a server-issued file URL (typically a completed
// export) to w. Relative URLs are resolved against the client's base URL.
func (c *HTTPClient) DownloadFile(ctx context.Context, fileURL string, w io.Writer) error {
	target := fileURL
	u, err := url.Parse(fileURL)
	if err != nil {
		return fmt.Errorf("parsing file URL: %w", err)
	}
	if !u.IsAbs() {
		target = c.baseURL + fileURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Message: string(body)}
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("writing download: %w", err)
	}
	return nil
}
