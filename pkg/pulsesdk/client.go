package pulsesdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a thin HTTP client for the Progressive Pulse API. Administrative
// calls use HTTP Basic auth; the public tracking and advance calls need no
// credential beyond the access token itself.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// AdminUser and AdminPassword authenticate the administrative endpoints.
	// Leave empty for public-only usage.
	AdminUser     string
	AdminPassword string
}

// NewClient creates a client with a sane default timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// APIError is a non-2xx response decoded into the uniform error body.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("pulse: %s (%d): %s", e.Code, e.StatusCode, e.Description)
	}
	return fmt.Sprintf("pulse: %s (%d)", e.Code, e.StatusCode)
}

// CreateProject creates a project through the administrative surface.
func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (CreateProjectResponse, error) {
	var out CreateProjectResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/admin/projects", req, &out, true)
	return out, err
}

// GrantCredits tops up a professional's wallet through the administrative
// surface.
func (c *Client) GrantCredits(ctx context.Context, req GrantCreditsRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/v1/admin/credits", req, nil, true)
}

// Track fetches the read-only tracking view for an access token.
func (c *Client) Track(ctx context.Context, token string) (TrackResponse, error) {
	var out TrackResponse
	path := "/v1/track/" + url.PathEscape(token)
	err := c.doJSON(ctx, http.MethodGet, path, nil, &out, false)
	return out, err
}

// Advance moves a project to the given step and returns the resulting state.
func (c *Client) Advance(ctx context.Context, token string, step int) (AdvanceResponse, error) {
	var out AdvanceResponse
	path := fmt.Sprintf("/v1/advance?token=%s&step=%d", url.QueryEscape(token), step)
	err := c.doJSON(ctx, http.MethodGet, path, nil, &out, false)
	return out, err
}

// Remind triggers one reminder dispatch run.
func (c *Client) Remind(ctx context.Context) (RemindResponse, error) {
	var out RemindResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/jobs/remind", nil, &out, true)
	return out, err
}

// Livez checks the liveness probe.
func (c *Client) Livez(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.doJSON(ctx, http.MethodGet, "/livez", nil, &out, false)
	return out, err
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any, admin bool) error {
	var body *bytes.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.SetBasicAuth(c.AdminUser, c.AdminPassword)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Code: "unknown_error"}
		var errBody ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil && errBody.Error != "" {
			apiErr.Code = errBody.Error
			apiErr.Description = errBody.ErrorDescription
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
