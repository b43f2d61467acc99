// Package api is the typed HTTP client for the attendance backend.
// All business logic (face matching, geofencing, shift windows) lives
// server-side; this package only composes requests and decodes responses.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// Client talks to the attendance backend at BaseURL. A Client with an
// empty token can only call Login; every other endpoint fails fast with
// ErrAuthRequired before any network I/O.
type Client struct {
	baseURL string
	token   string

	httpClient *http.Client

	// OnAuthExpired is invoked once when the server answers 401, before
	// ErrAuthExpired is returned. Callers use it to clear the stored
	// session. May be nil.
	OnAuthExpired func()
}

// New creates a client. token may be empty for unauthenticated use.
// No request timeout is configured; cancellation is the caller's
// context's job.
func New(baseURL, token string) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: http.DefaultClient,
	}
	if token != "" {
		// The oauth2 transport attaches "Authorization: Bearer <token>"
		// to every request; with no token we keep the bare client so the
		// header is never sent empty.
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
		c.httpClient = oauth2.NewClient(context.Background(), ts)
	}
	return c
}

// Authenticated reports whether the client carries a bearer token.
func (c *Client) Authenticated() bool { return c.token != "" }

func (c *Client) requireAuth() error {
	if c.token == "" {
		return ErrAuthRequired
	}
	return nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do sends the request and decodes a 2xx JSON body into out (skipped when
// out is nil). Non-2xx responses become *APIError, 401 becomes
// ErrAuthExpired, and transport failures become ErrNetworkUnavailable.
func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetworkUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	// A 401 only means a stale session on authenticated calls; on login
	// it is a plain credential failure and falls through to APIError.
	if resp.StatusCode == http.StatusUnauthorized && c.token != "" {
		if c.OnAuthExpired != nil {
			c.OnAuthExpired()
		}
		return ErrAuthExpired
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp.StatusCode, body)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// decodeAPIError extracts the backend's {"detail": "..."} message, falling
// back to a generic message when the body is not in that shape.
func decodeAPIError(status int, body []byte) *APIError {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && len(payload.Detail) > 0 {
		var msg string
		if err := json.Unmarshal(payload.Detail, &msg); err == nil && msg != "" {
			return &APIError{StatusCode: status, Message: msg}
		}
		// Structured detail (e.g. field validation list): pass it through raw.
		return &APIError{StatusCode: status, Message: string(payload.Detail)}
	}
	return &APIError{StatusCode: status, Message: fmt.Sprintf("request failed (status %d)", status)}
}

// get issues an authenticated GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, query), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, out)
}

// postJSON issues a JSON-bodied request. Used with POST and PATCH.
func (c *Client) postJSON(ctx context.Context, method, path string, query url.Values, in, out any) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

// postForm issues an authenticated urlencoded form request.
func (c *Client) postForm(ctx context.Context, method, path string, form url.Values, out any) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, nil), strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, out)
}

// postMultipart issues an authenticated multipart request. build fills the
// form; the writer's generated content type carries the boundary, so it is
// used as-is.
func (c *Client) postMultipart(ctx context.Context, method, path string, build func(w *multipart.Writer) error, out any) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	body, contentType, err := encodeMultipart(build)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, nil), body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	return c.do(req, out)
}

// delete issues an authenticated DELETE.
func (c *Client) delete(ctx context.Context, path string, out any) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.endpoint(path, nil), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, out)
}
