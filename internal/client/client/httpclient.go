package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/sprintpilot/internal/client/session"
	"github.com/dmitrijs2005/sprintpilot/internal/common"
	"github.com/dmitrijs2005/sprintpilot/internal/logging"
)

const (
	// APIPrefix is the versioned root all typed operations live under.
	APIPrefix = "/api/v1"

	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
)

// HTTPClient implements Client over the backend's REST API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	session *session.Session
	log     logging.Logger
}

// Option customizes an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// NewHTTPClient returns a client for the backend at baseURL
// (e.g. "http://localhost:8000"). sess may be nil, in which case no
// credential is ever attached.
func NewHTTPClient(baseURL string, sess *session.Session, log logging.Logger, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(strings.TrimSpace(baseURL), "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}
	if log == nil {
		log = logging.Discard()
	}

	c := &HTTPClient{
		baseURL: u.String(),
		http:    &http.Client{},
		session: sess,
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the backend root without the API prefix.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// newRequest builds a request for path under the API root and authorizes it.
func (c *HTTPClient) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Request, error) {
	return c.newRequestURL(ctx, method, c.endpoint(path, query), body, contentType)
}

func (c *HTTPClient) newRequestURL(ctx context.Context, method, rawURL string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, err
	}
	if contentType == "" {
		contentType = contentTypeJSON
	}
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	c.authorize(req)
	return req, nil
}

func (c *HTTPClient) endpoint(path string, query url.Values) string {
	u := c.baseURL + APIPrefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// authorize attaches the bearer credential when the session holds one.
// Requests without a credential are sent as they are; the backend decides.
func (c *HTTPClient) authorize(req *http.Request) {
	if c.session == nil {
		return
	}
	if tok := c.session.Token(); tok != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+tok)
	}
}

// do sends req and hands the response to handleResponse. The caller owns the
// body of a successful response.
func (c *HTTPClient) do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	log := c.log.With(
		"method", req.Method,
		"path", req.URL.Path,
		"request_id", req.Header.Get(common.RequestIDHeaderName),
	)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, ctxErr)
		}
		log.Warn(ctx, "request failed", "error", err)
		return nil, fmt.Errorf("%w: %s %s: %w", ErrUnavailable, req.Method, req.URL.Path, err)
	}
	log.Debug(ctx, "request done", "status", resp.StatusCode, "duration", time.Since(start))

	if err := c.handleResponse(ctx, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// handleResponse turns a status >= 400 into *APIError. On 401 the session
// credential is erased before the error is returned, even if ctx is already
// done, so the stored copy cannot outlive the rejection.
func (c *HTTPClient) handleResponse(ctx context.Context, req *http.Request, resp *http.Response) error {
	if resp.StatusCode < http.StatusBadRequest {
		return nil
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	apiErr := newAPIError(req.Method, req.URL.Path, resp.StatusCode, body)

	if resp.StatusCode == http.StatusUnauthorized && c.session != nil {
		if err := c.session.Clear(context.WithoutCancel(ctx)); err != nil {
			c.log.Warn(ctx, "erase credential after 401", "error", err)
		}
	}
	c.log.Debug(ctx, "request rejected", "status", resp.StatusCode, "detail", apiErr.Detail)
	return apiErr
}

// send runs req and decodes a JSON response into out (nil discards it).
func (c *HTTPClient) send(req *http.Request, out any) error {
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

// doJSON sends in (when non-nil) as a JSON body and decodes the reply into out.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := c.newRequest(ctx, method, path, query, body, contentTypeJSON)
	if err != nil {
		return err
	}
	return c.send(req, out)
}

// Ping checks the backend's health endpoint, which sits outside the API root.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := c.newRequestURL(ctx, http.MethodGet, c.baseURL+"/health", nil, "")
	if err != nil {
		return err
	}
	return c.send(req, nil)
}

// IsUnavailable reports whether err means no response reached the client.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
