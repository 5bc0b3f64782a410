// Package gateway is the single adapter for the remote shop backend.
//
// Every backend call goes through Client.Do: it attaches the bearer token,
// encodes JSON bodies, and maps non-2xx responses to upstream errors. There
// are no retries and no backoff - failures surface synchronously to the
// caller, which decides what the shopper sees.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/yancarpet/storefront/internal/errors"
)

const defaultTimeout = 30 * time.Second

// TokenSource supplies the current session bearer token, or "" when the
// shopper is signed out.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed TokenSource, mainly for tests.
type StaticToken string

// Token implements TokenSource.
func (t StaticToken) Token() string { return string(t) }

// Client is the HTTP client for the shop backend.
type Client struct {
	http    *http.Client
	baseURL string
	tokens  TokenSource
	logger  *slog.Logger
}

// Options configures a Client.
type Options struct {
	BaseURL string        // Backend root, no trailing slash
	Timeout time.Duration // Overall per-call timeout (default 30s)
	Tokens  TokenSource   // Required for authenticated endpoints
	Logger  *slog.Logger
}

// New creates a new backend client.
func New(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		http: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		tokens:  opts.Tokens,
		logger:  logger,
	}
}

// Result is a decoded backend response.
type Result struct {
	Status      int
	ContentType string
	Raw         []byte
}

// IsJSON reports whether the response body is JSON per its content type.
func (r *Result) IsJSON() bool {
	return strings.Contains(r.ContentType, "application/json")
}

// Decode unmarshals a JSON response body into dest. A non-JSON body is an
// error; use Text for those.
func (r *Result) Decode(dest any) error {
	if !r.IsJSON() {
		return fmt.Errorf("expected JSON response, got %q", r.ContentType)
	}
	if err := json.Unmarshal(r.Raw, dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Text returns the response body as a string.
func (r *Result) Text() string {
	return string(r.Raw)
}

// Do executes one backend call. If requireAuth is set and no session token
// is present, it fails with an authentication error before any network I/O.
// A non-2xx status becomes an upstream error carrying the status and body.
func (c *Client) Do(ctx context.Context, method, path string, body any, requireAuth bool) (*Result, error) {
	var token string
	if c.tokens != nil {
		token = c.tokens.Token()
	}
	if requireAuth && token == "" {
		return nil, errors.AuthRequired("please sign in first")
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("backend request",
		"method", method,
		"path", path,
	)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Upstream(resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	return &Result{
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Raw:         raw,
	}, nil
}

// get is a convenience wrapper for GET calls.
func (c *Client) get(ctx context.Context, path string, requireAuth bool) (*Result, error) {
	return c.Do(ctx, http.MethodGet, path, nil, requireAuth)
}
