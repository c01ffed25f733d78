package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/chrom13/schoolmanager-web/internal/config"
)

// TokenProvider supplies the bearer token attached to authenticated requests.
// An empty token sends the request unauthenticated, which is what the public
// endpoints (login, registration) expect.
type TokenProvider interface {
	Token() string
}

// Locator reports the current navigation path. The 401 reaction is suppressed
// while the user is already on a public auth screen to avoid redirect loops.
type Locator interface {
	Current() string
}

// Envelope is the `{message, data}` wrapper most endpoints use for success
// payloads. Mutation endpoints with no payload decode into Envelope[struct{}].
type Envelope[T any] struct {
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
}

// Client is the single outbound HTTP transport. It attaches the bearer
// credential, bounds every request with the configured timeout, normalizes
// failures into *Error, and fires the session-invalidated hook on 401.
type Client struct {
	baseURL       string
	http          *http.Client
	log           zerolog.Logger
	tokens        TokenProvider
	locator       Locator
	onAuthFailure func()
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client (primarily for testing).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTokenProvider sets the bearer-token source, usually the session store.
func WithTokenProvider(tp TokenProvider) Option {
	return func(c *Client) { c.tokens = tp }
}

// WithAuthFailureHook registers the reaction to an authorization failure.
// The hook fires synchronously, before the error is returned to the caller,
// unless the locator reports a public auth path.
func WithAuthFailureHook(loc Locator, hook func()) Option {
	return func(c *Client) {
		c.locator = loc
		c.onAuthFailure = hook
	}
}

// NewClient builds a Client from configuration.
func NewClient(cfg config.APIConfig, logger zerolog.Logger, options ...Option) *Client {
	c := &Client{
		baseURL: cfg.GetBaseURL(),
		http:    &http.Client{Timeout: cfg.GetRequestTimeout()},
		log:     logger.With().Str("component", "api").Logger(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// Get issues a GET request. out may be nil when the response body is ignored.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, query, out)
}

// Post issues a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, nil, out)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, body, nil, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// Do performs a request against the API. Non-2xx responses and transport
// failures are returned as *Error; 2xx responses are decoded into out when
// out is non-nil.
func (c *Client) Do(ctx context.Context, method, path string, body any, query url.Values, out any) error {
	u := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "[Do] encoding %s %s body", method, path)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return errors.Wrapf(err, "[Do] building %s %s", method, path)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// No response received: connectivity failure or timeout. The session
		// is preserved; a transient outage must not log the user out.
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("network error")
		return &Error{Message: "no response from server", Network: true, cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error().Err(err).Str("path", path).Msg("reading response body")
		return &Error{Message: "reading response", Network: true, cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.failure(resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "[Do] decoding %s %s response", method, path)
	}
	return nil
}

func (c *Client) failure(status int, raw []byte) error {
	apiErr := &Error{Status: status, Message: fallbackMessage(status)}

	var body struct {
		Message string      `json:"message"`
		Errors  FieldErrors `json:"errors"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			apiErr.Message = body.Message
		}
		apiErr.Fields = body.Errors
	}

	if status == http.StatusUnauthorized {
		c.handleAuthFailure()
	}
	return apiErr
}

// handleAuthFailure fires the session-invalidated hook unless the user is
// already on a public auth screen. It runs synchronously with error
// propagation; deduplication across concurrent failing requests is the
// hook's responsibility (see Gate).
func (c *Client) handleAuthFailure() {
	if c.onAuthFailure == nil {
		return
	}
	if c.locator != nil {
		current := c.locator.Current()
		if current == "/login" || current == "/register" {
			return
		}
	}
	c.log.Warn().Msg("authorization failure, invalidating session")
	c.onAuthFailure()
}
