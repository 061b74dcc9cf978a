// Package client is the Go SDK for the artfeed backend. It reproduces the
// browser client's request pipeline: the access token is attached to every
// authenticated call, and a 401 triggers exactly one silent refresh-and-retry
// before the session is declared expired.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"

	"github.com/artfeed/backend/internal/dto"
	"golang.org/x/sync/singleflight"
)

// ErrSessionExpired is returned when a request got a 401 and the silent
// refresh failed too. The session has been reset; the user must log in again.
var ErrSessionExpired = errors.New("session expired")

// APIError carries a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// Client is an HTTP client for the artfeed backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *Session

	// refreshGroup coalesces concurrent refresh attempts into a single
	// refresh-token call so N simultaneous 401s cannot cause a refresh storm.
	refreshGroup singleflight.Group

	// onSessionExpired, if set, fires after a failed refresh has reset the
	// session.
	onSessionExpired func()
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. A cookie jar is
// installed on it if it has none, since the refresh token travels by cookie.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithSessionExpiredHandler registers a callback fired when the session
// expires (refresh failed after a 401).
func WithSessionExpiredHandler(fn func()) Option {
	return func(c *Client) {
		c.onSessionExpired = fn
	}
}

// New creates a Client for the backend at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		session: NewSession(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	if c.httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create cookie jar: %w", err)
		}
		c.httpClient.Jar = jar
	}
	return c, nil
}

// Session exposes the client's session state.
func (c *Client) Session() *Session {
	return c.session
}

// do runs one API call. Authenticated requests carry the bearer token; a 401
// response triggers at most one refresh-and-retry. The retry flag is local
// to this call, so no request is ever replayed twice.
func (c *Client) do(ctx context.Context, method, path string, body any, out any, authed bool) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	resp, err := c.send(ctx, method, path, payload, authed)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized && authed {
		drain(resp)
		if err := c.refreshAccessToken(ctx); err != nil {
			c.session.Reset()
			if c.onSessionExpired != nil {
				c.onSessionExpired()
			}
			return ErrSessionExpired
		}
		// Single replay with the fresh token.
		resp, err = c.send(ctx, method, path, payload, authed)
		if err != nil {
			return err
		}
	}

	return decode(resp, out)
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte, authed bool) (*http.Response, error) {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if authed {
		if token := c.session.AccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

// refreshAccessToken calls the refresh endpoint, relying on the refresh
// cookie in the jar. Concurrent callers share one in-flight refresh.
func (c *Client) refreshAccessToken(ctx context.Context) error {
	_, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		resp, err := c.send(ctx, http.MethodPost, "/auths/refresh-token", nil, false)
		if err != nil {
			return nil, err
		}
		var out dto.RefreshResponse
		if err := decode(resp, &out); err != nil {
			return nil, err
		}
		c.session.SetAccessToken(out.AccessToken)
		return nil, nil
	})
	return err
}

func decode(resp *http.Response, out any) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody dto.ErrorResponse
		msg := resp.Status
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil && errBody.Error != "" {
			msg = errBody.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
