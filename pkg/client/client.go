// Package client is a typed Go client for the Astronova REST API. All
// endpoints share one error mapping: expired sessions, timeouts, unreachable
// servers, server faults and malformed bodies each surface as a distinct
// sentinel so callers can branch without inspecting HTTP details.
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
	"time"

	"github.com/pkg/errors"
)

// Sentinel errors shared by every endpoint.
var (
	// ErrTokenExpired is returned on 401: the access token is missing,
	// invalid or expired.
	ErrTokenExpired = errors.New("client: token expired")

	// ErrTimeout is returned when the request deadline passes or the
	// server answers 408.
	ErrTimeout = errors.New("client: request timed out")

	// ErrOffline is returned when the server cannot be reached.
	ErrOffline = errors.New("client: server unreachable")

	// ErrDecoding is returned when the response body cannot be parsed.
	ErrDecoding = errors.New("client: failed to decode response")

	// ErrNoData is returned when a response carries no payload.
	ErrNoData = errors.New("client: empty response")
)

// ServerError reports a 5xx response.
type ServerError struct {
	Code int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("client: server error %d", e.Code)
}

// Client talks to one Astronova deployment.
type Client struct {
	baseURL string
	httpc   *http.Client
	token   string
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpc.Timeout = timeout
	}
}

// New creates a client for the API served at baseURL, e.g.
// "https://api.example.com". The /api/v1 prefix is appended internally.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/api/v1",
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SetToken stores the bearer token attached to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// envelope mirrors the server's unified response shape.
type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return mapTransportError(err)
	}
	defer resp.Body.Close()

	if err := mapStatusError(resp.StatusCode); err != nil {
		return err
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return ErrDecoding
	}
	if len(raw) == 0 {
		return ErrNoData
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return ErrDecoding
	}
	if !env.Success {
		message := env.Message
		if env.Error != nil && env.Error.Code != "" {
			message = env.Error.Code + ": " + message
		}

		return errors.New("client: request rejected: " + message)
	}

	if out == nil {
		return nil
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return ErrNoData
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return ErrDecoding
	}

	return nil
}

func mapTransportError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return ErrTimeout
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}

	return ErrOffline
}

func mapStatusError(status int) error {
	switch {
	case status == http.StatusUnauthorized:
		return ErrTokenExpired
	case status == http.StatusRequestTimeout:
		return ErrTimeout
	case status >= 500:
		return &ServerError{Code: status}
	default:
		return nil
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}
