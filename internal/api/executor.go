package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/google/uuid"

	"github.com/jkimani/safarihub/internal/logging"
)

const defaultTimeout = 15 * time.Second

// Client is the SafariHub API client. Every resource operation delegates
// to a single executor (do) that builds the request, attaches standard
// headers and classifies the outcome. The client holds no session state:
// callers pass the bearer token by value on each operation.
type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, mainly for tests
// and for callers that need custom transport settings.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the diagnostic sink for request failures. Logging is
// observability only; classification and return values never depend on it.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithTimeout sets the per-request timeout on the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// New returns a client bound to the backend base URL, e.g.
// "https://api.safarihub.example/api".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// call describes one backend invocation: a fixed method and path, an
// optional bearer token, an optional JSON body, optional query params
// (encoded with go-querystring) and the operation's fallback error
// message used when an error response carries no message of its own.
type call struct {
	method   string
	path     string
	token    string
	needAuth bool
	body     any
	params   any
	fallback string
}

// errEnvelope is the error shape the backend returns on every non-2xx
// response. Only the message field is read.
type errEnvelope struct {
	Message string `json:"message"`
}

// do executes a call and decodes a 2xx response body into out (out may
// be nil for operations whose payload the caller ignores).
//
// Outcomes:
//   - ErrAuthRequired: token required but absent, no request was sent.
//   - *NetworkError: no HTTP response at all.
//   - *HTTPError: non-2xx status, message from the body or the fallback.
//   - nil: 2xx, out populated.
func (c *Client) do(ctx context.Context, cl call, out any) error {
	if cl.needAuth && cl.token == "" {
		return ErrAuthRequired
	}

	url := c.baseURL + cl.path
	if cl.params != nil {
		vals, err := query.Values(cl.params)
		if err != nil {
			return fmt.Errorf("%s: encode query: %w", cl.fallback, err)
		}
		if enc := vals.Encode(); enc != "" {
			url += "?" + enc
		}
	}

	var bodyReader io.Reader
	if cl.body != nil {
		raw, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("%s: encode body: %w", cl.fallback, err)
		}
		bodyReader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", cl.fallback, err)
	}
	c.setHeaders(req, cl.token, cl.body != nil)

	return c.roundTrip(ctx, req, cl.fallback, out)
}

// roundTrip sends a fully built request and classifies the outcome. It
// is shared between do and the multipart upload path, which builds its
// own request body and Content-Type.
func (c *Client) roundTrip(ctx context.Context, req *http.Request, fallback string, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed before response",
			"method", req.Method, "url", req.URL.String(), "error", err)
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Warn(ctx, "response body read failed",
			"method", req.Method, "url", req.URL.String(), "error", err)
		return &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		he := &HTTPError{Status: resp.StatusCode, Message: fallback}
		var env errEnvelope
		if json.Unmarshal(raw, &env) == nil && env.Message != "" {
			he.Message = env.Message
		}
		c.log.Warn(ctx, "request rejected",
			"method", req.Method, "url", req.URL.String(),
			"status", resp.StatusCode, "message", he.Message)
		return he
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%s: decode response: %w", fallback, err)
		}
	}
	return nil
}

// setHeaders attaches the standard header set. The Authorization header
// is set iff a token is present; an empty token never produces
// "Bearer " with nothing behind it. The request id correlates client
// logs with backend logs.
func (c *Client) setHeaders(req *http.Request, token string, hasBody bool) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}
