package client

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

	"github.com/google/uuid"
)

// Headers set on every request
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderAccept        = "Accept"
	HeaderRequestID     = "X-Request-ID"

	contentTypeJSON = "application/json"
)

// Session supplies the bearer token and reacts to authorization failures
type Session interface {
	// Token returns the current bearer token, or "" when anonymous
	Token() string
	// HandleUnauthorized is called once for every 401 response
	HandleUnauthorized(ctx context.Context)
}

// Config holds HTTP client settings
type Config struct {
	// BaseURL is prepended to every endpoint
	BaseURL string
	// Timeout bounds each request; zero uses DefaultTimeout
	Timeout time.Duration
	// HTTPClient overrides the underlying client (Timeout is then ignored)
	HTTPClient *http.Client
	// Logger receives one debug record per request (optional)
	Logger *slog.Logger
}

// DefaultTimeout is used when Config.Timeout is zero
const DefaultTimeout = 30 * time.Second

// Client is the single choke point for calls to the remote API
type Client struct {
	baseURL    string
	session    Session
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a client. A nil session yields an anonymous client that sends no
// Authorization header and ignores 401 responses.
func New(cfg Config, session Session) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		session:    session,
		httpClient: httpClient,
		logger:     logger.With(slog.String("component", "api-client")),
	}
}

// BaseURL returns the configured base URL without a trailing slash
func (c *Client) BaseURL() string {
	return c.baseURL
}

// RequestOptions are the per-request settings accepted by Request
type RequestOptions struct {
	Method string
	Body   io.Reader
	Header http.Header
}

// Request issues a request against baseURL+endpoint and returns the raw response.
//
// The bearer token is attached when the session has one. Content-Type defaults to
// application/json unless opts.Header sets it. A 401 response triggers
// Session.HandleUnauthorized before the response is returned; the caller still
// owns the response body. Network failures return an *Error of KindTransport.
func (c *Client) Request(ctx context.Context, endpoint string, opts RequestOptions) (*http.Response, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, opts.Body)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: "failed to create request", Err: err}
	}

	req.Header.Set(HeaderContentType, contentTypeJSON)
	req.Header.Set(HeaderAccept, contentTypeJSON)
	req.Header.Set(HeaderRequestID, uuid.NewString())
	for name, values := range opts.Header {
		req.Header.Del(name)
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}

	if c.session != nil {
		if token := c.session.Token(); token != "" {
			req.Header.Set(HeaderAuthorization, "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.DebugContext(ctx, "api request failed",
			slog.String("method", method),
			slog.String("endpoint", endpoint),
			slog.String("request_id", req.Header.Get(HeaderRequestID)),
			slog.Any("error", err))
		return nil, &Error{Kind: KindTransport, Message: fmt.Sprintf("request failed: %v", err), Err: err}
	}

	c.logger.DebugContext(ctx, "api request",
		slog.String("method", method),
		slog.String("endpoint", endpoint),
		slog.Int("status", resp.StatusCode),
		slog.String("request_id", req.Header.Get(HeaderRequestID)),
		slog.Duration("duration", time.Since(start)))

	if resp.StatusCode == http.StatusUnauthorized && c.session != nil {
		c.logger.InfoContext(ctx, "api rejected credentials, clearing session",
			slog.String("endpoint", endpoint))
		c.session.HandleUnauthorized(ctx)
	}

	return resp, nil
}

// DoJSON sends data (JSON-encoded, omitted when nil) and returns the raw success
// body. Non-success statuses become an *Error whose message is the server's detail,
// or fallback when the body carries none.
func (c *Client) DoJSON(ctx context.Context, method, endpoint string, data any, fallback string) (json.RawMessage, error) {
	var body io.Reader
	if data != nil {
		encoded, err := json.Marshal(data)
		if err != nil {
			return nil, &Error{Kind: KindEncode, Message: "failed to encode request", Err: err}
		}
		body = bytes.NewReader(encoded)
	}

	resp, err := c.Request(ctx, endpoint, RequestOptions{Method: method, Body: body})
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Status: resp.StatusCode, Message: "failed to read response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errorFromBody(resp.StatusCode, respBody, fallback)
	}

	return respBody, nil
}
