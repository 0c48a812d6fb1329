package skynet

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	// DefaultPortalURL is the portal used when none is configured.
	DefaultPortalURL = "https://siasky.net"
	// MaxResponseSize is the largest response body Do accepts.
	MaxResponseSize = 4 << 20

	defaultHTTPTimeout = 30 * time.Second
)

// Doer sends HTTP requests. *http.Client implements it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Request is a portal request relative to the portal URL.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// Response is a fully read portal response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Client sends requests to a portal. It holds only immutable configuration
// and is safe for concurrent use.
type Client struct {
	portalURL string
	apiKey    string
	userAgent string
	doer      Doer
	limiter   *rate.Limiter
	logger    *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithAPIKey sets the key sent as the basic auth password of every request.
func WithAPIKey(apiKey string) Option {
	return func(c *Client) {
		c.apiKey = apiKey
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithDoer replaces the HTTP client used to send requests.
func WithDoer(doer Doer) Option {
	return func(c *Client) {
		c.doer = doer
	}
}

// WithRateLimit limits outgoing requests to rps per second with the given burst.
// Non-positive values disable limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 || burst <= 0 {
			c.limiter = nil
			return
		}

		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a portal client. An empty portalURL selects DefaultPortalURL.
func NewClient(portalURL string, opts ...Option) *Client {
	if portalURL == "" {
		portalURL = DefaultPortalURL
	}

	client := &Client{
		portalURL: strings.TrimRight(portalURL, "/"),
		apiKey:    "",
		userAgent: "",
		doer:      &http.Client{Timeout: defaultHTTPTimeout}, //nolint:exhaustruct
		limiter:   nil,
		logger:    zap.NewNop(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// PortalURL returns the portal the client talks to.
func (c *Client) PortalURL() string {
	return c.portalURL
}

// MakeURL joins the portal URL, path and query.
func (c *Client) MakeURL(path string, query url.Values) string {
	out := c.portalURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		out += "?" + query.Encode()
	}

	return out
}

// Do sends req and reads the whole response body. Responses with a non-2xx
// status are returned together with a *StatusError. Nothing is retried.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	target := c.MakeURL(req.Path, req.Query)

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	for name, values := range req.Header {
		for _, value := range values {
			httpReq.Header.Add(name, value)
		}
	}

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	if c.apiKey != "" {
		httpReq.SetBasicAuth("", c.apiKey)
	}

	c.logger.Debug("portal request",
		zap.String("method", req.Method),
		zap.String("url", target))

	httpResp, err := c.doer.Do(httpReq)
	if err != nil {
		return nil, errTransport(req.Method, target, err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(httpResp.Body, MaxResponseSize+1))
	if err != nil {
		return nil, errTransport(req.Method, target, err)
	}

	if len(respBody) > MaxResponseSize {
		return nil, errTransport(req.Method, target,
			fmt.Errorf("%w: more than %d bytes", ErrResponseTooLarge, MaxResponseSize))
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       respBody,
	}

	c.logger.Debug("portal response",
		zap.String("method", req.Method),
		zap.String("url", target),
		zap.Int("status", resp.StatusCode),
		zap.Int("size", len(respBody)))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return resp, errStatus(resp.StatusCode, respBody)
	}

	return resp, nil
}
