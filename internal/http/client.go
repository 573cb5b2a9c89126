// Package http provides the HTTP core shared by every resource client: the
// endpoint URL builder and the request executor.
package http

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/aeries-io/aeries/internal/constants"
	"github.com/aeries-io/aeries/pkg/aeries"
	"github.com/hashicorp/go-retryablehttp"
)

// Logger interface for HTTP client logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request describes one API call: an endpoint assembled from the version and
// segments, plus an optional query string and extra headers. Every call is a
// GET; the Aeries API surface covered here is read-only.
type Request struct {
	Version  string
	Segments []aeries.Segment
	Query    url.Values
	Headers  map[string]string
}

// Response is the normalized outcome of one call. A non-2xx status is not an
// error at this layer; the status is surfaced unchanged and interpreting it
// is the caller's responsibility. Body is nil when the response carried no
// payload.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client executes requests against one Aeries installation. It holds only
// immutable configuration, so any number of calls may be issued concurrently.
type Client struct {
	base        *url.URL
	certificate string
	retryClient *retryablehttp.Client
	logger      Logger
	debug       bool
	userAgent   string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger for the client.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging. No-op without a logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig enables retries for transient failures. Without this
// option the client issues exactly one request per call.
func WithRetryConfig(retryMax int, retryWaitMin, retryWaitMax time.Duration) Option {
	return func(c *Client) {
		c.retryClient.RetryMax = retryMax
		c.retryClient.RetryWaitMin = retryWaitMin
		c.retryClient.RetryWaitMax = retryWaitMax
	}
}

// WithSkipTLSVerify disables TLS certificate verification on this client's
// transport. The setting is scoped to this client instance, never to the
// process.
func WithSkipTLSVerify(skip bool) Option {
	return func(c *Client) {
		if !skip {
			return
		}

		c.retryClient.HTTPClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // #nosec G402 -- explicit per-client opt-in for self-signed installations
		}
	}
}

// WithTimeout sets the transport-level timeout for each attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.retryClient.HTTPClient.Timeout = timeout
	}
}

// NewClient creates a new HTTP client for the given base URL and certificate.
// An empty certificate is permitted; the AERIES-CERT header is then sent with
// an empty value.
func NewClient(baseURL, certificate string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	// Hand back the last response untouched when retries are exhausted; a
	// 5xx status must reach the caller as a status, not as an error.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		certificate: certificate,
		retryClient: retryClient,
	}

	if base, err := url.Parse(baseURL); err == nil {
		client.base = base
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Get issues a GET against the endpoint built from version and segments.
func (c *Client) Get(ctx context.Context, version string, query url.Values, segments ...aeries.Segment) (*Response, error) {
	return c.Do(ctx, &Request{
		Version:  version,
		Segments: segments,
		Query:    query,
	})
}

// Do executes one request and normalizes the outcome. On transport-level
// failure the returned Response still carries a status code: the upstream
// status when a response exists, 500 otherwise. The error and the response
// are therefore both meaningful on failure.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if c.base == nil {
		return &Response{StatusCode: http.StatusInternalServerError}, aeries.ErrInvalidBaseURL
	}

	endpoint := BuildURL(c.base, req.Version, req.Segments...)
	if len(req.Query) > 0 {
		endpoint.RawQuery = req.Query.Encode()
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return &Response{StatusCode: http.StatusInternalServerError}, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(aeries.CertificateHeader, c.certificate)

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": http.MethodGet,
			"url":    endpoint.String(),
		})
	}

	httpResp, err := c.retryClient.Do(httpReq)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if httpResp != nil {
			statusCode = httpResp.StatusCode
		}

		return &Response{StatusCode: statusCode}, fmt.Errorf("executing request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return &Response{StatusCode: httpResp.StatusCode}, fmt.Errorf("reading response body: %w", err)
	}

	if len(body) == 0 {
		body = nil
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"bytes":  len(body),
		})
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}, nil
}
