package pdfrender

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// Render service defaults.
const (
	DefaultEndpoint    = "https://pdfrenderpro.p.rapidapi.com/pdf"
	DefaultServiceHost = "pdfrenderpro.p.rapidapi.com"
	DefaultUserAgent   = "go-pdfrender"
)

// Request header names understood by the render service.
const (
	HeaderServiceHost = "X-RapidAPI-Host"
	HeaderServiceKey  = "X-RapidAPI-Key"
)

// Client submits request documents to the render service.
// It makes exactly one attempt per call: no retries and no client-side
// timeout. Cancel ctx to abandon a request.
type Client struct {
	endpoint   string
	host       string
	userAgent  string
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithEndpoint sets the full URL requests are POSTed to.
func WithEndpoint(url string) ClientOption {
	return func(c *Client) {
		c.endpoint = url
	}
}

// WithServiceHost sets the value of the X-RapidAPI-Host header.
func WithServiceHost(host string) ClientOption {
	return func(c *Client) {
		c.host = host
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithHTTPClient replaces the underlying HTTP client.
// Panics if hc is nil (programmer error).
func WithHTTPClient(hc *http.Client) ClientOption {
	if hc == nil {
		panic("pdfrender: WithHTTPClient client must not be nil")
	}
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient returns a Client for the default endpoint.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		endpoint:   DefaultEndpoint,
		host:       DefaultServiceHost,
		userAgent:  DefaultUserAgent,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Render POSTs body and returns the PDF bytes of a 200 answer, buffered in
// memory. Any other status yields a *RemoteError carrying the full response
// body. Connection-level failures wrap ErrTransport.
func (c *Client) Render(ctx context.Context, body []byte, apiKey string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", ErrTransport, err)
	}
	req.ContentLength = int64(len(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(HeaderServiceHost, c.host)
	req.Header.Set(HeaderServiceKey, apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, readErr := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		// A partial body is still worth reporting.
		return nil, &RemoteError{StatusCode: resp.StatusCode, Body: string(payload)}
	}
	if readErr != nil {
		return nil, fmt.Errorf("%w: reading response: %w", ErrTransport, readErr)
	}

	return payload, nil
}
