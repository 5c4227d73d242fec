package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
)

// Client is a small JSON-over-HTTP client whose traffic is logged by an
// [HTTPLogger] and whose headers, payload decoding and error extraction are
// delegated to a [ClientConfig].
type Client struct {
	restyClient *resty.Client
	httpLogger  *HTTPLogger
	baseURL     string
	options     *Options
	mu          sync.Mutex
	connected   bool
}

// Response is the result of [Client.Do].
type Response struct {
	// Header holds the response headers.
	Header http.Header

	// Data is the value returned by [ClientConfig.DecodeResponseData], or nil.
	Data any

	// Body is the raw response body.
	Body []byte

	// StatusCode is the HTTP status code.
	StatusCode int
}

// New returns a client for baseURL. Options are validated by
// [Client.Connect], not here.
func New(baseURL string, opts ...Option) *Client {
	options := newClientOptions()

	for _, o := range opts {
		o(options)
	}

	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		options: options,
	}
}

// Connect validates the options and prepares the underlying resty client.
// Calling Connect on a connected client is a no-op.
func (c *Client) Connect(ctx context.Context) error {
	if c == nil {
		return ErrNilClient
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.connected {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if c.baseURL == "" {
		return ErrBaseURLRequired
	}

	if err := c.options.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	c.httpLogger = c.options.httpLogger
	if c.httpLogger == nil {
		c.httpLogger = NewHTTPLogger(NewRequestLoggerSink(c.options.requestLogger))
	}

	c.restyClient = resty.New().
		SetBaseURL(c.baseURL).
		SetLogger(c.options.requestLogger).
		SetHeaders(c.options.requestHeaders).
		SetTimeout(c.options.timeout)

	if c.options.transport != nil {
		c.restyClient.SetTransport(c.options.transport)
	}

	c.httpLogger.Attach(c.restyClient)

	c.connected = true

	return nil
}

// Do sends a request to path, relative to the base URL, with body encoded as
// JSON unless it is a string or []byte.
//
// A non-2xx status, or errors reported by [ClientConfig.ResponseErrors], are
// returned as a [*ResponseError] alongside the response.
func (c *Client) Do(ctx context.Context, method, path string, body any) (*Response, error) {
	if c == nil {
		return nil, ErrNilClient
	}

	rc, err := c.resty()
	if err != nil {
		return nil, err
	}

	config := c.options.config

	req := rc.R().
		SetContext(ctx).
		SetHeaders(config.DefaultHeaders())

	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrRequestFailed, method, c.baseURL+path, err)
	}

	data := resp.Body()

	result := &Response{
		Header:     resp.Header(),
		Data:       config.DecodeResponseData(data),
		Body:       data,
		StatusCode: resp.StatusCode(),
	}

	errs := config.ResponseErrors(data)

	if !resp.IsSuccess() || len(errs) > 0 {
		return result, &ResponseError{
			Method:     method,
			URL:        resp.Request.URL,
			Body:       string(data),
			Errors:     errs,
			StatusCode: resp.StatusCode(),
		}
	}

	return result, nil
}

// Get is a convenience wrapper around [Client.Do].
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, nil)
}

// Post is a convenience wrapper around [Client.Do].
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, http.MethodPost, path, body)
}

// Close releases idle connections held by the client.
func (c *Client) Close() {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.restyClient != nil {
		c.restyClient.GetClient().CloseIdleConnections()
	}
}

func (c *Client) resty() (*resty.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return nil, ErrNotConnected
	}

	return c.restyClient, nil
}
