package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"net/http"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/neusy/urwerk-client/internal/version"
	"github.com/neusy/urwerk-client/pkg/urwerk"
)

const (
	contentTypeJSON        = "application/json"
	contentTypeOctetStream = "application/octet-stream"
)

// Client dispatches requests below a fixed API root.
type Client struct {
	rootURL      string
	userAgent    string
	httpClient   *retryablehttp.Client
	logger       urwerk.Logger
	debug        bool
	interceptors *urwerk.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger urwerk.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithHTTPClient sets the underlying HTTP client. A copy is taken so
// the redirect policy can be replaced without touching the caller's client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient == nil {
			return
		}

		clone := *httpClient
		c.httpClient.HTTPClient = &clone
	}
}

// WithInterceptors sets the interceptor chain run around every request.
func WithInterceptors(chain *urwerk.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a dispatcher for rootURL. Trailing slashes are removed.
func NewClient(rootURL string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.CheckRetry = neverRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		rootURL:    strings.TrimRight(rootURL, "/"),
		userAgent:  version.UserAgent(),
		httpClient: retryClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient.HTTPClient == nil {
		client.httpClient.HTTPClient = &http.Client{}
	}

	client.httpClient.HTTPClient.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	if client.debug && client.logger != nil {
		client.httpClient.RequestLogHook = client.logRequest
		client.httpClient.ResponseLogHook = client.logResponse
	}

	return client
}

func neverRetry(context.Context, *http.Response, error) (bool, error) {
	return false, nil
}

// RootURL returns the API root without trailing slash.
func (c *Client) RootURL() string {
	return c.rootURL
}

// UserAgent returns the User-Agent sent when the caller sets none.
func (c *Client) UserAgent() string {
	return c.userAgent
}

// Request represents one API call.
type Request struct {
	Method   string
	Endpoint urwerk.Endpoint
	Params   urwerk.Params
	// Body is nil for no body. A []byte is sent as octet-stream,
	// anything else is encoded as JSON.
	Body    any
	Headers map[string]string
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, endpoint urwerk.Endpoint, params urwerk.Params, headers map[string]string) (any, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Endpoint: endpoint, Params: params, Headers: headers}, nil)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, endpoint urwerk.Endpoint, params urwerk.Params, headers map[string]string) (any, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Endpoint: endpoint, Params: params, Headers: headers}, nil)
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, endpoint urwerk.Endpoint, body any, headers map[string]string) (any, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Endpoint: endpoint, Body: body, Headers: headers}, nil)
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, endpoint urwerk.Endpoint, body any, headers map[string]string) (any, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Endpoint: endpoint, Body: body, Headers: headers}, nil)
}

// Do performs req and passes a 200/201 body to handler (ReadAll when nil).
// A 204 response returns nil, nil.
func (c *Client) Do(ctx context.Context, req *Request, handler Handler) (any, error) {
	if handler == nil {
		handler = ReadAll
	}

	resp, url, err := c.open(ctx, req)
	if err != nil {
		return nil, err
	}

	if resp == nil {
		return nil, nil
	}

	defer func() { _ = resp.Body.Close() }()

	return handler(url, resp.Body, resp.Header.Get("Content-Type"))
}

// Stream performs req on first iteration and yields one unpacked value per
// newline-delimited chunk. Breaking out of the loop closes the connection.
// Every iteration issues a new request.
func (c *Client) Stream(ctx context.Context, req *Request) iter.Seq2[any, error] {
	return func(yield func(any, error) bool) {
		resp, url, err := c.open(ctx, req)
		if err != nil {
			yield(nil, err)

			return
		}

		if resp == nil {
			return
		}

		defer func() { _ = resp.Body.Close() }()

		for value, err := range StreamChunks(url, resp.Body, resp.Header.Get("Content-Type")) {
			if !yield(value, err) {
				return
			}
		}
	}
}

// open sends req and classifies the outcome. It returns the open response
// for 200/201, nil for 204 and an error otherwise.
func (c *Client) open(ctx context.Context, req *Request) (*http.Response, string, error) {
	url, err := BuildURL(c.rootURL, req.Endpoint, req.Params)
	if err != nil {
		return nil, "", fmt.Errorf("building request URL: %w", err)
	}

	headers := make(http.Header, len(req.Headers)+2)
	for key, value := range req.Headers {
		headers.Set(key, value)
	}

	if headers.Get("User-Agent") == "" {
		headers.Set("User-Agent", c.userAgent)
	}

	var body []byte

	if req.Method == http.MethodPut || req.Method == http.MethodPost {
		body, err = encodeBody(req.Body, headers)
		if err != nil {
			return nil, url, err
		}
	}

	intercepted := &urwerk.Request{
		Method:  req.Method,
		URL:     url,
		Headers: headers,
		Body:    body,
	}

	err = c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
	if err != nil {
		return nil, url, err
	}

	var rawBody interface{}
	if len(intercepted.Body) > 0 {
		rawBody = intercepted.Body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, intercepted.Method, intercepted.URL, rawBody)
	if err != nil {
		return nil, url, urwerk.NewConnectError(url, err)
	}

	httpReq.Header = intercepted.Headers

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}

		reqErr := urwerk.NewConnectError(url, err)

		return nil, url, c.finish(ctx, intercepted, &urwerk.Response{Error: reqErr}, reqErr)
	}

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		result := &urwerk.Response{StatusCode: resp.StatusCode, Headers: resp.Header}

		err = c.finish(ctx, intercepted, result, nil)
		if err != nil {
			_ = resp.Body.Close()

			return nil, url, err
		}

		return resp, url, nil
	case resp.StatusCode == http.StatusNoContent:
		_ = resp.Body.Close()

		return nil, url, c.finish(ctx, intercepted, &urwerk.Response{StatusCode: resp.StatusCode, Headers: resp.Header}, nil)
	default:
		data, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()

		var reqErr *urwerk.RequestError
		if resp.StatusCode >= http.StatusBadRequest {
			reqErr = urwerk.NewHTTPError(url, resp.StatusCode, data)
		} else {
			reqErr = urwerk.NewStatusError(url, resp.StatusCode, data)
		}

		result := &urwerk.Response{StatusCode: resp.StatusCode, Headers: resp.Header, Body: data, Error: reqErr}

		return nil, url, c.finish(ctx, intercepted, result, reqErr)
	}
}

// finish runs the response interceptors. The request outcome takes
// precedence over an interceptor failure.
func (c *Client) finish(ctx context.Context, req *urwerk.Request, resp *urwerk.Response, outcome error) error {
	err := c.interceptors.ExecuteResponseInterceptors(ctx, req, resp)
	if outcome != nil {
		return outcome
	}

	return err
}

func encodeBody(body any, headers http.Header) ([]byte, error) {
	switch value := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		if len(value) == 0 {
			return nil, nil
		}

		if headers.Get("Content-Type") == "" {
			headers.Set("Content-Type", contentTypeOctetStream)
		}

		return value, nil
	default:
		data, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", urwerk.ErrInvalidBody, err)
		}

		if headers.Get("Content-Type") == "" {
			headers.Set("Content-Type", contentTypeJSON)
		}

		return data, nil
	}
}

func (c *Client) logRequest(_ retryablehttp.Logger, req *http.Request, attempt int) {
	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method":  req.Method,
		"url":     req.URL.String(),
		"attempt": attempt,
	})
}

func (c *Client) logResponse(_ retryablehttp.Logger, resp *http.Response) {
	fields := map[string]interface{}{
		"status_code": resp.StatusCode,
	}

	if resp.Request != nil {
		fields["method"] = resp.Request.Method
		fields["url"] = resp.Request.URL.String()
	}

	c.logger.Debug("HTTP Response", fields)
}
