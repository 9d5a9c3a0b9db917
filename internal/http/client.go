package http

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/metrifox/metrifox-go/internal/constants"
	"github.com/metrifox/metrifox-go/pkg/metrifox"
)

// Request is a single outgoing call. URL must be absolute.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
}

// Response is the fully read reply to a Request.
type Response struct {
	StatusCode int
	Reason     string
	Headers    http.Header
	Body       []byte
}

// Client performs exactly one HTTP round trip per call. It never retries and
// keeps no per-caller state, so one Client may serve concurrent callers.
type Client struct {
	httpClient   *retryablehttp.Client
	custom       *http.Client
	logger       metrifox.Logger
	debug        bool
	userAgent    string
	timeout      time.Duration
	interceptors *metrifox.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger metrifox.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying *http.Client. The timeout option is
// ignored when one is supplied.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.custom = httpClient
	}
}

// WithInterceptors appends request and response interceptors.
func WithInterceptors(requests []metrifox.RequestInterceptor, responses []metrifox.ResponseInterceptor) Option {
	return func(c *Client) {
		for _, interceptor := range requests {
			c.interceptors.AddRequestInterceptor(interceptor)
		}

		for _, interceptor := range responses {
			c.interceptors.AddResponseInterceptor(interceptor)
		}
	}
}

// NewClient creates a transport client.
func NewClient(opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.CheckRetry = noRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		httpClient:   retryClient,
		logger:       metrifox.NoopLogger{},
		userAgent:    constants.DefaultUserAgent,
		timeout:      constants.DefaultHTTPTimeout,
		interceptors: metrifox.NewInterceptorChain(),
	}

	for _, opt := range opts {
		opt(client)
	}

	retryClient.Logger = leveledLogger{logger: client.logger}

	if client.custom != nil {
		retryClient.HTTPClient = client.custom
	} else {
		retryClient.HTTPClient = newHTTPClient(client.timeout)
	}

	return client
}

func newHTTPClient(timeout time.Duration) *http.Client {
	transport, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return &http.Client{Timeout: timeout}
	}

	transport = transport.Clone()
	transport.TLSHandshakeTimeout = constants.TLSHandshakeTimeout
	transport.TLSClientConfig = &tls.Config{
		MinVersion: tls.VersionTLS12,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

func noRetry(_ context.Context, _ *http.Response, err error) (bool, error) {
	return false, err
}

// Do executes req. A non-2xx status is not an error at this layer.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	err := validateMethod(req.Method)
	if err != nil {
		return nil, err
	}

	intercepted := &metrifox.Request{
		Method:  req.Method,
		URL:     req.URL,
		Headers: make(http.Header),
		Body:    req.Body,
	}

	intercepted.Headers.Set(constants.HeaderUserAgent, c.userAgent)

	for key, value := range req.Headers {
		intercepted.Headers.Set(key, value)
	}

	err = c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
	if err != nil {
		return nil, &metrifox.ArgumentError{Message: err.Error(), Err: err}
	}

	// Interceptors may add headers but never replace the API key.
	if apiKey, ok := req.Headers[constants.HeaderAPIKey]; ok {
		intercepted.Headers.Set(constants.HeaderAPIKey, apiKey)
	}

	var body interface{}
	if req.Body != nil {
		body = req.Body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, &metrifox.ArgumentError{
			Message: fmt.Sprintf("invalid request URL %q: %v", req.URL, err),
			Err:     err,
		}
	}

	httpReq.Header = intercepted.Headers

	if c.debug {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method":  req.Method,
			"url":     req.URL,
			"headers": redactHeaders(httpReq.Header),
		})
	}

	start := time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, c.transportFailure(ctx, intercepted, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.transportFailure(ctx, intercepted, err)
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Reason:     reasonPhrase(resp),
		Headers:    resp.Header,
		Body:       respBody,
	}

	if c.debug {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status_code": resp.StatusCode,
			"duration":    time.Since(start).String(),
			"body_size":   len(respBody),
		})
	}

	err = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, &metrifox.Response{
		StatusCode: response.StatusCode,
		Headers:    response.Headers,
		Body:       response.Body,
	})
	if err != nil {
		return nil, &metrifox.ArgumentError{Message: err.Error(), Err: err}
	}

	return response, nil
}

func (c *Client) transportFailure(ctx context.Context, req *metrifox.Request, cause error) error {
	transportErr := &metrifox.TransportError{
		Method: req.Method,
		URL:    req.URL,
		Err:    cause,
	}

	// Response interceptors observe failures too; their own errors are secondary.
	_ = c.interceptors.ExecuteResponseInterceptors(ctx, req, &metrifox.Response{Error: transportErr})

	return transportErr
}

func validateMethod(method string) error {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete:
		return nil
	default:
		return &metrifox.ArgumentError{
			Message: "Unsupported method: " + method,
			Err:     metrifox.ErrUnsupportedMethod,
		}
	}
}

func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}

	return reason
}

func redactHeaders(headers http.Header) map[string]string {
	redacted := make(map[string]string, len(headers))

	for key := range headers {
		value := headers.Get(key)
		if strings.EqualFold(key, constants.HeaderAPIKey) {
			value = constants.MaskedSecret
		}

		redacted[key] = value
	}

	return redacted
}
