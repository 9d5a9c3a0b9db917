package metrifox

import (
	"errors"
	"fmt"
	"net/http"
)

// Static errors wrapped by the typed errors below so callers can use errors.Is.
var (
	ErrAPIKeyRequired      = errors.New("API key required: set it via config or the METRIFOX_API_KEY environment variable")
	ErrInvalidBaseURL      = errors.New("invalid base URL")
	ErrUnsupportedMethod   = errors.New("unsupported HTTP method")
	ErrInvalidPayload      = errors.New("invalid request format")
	ErrCustomerKeyRequired = errors.New("customer_key is required")
	ErrOfferingKeyRequired = errors.New("offering_key is required")
	ErrFileNotFound        = errors.New("file not found")
	ErrCheckoutURLMissing  = errors.New("checkout URL could not be generated")
)

// ConfigurationError reports a precondition that was not met before dispatch,
// such as a missing API key.
type ConfigurationError struct {
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if e.Message == "" && e.Err != nil {
		return e.Err.Error()
	}

	return e.Message
}

// Unwrap returns the wrapped error.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ArgumentError reports invalid caller input: an unsupported HTTP method, a
// payload that is not a map or struct, a missing required field, or a missing
// upload file.
type ArgumentError struct {
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	if e.Message == "" && e.Err != nil {
		return e.Err.Error()
	}

	return e.Message
}

// Unwrap returns the wrapped error.
func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// TransportError wraps a network failure (DNS, connect, TLS, read).
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying network error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is returned when the backend answers with a non-2xx status, when a
// successful response is not valid JSON, or when a required projected field is
// absent.
type APIError struct {
	// StatusCode is the HTTP status code, 0 when no response was involved.
	StatusCode int `json:"status_code"`
	// Reason is the HTTP reason phrase, e.g. "Bad Request".
	Reason string `json:"reason"`
	// Context names the operation, e.g. "Failed to Create Customer".
	Context string `json:"context"`
	// Message is the full human-readable message.
	Message string `json:"message"`
	// Body holds the raw response body for non-2xx responses.
	Body []byte `json:"-"`
	// Err is an optional underlying cause (JSON decode error, sentinel).
	Err error `json:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *APIError) Unwrap() error {
	return e.Err
}

// NewStatusError builds the APIError for a non-2xx response.
func NewStatusError(context string, statusCode int, reason string, body []byte) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Reason:     reason,
		Context:    context,
		Message:    fmt.Sprintf("%s: %d %s", context, statusCode, reason),
		Body:       body,
	}
}

// NewDecodeError builds the APIError for a 2xx response whose body is not a JSON object.
func NewDecodeError(context string, statusCode int, err error) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Context:    context,
		Message:    "Invalid JSON response: " + err.Error(),
		Err:        err,
	}
}

// IsConfigurationError checks if the error is a configuration error.
func IsConfigurationError(err error) bool {
	var target *ConfigurationError

	return errors.As(err, &target)
}

// IsArgumentError checks if the error is an argument error.
func IsArgumentError(err error) bool {
	var target *ArgumentError

	return errors.As(err, &target)
}

// IsTransportError checks if the error is a transport error.
func IsTransportError(err error) bool {
	var target *TransportError

	return errors.As(err, &target)
}

// IsAPIError checks if the error is an API error.
func IsAPIError(err error) bool {
	var target *APIError

	return errors.As(err, &target)
}

// IsNotFound checks if the error is an API error with status 404.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an API error with status 401.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsRateLimited checks if the error is an API error with status 429, which the
// backend uses for exhausted quotas.
func IsRateLimited(err error) bool {
	return hasStatus(err, http.StatusTooManyRequests)
}

func hasStatus(err error, code int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == code
	}

	return false
}
