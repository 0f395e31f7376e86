package core

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of a failed API call.
type ErrorType int

// Error type constants categorize failures for proper handling.
const (
	// ErrorTypeUnknown indicates an unclassified error.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeInvalidURL indicates the rendered request string is not a
	// valid URL. Not retryable; points at a bad endpoint or parameter value.
	ErrorTypeInvalidURL
	// ErrorTypeTransport indicates the network call itself failed
	// (DNS, connection refused, timeout).
	ErrorTypeTransport
	// ErrorTypeDecode indicates the response body did not match the
	// expected shape.
	ErrorTypeDecode
)

// String returns the string representation of the error type.
func (t ErrorType) String() string {
	return [...]string{
		"UNKNOWN",
		"INVALID_URL",
		"TRANSPORT",
		"DECODE",
	}[t]
}

// ErrFixtureMissing is returned by the replay transport when no recorded
// fixture exists for the requested URL.
var ErrFixtureMissing = errors.New("no recorded fixture for url")

// RequestError represents a failed API call with enough context to diagnose
// it: the endpoint, the resolved URL, and for decode failures the raw body.
type RequestError struct {
	// Type categorizes the failure for programmatic handling.
	Type ErrorType
	// Endpoint is the path segment of the attempted call.
	Endpoint string
	// URL is the resolved request URL, when one was rendered.
	URL string
	// Body holds the raw response body for decode failures.
	Body []byte
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface for RequestError.
func (e *RequestError) Error() string {
	if len(e.Body) > 0 {
		return fmt.Sprintf("%s %q: %v (body: %s)", e.Type, e.Endpoint, e.Err, truncate(e.Body, 256))
	}
	return fmt.Sprintf("%s %q: %v", e.Type, e.Endpoint, e.Err)
}

// Unwrap returns the underlying cause so callers can use errors.Is/As.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// WithBody attaches the raw response body and returns the error for chaining.
func (e *RequestError) WithBody(body []byte) *RequestError {
	e.Body = body
	return e
}

// NewRequestError creates a RequestError for the given endpoint and cause.
func NewRequestError(errorType ErrorType, endpoint, url string, err error) *RequestError {
	return &RequestError{
		Type:     errorType,
		Endpoint: endpoint,
		URL:      url,
		Err:      err,
	}
}

// IsInvalidURL returns true if the error is an invalid-URL failure.
func IsInvalidURL(err error) bool {
	return hasType(err, ErrorTypeInvalidURL)
}

// IsTransportError returns true if the network call itself failed.
// Transport errors are typically retryable by the caller.
func IsTransportError(err error) bool {
	return hasType(err, ErrorTypeTransport)
}

// IsDecodeError returns true if the response body did not match the expected
// shape. At non-success statuses this usually indicates an upstream failure.
func IsDecodeError(err error) bool {
	return hasType(err, ErrorTypeDecode)
}

func hasType(err error, t ErrorType) bool {
	var re *RequestError
	if errors.As(err, &re) {
		return re.Type == t
	}
	return false
}

func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}
