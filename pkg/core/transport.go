package core

import (
	"context"
	"net/http"

	"github.com/bytedance/sonic"
)

// Transport performs one HTTP GET against a fully resolved URL. It is the
// injection point that lets production code talk to the network while tests
// replay recorded fixtures through the same dispatch path.
//
// Implementations must be safe for concurrent use; the client issues calls
// from multiple goroutines without coordination.
type Transport interface {
	Get(ctx context.Context, url string) (*Response, error)
}

// Response represents an HTTP response with its status code, body, and headers.
type Response struct {
	// StatusCode is the HTTP status code returned by the server.
	StatusCode int

	// Body contains the raw response body bytes.
	Body []byte

	// Headers contains the response headers as key-value pairs.
	Headers map[string]string
}

// IsSuccess returns true if the response status code indicates success (2xx).
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsRateLimited returns true if the provider rejected the call due to
// throttling.
func (r *Response) IsRateLimited() bool {
	return r.StatusCode == http.StatusTooManyRequests
}

// Unmarshal parses the response body into the provided value using sonic.
func (r *Response) Unmarshal(v any) error {
	return sonic.Unmarshal(r.Body, v)
}
