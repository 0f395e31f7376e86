package core

// APIResponse is the outcome of a single API call: either a successfully
// decoded payload of type T, or a signal that the provider rejected the call
// because the rate limit was reached. Rate limiting is an expected outcome,
// not an error; transport and decode failures travel on the error channel
// instead.
type APIResponse[T any] struct {
	value       T
	rateLimited bool
}

// NewResponse wraps a decoded payload in a success outcome.
func NewResponse[T any](value T) APIResponse[T] {
	return APIResponse[T]{value: value}
}

// RateLimitReached returns the outcome signaling the provider throttled
// the call. Callers should back off before retrying.
func RateLimitReached[T any]() APIResponse[T] {
	return APIResponse[T]{rateLimited: true}
}

// IsResponse returns true if the outcome carries a decoded payload.
func (r APIResponse[T]) IsResponse() bool {
	return !r.rateLimited
}

// IsRateLimitReached returns true if the provider rejected the call due to
// throttling.
func (r APIResponse[T]) IsRateLimitReached() bool {
	return r.rateLimited
}

// Response returns the decoded payload and true if the outcome is a success,
// or the zero value and false if the rate limit was reached.
func (r APIResponse[T]) Response() (T, bool) {
	if r.rateLimited {
		var zero T
		return zero, false
	}
	return r.value, true
}
