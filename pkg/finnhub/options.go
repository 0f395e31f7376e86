package finnhub

import (
	"strconv"

	"finnhub/pkg/core"
)

// CallOption is a functional option supplying an optional query parameter to
// an endpoint method.
type CallOption func(*CallOptions)

// CallOptions holds the optional parameters an endpoint may accept. A zero
// field is omitted from the query string entirely.
type CallOptions struct {
	MIC          string
	SecurityType string
	Currency     string
	MinID        uint64
}

// WithMIC filters stock symbols by market identifier code.
func WithMIC(mic string) CallOption {
	return func(o *CallOptions) {
		o.MIC = mic
	}
}

// WithSecurityType filters stock symbols by security type.
func WithSecurityType(securityType string) CallOption {
	return func(o *CallOptions) {
		o.SecurityType = securityType
	}
}

// WithCurrency filters stock symbols by currency.
func WithCurrency(currency string) CallOption {
	return func(o *CallOptions) {
		o.Currency = currency
	}
}

// WithMinID restricts market news to articles newer than the given id.
func WithMinID(minID uint64) CallOption {
	return func(o *CallOptions) {
		o.MinID = minID
	}
}

// ApplyCallOptions folds the given options into a CallOptions value.
func ApplyCallOptions(opts ...CallOption) *CallOptions {
	o := &CallOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// appendIf appends the parameter only when the value is non-empty,
// keeping absent optional parameters out of the rendered URL.
func appendIf(params core.Params, key, value string) core.Params {
	if value == "" {
		return params
	}
	return params.Add(key, value)
}

// appendIfNonZero appends a numeric parameter only when it is non-zero.
func appendIfNonZero(params core.Params, key string, value uint64) core.Params {
	if value == 0 {
		return params
	}
	return params.Add(key, strconv.FormatUint(value, 10))
}
