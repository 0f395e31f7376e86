package core

import (
	"net/url"
	"strings"
)

// Param is a single name/value query parameter.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered list of query parameters. Order is preserved all the
// way into the rendered URL so that resolved URLs are reproducible and usable
// as cache or fixture keys. Duplicate keys are passed through as-is.
type Params []Param

// NewParams creates a Params list from alternating key/value pairs.
// A trailing key without a value is dropped.
func NewParams(pairs ...string) Params {
	params := make(Params, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		params = append(params, Param{Key: pairs[i], Value: pairs[i+1]})
	}
	return params
}

// Add appends a parameter and returns the extended list for chaining.
func (p Params) Add(key, value string) Params {
	return append(p, Param{Key: key, Value: value})
}

// Encode renders the list as a URL-escaped query string, preserving order.
// Returns an empty string for an empty list.
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	for i, param := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(param.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(param.Value))
	}
	return b.String()
}
