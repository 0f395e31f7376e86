// Package urlbuild renders request URLs from a fixed API root, an endpoint
// path, and an ordered parameter list.
package urlbuild

import (
	"strings"

	"finnhub/pkg/core"
)

// Builder deterministically renders {root}/{endpoint}?{query} strings.
// It holds no state beyond the configured root and only renders text;
// validating the result as a URL is the caller's job.
type Builder struct {
	root string
}

// New creates a Builder rooted at the given base URL. A trailing slash on
// the root is tolerated.
func New(root string) *Builder {
	return &Builder{root: strings.TrimRight(root, "/")}
}

// Root returns the configured base URL.
func (b *Builder) Root() string {
	return b.root
}

// URL renders the request string for the given endpoint and parameters.
// Parameter order is preserved and values are URL-escaped; the query string
// is omitted entirely when the parameter list is empty.
func (b *Builder) URL(endpoint string, params core.Params) string {
	var sb strings.Builder
	sb.WriteString(b.root)
	sb.WriteByte('/')
	sb.WriteString(strings.TrimLeft(endpoint, "/"))
	if query := params.Encode(); query != "" {
		sb.WriteByte('?')
		sb.WriteString(query)
	}
	return sb.String()
}
