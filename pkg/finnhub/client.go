package finnhub

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"

	"finnhub/internal/transport"
	"finnhub/internal/urlbuild"
	"finnhub/pkg/core"
)

// DefaultBaseURL is the versioned Finnhub API root.
const DefaultBaseURL = "https://finnhub.io/api/v1"

// Client is a stateless Finnhub API client. It holds the API key and the URL
// builder; every call is an independent round-trip, so a single Client may be
// shared across goroutines without coordination.
type Client struct {
	apiKey    string
	builder   *urlbuild.Builder
	transport core.Transport
	logger    zerolog.Logger
}

// Option is a functional option for configuring the Client.
type Option func(*Options)

// Options holds configuration options for the Client.
type Options struct {
	// BaseURL is the API root; defaults to DefaultBaseURL.
	BaseURL string
	// Transport overrides the live HTTP transport, e.g. with a replay
	// transport in tests.
	Transport core.Transport
	// Logger receives request/response debug events.
	Logger zerolog.Logger
	// Timeout applies to the default live transport only.
	Timeout time.Duration
}

// WithBaseURL returns an option that sets the API root.
func WithBaseURL(baseURL string) Option {
	return func(o *Options) {
		o.BaseURL = baseURL
	}
}

// WithTransport returns an option that sets the transport used for all calls.
func WithTransport(t core.Transport) Option {
	return func(o *Options) {
		o.Transport = t
	}
}

// WithLogger returns an option that sets the logger for the client.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithTimeout returns an option that sets the live transport request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		o.Timeout = timeout
	}
}

// New creates a Finnhub client for the v1 API with the given API key.
func New(apiKey string, opts ...Option) (*Client, error) {
	options := &Options{
		BaseURL: DefaultBaseURL,
		Logger:  zerolog.Nop(),
		Timeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(options)
	}

	t := options.Transport
	if t == nil {
		live, err := transport.NewClient(&transport.Config{Timeout: options.Timeout}, options.Logger)
		if err != nil {
			return nil, fmt.Errorf("create transport: %w", err)
		}
		t = live
	}

	return &Client{
		apiKey:    apiKey,
		builder:   urlbuild.New(options.BaseURL),
		transport: t,
		logger:    options.Logger,
	}, nil
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.builder.Root()
}

// Get composes the URL for the endpoint, performs the request, and decodes
// the body into T. The API key is appended strictly after all caller
// parameters, so the resolved URL is reproducible from the parameter order
// alone. A 429 from the provider is returned as a rate-limited outcome with
// the body left undecoded; every other status gets the decode attempt.
//
// The resolved URL is returned alongside the outcome so callers can log it
// or derive cache keys without re-rendering parameters.
func Get[T any](ctx context.Context, c *Client, endpoint string, params core.Params) (core.APIResponse[T], *url.URL, error) {
	var zero core.APIResponse[T]

	params = params.Add("token", c.apiKey)
	raw := c.builder.URL(endpoint, params)

	u, err := url.Parse(raw)
	if err != nil {
		return zero, nil, core.NewRequestError(core.ErrorTypeInvalidURL, endpoint, raw, err)
	}

	resp, err := c.transport.Get(ctx, u.String())
	if err != nil {
		return zero, u, core.NewRequestError(core.ErrorTypeTransport, endpoint, u.String(), err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		c.logger.Warn().Str("endpoint", endpoint).Msg("rate limit reached")
		return core.RateLimitReached[T](), u, nil
	}

	var value T
	if err := sonic.Unmarshal(resp.Body, &value); err != nil {
		return zero, u, core.NewRequestError(core.ErrorTypeDecode, endpoint, u.String(), err).
			WithBody(resp.Body)
	}

	c.logger.Debug().
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Int("size", len(resp.Body)).
		Msg("api response decoded")

	return core.NewResponse(value), u, nil
}
