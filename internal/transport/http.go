// Package transport provides the HTTP transports behind the API client:
// a live resty-backed client and a record/replay client for deterministic
// tests. Both satisfy core.Transport.
package transport

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"resty.dev/v3"

	"finnhub/pkg/core"
)

// Config holds the settings for the live HTTP transport.
type Config struct {
	Timeout time.Duration     `validate:"min=1ms"`
	Headers map[string]string `validate:"omitempty"`
}

// DefaultConfig returns a Config with a 10 second request timeout.
func DefaultConfig() *Config {
	return &Config{Timeout: 10 * time.Second}
}

// Client wraps a resty HTTP client with logging and configuration.
// Each Get is exactly one network round-trip; retries, backoff, and caching
// are left to the caller.
type Client struct {
	client *resty.Client
	logger zerolog.Logger
}

// NewClient creates a live transport with the specified configuration.
func NewClient(config *Config, logger zerolog.Logger) (*Client, error) {
	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	client := resty.New()
	client.SetTimeout(config.Timeout)
	for k, v := range config.Headers {
		client.SetHeader(k, v)
	}

	client.AddRequestMiddleware(func(_ *resty.Client, req *resty.Request) error {
		logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL).
			Msg("http request")
		return nil
	})

	client.AddResponseMiddleware(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Int("size", len(resp.Bytes())).
			Msg("http response")
		return nil
	})

	return &Client{
		client: client,
		logger: logger,
	}, nil
}

// Get performs an HTTP GET against the fully resolved URL.
func (c *Client) Get(ctx context.Context, url string) (*core.Response, error) {
	resp, err := c.client.R().SetContext(ctx).Get(url)
	if err != nil {
		c.logger.Error().Err(err).Str("url", url).Msg("http request failed")
		return nil, fmt.Errorf("http get: %w", err)
	}

	headers := make(map[string]string)
	for k, v := range resp.Header() {
		if len(v) > 0 {
			headers[k] = v[0]
		}
	}

	return &core.Response{
		StatusCode: resp.StatusCode(),
		Body:       resp.Bytes(),
		Headers:    headers,
	}, nil
}

// Close releases the underlying resty client resources.
func (c *Client) Close() error {
	return c.client.Close()
}
