package finnhub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finnhub/internal/transport"
)

// The replay transport drops into the same dispatch path as the live one, so
// endpoint calls can run against committed fixtures without a network.
func TestClient_QuoteFromFixture(t *testing.T) {
	replay := transport.NewReplay("testdata", "abc123")
	client, err := New("abc123",
		WithBaseURL("https://api.example.com/v1"),
		WithTransport(replay),
	)
	require.NoError(t, err)

	outcome, resolved, err := client.Quote(context.Background(), "AAPL")

	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/v1/quote?symbol=AAPL&token=abc123", resolved.String())

	quote, ok := outcome.Response()
	require.True(t, ok)
	assert.Equal(t, 150.0, quote.Current)
	assert.Equal(t, 151.2, quote.High)
	assert.Equal(t, 149.0, quote.Low)
	assert.Equal(t, 150.5, quote.Open)
}

func TestClient_MissingFixtureSurfacesAsTransportError(t *testing.T) {
	replay := transport.NewReplay("testdata", "abc123")
	client, err := New("abc123",
		WithBaseURL("https://api.example.com/v1"),
		WithTransport(replay),
	)
	require.NoError(t, err)

	_, _, err = client.Quote(context.Background(), "UNRECORDED")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no recorded fixture")
}
