package urlbuild

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"finnhub/pkg/core"
)

func TestBuilder_URL(t *testing.T) {
	b := New("https://api.example.com/v1")

	tests := []struct {
		name     string
		endpoint string
		params   core.Params
		expected string
	}{
		{
			name:     "single param",
			endpoint: "quote",
			params:   core.NewParams("symbol", "AAPL"),
			expected: "https://api.example.com/v1/quote?symbol=AAPL",
		},
		{
			name:     "nested endpoint",
			endpoint: "stock/candle",
			params:   core.NewParams("symbol", "AAPL", "resolution", "D"),
			expected: "https://api.example.com/v1/stock/candle?symbol=AAPL&resolution=D",
		},
		{
			name:     "no params",
			endpoint: "forex/exchange",
			params:   nil,
			expected: "https://api.example.com/v1/forex/exchange",
		},
		{
			name:     "escaped value",
			endpoint: "search",
			params:   core.NewParams("q", "apple inc"),
			expected: "https://api.example.com/v1/search?q=apple+inc",
		},
		{
			name:     "duplicate keys preserved",
			endpoint: "news",
			params:   core.NewParams("category", "general", "category", "forex"),
			expected: "https://api.example.com/v1/news?category=general&category=forex",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, b.URL(tt.endpoint, tt.params))
		})
	}
}

func TestBuilder_URLDeterministic(t *testing.T) {
	b := New("https://api.example.com/v1")
	params := core.NewParams("symbol", "AAPL", "from", "1572651390", "to", "1575243390")

	first := b.URL("stock/candle", params)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, b.URL("stock/candle", params))
	}
}

func TestBuilder_TrimsSlashes(t *testing.T) {
	b := New("https://api.example.com/v1/")

	assert.Equal(t, "https://api.example.com/v1", b.Root())
	assert.Equal(t, "https://api.example.com/v1/quote", b.URL("/quote", nil))
}

func TestBuilder_TokenLast(t *testing.T) {
	b := New("https://api.example.com/v1")
	params := core.NewParams("symbol", "AAPL").Add("token", "abc123")

	assert.Equal(t, "https://api.example.com/v1/quote?symbol=AAPL&token=abc123", b.URL("quote", params))
}
