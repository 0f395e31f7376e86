package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client, err := NewClient(DefaultConfig(), zerolog.Nop())

	require.NoError(t, err)
	assert.NotNil(t, client)
	assert.NoError(t, client.Close())
}

func TestNewClient_InvalidConfig(t *testing.T) {
	_, err := NewClient(&Config{Timeout: 0}, zerolog.Nop())

	assert.Error(t, err)
}

func TestClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/quote", r.URL.Path)
		assert.Equal(t, "AAPL", r.URL.Query().Get("symbol"))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"c":150.0}`))
	}))
	defer server.Close()

	client, err := NewClient(DefaultConfig(), zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	resp, err := client.Get(context.Background(), server.URL+"/quote?symbol=AAPL")

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.True(t, resp.IsSuccess())
	assert.Equal(t, []byte(`{"c":150.0}`), resp.Body)
}

func TestClient_GetRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`API limit reached`))
	}))
	defer server.Close()

	client, err := NewClient(DefaultConfig(), zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	resp, err := client.Get(context.Background(), server.URL+"/quote")

	require.NoError(t, err)
	assert.True(t, resp.IsRateLimited())
}

func TestClient_GetTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, err := NewClient(DefaultConfig(), zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	_, err = client.Get(context.Background(), server.URL+"/quote")

	assert.Error(t, err)
}

func TestClient_GetHonorsContext(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client, err := NewClient(DefaultConfig(), zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = client.Get(ctx, server.URL+"/quote")

	assert.Error(t, err)
}

func TestClient_SendsConfiguredHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-value", r.Header.Get("X-Custom-Header"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	config := DefaultConfig()
	config.Headers = map[string]string{"X-Custom-Header": "test-value"}
	client, err := NewClient(config, zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	resp, err := client.Get(context.Background(), server.URL+"/quote")

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
