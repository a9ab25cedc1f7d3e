package appstore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_PrefersHighestResolution(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "TIKTOK", r.URL.Query().Get("term"))
		assert.Equal(t, "software", r.URL.Query().Get("entity"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{
			"artworkUrl512":"https://example.com/512.png",
			"artworkUrl100":"https://example.com/100.png",
			"artworkUrl60":"https://example.com/60.png"
		}]}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	url, err := client.Resolve(context.Background(), "TIKTOK")

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/512.png", url)
}

func TestResolve_FallsBackToSmallerArtwork(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"artworkUrl100":"https://example.com/100.png"}]}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	url, err := client.Resolve(context.Background(), "HINGE")

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/100.png", url)
}

func TestResolve_CachesResults(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"artworkUrl512":"https://example.com/512.png"}]}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	first, err := client.Resolve(context.Background(), "TIKTOK")
	require.NoError(t, err)
	second, err := client.Resolve(context.Background(), "TIKTOK")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestResolve_CachesMisses(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	url, err := client.Resolve(context.Background(), "OBSCURE APP")
	require.NoError(t, err)
	assert.Empty(t, url)

	_, err = client.Resolve(context.Background(), "OBSCURE APP")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}
