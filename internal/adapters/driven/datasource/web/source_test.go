package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/postliste/internal/core/domain"
)

func newTestServer(t *testing.T, files map[string]string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	for path, body := range files {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		})
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestNewSource_Validation(t *testing.T) {
	tests := []struct {
		base    string
		wantErr bool
	}{
		{"https://example.org/data", false},
		{"http://localhost:8080", false},
		{"ftp://example.org/data", true},
		{"data", true},
		{"https://", true},
		{"://bad", true},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			_, err := NewSource(tt.base, Config{})
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewSource_NormalisesBase(t *testing.T) {
	src, err := NewSource("https://example.org/data?x=1#top", Config{})

	require.NoError(t, err)
	assert.Equal(t, "https://example.org/data/", src.Location())
}

func TestSource_Fetch(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/data/postliste_index.json": `["postliste_1.json"]`,
	})

	src, err := NewSource(srv.URL+"/data", Config{})
	require.NoError(t, err)

	data, err := src.Fetch(context.Background(), "postliste_index.json")

	require.NoError(t, err)
	assert.JSONEq(t, `["postliste_1.json"]`, string(data))
}

func TestSource_Fetch_NotFound(t *testing.T) {
	srv := newTestServer(t, nil)

	src, err := NewSource(srv.URL, Config{})
	require.NoError(t, err)

	_, err = src.Fetch(context.Background(), "postliste_index.json")

	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSource_Fetch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	src, err := NewSource(srv.URL, Config{})
	require.NoError(t, err)

	_, err = src.Fetch(context.Background(), "postliste.json")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "500")
}

func TestSource_Fetch_RateLimitedSetsBackoff(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "120")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)

	src, err := NewSource(srv.URL, Config{})
	require.NoError(t, err)

	_, err = src.Fetch(context.Background(), "postliste.json")

	require.Error(t, err)
	assert.Greater(t, src.limiter.Backoff(), time.Minute)
}

func TestSource_Fetch_SendsHeaders(t *testing.T) {
	var gotAgent atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent.Store(r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte("[]"))
	}))
	t.Cleanup(srv.Close)

	src, err := NewSource(srv.URL, Config{})
	require.NoError(t, err)

	_, err = src.Fetch(context.Background(), "changes.json")

	require.NoError(t, err)
	assert.Equal(t, userAgent, gotAgent.Load())
}

func TestSource_Fetch_CancelledContext(t *testing.T) {
	srv := newTestServer(t, map[string]string{"/changes.json": "[]"})

	src, err := NewSource(srv.URL, Config{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = src.Fetch(ctx, "changes.json")

	require.ErrorIs(t, err, context.Canceled)
}
