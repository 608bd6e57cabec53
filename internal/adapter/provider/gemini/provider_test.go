package gemini

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/excuse-backend/internal/config"
	"github.com/heartmarshall/excuse-backend/internal/provider"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestProvider(t *testing.T, url string) *Provider {
	t.Helper()
	p, err := NewProvider(context.Background(), config.LLMConfig{
		APIKey:  "g-test",
		BaseURL: url,
		Model:   "gemini-test",
		Timeout: 2 * time.Second,
	}, newTestLogger())
	require.NoError(t, err)
	return p
}

func TestNewProvider_NoAPIKey(t *testing.T) {
	t.Parallel()

	_, err := NewProvider(context.Background(), config.LLMConfig{}, newTestLogger())

	assert.True(t, errors.Is(err, provider.ErrNotConfigured))
}

func TestProvider_Complete_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent"), "path = %s", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"excuse\":\"Flat tire.\",\"believability\":8}"}]},"finishReason":"STOP"}]}`))
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL)
	got, err := p.Complete(context.Background(), provider.CompletionRequest{
		System:      "be helpful",
		Prompt:      "make an excuse",
		Temperature: 0.8,
		MaxTokens:   100,
		JSON:        true,
	})

	require.NoError(t, err)
	assert.Equal(t, `{"excuse":"Flat tire.","believability":8}`, got)
}

func TestProvider_Complete_ServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":500,"message":"boom","status":"INTERNAL"}}`))
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL)
	_, err := p.Complete(context.Background(), provider.CompletionRequest{Prompt: "x", MaxTokens: 10})

	assert.Error(t, err)
}

func TestProvider_Complete_EmptyCandidates(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL)
	_, err := p.Complete(context.Background(), provider.CompletionRequest{Prompt: "x", MaxTokens: 10})

	assert.Error(t, err)
}
