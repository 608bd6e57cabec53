// Package ollama calls a local Ollama server through its Go API client.
package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	ollama "github.com/ollama/ollama/api"

	"github.com/heartmarshall/excuse-backend/internal/config"
	"github.com/heartmarshall/excuse-backend/internal/provider"
)

const (
	defaultBaseURL = "http://localhost:11434"
	DefaultModel   = "llama3.1"
)

// Provider sends non-streaming chat requests to Ollama.
type Provider struct {
	client *ollama.Client
	model  string
	log    *slog.Logger
}

// NewProvider creates a Provider pointed at cfg.BaseURL (default localhost:11434).
func NewProvider(cfg config.LLMConfig, logger *slog.Logger) (*Provider, error) {
	raw := cfg.BaseURL
	if raw == "" {
		raw = defaultBaseURL
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("ollama: parse base url %q: %w", raw, err)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Provider{
		client: ollama.NewClient(base, &http.Client{Timeout: cfg.Timeout}),
		model:  model,
		log:    logger.With("adapter", "ollama"),
	}, nil
}

// Name returns the provider name used in logs and health output.
func (p *Provider) Name() string { return config.ProviderOllama }

// Complete sends one system+user exchange and returns the assistant message text.
func (p *Provider) Complete(ctx context.Context, req provider.CompletionRequest) (string, error) {
	stream := false
	chatReq := &ollama.ChatRequest{
		Model: p.model,
		Messages: []ollama.Message{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.Prompt},
		},
		Stream: &stream,
		Options: map[string]any{
			"temperature": req.Temperature,
			"num_predict": req.MaxTokens,
		},
	}
	if req.JSON {
		chatReq.Format = json.RawMessage(`"json"`)
	}

	p.log.DebugContext(ctx, "ollama request", slog.String("model", p.model))

	var sb strings.Builder
	err := p.client.Chat(ctx, chatReq, func(resp ollama.ChatResponse) error {
		sb.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama: chat: %w", err)
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("ollama: empty response")
	}
	return sb.String(), nil
}
