// Package anthropic calls the Anthropic Messages API through the official SDK.
package anthropic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/excuse-backend/internal/config"
	"github.com/heartmarshall/excuse-backend/internal/provider"
)

const DefaultModel = "claude-sonnet-4-5"

// MaxTemperature is the highest temperature the Messages API accepts.
const MaxTemperature = 1.0

// Provider sends single-turn message requests to Claude.
type Provider struct {
	client anthropic.Client
	apiKey string
	model  string
	log    *slog.Logger
}

// NewProvider creates a Provider. The SDK's built-in retries are disabled:
// a failed call degrades to the local fallback instead.
func NewProvider(cfg config.LLMConfig, logger *slog.Logger) *Provider {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Provider{
		client: anthropic.NewClient(opts...),
		apiKey: cfg.APIKey,
		model:  model,
		log:    logger.With("adapter", "anthropic"),
	}
}

// Name returns the provider name used in logs and health output.
func (p *Provider) Name() string { return config.ProviderAnthropic }

// Complete sends one system+user exchange and returns the concatenated text blocks.
// The Messages API has no JSON mode; req.JSON is honored by the prompt itself.
func (p *Provider) Complete(ctx context.Context, req provider.CompletionRequest) (string, error) {
	if p.apiKey == "" {
		return "", provider.ErrNotConfigured
	}

	p.log.DebugContext(ctx, "anthropic request", slog.String("model", p.model))

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: int64(req.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
		Temperature: anthropic.Float(min(req.Temperature, MaxTemperature)),
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic: messages api: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("anthropic: empty response")
	}

	return sb.String(), nil
}
