// Package gemini calls Google's Gemini API through the genai SDK.
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/heartmarshall/excuse-backend/internal/config"
	"github.com/heartmarshall/excuse-backend/internal/provider"
)

const DefaultModel = "gemini-2.5-flash"

// Provider sends generateContent requests to Gemini.
type Provider struct {
	client *genai.Client
	model  string
	log    *slog.Logger
}

// NewProvider creates a Provider. It returns provider.ErrNotConfigured when
// no API key is set, since the SDK would otherwise look for ambient credentials.
func NewProvider(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, provider.ErrNotConfigured
	}

	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Provider{
		client: client,
		model:  model,
		log:    logger.With("adapter", "gemini"),
	}, nil
}

// Name returns the provider name used in logs and health output.
func (p *Provider) Name() string { return config.ProviderGemini }

// Complete sends one system+user exchange and returns the response text.
func (p *Provider) Complete(ctx context.Context, req provider.CompletionRequest) (string, error) {
	gc := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(req.Temperature)),
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if req.System != "" {
		gc.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.JSON {
		gc.ResponseMIMEType = "application/json"
	}

	p.log.DebugContext(ctx, "gemini request", slog.String("model", p.model))

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(req.Prompt), gc)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("gemini: empty response")
	}
	return text, nil
}
