package app

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/excuse-backend/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/excuse-backend/internal/adapter/provider/gemini"
	"github.com/heartmarshall/excuse-backend/internal/adapter/provider/ollama"
	"github.com/heartmarshall/excuse-backend/internal/adapter/provider/openai"
	"github.com/heartmarshall/excuse-backend/internal/config"
	"github.com/heartmarshall/excuse-backend/internal/provider"
)

type completer interface {
	Name() string
	Complete(ctx context.Context, req provider.CompletionRequest) (string, error)
}

// newCompleter selects the configured LLM provider. It returns nil when no
// provider is usable; generation then runs on the fallback pools only.
func newCompleter(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) completer {
	if !cfg.Configured() {
		logger.Info("llm provider disabled, using fallback excuses only",
			slog.String("provider", cfg.Provider),
		)
		return nil
	}

	var (
		c   completer
		err error
	)
	switch cfg.Provider {
	case config.ProviderOpenAI:
		c = openai.NewProvider(cfg, logger)
	case config.ProviderAnthropic:
		c = anthropic.NewProvider(cfg, logger)
	case config.ProviderGemini:
		c, err = newGemini(ctx, cfg, logger)
	case config.ProviderOllama:
		c, err = newOllama(cfg, logger)
	}
	if err != nil {
		logger.Warn("llm provider unavailable, using fallback excuses only",
			slog.String("provider", cfg.Provider),
			slog.String("error", err.Error()),
		)
		return nil
	}
	if c == nil {
		return nil
	}

	logger.Info("llm provider enabled", slog.String("provider", c.Name()))
	return c
}

// The constructors below return the interface so a failed construction
// yields a nil interface rather than a typed nil pointer.

func newGemini(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (completer, error) {
	p, err := gemini.NewProvider(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func newOllama(cfg config.LLMConfig, logger *slog.Logger) (completer, error) {
	p, err := ollama.NewProvider(cfg, logger)
	if err != nil {
		return nil, err
	}
	return p, nil
}
