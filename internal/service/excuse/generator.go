package excuse

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/excuse-backend/internal/config"
	"github.com/heartmarshall/excuse-backend/internal/domain"
	"github.com/heartmarshall/excuse-backend/internal/provider"
)

type completer interface {
	Name() string
	Complete(ctx context.Context, req provider.CompletionRequest) (string, error)
}

// GeneratorOptions controls the AI/fallback policy.
type GeneratorOptions struct {
	// AIProbability is the chance a request tries the model when one is configured.
	AIProbability            float64
	FallbackMinBelievability int
	FallbackMaxBelievability int

	Timeout     time.Duration
	Temperature float64
	MaxTokens   int
}

// OptionsFromConfig builds GeneratorOptions from loaded configuration.
func OptionsFromConfig(gen config.GeneratorConfig, llm config.LLMConfig) GeneratorOptions {
	return GeneratorOptions{
		AIProbability:            gen.AIProbability,
		FallbackMinBelievability: gen.FallbackMinBelievability,
		FallbackMaxBelievability: gen.FallbackMaxBelievability,
		Timeout:                  llm.Timeout,
		Temperature:              llm.Temperature,
		MaxTokens:                llm.MaxTokens,
	}
}

// Generator produces excuses, occasionally from a language model and
// otherwise from the fallback pools. It never fails: any model problem
// degrades to a fallback excuse.
type Generator struct {
	llm   completer
	pools *Pools
	rnd   Rand
	opts  GeneratorOptions
	log   *slog.Logger
}

// NewGenerator creates a Generator. llm may be nil, in which case every
// excuse comes from the pools.
func NewGenerator(log *slog.Logger, llm completer, pools *Pools, rnd Rand, opts GeneratorOptions) *Generator {
	if opts.FallbackMinBelievability == 0 && opts.FallbackMaxBelievability == 0 {
		opts.FallbackMinBelievability = 8
		opts.FallbackMaxBelievability = domain.MaxBelievability
	}
	// Fallback scores stay within the believability scale whatever the caller passes.
	opts.FallbackMinBelievability = domain.ClampBelievability(opts.FallbackMinBelievability)
	opts.FallbackMaxBelievability = domain.ClampBelievability(opts.FallbackMaxBelievability)
	if opts.FallbackMaxBelievability < opts.FallbackMinBelievability {
		opts.FallbackMaxBelievability = opts.FallbackMinBelievability
	}
	return &Generator{
		llm:   llm,
		pools: pools,
		rnd:   rnd,
		opts:  opts,
		log:   log.With("service", "generator"),
	}
}

// Generate returns an excuse for the category and tone. Unknown values use
// generic prompt wording and the default pool.
func (g *Generator) Generate(ctx context.Context, category domain.Category, tone domain.Tone) domain.GenerationResult {
	fallback := g.pools.Pick(category, tone, g.rnd)

	if g.llm == nil {
		return g.fallback(fallback)
	}
	if g.rnd.Float64() >= g.opts.AIProbability {
		return g.fallback(fallback)
	}

	text, score, err := g.fromModel(ctx, category, tone)
	if err != nil {
		g.log.WarnContext(ctx, "model generation failed, using fallback",
			slog.String("provider", g.llm.Name()),
			slog.String("category", category.String()),
			slog.String("tone", tone.String()),
			slog.String("error", err.Error()),
		)
		return g.fallback(fallback)
	}

	return domain.GenerationResult{
		Excuse:        text,
		Believability: score,
		Source:        domain.SourceAI,
	}
}

func (g *Generator) fromModel(ctx context.Context, category domain.Category, tone domain.Tone) (string, int, error) {
	if g.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.opts.Timeout)
		defer cancel()
	}

	raw, err := g.llm.Complete(ctx, provider.CompletionRequest{
		System:      systemPrompt,
		Prompt:      buildPrompt(category, tone),
		Temperature: g.opts.Temperature,
		MaxTokens:   g.opts.MaxTokens,
		JSON:        true,
	})
	if err != nil {
		return "", 0, fmt.Errorf("complete: %w", err)
	}

	return parseReply(raw)
}

func (g *Generator) fallback(text string) domain.GenerationResult {
	lo, hi := g.opts.FallbackMinBelievability, g.opts.FallbackMaxBelievability
	return domain.GenerationResult{
		Excuse:        text,
		Believability: lo + g.rnd.IntN(hi-lo+1),
		Source:        domain.SourceFallback,
	}
}
