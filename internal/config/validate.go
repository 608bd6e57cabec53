package config

import (
	"fmt"
	"slices"
)

var knownProviders = []string{ProviderOpenAI, ProviderAnthropic, ProviderGemini, ProviderOllama, ProviderNone}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	if err := c.Generator.validate(); err != nil {
		return fmt.Errorf("generator: %w", err)
	}

	if c.RateLimit.GeneratePerMinute <= 0 {
		return fmt.Errorf("rate_limit.generate_per_minute must be > 0 (got %d)", c.RateLimit.GeneratePerMinute)
	}

	return nil
}

func (l *LLMConfig) validate() error {
	if !slices.Contains(knownProviders, l.Provider) {
		return fmt.Errorf("unknown provider %q (want one of %v)", l.Provider, knownProviders)
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", l.Timeout)
	}
	if maxT := maxTemperature(l.Provider); l.Temperature < 0 || l.Temperature > maxT {
		return fmt.Errorf("temperature must be in [0,%v] for %s (got %v)", maxT, l.Provider, l.Temperature)
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}
	return nil
}

// maxTemperature is the highest sampling temperature the provider's API accepts.
func maxTemperature(provider string) float64 {
	if provider == ProviderAnthropic {
		return 1
	}
	return 2
}

func (g *GeneratorConfig) validate() error {
	if g.AIProbability < 0 || g.AIProbability > 1 {
		return fmt.Errorf("ai_probability must be in [0,1] (got %v)", g.AIProbability)
	}
	if g.FallbackMinBelievability < 1 || g.FallbackMaxBelievability > 10 {
		return fmt.Errorf("fallback believability must stay within 1..10 (got %d..%d)",
			g.FallbackMinBelievability, g.FallbackMaxBelievability)
	}
	if g.FallbackMinBelievability > g.FallbackMaxBelievability {
		return fmt.Errorf("fallback_min_believability %d exceeds fallback_max_believability %d",
			g.FallbackMinBelievability, g.FallbackMaxBelievability)
	}
	return nil
}
