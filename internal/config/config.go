package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	LLM       LLMConfig       `yaml:"llm"`
	Generator GeneratorConfig `yaml:"generator"`
	Emergency EmergencyConfig `yaml:"emergency"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
// When File is set, logs are also written to a size-rotated file.
type LogConfig struct {
	Level      string `yaml:"level"        env:"LOG_LEVEL"        env-default:"info"`
	Format     string `yaml:"format"       env:"LOG_FORMAT"       env-default:"json"`
	File       string `yaml:"file"         env:"LOG_FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb"  env:"LOG_MAX_SIZE_MB"  env-default:"50"`
	MaxBackups int    `yaml:"max_backups"  env:"LOG_MAX_BACKUPS"  env-default:"3"`
	MaxAgeDays int    `yaml:"max_age_days" env:"LOG_MAX_AGE_DAYS" env-default:"28"`
	Compress   bool   `yaml:"compress"     env:"LOG_COMPRESS"     env-default:"true"`
}

// RateLimitConfig holds per-IP limits for the generation endpoints.
type RateLimitConfig struct {
	GeneratePerMinute int           `yaml:"generate_per_minute" env:"RATE_LIMIT_GENERATE_PER_MINUTE" env-default:"30"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"5m"`
}

// LLM provider names.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
	ProviderOllama    = "ollama"
	ProviderNone      = "none"
)

// LLMConfig holds the external text-generation provider settings.
// An empty APIKey means the provider is unavailable; it is never fatal.
type LLMConfig struct {
	Provider    string        `yaml:"provider"    env:"LLM_PROVIDER"                          env-default:"openai"`
	APIKey      string        `yaml:"api_key"     env:"LLM_API_KEY,OPENAI_API_KEY,OPENAI_KEY"`
	Model       string        `yaml:"model"       env:"LLM_MODEL"`
	BaseURL     string        `yaml:"base_url"    env:"LLM_BASE_URL"`
	Timeout     time.Duration `yaml:"timeout"     env:"LLM_TIMEOUT"                           env-default:"15s"`
	Temperature float64       `yaml:"temperature" env:"LLM_TEMPERATURE"                       env-default:"0.8"`
	MaxTokens   int           `yaml:"max_tokens"  env:"LLM_MAX_TOKENS"                        env-default:"256"`
}

// Configured reports whether the selected provider has what it needs to be called.
// Ollama runs locally and needs no credential.
func (c LLMConfig) Configured() bool {
	switch c.Provider {
	case ProviderNone, "":
		return false
	case ProviderOllama:
		return true
	}
	return c.APIKey != ""
}

// GeneratorConfig holds the excuse generation policy.
type GeneratorConfig struct {
	AIProbability            float64 `yaml:"ai_probability"             env:"GENERATOR_AI_PROBABILITY"             env-default:"0.3"`
	FallbackMinBelievability int     `yaml:"fallback_min_believability" env:"GENERATOR_FALLBACK_MIN_BELIEVABILITY" env-default:"8"`
	FallbackMaxBelievability int     `yaml:"fallback_max_believability" env:"GENERATOR_FALLBACK_MAX_BELIEVABILITY" env-default:"10"`
	// PoolsPath overrides the embedded fallback excuse pools with a YAML file.
	PoolsPath string `yaml:"pools_path" env:"GENERATOR_POOLS_PATH"`
	// Seed makes generation deterministic when non-zero.
	Seed uint64 `yaml:"seed" env:"GENERATOR_SEED" env-default:"0"`
}

// EmergencyConfig holds the placeholder caller used by the emergency endpoint.
type EmergencyConfig struct {
	ContactName         string `yaml:"contact_name"         env:"EMERGENCY_CONTACT_NAME"         env-default:"Sarah Johnson"`
	ContactRelationship string `yaml:"contact_relationship" env:"EMERGENCY_CONTACT_RELATIONSHIP" env-default:"Sister"`
}
