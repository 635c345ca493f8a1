// Package config loads configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Provider kinds.
const (
	KindOpenAI = "openai"
	KindGemini = "gemini"
)

// ProviderConfig describes one entry of the ordered generation chain.
type ProviderConfig struct {
	Name    string `validate:"required"`
	KeyEnv  string `validate:"required"`
	APIKey  string
	BaseURL string `validate:"omitempty,url"`
	Model   string `validate:"required"`
	Kind    string `validate:"oneof=openai gemini"`
}

// Enabled reports whether a credential is configured for the provider.
func (p ProviderConfig) Enabled() bool {
	return strings.TrimSpace(p.APIKey) != ""
}

// Config holds runtime settings.
type Config struct {
	Port             string `validate:"required,numeric"`
	GroqAPIKey       string
	OpenRouterAPIKey string
	GoogleAPIKey     string
	GroqModel        string        `validate:"required"`
	OpenRouterModel  string        `validate:"required"`
	GeminiModel      string        `validate:"required"`
	ProviderTimeout  time.Duration `validate:"gt=0"`
	MaxTokens        int           `validate:"gt=0,lte=8192"`
	KeywordMatch     string        `validate:"oneof=substring word"`
	CORSAllowOrigins string        `validate:"required"`
	IndexHTML        string
	LogLevel         string `validate:"oneof=debug info warn error"`
	LogFile          string
}

// Load reads a .env file when present, then env vars, and applies defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err.Error())
	}

	cfg := Config{
		Port:             os.Getenv("PORT"),
		GroqAPIKey:       os.Getenv("GROQ_API_KEY"),
		OpenRouterAPIKey: os.Getenv("OPENROUTER_API_KEY"),
		GoogleAPIKey:     os.Getenv("GOOGLE_API_KEY"),
		GroqModel:        os.Getenv("GROQ_MODEL"),
		OpenRouterModel:  os.Getenv("OPENROUTER_MODEL"),
		GeminiModel:      os.Getenv("GEMINI_MODEL"),
		KeywordMatch:     strings.ToLower(strings.TrimSpace(os.Getenv("KEYWORD_MATCH"))),
		CORSAllowOrigins: os.Getenv("CORS_ALLOW_ORIGINS"),
		IndexHTML:        os.Getenv("INDEX_HTML"),
		LogLevel:         strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL"))),
		LogFile:          os.Getenv("LOG_FILE"),
	}

	cfg.ProviderTimeout = getEnvDuration("PROVIDER_TIMEOUT", 8*time.Second)
	cfg.MaxTokens = getEnvInt("MAX_TOKENS", 300)

	if cfg.Port == "" {
		cfg.Port = "8000"
	}
	if cfg.GroqModel == "" {
		cfg.GroqModel = "llama-3.3-70b-versatile"
	}
	if cfg.OpenRouterModel == "" {
		cfg.OpenRouterModel = "meta-llama/llama-3.3-70b-instruct:free"
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = "gemini-2.0-flash"
	}
	if cfg.KeywordMatch == "" {
		cfg.KeywordMatch = "substring"
	}
	if cfg.CORSAllowOrigins == "" {
		cfg.CORSAllowOrigins = "*"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg
}

// Providers returns the generation chain in the order it is attempted.
func (c Config) Providers() []ProviderConfig {
	return []ProviderConfig{
		{
			Name:    "groq",
			KeyEnv:  "GROQ_API_KEY",
			APIKey:  c.GroqAPIKey,
			BaseURL: "https://api.groq.com/openai/v1",
			Model:   c.GroqModel,
			Kind:    KindOpenAI,
		},
		{
			Name:    "openrouter",
			KeyEnv:  "OPENROUTER_API_KEY",
			APIKey:  c.OpenRouterAPIKey,
			BaseURL: "https://openrouter.ai/api/v1",
			Model:   c.OpenRouterModel,
			Kind:    KindOpenAI,
		},
		{
			Name:   "gemini",
			KeyEnv: "GOOGLE_API_KEY",
			APIKey: c.GoogleAPIKey,
			Model:  c.GeminiModel,
			Kind:   KindGemini,
		},
	}
}

// Validate checks the settings and every provider record.
func (c Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	for _, p := range c.Providers() {
		if err := v.Struct(p); err != nil {
			return fmt.Errorf("invalid provider %q: %w", p.Name, err)
		}
	}
	return nil
}

// SlogLevel maps LogLevel to a slog.Level.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvDuration accepts Go durations ("8s") or a bare number of seconds ("8").
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return defaultVal
	}
	if parsed, err := time.ParseDuration(val); err == nil {
		return parsed
	}
	if secs, err := strconv.ParseFloat(val, 64); err == nil {
		return time.Duration(secs * float64(time.Second))
	}
	return defaultVal
}
