package coach

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/adk/model"
	"google.golang.org/genai"

	"github.com/easeaico/eq-coach/internal/config"
	"github.com/easeaico/eq-coach/internal/models"
)

// BuildProviders creates a model for every provider that has a credential, keeping
// the configured order. Providers without a credential are skipped.
func BuildProviders(ctx context.Context, configs []config.ProviderConfig) ([]Provider, error) {
	var providers []Provider
	for _, pc := range configs {
		if !pc.Enabled() {
			slog.Info("provider disabled, no credential", "provider", pc.Name, "env", pc.KeyEnv)
			continue
		}

		llm, err := newModel(ctx, pc)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s model: %w", pc.Name, err)
		}
		providers = append(providers, Provider{Name: pc.Name, LLM: llm})
		slog.Info("provider enabled", "provider", pc.Name, "model", pc.Model)
	}
	return providers, nil
}

func newModel(ctx context.Context, pc config.ProviderConfig) (model.LLM, error) {
	cfg := &genai.ClientConfig{
		APIKey:      pc.APIKey,
		HTTPOptions: genai.HTTPOptions{BaseURL: pc.BaseURL},
	}

	switch {
	case pc.Kind == config.KindGemini:
		return models.NewGeminiModel(ctx, pc.Model, cfg)
	case pc.Name == "openrouter":
		return models.NewOpenRouterModel(ctx, pc.Model, cfg)
	case pc.Name == "groq":
		return models.NewGroqModel(ctx, pc.Model, cfg)
	default:
		return nil, fmt.Errorf("unsupported provider %q (kind %q)", pc.Name, pc.Kind)
	}
}
