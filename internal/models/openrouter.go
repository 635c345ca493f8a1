package models

import (
	"context"

	"google.golang.org/adk/model"
	"google.golang.org/genai"
)

// OpenRouterBaseURL is the OpenAI-compatible endpoint of OpenRouter.
const OpenRouterBaseURL = "https://openrouter.ai/api/v1"

func NewOpenRouterModel(ctx context.Context, modelName string, cfg *genai.ClientConfig) (model.LLM, error) {
	return newOpenAICompatibleModel("openrouter", OpenRouterBaseURL, modelName, cfg)
}
