package models

import (
	"context"

	"google.golang.org/adk/model"
	"google.golang.org/genai"
)

// GroqBaseURL is the OpenAI-compatible endpoint of Groq.
const GroqBaseURL = "https://api.groq.com/openai/v1"

// NewGroqModel creates a Groq model instance.
//
// Groq serves an OpenAI-compatible API, so the request goes through the shared
// OpenAI client. The modelName specifies which hosted model to target
// (e.g., "llama-3.3-70b-versatile").
func NewGroqModel(ctx context.Context, modelName string, cfg *genai.ClientConfig) (model.LLM, error) {
	return newOpenAICompatibleModel("groq", GroqBaseURL, modelName, cfg)
}
