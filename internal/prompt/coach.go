// Package prompt holds the coaching instruction and assembles provider requests.
package prompt

import (
	"google.golang.org/adk/model"
	"google.golang.org/genai"
)

// CoachInstruction is the system instruction sent with every generation attempt.
const CoachInstruction = "You are an Emotional Intelligence Coach. Analyze the user's emotional tone and feelings from their message. Identify specific emotions, provide empathetic validation, then give 3-4 concrete actionable social skills coaching tips. Be warm but direct. Keep response under 150 words."

// DefaultMaxTokens caps the length of generated coaching text.
const DefaultMaxTokens = 300

// NewCoachRequest builds a fresh request carrying the coach instruction and the raw
// user text. Providers may mutate the request, so callers build one per attempt.
func NewCoachRequest(text string, maxTokens int32) *model.LLMRequest {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &model.LLMRequest{
		Contents: []*genai.Content{
			genai.NewContentFromText(text, "user"),
		},
		Config: &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(CoachInstruction, "system"),
			MaxOutputTokens:   maxTokens,
		},
	}
}
