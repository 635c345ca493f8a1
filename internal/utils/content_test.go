package utils

import (
	"testing"

	"google.golang.org/adk/model"
	"google.golang.org/genai"
)

func TestExtractContentTextJoinsParts(t *testing.T) {
	content := &genai.Content{
		Role:  "model",
		Parts: []*genai.Part{{Text: "Breathe. "}, nil, {Text: "Then talk."}},
	}
	if got := ExtractContentText(content); got != "Breathe. Then talk." {
		t.Fatalf("unexpected text: %q", got)
	}
	if got := ExtractContentText(nil); got != "" {
		t.Fatalf("expected empty text for nil content, got %q", got)
	}
}

func TestExtractResponseText(t *testing.T) {
	resp := &model.LLMResponse{Content: genai.NewContentFromText("  hi \n", "model")}
	if got := ExtractResponseText(resp); got != "  hi \n" {
		t.Fatalf("unexpected text: %q", got)
	}
	if got := ExtractResponseText(&model.LLMResponse{}); got != "" {
		t.Fatalf("expected empty text, got %q", got)
	}
	if got := ExtractResponseText(nil); got != "" {
		t.Fatalf("expected empty text for nil response, got %q", got)
	}
}
