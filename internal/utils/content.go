package utils

import (
	"strings"

	"google.golang.org/adk/model"
	"google.golang.org/genai"
)

func ExtractContentText(content *genai.Content) string {
	if content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}

// ExtractResponseText returns the text of a model response as generated, or "" when
// the response carries no text.
func ExtractResponseText(resp *model.LLMResponse) string {
	if resp == nil {
		return ""
	}
	return ExtractContentText(resp.Content)
}
