package models

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"google.golang.org/adk/model"
	"google.golang.org/genai"
)

type chatRequest struct {
	Model     string `json:"model"`
	MaxTokens int    `json:"max_tokens"`
	Messages  []struct {
		Role    string `json:"role"`
		Content any    `json:"content"`
	} `json:"messages"`
}

func newChatServer(t *testing.T, status int, reply string, captured *chatRequest, calls *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			atomic.AddInt32(calls, 1)
		}
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected authorization header: %q", got)
		}
		if captured != nil {
			if err := json.NewDecoder(r.Body).Decode(captured); err != nil {
				t.Errorf("failed to decode request: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
			return
		}
		body, _ := json.Marshal(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1,
			"model":   "test-model",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": reply},
			}},
		})
		_, _ = w.Write(body)
	}))
}

func firstResponse(t *testing.T, llm model.LLM, req *model.LLMRequest) (*model.LLMResponse, error) {
	t.Helper()
	var resp *model.LLMResponse
	var err error
	llm.GenerateContent(context.Background(), req, false)(func(r *model.LLMResponse, e error) bool {
		resp, err = r, e
		return false
	})
	return resp, err
}

func testRequest() *model.LLMRequest {
	return &model.LLMRequest{
		Contents: []*genai.Content{genai.NewContentFromText("I feel stuck", "user")},
		Config: &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText("be a coach", "system"),
			MaxOutputTokens:   300,
		},
	}
}

func TestGroqModelGenerateContent(t *testing.T) {
	var captured chatRequest
	srv := newChatServer(t, http.StatusOK, "Take a breath.", &captured, nil)
	defer srv.Close()

	llm, err := NewGroqModel(context.Background(), "llama-test", &genai.ClientConfig{
		APIKey:      "test-key",
		HTTPOptions: genai.HTTPOptions{BaseURL: srv.URL + "/v1/"},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if llm.Name() != "llama-test" {
		t.Fatalf("unexpected name: %s", llm.Name())
	}

	resp, err := firstResponse(t, llm, testRequest())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp == nil || resp.Content == nil || len(resp.Content.Parts) == 0 || resp.Content.Parts[0].Text != "Take a breath." {
		t.Fatalf("unexpected response: %#v", resp)
	}

	if captured.Model != "llama-test" {
		t.Fatalf("unexpected model: %s", captured.Model)
	}
	if captured.MaxTokens != 300 {
		t.Fatalf("unexpected max_tokens: %d", captured.MaxTokens)
	}
	if len(captured.Messages) != 2 || captured.Messages[0].Role != "system" || captured.Messages[1].Role != "user" {
		t.Fatalf("unexpected messages: %+v", captured.Messages)
	}
	if captured.Messages[1].Content != "I feel stuck" {
		t.Fatalf("unexpected user content: %#v", captured.Messages[1].Content)
	}
}

func TestOpenRouterModelNonOKIsErrorWithoutRetry(t *testing.T) {
	var calls int32
	srv := newChatServer(t, http.StatusInternalServerError, "", nil, &calls)
	defer srv.Close()

	llm, err := NewOpenRouterModel(context.Background(), "router-test", &genai.ClientConfig{
		APIKey:      "test-key",
		HTTPOptions: genai.HTTPOptions{BaseURL: srv.URL + "/api/v1/"},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := firstResponse(t, llm, testRequest()); err == nil {
		t.Fatalf("expected error for non-OK status")
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected exactly one request, got %d", got)
	}
}

func TestNewOpenAICompatibleModelValidation(t *testing.T) {
	if _, err := NewGroqModel(context.Background(), "m", nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
	if _, err := NewGroqModel(context.Background(), "m", &genai.ClientConfig{}); err == nil {
		t.Fatalf("expected error for missing API key")
	}
	if _, err := NewOpenRouterModel(context.Background(), "", &genai.ClientConfig{APIKey: "k"}); err == nil {
		t.Fatalf("expected error for empty model name")
	}
}

func TestNewGeminiModelValidation(t *testing.T) {
	if _, err := NewGeminiModel(context.Background(), "gemini-test", &genai.ClientConfig{}); err == nil {
		t.Fatalf("expected error for missing API key")
	}
	if _, err := NewGeminiModel(context.Background(), " ", &genai.ClientConfig{APIKey: "k"}); err == nil {
		t.Fatalf("expected error for empty model name")
	}
}

func TestBuildOpenAIParamsOrdersSystemFirst(t *testing.T) {
	req := testRequest()
	req.Contents = append(req.Contents, genai.NewContentFromText("earlier reply", "model"))

	params := buildOpenAIParams(req, "fallback-model")
	if params.Model != "fallback-model" {
		t.Fatalf("unexpected model: %s", params.Model)
	}
	if len(params.Messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(params.Messages))
	}
	if params.Messages[0].OfSystem == nil || params.Messages[1].OfUser == nil || params.Messages[2].OfAssistant == nil {
		t.Fatalf("unexpected message roles: %+v", params.Messages)
	}
}

func TestBuildOpenAIParamsSkipsNilParts(t *testing.T) {
	req := &model.LLMRequest{
		Contents: []*genai.Content{
			nil,
			{Role: "user", Parts: []*genai.Part{nil, {Text: "I feel "}, {Text: "stuck"}}},
		},
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{nil}},
		},
	}

	params := buildOpenAIParams(req, "m")
	if len(params.Messages) != 1 || params.Messages[0].OfUser == nil {
		t.Fatalf("expected a single user message, got %+v", params.Messages)
	}
	if got := params.Messages[0].OfUser.Content.OfString.Value; got != "I feel stuck" {
		t.Fatalf("unexpected user content: %q", got)
	}
}
