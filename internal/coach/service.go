// Package coach composes best-effort generated coaching with the local keyword fallback.
package coach

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/adk/model"

	"github.com/easeaico/eq-coach/internal/emotion"
	"github.com/easeaico/eq-coach/internal/prompt"
	"github.com/easeaico/eq-coach/internal/utils"
)

// Sources reported in Result.Source besides provider names.
const (
	SourceWelcome  = "welcome"
	SourceFallback = "fallback"
)

// DefaultTimeout bounds a single provider attempt.
const DefaultTimeout = 8 * time.Second

var errEmptyResponse = errors.New("empty response")

// Provider is one credentialed entry of the generation chain.
type Provider struct {
	Name string
	LLM  model.LLM
}

// Result is the coaching text and where it came from.
type Result struct {
	Output   string
	Source   string
	Category emotion.Category
}

// Service answers a message with generated coaching when a provider succeeds and
// with the canned template of the classified category otherwise.
type Service struct {
	classifier *emotion.Classifier
	providers  []Provider
	timeout    time.Duration
	maxTokens  int32
}

// NewService returns a new coach service. Providers are tried in the given order.
func NewService(classifier *emotion.Classifier, providers []Provider, timeout time.Duration, maxTokens int) *Service {
	if classifier == nil {
		classifier = emotion.NewClassifier(emotion.MatchSubstring)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxTokens <= 0 {
		maxTokens = prompt.DefaultMaxTokens
	}
	return &Service{
		classifier: classifier,
		providers:  providers,
		timeout:    timeout,
		maxTokens:  int32(maxTokens),
	}
}

// ProviderNames lists the configured providers in attempt order.
func (s *Service) ProviderNames() []string {
	names := make([]string, 0, len(s.providers))
	for _, p := range s.providers {
		names = append(names, p.Name)
	}
	return names
}

// Solve never fails: blank text gets the welcome message, otherwise the first provider
// answer, otherwise the local template.
func (s *Service) Solve(ctx context.Context, text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Output: emotion.WelcomeMessage, Source: SourceWelcome}
	}

	if output, name, ok := s.Generate(ctx, text); ok {
		return Result{Output: output, Source: name}
	}

	category := s.classifier.Classify(text)
	slog.Debug("using local coaching", "category", category)
	return Result{
		Output:   emotion.Template(category),
		Source:   SourceFallback,
		Category: category,
	}
}

// Generate walks the providers in order and returns the first non-empty answer.
// Failures are logged and the next provider is tried.
func (s *Service) Generate(ctx context.Context, text string) (string, string, bool) {
	for _, p := range s.providers {
		if p.LLM == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			slog.Warn("generation abandoned", "error", err.Error())
			return "", "", false
		}

		start := time.Now()
		output, err := s.attempt(ctx, p, text)
		if err != nil {
			slog.Warn("provider attempt failed", "provider", p.Name, "latency_ms", time.Since(start).Milliseconds(), "error", err.Error())
			continue
		}
		slog.Info("provider answered", "provider", p.Name, "latency_ms", time.Since(start).Milliseconds())
		return output, p.Name, true
	}
	return "", "", false
}

func (s *Service) attempt(ctx context.Context, p Provider, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req := prompt.NewCoachRequest(text, s.maxTokens)

	var resp *model.LLMResponse
	var err error
	seq := p.LLM.GenerateContent(ctx, req, false)
	seq(func(r *model.LLMResponse, e error) bool {
		resp = r
		err = e
		return false
	})
	if err != nil {
		return "", err
	}

	output := utils.ExtractResponseText(resp)
	if strings.TrimSpace(output) == "" {
		return "", fmt.Errorf("%s: %w", p.Name, errEmptyResponse)
	}
	return output, nil
}
