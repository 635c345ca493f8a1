package emotion

import (
	"strings"
	"testing"
)

func TestEveryCategoryHasOneTemplateAndKeywordSet(t *testing.T) {
	if len(templates) != len(Categories) {
		t.Fatalf("expected %d templates, got %d", len(Categories), len(templates))
	}
	if len(keywords) != len(Categories) {
		t.Fatalf("expected %d keyword sets, got %d", len(Categories), len(keywords))
	}
	for _, category := range Categories {
		if _, ok := templates[category]; !ok {
			t.Fatalf("missing template for %s", category)
		}
		words, ok := keywords[category]
		if !ok {
			t.Fatalf("missing keyword set for %s", category)
		}
		if category == CategoryNeutral {
			if len(words) != 0 {
				t.Fatalf("neutral must not have keywords, got %v", words)
			}
			continue
		}
		if len(words) == 0 {
			t.Fatalf("expected keywords for %s", category)
		}
	}
}

func TestTemplateHeaders(t *testing.T) {
	for _, category := range Categories {
		label := strings.ToUpper(string(category))
		if category == CategoryNeutral {
			label = "BALANCED"
		}
		want := "Detected tone: " + label + "\n\n"
		if got := Template(category); !strings.HasPrefix(got, want) {
			t.Fatalf("template for %s should start with %q, got %q", category, want, got)
		}
	}
}

func TestTemplateUnknownCategoryIsNeutral(t *testing.T) {
	if Template("ecstatic") != Template(CategoryNeutral) {
		t.Fatalf("expected neutral template for unknown category")
	}
}

func TestComposeBlankReturnsWelcome(t *testing.T) {
	c := NewClassifier(MatchSubstring)
	for _, text := range []string{"", "   ", "\n\t  \r\n"} {
		if got := c.Compose(text); got != WelcomeMessage {
			t.Fatalf("expected welcome message for %q, got %q", text, got)
		}
	}
}

func TestComposeReturnsTemplateVerbatim(t *testing.T) {
	c := NewClassifier(MatchSubstring)
	if got := c.Compose("I'm worried and stressed about tomorrow"); got != Template(CategoryAnxious) {
		t.Fatalf("unexpected composed text: %q", got)
	}
	if got := c.Compose("nothing to report"); got != Template(CategoryNeutral) {
		t.Fatalf("unexpected composed text: %q", got)
	}
}

func TestKeywordsReturnsCopy(t *testing.T) {
	words := Keywords(CategoryHappy)
	words[0] = "mutated"
	if Keywords(CategoryHappy)[0] != "happy" {
		t.Fatalf("keyword table was mutated through returned slice")
	}
}
