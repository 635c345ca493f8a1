package emotion

import (
	"strings"
	"unicode"
)

// Classifier scores text against the keyword lists.
type Classifier struct {
	mode MatchMode
}

// NewClassifier returns a Classifier using mode. Unknown modes fall back to MatchSubstring.
func NewClassifier(mode MatchMode) *Classifier {
	if mode != MatchWholeWord {
		mode = MatchSubstring
	}
	return &Classifier{mode: mode}
}

// Mode returns the keyword match mode.
func (c *Classifier) Mode() MatchMode {
	if c == nil {
		return MatchSubstring
	}
	return c.mode
}

// Classify returns the category with the strictly highest score. Ties keep the
// earlier category in Categories; no hits at all yields CategoryNeutral.
func (c *Classifier) Classify(text string) Category {
	best, bestScore := CategoryNeutral, 0
	for _, s := range c.Score(text) {
		if s.Score > bestScore {
			best, bestScore = s.Category, s.Score
		}
	}
	return best
}

// Score counts, for every category with keywords, how many of its keywords occur in text.
func (c *Classifier) Score(text string) []CategoryScore {
	lowered := strings.ToLower(text)
	contains := c.matcher(lowered)

	scores := make([]CategoryScore, 0, len(Categories))
	for _, category := range Categories {
		words := keywords[category]
		if len(words) == 0 {
			continue
		}
		n := 0
		for _, w := range words {
			if contains(w) {
				n++
			}
		}
		scores = append(scores, CategoryScore{Category: category, Score: n})
	}
	return scores
}

func (c *Classifier) matcher(lowered string) func(string) bool {
	if c.Mode() == MatchWholeWord {
		tokens := make(map[string]struct{})
		for _, tok := range strings.FieldsFunc(lowered, isSeparator) {
			tokens[tok] = struct{}{}
		}
		return func(w string) bool {
			_, ok := tokens[w]
			return ok
		}
	}
	return func(w string) bool {
		return strings.Contains(lowered, w)
	}
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
