// Package emotion classifies the tone of a message and maps it to coaching text.
package emotion

import (
	"fmt"
	"strings"
)

// Category is an emotional tone label.
type Category string

const (
	CategoryHappy    Category = "happy"
	CategorySad      Category = "sad"
	CategoryAngry    Category = "angry"
	CategoryAnxious  Category = "anxious"
	CategoryConfused Category = "confused"
	CategoryNeutral  Category = "neutral"
)

// Categories lists every category in tie-break order. Neutral is last because it is
// only ever the default.
var Categories = []Category{
	CategoryHappy,
	CategorySad,
	CategoryAngry,
	CategoryAnxious,
	CategoryConfused,
	CategoryNeutral,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory maps a case-insensitive name to a Category.
func ParseCategory(name string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(name)))
	if !c.Valid() {
		return CategoryNeutral, fmt.Errorf("unknown category: %q", name)
	}
	return c, nil
}

// MatchMode selects how keywords are located in text.
type MatchMode string

const (
	// MatchSubstring counts a keyword when it appears anywhere in the text,
	// including inside longer words.
	MatchSubstring MatchMode = "substring"
	// MatchWholeWord counts a keyword only when it is a complete token.
	MatchWholeWord MatchMode = "word"
)

// ParseMatchMode maps a config value to a MatchMode. Empty means MatchSubstring.
func ParseMatchMode(value string) (MatchMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(MatchSubstring):
		return MatchSubstring, nil
	case string(MatchWholeWord), "whole", "wholeword":
		return MatchWholeWord, nil
	default:
		return MatchSubstring, fmt.Errorf("unknown keyword match mode: %q", value)
	}
}

// CategoryScore is the number of distinct keywords of a category found in a text.
type CategoryScore struct {
	Category Category
	Score    int
}
