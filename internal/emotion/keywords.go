package emotion

import "strings"

var keywordText = map[Category]string{
	CategoryHappy:    "happy joy excited great wonderful amazing love glad awesome fantastic good proud grateful thankful",
	CategorySad:      "sad depressed unhappy miserable lonely crying hurt pain sorry disappointed down hopeless empty",
	CategoryAngry:    "angry mad furious annoyed frustrated hate rage irritated upset disgusted bitter resentful",
	CategoryAnxious:  "anxious worried nervous stressed overwhelmed panic afraid scared fear dread uneasy tense",
	CategoryConfused: "confused lost uncertain unsure puzzled bewildered stuck torn conflicted indecisive",
	CategoryNeutral:  "",
}

var keywords = buildKeywords()

func buildKeywords() map[Category][]string {
	out := make(map[Category][]string, len(keywordText))
	for category, text := range keywordText {
		out[category] = strings.Fields(text)
	}
	return out
}

// Keywords returns a copy of the marker words for category, in declared order.
func Keywords(category Category) []string {
	words := keywords[category]
	out := make([]string, len(words))
	copy(out, words)
	return out
}
