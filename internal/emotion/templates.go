package emotion

import "strings"

// WelcomeMessage is returned instead of coaching when the message is blank.
const WelcomeMessage = "Welcome to your EQ Coach! Share how you're feeling or describe a social situation, and I'll provide personalized emotional intelligence coaching."

var templates = map[Category]string{
	CategoryHappy: "Detected tone: HAPPY\n\n" +
		"Your positive energy is wonderful! Here's how to maximize it:\n\n" +
		"1) Share this feeling with someone - positivity is contagious and deepens bonds\n" +
		"2) Note exactly what triggered this joy so you can recreate it\n" +
		"3) Use this confident mood to have a conversation you've been putting off\n" +
		"4) Practice expressing gratitude to someone who contributed to your happiness",
	CategorySad: "Detected tone: SAD\n\n" +
		"I hear the heaviness in your words. Here's your coaching plan:\n\n" +
		"1) Name the exact feeling - is it grief, disappointment, or loneliness? Precision helps processing\n" +
		"2) Allow yourself to feel it without judgment - suppression backfires\n" +
		"3) Reach out to one trusted person today - vulnerability builds authentic connection\n" +
		"4) Try 5-4-3-2-1 grounding: name 5 things you see, 4 you hear, 3 you touch, 2 you smell, 1 you taste",
	CategoryAngry: "Detected tone: ANGRY\n\n" +
		"I sense strong frustration. Let's work through it constructively:\n\n" +
		"1) Pause - take 3 slow deep breaths before responding to anyone\n" +
		"2) Identify the boundary that was crossed - anger often signals unmet needs\n" +
		"3) Express yourself using 'I feel... when... because...' format instead of accusations\n" +
		"4) Channel the energy physically - even a 5-minute walk resets your nervous system",
	CategoryAnxious: "Detected tone: ANXIOUS\n\n" +
		"I notice worry in your words. Let's ground you:\n\n" +
		"1) Feel your feet on the floor right now - anchor to the present\n" +
		"2) Challenge the thought: what's the actual probability of your worst fear?\n" +
		"3) Focus only on what you can control in the next hour, nothing more\n" +
		"4) Box breathing: inhale 4 seconds, hold 4, exhale 4, hold 4 - repeat 4 times",
	CategoryConfused: "Detected tone: CONFUSED\n\n" +
		"Uncertainty is uncomfortable but completely normal. Try this:\n\n" +
		"1) Separate what you DO know from what you DON'T - write it down\n" +
		"2) Ask one specific clarifying question to the right person\n" +
		"3) Accept that not everything needs an immediate answer - sit with ambiguity\n" +
		"4) Trust your track record - you've navigated uncertainty before successfully",
	CategoryNeutral: "Detected tone: BALANCED\n\n" +
		"Great emotional baseline! Perfect time to build EQ skills:\n\n" +
		"1) In your next conversation, practice active listening - paraphrase what you hear\n" +
		"2) Try mirroring someone's body language subtly - it builds rapport\n" +
		"3) Ask one open-ended question today to deepen a relationship\n" +
		"4) Reflect on your last social interaction - what went well and what would you change?",
}

// Template returns the coaching text for category. Unknown categories get the neutral text.
func Template(category Category) string {
	if t, ok := templates[category]; ok {
		return t
	}
	return templates[CategoryNeutral]
}

// Compose returns the welcome message for blank text and the template of the
// classified category otherwise.
func (c *Classifier) Compose(text string) string {
	if strings.TrimSpace(text) == "" {
		return WelcomeMessage
	}
	return Template(c.Classify(text))
}
