package domain

import "strings"

// MoodOption is one entry of the fixed mood picker.
type MoodOption struct {
	Emoji string `json:"emoji"`
	Label string `json:"label"`
	Score int    `json:"score"`
}

// DefaultMoodScore is used when a mood is logged without a score or catalog match.
const DefaultMoodScore = 3

// MoodOptions lists the moods offered to users, in display order.
var MoodOptions = []MoodOption{
	{Emoji: "😢", Label: "Very Sad", Score: 1},
	{Emoji: "😔", Label: "Sad", Score: 2},
	{Emoji: "😐", Label: "Neutral", Score: 3},
	{Emoji: "🙂", Label: "Happy", Score: 4},
	{Emoji: "😊", Label: "Very Happy", Score: 5},
	{Emoji: "😴", Label: "Tired", Score: 2},
	{Emoji: "😰", Label: "Anxious", Score: 2},
	{Emoji: "😡", Label: "Angry", Score: 2},
	{Emoji: "🤗", Label: "Grateful", Score: 4},
	{Emoji: "✨", Label: "Excited", Score: 5},
}

// LookupMoodOption finds a catalog mood by label, case-insensitively.
func LookupMoodOption(label string) (MoodOption, bool) {
	for _, opt := range MoodOptions {
		if strings.EqualFold(opt.Label, strings.TrimSpace(label)) {
			return opt, true
		}
	}
	return MoodOption{}, false
}

// StatusOption is one of the quick check-in statuses.
type StatusOption struct {
	ID    string `json:"id"`
	Emoji string `json:"emoji"`
	Text  string `json:"text"`
}

// StatusOptions lists the quick statuses shown on the home screen.
var StatusOptions = []StatusOption{
	{ID: "ok", Emoji: "✅", Text: "Alles oké"},
	{ID: "busy", Emoji: "⏳", Text: "Druk bezig"},
	{ID: "call", Emoji: "☎️", Text: "Bel me later"},
}

// StatusEmoji maps a check-in status (id or display text) to its emoji.
// Free-text statuses get a speech bubble.
func StatusEmoji(status string) string {
	for _, opt := range StatusOptions {
		if strings.EqualFold(status, opt.ID) || status == opt.Text {
			return opt.Emoji
		}
	}
	return "💬"
}
