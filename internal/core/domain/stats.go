package domain

import "github.com/shopspring/decimal"

// Streaks holds consecutive-day counts ending today and overall in the window.
type Streaks struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// LabelCount is one bucket of a distribution.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Aggregate summarises a set of entries.
type Aggregate struct {
	AverageScore decimal.Decimal `json:"averageScore"`
	TotalEntries int             `json:"totalEntries"`
	Distribution map[string]int  `json:"distribution"`
	// Order lists distribution labels in first-seen order; it drives tie-breaks.
	Order        []string `json:"-"`
	PeriodCounts int      `json:"periodCounts"`
}

// MostCommon returns the most frequent label, breaking ties by first-seen order.
func (a Aggregate) MostCommon() (string, bool) {
	best, bestCount := "", 0
	for _, label := range a.Order {
		if c := a.Distribution[label]; c > bestCount {
			best, bestCount = label, c
		}
	}
	return best, bestCount > 0
}

// MoodStats is the mood dashboard summary.
type MoodStats struct {
	Aggregate
	MostCommonMood string `json:"mostCommonMood,omitempty"`
	Streak         int    `json:"streak"`
}

// JournalStats is the journal dashboard summary.
type JournalStats struct {
	TotalEntries         int          `json:"totalEntries"`
	CurrentStreak        int          `json:"currentStreak"`
	LongestStreak        int          `json:"longestStreak"`
	TotalWords           int          `json:"totalWords"`
	AverageWordsPerEntry int          `json:"averageWordsPerEntry"`
	TopTags              []LabelCount `json:"topTags"`
	EntriesThisMonth     int          `json:"entriesThisMonth"`
}

// LedgerStats combines the per-kind summaries for a trailing period.
type LedgerStats struct {
	PeriodDays int          `json:"periodDays"`
	CheckIns   Aggregate    `json:"checkIns"`
	Moods      MoodStats    `json:"moods"`
	Journal    JournalStats `json:"journal"`
	Streaks    Streaks      `json:"streaks"`
}

// JournalEntryView is a journal entry with its linked mood resolved.
// LinkedMood is nil when no mood was linked or the linked mood no longer exists.
type JournalEntryView struct {
	Entry
	LinkedMood *MoodPayload
}

// FeedItem is a contact's check-in as shown in the caller's feed.
type FeedItem struct {
	Entry
	StatusEmoji  string
	ContactMuted bool
}
