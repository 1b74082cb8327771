package ledger

import (
	"math"

	"github.com/SscSPs/checkin_ledger/internal/core/domain"
)

const topTagCount = 5

// MoodStats summarises mood entries. The streak stops at the first gap
// going back from today and never looks further than windowDays.
func MoodStats(moods []domain.Entry, today domain.Day, windowDays int) domain.MoodStats {
	agg := Aggregate(moods, today.Month())
	stats := domain.MoodStats{
		Aggregate: agg,
		Streak:    ComputeStreaks(moods, today, windowDays).Current,
	}
	if label, ok := agg.MostCommon(); ok {
		stats.MostCommonMood = label
	}
	return stats
}

// JournalStats summarises journal entries.
func JournalStats(journal []domain.Entry, today domain.Day, windowDays int) domain.JournalStats {
	agg := Aggregate(journal, today.Month())
	streaks := ComputeStreaks(journal, today, windowDays)

	totalWords := 0
	for _, e := range journal {
		if e.Journal != nil {
			totalWords += WordCount(e.Journal.Content)
		}
	}
	avg := 0
	if agg.TotalEntries > 0 {
		avg = int(math.Round(float64(totalWords) / float64(agg.TotalEntries)))
	}

	return domain.JournalStats{
		TotalEntries:         agg.TotalEntries,
		CurrentStreak:        streaks.Current,
		LongestStreak:        streaks.Longest,
		TotalWords:           totalWords,
		AverageWordsPerEntry: avg,
		TopTags:              TopLabels(agg, topTagCount),
		EntriesThisMonth:     agg.PeriodCounts,
	}
}
