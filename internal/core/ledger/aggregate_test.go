package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/checkin_ledger/internal/core/domain"
	"github.com/SscSPs/checkin_ledger/internal/core/ledger"
)

func mood(date domain.Day, label string, score int) domain.Entry {
	return domain.Entry{Kind: domain.KindMood, Date: date, Mood: &domain.MoodPayload{Label: label, Score: score}}
}

func TestAggregate_Moods(t *testing.T) {
	entries := []domain.Entry{
		mood("2024-03-01", "Happy", 4),
		mood("2024-03-02", "Sad", 2),
		mood("2024-02-28", "Happy", 4),
	}

	agg := ledger.Aggregate(entries, "2024-03")

	assert.Equal(t, "3.33", agg.AverageScore.StringFixed(2))
	assert.Equal(t, 3, agg.TotalEntries)
	assert.Equal(t, map[string]int{"Happy": 2, "Sad": 1}, agg.Distribution)
	assert.Equal(t, 2, agg.PeriodCounts)

	label, ok := agg.MostCommon()
	require.True(t, ok)
	assert.Equal(t, "Happy", label)
}

func TestAggregate_Empty(t *testing.T) {
	agg := ledger.Aggregate(nil, "2024-03")

	assert.True(t, agg.AverageScore.IsZero())
	assert.Zero(t, agg.TotalEntries)
	assert.Empty(t, agg.Distribution)
	assert.NotNil(t, agg.Distribution)

	_, ok := agg.MostCommon()
	assert.False(t, ok)
}

func TestAggregate_TieBreaksOnFirstSeen(t *testing.T) {
	agg := ledger.Aggregate([]domain.Entry{
		mood("2024-03-01", "Tired", 2),
		mood("2024-03-02", "Happy", 4),
		mood("2024-03-03", "Happy", 4),
		mood("2024-03-04", "Tired", 2),
	}, "")

	label, _ := agg.MostCommon()
	assert.Equal(t, "Tired", label)
	assert.Zero(t, agg.PeriodCounts)
}

func TestAggregate_JournalHasNoScore(t *testing.T) {
	agg := ledger.Aggregate([]domain.Entry{
		{Kind: domain.KindJournal, Date: "2024-03-01", Journal: &domain.JournalPayload{Content: "x", Tags: []string{"a", "b"}}},
		{Kind: domain.KindJournal, Date: "2024-03-02", Journal: &domain.JournalPayload{Content: "y", Tags: []string{"b"}}},
	}, "2024-03")

	assert.True(t, agg.AverageScore.IsZero())
	assert.Equal(t, 2, agg.TotalEntries)

	top := ledger.TopLabels(agg, 1)
	require.Len(t, top, 1)
	assert.Equal(t, domain.LabelCount{Label: "b", Count: 2}, top[0])
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, ledger.WordCount("   "))
	assert.Equal(t, 3, ledger.WordCount(" one\ttwo\n three "))
}

func TestMoodStats(t *testing.T) {
	stats := ledger.MoodStats([]domain.Entry{
		mood("2024-03-09", "Sad", 2),
		mood("2024-03-10", "Happy", 5),
	}, "2024-03-10", 30)

	assert.Equal(t, "3.50", stats.AverageScore.StringFixed(2))
	assert.Equal(t, 2, stats.Streak)
	assert.Equal(t, "Sad", stats.MostCommonMood)
}

func TestJournalStats(t *testing.T) {
	journal := []domain.Entry{
		{Kind: domain.KindJournal, Date: "2024-02-28", Journal: &domain.JournalPayload{Content: "one two", Tags: []string{"work"}}},
		{Kind: domain.KindJournal, Date: "2024-03-10", Journal: &domain.JournalPayload{Content: "three four five", Tags: []string{"work", "gym"}}},
	}

	stats := ledger.JournalStats(journal, "2024-03-10", 365)

	assert.Equal(t, 2, stats.TotalEntries)
	assert.Equal(t, 5, stats.TotalWords)
	assert.Equal(t, 3, stats.AverageWordsPerEntry)
	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 1, stats.EntriesThisMonth)
	assert.Equal(t, []domain.LabelCount{{Label: "work", Count: 2}, {Label: "gym", Count: 1}}, stats.TopTags)
}
