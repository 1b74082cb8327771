package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SscSPs/checkin_ledger/internal/core/domain"
	"github.com/SscSPs/checkin_ledger/internal/core/ledger"
)

func onDays(days ...domain.Day) []domain.Entry {
	out := make([]domain.Entry, len(days))
	for i, d := range days {
		out[i] = domain.Entry{Kind: domain.KindMood, Date: d, Mood: &domain.MoodPayload{Label: "Happy", Score: 4}}
	}
	return out
}

func TestComputeStreaks(t *testing.T) {
	today := domain.Day("2024-03-10")

	testCases := []struct {
		name    string
		entries []domain.Entry
		window  int
		want    domain.Streaks
	}{
		{name: "empty", entries: nil, want: domain.Streaks{}},
		{
			name:    "run ending today",
			entries: onDays("2024-03-08", "2024-03-09", "2024-03-10"),
			want:    domain.Streaks{Current: 3, Longest: 3},
		},
		{
			name:    "no grace for a missing today",
			entries: onDays("2024-03-08", "2024-03-09"),
			want:    domain.Streaks{Current: 0, Longest: 2},
		},
		{
			name:    "same day counts once",
			entries: onDays("2024-03-10", "2024-03-10", "2024-03-09"),
			want:    domain.Streaks{Current: 2, Longest: 2},
		},
		{
			name:    "longest run in the past",
			entries: onDays("2024-03-10", "2024-03-01", "2024-03-02", "2024-03-03", "2024-03-04"),
			want:    domain.Streaks{Current: 1, Longest: 4},
		},
		{
			name:    "window truncates",
			entries: onDays("2024-03-06", "2024-03-07", "2024-03-08", "2024-03-09", "2024-03-10"),
			window:  3,
			want:    domain.Streaks{Current: 3, Longest: 3},
		},
		{
			name:    "future entries ignored",
			entries: onDays("2024-03-11", "2024-03-12"),
			want:    domain.Streaks{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ledger.ComputeStreaks(tc.entries, today, tc.window))
		})
	}
}

func TestComputeStreaks_InvalidToday(t *testing.T) {
	assert.Equal(t, domain.Streaks{}, ledger.ComputeStreaks(onDays("2024-03-10"), "not-a-day", 0))
}
