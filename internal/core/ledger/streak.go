package ledger

import "github.com/SscSPs/checkin_ledger/internal/core/domain"

// DefaultStreakWindow is how many trailing days ComputeStreaks inspects.
const DefaultStreakWindow = 365

// ComputeStreaks walks back from today over windowDays calendar days.
// Current is the run that includes today (0 when today has no entry);
// Longest is the longest run inside the window. Several entries on the
// same day count once.
func ComputeStreaks(entries []domain.Entry, today domain.Day, windowDays int) domain.Streaks {
	var s domain.Streaks
	start := today.Time()
	if start.IsZero() {
		return s
	}
	if windowDays <= 0 {
		windowDays = DefaultStreakWindow
	}

	days := make(map[domain.Day]struct{}, len(entries))
	for _, e := range entries {
		days[e.Date] = struct{}{}
	}

	run := 0
	for i := 0; i < windowDays; i++ {
		if _, ok := days[domain.DayOf(start.AddDate(0, 0, -i))]; !ok {
			run = 0
			continue
		}
		run++
		if run == i+1 {
			s.Current = run
		}
		if run > s.Longest {
			s.Longest = run
		}
	}
	return s
}
