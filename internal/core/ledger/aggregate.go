package ledger

import (
	"sort"
	"strings"

	"github.com/SscSPs/checkin_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Aggregate computes the average score, distribution and period count of entries.
// period is a date prefix ("2026-10" for a month); entries are matched on their
// logical date, not on when they were written. Empty input yields zero values.
func Aggregate(entries []domain.Entry, period string) domain.Aggregate {
	agg := domain.Aggregate{
		AverageScore: decimal.Zero,
		Distribution: make(map[string]int),
		Order:        []string{},
	}

	var sum, scored int64
	for _, e := range entries {
		agg.TotalEntries++
		if score, ok := e.Score(); ok {
			sum += int64(score)
			scored++
		}
		for _, label := range e.Labels() {
			if label == "" {
				continue
			}
			if _, seen := agg.Distribution[label]; !seen {
				agg.Order = append(agg.Order, label)
			}
			agg.Distribution[label]++
		}
		if period != "" && strings.HasPrefix(string(e.Date), period) {
			agg.PeriodCounts++
		}
	}

	if scored > 0 {
		agg.AverageScore = decimal.NewFromInt(sum).Div(decimal.NewFromInt(scored)).Round(2)
	}
	return agg
}

// TopLabels returns up to n labels by descending count; equal counts keep first-seen order.
func TopLabels(agg domain.Aggregate, n int) []domain.LabelCount {
	out := make([]domain.LabelCount, 0, len(agg.Order))
	for _, label := range agg.Order {
		out = append(out, domain.LabelCount{Label: label, Count: agg.Distribution[label]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// WordCount counts whitespace-delimited tokens.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
