package ledger

import (
	"sort"
	"strings"

	"github.com/SscSPs/checkin_ledger/internal/core/domain"
)

// QueryOptions filters a set of entries. Zero-valued fields impose no constraint.
type QueryOptions struct {
	Search     string
	Tags       []string
	DateFrom   domain.Day
	DateTo     domain.Day
	Visibility domain.Visibility
	Kind       domain.EntryKind
	Limit      int
}

// Query applies all filters (ANDed) and returns matches newest date first.
// Entries sharing a date keep their input order.
func Query(entries []domain.Entry, opts QueryOptions) []domain.Entry {
	search := strings.ToLower(strings.TrimSpace(opts.Search))

	out := make([]domain.Entry, 0, len(entries))
	for _, e := range entries {
		if opts.Kind != "" && e.Kind != opts.Kind {
			continue
		}
		if search != "" && !matchesSearch(e, search) {
			continue
		}
		if len(opts.Tags) > 0 && !intersects(e.Tags(), opts.Tags) {
			continue
		}
		if opts.DateFrom != "" && e.Date < opts.DateFrom {
			continue
		}
		if opts.DateTo != "" && e.Date > opts.DateTo {
			continue
		}
		if opts.Visibility != "" && e.Visibility.Tier() != opts.Visibility.Tier() {
			continue
		}
		out = append(out, e)
	}

	SortNewestFirst(out)
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out
}

// SortNewestFirst orders entries by descending date, stable within a date.
func SortNewestFirst(entries []domain.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})
}

// UniqueTags returns the sorted set of tags used across entries.
func UniqueTags(entries []domain.Entry) []string {
	seen := make(map[string]struct{})
	tags := []string{}
	for _, e := range entries {
		for _, t := range e.Tags() {
			if _, ok := seen[t]; ok || t == "" {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	sort.Strings(tags)
	return tags
}

func matchesSearch(e domain.Entry, needle string) bool {
	for _, field := range e.TextFields() {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	for _, tag := range e.Tags() {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func intersects(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}
