package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/checkin_ledger/internal/apperrors"
	"github.com/SscSPs/checkin_ledger/internal/core/domain"
	"github.com/SscSPs/checkin_ledger/internal/core/ledger"
	"github.com/SscSPs/checkin_ledger/internal/dto"
)

func (s *ledgerService) GetEntryForDate(ctx context.Context, userID string, kind domain.EntryKind, date string) (*domain.Entry, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown entry kind %q", apperrors.ErrValidation, kind)
	}
	day, err := domain.ParseDay(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return s.store.getForDate(ctx, userID, kind, day)
}

// queryOptions converts listing parameters, validating dates and kind.
func queryOptions(params dto.ListEntriesParams) (ledger.QueryOptions, error) {
	opts := ledger.QueryOptions{
		Search:     params.Search,
		Tags:       params.Tags,
		Visibility: domain.Visibility(params.Visibility),
		Kind:       domain.EntryKind(params.Kind),
		Limit:      params.Limit,
	}
	if opts.Kind != "" && !opts.Kind.Valid() {
		return opts, fmt.Errorf("%w: unknown entry kind %q", apperrors.ErrValidation, params.Kind)
	}
	if opts.Visibility != "" && !opts.Visibility.Known() {
		return opts, fmt.Errorf("%w: unknown visibility %q", apperrors.ErrValidation, params.Visibility)
	}
	var err error
	if opts.DateFrom, err = parseOptionalDay(params.DateFrom); err != nil {
		return opts, err
	}
	if opts.DateTo, err = parseOptionalDay(params.DateTo); err != nil {
		return opts, err
	}
	return opts, nil
}

func (s *ledgerService) ListEntries(ctx context.Context, userID string, params dto.ListEntriesParams) ([]domain.Entry, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if err := s.validatePayload(params); err != nil {
		return nil, err
	}
	opts, err := queryOptions(params)
	if err != nil {
		return nil, err
	}

	sinceDays := -1
	if params.SinceDays != nil {
		sinceDays = *params.SinceDays
	}
	entries, err := s.store.list(ctx, userID, opts.Kind, s.today(), sinceDays)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries", slog.String("user_id", userID))
		return nil, err
	}
	return ledger.Query(entries, opts), nil
}

func (s *ledgerService) DeleteEntry(ctx context.Context, userID string, entryID string, pin string) error {
	if err := requireUser(userID); err != nil {
		return err
	}

	err := s.store.remove(ctx, userID, entryID, func(e domain.Entry) error {
		return s.pins.Check(e, pin)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete entry", slog.String("entry_id", entryID))
		return err
	}

	s.LogInfo(ctx, "Entry deleted", slog.String("entry_id", entryID))
	return nil
}

// GetStats aggregates each kind over the period. Streaks count days with any
// entry and look back over the configured streak window.
func (s *ledgerService) GetStats(ctx context.Context, userID string, periodDays int) (*domain.LedgerStats, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if periodDays <= 0 {
		periodDays = defaultStatsPeriodDays
	}

	today := s.today()
	lookback := periodDays
	if s.streakWindow > lookback {
		lookback = s.streakWindow
	}
	all, err := s.store.list(ctx, userID, "", today, lookback)
	if err != nil {
		s.LogError(ctx, err, "Failed to load entries for stats", slog.String("user_id", userID))
		return nil, err
	}

	periodStart := today.AddDays(-periodDays)
	var checkIns, moods, journal []domain.Entry
	for _, e := range all {
		if e.Date < periodStart {
			continue
		}
		switch e.Kind {
		case domain.KindCheckIn:
			checkIns = append(checkIns, e)
		case domain.KindMood:
			moods = append(moods, e)
		case domain.KindJournal:
			journal = append(journal, e)
		}
	}

	return &domain.LedgerStats{
		PeriodDays: periodDays,
		CheckIns:   ledger.Aggregate(checkIns, today.Month()),
		Moods:      ledger.MoodStats(moods, today, periodDays),
		Journal:    ledger.JournalStats(journal, today, periodDays),
		Streaks:    ledger.ComputeStreaks(all, today, s.streakWindow),
	}, nil
}
