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

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

// CreateJournalEntry writes today's journal entry. An existing entry for today is
// replaced, which requires its PIN when it is protected. The replacement stays protected.
func (s *ledgerService) CreateJournalEntry(ctx context.Context, userID string, req dto.CreateJournalEntryRequest) (*domain.Entry, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if err := s.validatePayload(req); err != nil {
		return nil, err
	}

	today := s.today()
	entry, err := s.store.upsertForDate(ctx, userID, domain.KindJournal, today, s.now().UTC(), func(existing *domain.Entry) (domain.Entry, error) {
		if existing != nil {
			if err := s.pins.Check(*existing, req.Pin); err != nil {
				return domain.Entry{}, err
			}
		}

		e := domain.Entry{
			Kind:       domain.KindJournal,
			Visibility: domain.NormalizeVisibility(req.Visibility, domain.VisibilityPrivate),
			Journal: &domain.JournalPayload{
				Title:      req.Title,
				Content:    req.Content,
				Tags:       cloneStrings(req.Tags),
				MediaURLs:  cloneStrings(req.MediaURLs),
				SharedWith: cloneStrings(req.SharedWith),
			},
		}
		if e.Journal.Tags == nil {
			e.Journal.Tags = []string{}
		}

		mood, err := s.store.findForDate(ctx, userID, domain.KindMood, today)
		if err != nil {
			return domain.Entry{}, err
		}
		if mood != nil {
			e.Journal.MoodEntryID = mood.EntryID
		}

		switch {
		case req.IsProtected:
			if err := s.pins.SetProtection(&e, req.Pin); err != nil {
				return domain.Entry{}, err
			}
		case existing != nil && existing.IsProtected():
			// Replacing keeps the PIN; removing it goes through UpdateJournalEntry.
			e.Journal.IsProtected = true
			e.Journal.PinHash = existing.Journal.PinHash
		}
		return e, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to write journal entry", slog.String("user_id", userID), slog.String("date", today.String()))
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry written", slog.String("entry_id", entry.EntryID), slog.String("date", today.String()))
	return entry, nil
}

func (s *ledgerService) UpdateJournalEntry(ctx context.Context, userID string, entryID string, req dto.UpdateJournalEntryRequest, pin string) (*domain.Entry, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if err := s.validatePayload(req); err != nil {
		return nil, err
	}

	entry, err := s.store.mutateByID(ctx, userID, entryID, s.now().UTC(), func(existing domain.Entry) (domain.Entry, error) {
		if existing.Kind != domain.KindJournal || existing.Journal == nil {
			return domain.Entry{}, fmt.Errorf("%w: entry %s is not a journal entry", apperrors.ErrValidation, entryID)
		}
		if err := s.pins.Check(existing, pin); err != nil {
			return domain.Entry{}, err
		}

		payload := *existing.Journal
		payload.Tags = cloneStrings(payload.Tags)
		payload.MediaURLs = cloneStrings(payload.MediaURLs)
		payload.SharedWith = cloneStrings(payload.SharedWith)
		e := existing
		e.Journal = &payload

		if req.Title != nil {
			payload.Title = *req.Title
		}
		if req.Content != nil {
			payload.Content = *req.Content
		}
		if req.Tags != nil {
			payload.Tags = cloneStrings(*req.Tags)
		}
		if req.MediaURLs != nil {
			payload.MediaURLs = cloneStrings(*req.MediaURLs)
		}
		if req.SharedWith != nil {
			payload.SharedWith = cloneStrings(*req.SharedWith)
		}
		if req.Visibility != nil {
			e.Visibility = domain.NormalizeVisibility(*req.Visibility, e.Visibility)
		}

		switch {
		case req.IsProtected != nil && !*req.IsProtected:
			s.pins.ClearProtection(&e)
		case req.NewPin != nil && *req.NewPin != "":
			if err := s.pins.SetProtection(&e, *req.NewPin); err != nil {
				return domain.Entry{}, err
			}
		case req.IsProtected != nil && *req.IsProtected && !existing.IsProtected():
			return domain.Entry{}, fmt.Errorf("%w: newPin is required to protect an entry", apperrors.ErrValidation)
		}
		return e, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update journal entry", slog.String("entry_id", entryID))
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry updated", slog.String("entry_id", entryID))
	return entry, nil
}

func (s *ledgerService) ListJournalEntries(ctx context.Context, userID string, params dto.ListEntriesParams) ([]domain.JournalEntryView, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	params.Kind = string(domain.KindJournal)
	if params.Limit <= 0 {
		params.Limit = defaultJournalListLimit
	}

	entries, err := s.ListEntries(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	moods, err := s.store.list(ctx, userID, domain.KindMood, s.today(), -1)
	if err != nil {
		s.LogError(ctx, err, "Failed to load moods for journal", slog.String("user_id", userID))
		return nil, err
	}
	moodByID := make(map[string]*domain.MoodPayload, len(moods))
	for i := range moods {
		moodByID[moods[i].EntryID] = moods[i].Mood
	}

	views := make([]domain.JournalEntryView, len(entries))
	for i, e := range entries {
		views[i] = domain.JournalEntryView{Entry: e}
		if e.Journal != nil && e.Journal.MoodEntryID != "" {
			views[i].LinkedMood = moodByID[e.Journal.MoodEntryID]
		}
	}
	return views, nil
}

func (s *ledgerService) journalEntries(ctx context.Context, userID string) ([]domain.Entry, error) {
	entries, err := s.store.list(ctx, userID, domain.KindJournal, s.today(), -1)
	if err != nil {
		s.LogError(ctx, err, "Failed to load journal", slog.String("user_id", userID))
		return nil, err
	}
	return entries, nil
}

func (s *ledgerService) UserTags(ctx context.Context, userID string) ([]string, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	entries, err := s.journalEntries(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ledger.UniqueTags(entries), nil
}

func (s *ledgerService) JournalStats(ctx context.Context, userID string) (*domain.JournalStats, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	entries, err := s.journalEntries(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats := ledger.JournalStats(entries, s.today(), s.streakWindow)
	return &stats, nil
}

func (s *ledgerService) ExportJournal(ctx context.Context, userID string, format string) (string, error) {
	if err := requireUser(userID); err != nil {
		return "", err
	}
	f, err := ledger.ParseExportFormat(format)
	if err != nil {
		return "", err
	}
	entries, err := s.journalEntries(ctx, userID)
	if err != nil {
		return "", err
	}
	out, err := ledger.ExportJournal(entries, f)
	if err != nil {
		s.LogError(ctx, err, "Failed to export journal", slog.String("user_id", userID))
		return "", err
	}
	return out, nil
}
