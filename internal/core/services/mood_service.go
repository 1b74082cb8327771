package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/checkin_ledger/internal/core/domain"
	"github.com/SscSPs/checkin_ledger/internal/core/ledger"
	"github.com/SscSPs/checkin_ledger/internal/dto"
)

// moodPayloadFrom fills a missing emoji or score from the mood catalog.
func moodPayloadFrom(req dto.LogMoodRequest) *domain.MoodPayload {
	p := &domain.MoodPayload{
		Emoji: req.Emoji,
		Label: req.Label,
		Score: req.Score,
		Notes: req.Notes,
	}
	if opt, ok := domain.LookupMoodOption(req.Label); ok {
		if p.Emoji == "" {
			p.Emoji = opt.Emoji
		}
		if p.Score == 0 {
			p.Score = opt.Score
		}
	}
	if p.Score == 0 {
		p.Score = domain.DefaultMoodScore
	}
	return p
}

func (s *ledgerService) LogMood(ctx context.Context, userID string, req dto.LogMoodRequest) (*domain.Entry, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if err := s.validatePayload(req); err != nil {
		return nil, err
	}

	today := s.today()
	entry, err := s.store.upsertForDate(ctx, userID, domain.KindMood, today, s.now().UTC(), func(_ *domain.Entry) (domain.Entry, error) {
		return domain.Entry{
			Visibility: domain.NormalizeVisibility(req.Visibility, domain.VisibilityContacts),
			Mood:       moodPayloadFrom(req),
		}, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to log mood", slog.String("user_id", userID), slog.String("date", today.String()))
		return nil, err
	}

	s.LogInfo(ctx, "Mood logged", slog.String("entry_id", entry.EntryID), slog.String("date", today.String()))
	return entry, nil
}

func (s *ledgerService) GetTodaysMood(ctx context.Context, userID string) (*domain.Entry, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	return s.store.getForDate(ctx, userID, domain.KindMood, s.today())
}

// visibleMoods loads ownerID's moods since the given day and drops what viewerID may not see.
func (s *ledgerService) visibleMoods(ctx context.Context, viewerID, ownerID string, sinceDays int) ([]domain.Entry, error) {
	rel, err := s.relationship(ctx, viewerID, ownerID)
	if err != nil {
		return nil, err
	}
	moods, err := s.store.list(ctx, ownerID, domain.KindMood, s.today(), sinceDays)
	if err != nil {
		return nil, err
	}
	return domain.FilterVisible(moods, viewerID, rel), nil
}

func (s *ledgerService) MoodHistory(ctx context.Context, viewerID string, ownerID string, limit int) ([]domain.Entry, error) {
	if err := requireUser(viewerID); err != nil {
		return nil, err
	}
	if ownerID == "" {
		ownerID = viewerID
	}
	if limit <= 0 {
		limit = defaultMoodHistoryLimit
	}

	moods, err := s.visibleMoods(ctx, viewerID, ownerID, -1)
	if err != nil {
		s.LogError(ctx, err, "Failed to load mood history", slog.String("owner_id", ownerID))
		return nil, err
	}
	return ledger.Query(moods, ledger.QueryOptions{Limit: limit}), nil
}

func (s *ledgerService) MoodStats(ctx context.Context, viewerID string, ownerID string, days int) (*domain.MoodStats, error) {
	if err := requireUser(viewerID); err != nil {
		return nil, err
	}
	if ownerID == "" {
		ownerID = viewerID
	}
	if days <= 0 {
		days = defaultMoodStatsDays
	}

	moods, err := s.visibleMoods(ctx, viewerID, ownerID, days)
	if err != nil {
		s.LogError(ctx, err, "Failed to load moods for stats", slog.String("owner_id", ownerID))
		return nil, err
	}
	stats := ledger.MoodStats(moods, s.today(), days)
	return &stats, nil
}
