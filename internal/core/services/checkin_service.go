package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/checkin_ledger/internal/apperrors"
	"github.com/SscSPs/checkin_ledger/internal/core/domain"
	"github.com/SscSPs/checkin_ledger/internal/dto"
)

func (s *ledgerService) LogCheckIn(ctx context.Context, userID string, req dto.LogCheckInRequest) (*domain.Entry, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if err := s.validatePayload(req); err != nil {
		return nil, err
	}

	entry, err := s.store.upsertForDate(ctx, userID, domain.KindCheckIn, s.today(), s.now().UTC(), func(_ *domain.Entry) (domain.Entry, error) {
		return domain.Entry{
			Visibility: domain.NormalizeVisibility(req.Visibility, domain.VisibilityContacts),
			CheckIn: &domain.CheckInPayload{
				Status:          req.Status,
				Mood:            req.Mood,
				Emotions:        append([]string(nil), req.Emotions...),
				CurrentActivity: req.CurrentActivity,
				TodayActivities: req.TodayActivities,
			},
		}, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to log check-in", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Check-in logged", slog.String("entry_id", entry.EntryID), slog.String("user_id", userID))
	return entry, nil
}

func (s *ledgerService) GetLatestCheckIn(ctx context.Context, viewerID string, targetUserID string) (*domain.Entry, error) {
	if err := requireUser(viewerID); err != nil {
		return nil, err
	}
	if targetUserID == "" {
		targetUserID = viewerID
	}

	rel, err := s.relationship(ctx, viewerID, targetUserID)
	if err != nil {
		return nil, err
	}

	// Walk pages until a visible check-in turns up; private ones are skipped.
	var token *string
	for {
		page, next, err := s.store.repo.ListCheckIns(ctx, targetUserID, defaultCheckInPageSize, token)
		if err != nil {
			s.LogError(ctx, err, "Failed to list check-ins", slog.String("target_user_id", targetUserID))
			return nil, err
		}
		if visible := domain.FilterVisible(page, viewerID, rel); len(visible) > 0 {
			return &visible[0], nil
		}
		if next == nil {
			break
		}
		token = next
	}
	return nil, fmt.Errorf("%w: no check-in for user %s", apperrors.ErrNotFound, targetUserID)
}

func (s *ledgerService) ListCheckInHistory(ctx context.Context, userID string, params dto.ListCheckInsParams) (*dto.ListCheckInsResponse, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	limit := params.Limit
	if limit <= 0 {
		limit = defaultCheckInPageSize
	}

	entries, next, err := s.store.repo.ListCheckIns(ctx, userID, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list check-in history", slog.String("user_id", userID))
		return nil, err
	}

	return &dto.ListCheckInsResponse{
		CheckIns:  dto.ToEntryResponses(entries),
		NextToken: next,
	}, nil
}

func (s *ledgerService) ContactFeed(ctx context.Context, userID string, limit int) ([]domain.FeedItem, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultFeedLimit
	}

	contacts, err := s.contacts.ListContacts(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list contacts", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	if len(contacts) == 0 {
		return []domain.FeedItem{}, nil
	}

	now := s.now()
	muted := make(map[string]bool, len(contacts))
	ownerIDs := make([]string, 0, len(contacts))
	for _, c := range contacts {
		muted[c.ContactUserID] = c.IsMutedAt(now)
		ownerIDs = append(ownerIDs, c.ContactUserID)
	}

	// Hidden check-ins still count against the repository limit, so widen the
	// window until limit visible items are found or the owners run out.
	rels := make(map[string]domain.Relationship, len(ownerIDs))
	items := []domain.FeedItem{}
	for fetch := limit; ; fetch *= 2 {
		recent, err := s.store.repo.ListRecentByOwners(ctx, ownerIDs, domain.KindCheckIn, fetch)
		if err != nil {
			s.LogError(ctx, err, "Failed to load contact check-ins", slog.String("user_id", userID))
			return nil, fmt.Errorf("failed to load contact check-ins: %w", err)
		}

		items = items[:0]
		for _, e := range recent {
			rel, ok := rels[e.OwnerID]
			if !ok {
				if rel, err = s.relationship(ctx, userID, e.OwnerID); err != nil {
					return nil, err
				}
				rels[e.OwnerID] = rel
			}
			if e.CheckIn == nil || !domain.IsVisible(e, userID, rel) {
				continue
			}
			items = append(items, domain.FeedItem{
				Entry:        e,
				StatusEmoji:  domain.StatusEmoji(e.CheckIn.Status),
				ContactMuted: muted[e.OwnerID],
			})
			if len(items) == limit {
				return items, nil
			}
		}
		if len(recent) < fetch {
			break
		}
	}
	return items, nil
}
