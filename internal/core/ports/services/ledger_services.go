package services

import (
	"context"

	"github.com/SscSPs/checkin_ledger/internal/core/domain"
	"github.com/SscSPs/checkin_ledger/internal/dto"
)

// CheckInSvc defines operations on status check-ins.
type CheckInSvc interface {
	// LogCheckIn records a new check-in for userID. Check-ins are never merged.
	LogCheckIn(ctx context.Context, userID string, req dto.LogCheckInRequest) (*domain.Entry, error)

	// GetLatestCheckIn returns targetUserID's newest check-in that viewerID may see.
	GetLatestCheckIn(ctx context.Context, viewerID string, targetUserID string) (*domain.Entry, error)

	// ListCheckInHistory retrieves the caller's own check-ins, newest first, paginated.
	ListCheckInHistory(ctx context.Context, userID string, params dto.ListCheckInsParams) (*dto.ListCheckInsResponse, error)

	// ContactFeed returns the recent visible check-ins of the caller's contacts.
	ContactFeed(ctx context.Context, userID string, limit int) ([]domain.FeedItem, error)
}

// MoodSvc defines operations on daily mood logs.
type MoodSvc interface {
	// LogMood upserts today's mood for userID.
	LogMood(ctx context.Context, userID string, req dto.LogMoodRequest) (*domain.Entry, error)

	// GetTodaysMood returns today's mood for userID or apperrors.ErrNotFound.
	GetTodaysMood(ctx context.Context, userID string) (*domain.Entry, error)

	// MoodHistory returns ownerID's moods visible to viewerID, newest first.
	MoodHistory(ctx context.Context, viewerID string, ownerID string, limit int) ([]domain.Entry, error)

	// MoodStats aggregates ownerID's visible moods over the last days days.
	MoodStats(ctx context.Context, viewerID string, ownerID string, days int) (*domain.MoodStats, error)
}

// JournalSvc defines operations on daily journal entries.
type JournalSvc interface {
	// CreateJournalEntry upserts today's journal entry for userID.
	CreateJournalEntry(ctx context.Context, userID string, req dto.CreateJournalEntryRequest) (*domain.Entry, error)

	// UpdateJournalEntry applies a partial update. pin is required when the entry is protected.
	UpdateJournalEntry(ctx context.Context, userID string, entryID string, req dto.UpdateJournalEntryRequest, pin string) (*domain.Entry, error)

	// ListJournalEntries queries the caller's journal with the given filters.
	ListJournalEntries(ctx context.Context, userID string, params dto.ListEntriesParams) ([]domain.JournalEntryView, error)

	// UserTags returns the sorted, distinct tags used across the caller's journal.
	UserTags(ctx context.Context, userID string) ([]string, error)

	// JournalStats summarizes the caller's journal.
	JournalStats(ctx context.Context, userID string) (*domain.JournalStats, error)

	// ExportJournal serializes the caller's journal as "text" or "json".
	ExportJournal(ctx context.Context, userID string, format string) (string, error)
}

// EntrySvc defines kind-agnostic operations on ledger entries.
type EntrySvc interface {
	// GetEntryForDate returns the caller's entry of kind on date ("YYYY-MM-DD").
	GetEntryForDate(ctx context.Context, userID string, kind domain.EntryKind, date string) (*domain.Entry, error)

	// ListEntries queries the caller's entries.
	ListEntries(ctx context.Context, userID string, params dto.ListEntriesParams) ([]domain.Entry, error)

	// DeleteEntry removes one of the caller's entries. pin is required when the entry is protected.
	DeleteEntry(ctx context.Context, userID string, entryID string, pin string) error

	// GetStats aggregates the caller's ledger over the last periodDays days.
	GetStats(ctx context.Context, userID string, periodDays int) (*domain.LedgerStats, error)
}

// LedgerSvcFacade combines all ledger service interfaces
type LedgerSvcFacade interface {
	CheckInSvc
	MoodSvc
	JournalSvc
	EntrySvc
}
