package repositories

import (
	"context"

	"github.com/SscSPs/checkin_ledger/internal/core/domain"
)

// EntryReader defines read operations for ledger entries
type EntryReader interface {
	// FindEntryByID retrieves an entry by its unique identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error)

	// FindEntryForDate retrieves the owner's entry of a daily-unique kind for a date.
	FindEntryForDate(ctx context.Context, ownerID string, kind domain.EntryKind, date domain.Day) (*domain.Entry, error)

	// ListEntriesSince returns the owner's entries dated on or after since. An empty kind matches all kinds.
	// Results are ordered by date, then creation time, then id, all descending.
	ListEntriesSince(ctx context.Context, ownerID string, kind domain.EntryKind, since domain.Day) ([]domain.Entry, error)

	// ListRecentByOwners returns the most recently created entries of a kind across several owners.
	ListRecentByOwners(ctx context.Context, ownerIDs []string, kind domain.EntryKind, limit int) ([]domain.Entry, error)

	// ListCheckIns retrieves the owner's check-ins newest first using token-based pagination.
	// It returns the check-ins, a token for the next page, and an error.
	ListCheckIns(ctx context.Context, ownerID string, limit int, nextToken *string) ([]domain.Entry, *string, error)
}

// EntryWriter defines write operations for ledger entries
type EntryWriter interface {
	// SaveEntry persists a new entry. A second mood or journal entry for the same
	// owner and date fails with apperrors.ErrDuplicate.
	SaveEntry(ctx context.Context, entry domain.Entry) error

	// UpdateEntry overwrites the mutable fields of an existing entry.
	UpdateEntry(ctx context.Context, entry domain.Entry) error

	// DeleteEntry removes an entry owned by ownerID.
	DeleteEntry(ctx context.Context, entryID string, ownerID string) error
}

// EntryRepositoryFacade combines all entry-related repository interfaces
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}
