package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/checkin_ledger/internal/apperrors"
	"github.com/SscSPs/checkin_ledger/internal/core/domain"
	"github.com/SscSPs/checkin_ledger/internal/core/ports"
	portsrepo "github.com/SscSPs/checkin_ledger/internal/core/ports/repositories"
)

// entryStore owns every write to the entries repository. Writes to a daily-unique
// (owner, kind, date) key run under the day lock so concurrent upserts serialize.
type entryStore struct {
	repo       portsrepo.EntryRepositoryFacade
	locker     ports.DayLocker
	maxContent int
}

func dayKey(ownerID string, kind domain.EntryKind, date domain.Day) string {
	return ownerID + "|" + string(kind) + "|" + string(date)
}

// buildFunc produces the entry to persist from the current one (nil when absent).
// Returning an error aborts the write with nothing changed.
type buildFunc func(existing *domain.Entry) (domain.Entry, error)

// upsertForDate creates or replaces the owner's entry of kind for date.
// Check-ins are never merged: each call inserts a new entry.
func (st *entryStore) upsertForDate(ctx context.Context, ownerID string, kind domain.EntryKind, date domain.Day, now time.Time, build buildFunc) (*domain.Entry, error) {
	if !kind.DailyUnique() {
		return st.insert(ctx, ownerID, kind, date, now, build)
	}

	unlock, err := st.locker.Lock(ctx, dayKey(ownerID, kind, date))
	if err != nil {
		return nil, fmt.Errorf("failed to lock %s entry for %s: %w", kind, date, err)
	}
	defer unlock()

	existing, err := st.findForDate(ctx, ownerID, kind, date)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return st.insert(ctx, ownerID, kind, date, now, build)
	}

	entry, err := build(existing)
	if err != nil {
		return nil, err
	}
	st.stamp(&entry, ownerID, kind, date)
	entry.EntryID = existing.EntryID
	entry.CreatedAt = existing.CreatedAt
	entry.UpdatedAt = laterOf(now, existing.CreatedAt)
	if err := st.validate(entry); err != nil {
		return nil, err
	}
	if err := st.repo.UpdateEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update %s entry: %w", kind, err)
	}
	return &entry, nil
}

func (st *entryStore) insert(ctx context.Context, ownerID string, kind domain.EntryKind, date domain.Day, now time.Time, build buildFunc) (*domain.Entry, error) {
	entry, err := build(nil)
	if err != nil {
		return nil, err
	}
	st.stamp(&entry, ownerID, kind, date)
	entry.EntryID = uuid.NewString()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	if err := st.validate(entry); err != nil {
		return nil, err
	}
	if err := st.repo.SaveEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save %s entry: %w", kind, err)
	}
	return &entry, nil
}

// mutateByID rewrites an existing entry of the owner under its day lock.
// The entry is re-read after locking so build always sees the latest state.
func (st *entryStore) mutateByID(ctx context.Context, ownerID, entryID string, now time.Time, build func(existing domain.Entry) (domain.Entry, error)) (*domain.Entry, error) {
	current, err := st.findOwned(ctx, ownerID, entryID)
	if err != nil {
		return nil, err
	}

	unlock, err := st.locker.Lock(ctx, dayKey(ownerID, current.Kind, current.Date))
	if err != nil {
		return nil, fmt.Errorf("failed to lock entry %s: %w", entryID, err)
	}
	defer unlock()

	if current, err = st.findOwned(ctx, ownerID, entryID); err != nil {
		return nil, err
	}

	entry, err := build(*current)
	if err != nil {
		return nil, err
	}
	st.stamp(&entry, ownerID, current.Kind, current.Date)
	entry.EntryID = current.EntryID
	entry.CreatedAt = current.CreatedAt
	entry.UpdatedAt = laterOf(now, current.CreatedAt)
	if err := st.validate(entry); err != nil {
		return nil, err
	}
	if err := st.repo.UpdateEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update entry %s: %w", entryID, err)
	}
	return &entry, nil
}

// remove deletes the owner's entry after guard accepts it. An id that is absent
// or owned by someone else is reported as apperrors.ErrNotFound.
func (st *entryStore) remove(ctx context.Context, ownerID, entryID string, guard func(domain.Entry) error) error {
	current, err := st.findOwned(ctx, ownerID, entryID)
	if err != nil {
		return err
	}

	unlock, err := st.locker.Lock(ctx, dayKey(ownerID, current.Kind, current.Date))
	if err != nil {
		return fmt.Errorf("failed to lock entry %s: %w", entryID, err)
	}
	defer unlock()

	if current, err = st.findOwned(ctx, ownerID, entryID); err != nil {
		return err
	}
	if guard != nil {
		if err := guard(*current); err != nil {
			return err
		}
	}
	if err := st.repo.DeleteEntry(ctx, entryID, ownerID); err != nil {
		return fmt.Errorf("failed to delete entry %s: %w", entryID, err)
	}
	return nil
}

// getForDate returns the owner's entry of kind on date. For check-ins, which
// may repeat within a day, the most recently created one is returned.
func (st *entryStore) getForDate(ctx context.Context, ownerID string, kind domain.EntryKind, date domain.Day) (*domain.Entry, error) {
	if kind.DailyUnique() {
		entry, err := st.repo.FindEntryForDate(ctx, ownerID, kind, date)
		if err != nil {
			return nil, err
		}
		return entry, nil
	}

	entries, err := st.repo.ListEntriesSince(ctx, ownerID, kind, date)
	if err != nil {
		return nil, err
	}
	var latest *domain.Entry
	for i := range entries {
		if entries[i].Date != date {
			continue
		}
		if latest == nil || entries[i].CreatedAt.After(latest.CreatedAt) {
			latest = &entries[i]
		}
	}
	if latest == nil {
		return nil, fmt.Errorf("%w: no %s entry on %s", apperrors.ErrNotFound, kind, date)
	}
	return latest, nil
}

// list returns the owner's entries with date >= today - sinceDays. A negative
// sinceDays lists everything. An empty kind matches all kinds.
func (st *entryStore) list(ctx context.Context, ownerID string, kind domain.EntryKind, today domain.Day, sinceDays int) ([]domain.Entry, error) {
	var since domain.Day
	if sinceDays >= 0 {
		since = today.AddDays(-sinceDays)
	}
	entries, err := st.repo.ListEntriesSince(ctx, ownerID, kind, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}

func (st *entryStore) findForDate(ctx context.Context, ownerID string, kind domain.EntryKind, date domain.Day) (*domain.Entry, error) {
	existing, err := st.repo.FindEntryForDate(ctx, ownerID, kind, date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s entry for %s: %w", kind, date, err)
	}
	return existing, nil
}

func (st *entryStore) findOwned(ctx context.Context, ownerID, entryID string) (*domain.Entry, error) {
	entry, err := st.repo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.OwnerID != ownerID {
		return nil, fmt.Errorf("%w: entry %s", apperrors.ErrNotFound, entryID)
	}
	return entry, nil
}

func (st *entryStore) stamp(e *domain.Entry, ownerID string, kind domain.EntryKind, date domain.Day) {
	e.OwnerID = ownerID
	e.Kind = kind
	e.Date = date
}

func (st *entryStore) validate(e domain.Entry) error {
	if err := e.Validate(st.maxContent); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return nil
}

func laterOf(a, b time.Time) time.Time {
	if a.Before(b) {
		return b
	}
	return a
}
