// Package memory holds map-backed repositories used with STORAGE_DRIVER=memory and in tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/checkin_ledger/internal/apperrors"
	"github.com/SscSPs/checkin_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/checkin_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/checkin_ledger/internal/utils/pagination"
)

// Store keeps users, contacts and entries in memory. Values are copied on the
// way in and out so callers never share payload slices with the store.
type Store struct {
	mu       sync.RWMutex
	entries  map[string]domain.Entry
	users    map[string]domain.User
	contacts map[string][]domain.Contact
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		entries:  make(map[string]domain.Entry),
		users:    make(map[string]domain.User),
		contacts: make(map[string][]domain.Contact),
	}
}

// Provider exposes s through the repository ports.
func (s *Store) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EntryRepo:   s,
		UserRepo:    s,
		ContactRepo: s,
	}
}

var (
	_ portsrepo.EntryRepositoryFacade = (*Store)(nil)
	_ portsrepo.UserRepositoryFacade  = (*Store)(nil)
	_ portsrepo.ContactReader         = (*Store)(nil)
)

func cloneEntry(e domain.Entry) domain.Entry {
	if e.CheckIn != nil {
		p := *e.CheckIn
		p.Emotions = cloneStrings(p.Emotions)
		e.CheckIn = &p
	}
	if e.Mood != nil {
		p := *e.Mood
		e.Mood = &p
	}
	if e.Journal != nil {
		p := *e.Journal
		p.Tags = cloneStrings(p.Tags)
		p.MediaURLs = cloneStrings(p.MediaURLs)
		p.SharedWith = cloneStrings(p.SharedWith)
		e.Journal = &p
	}
	return e
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append(make([]string, 0, len(in)), in...)
}

// --- Entries ---

func (s *Store) FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[entryID]
	if !ok {
		return nil, fmt.Errorf("%w: entry %s", apperrors.ErrNotFound, entryID)
	}
	out := cloneEntry(e)
	return &out, nil
}

func (s *Store) FindEntryForDate(ctx context.Context, ownerID string, kind domain.EntryKind, date domain.Day) (*domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.OwnerID == ownerID && e.Kind == kind && e.Date == date {
			out := cloneEntry(e)
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%w: no %s entry on %s", apperrors.ErrNotFound, kind, date)
}

func (s *Store) ListEntriesSince(ctx context.Context, ownerID string, kind domain.EntryKind, since domain.Day) ([]domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Entry{}
	for _, e := range s.entries {
		if e.OwnerID != ownerID || (kind != "" && e.Kind != kind) || (since != "" && e.Date < since) {
			continue
		}
		out = append(out, cloneEntry(e))
	}
	sortByDateDesc(out)
	return out, nil
}

func createdAfter(a, b domain.Entry) bool {
	if a.CreatedAt.Equal(b.CreatedAt) {
		return a.EntryID > b.EntryID
	}
	return a.CreatedAt.After(b.CreatedAt)
}

// sortByCreatedDesc orders by (created_at DESC, id DESC), the check-in keyset order.
func sortByCreatedDesc(entries []domain.Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return createdAfter(entries[i], entries[j])
	})
}

// sortByDateDesc matches the pgsql listing order: (entry_date, created_at, id), all descending.
func sortByDateDesc(entries []domain.Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date > entries[j].Date
		}
		return createdAfter(entries[i], entries[j])
	})
}

func (s *Store) ListRecentByOwners(ctx context.Context, ownerIDs []string, kind domain.EntryKind, limit int) ([]domain.Entry, error) {
	owners := make(map[string]struct{}, len(ownerIDs))
	for _, id := range ownerIDs {
		owners[id] = struct{}{}
	}

	s.mu.RLock()
	out := []domain.Entry{}
	for _, e := range s.entries {
		if _, ok := owners[e.OwnerID]; !ok || e.Kind != kind {
			continue
		}
		out = append(out, cloneEntry(e))
	}
	s.mu.RUnlock()

	sortByCreatedDesc(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) ListCheckIns(ctx context.Context, ownerID string, limit int, nextToken *string) ([]domain.Entry, *string, error) {
	var (
		cursorAt  time.Time
		cursorID  string
		hasCursor bool
	)
	if nextToken != nil && *nextToken != "" {
		at, id, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		cursorAt, cursorID, hasCursor = at, id, true
	}

	s.mu.RLock()
	all := []domain.Entry{}
	for _, e := range s.entries {
		if e.OwnerID != ownerID || e.Kind != domain.KindCheckIn {
			continue
		}
		if hasCursor && !pagination.After(e.CreatedAt, e.EntryID, cursorAt, cursorID) {
			continue
		}
		all = append(all, cloneEntry(e))
	}
	s.mu.RUnlock()

	sortByCreatedDesc(all)
	if limit <= 0 || len(all) <= limit {
		return all, nil, nil
	}
	page := all[:limit]
	last := page[len(page)-1]
	token := pagination.EncodeToken(last.CreatedAt, last.EntryID)
	return page, &token, nil
}

func (s *Store) SaveEntry(ctx context.Context, entry domain.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[entry.EntryID]; ok {
		return fmt.Errorf("%w: entry %s", apperrors.ErrDuplicate, entry.EntryID)
	}
	if entry.Kind.DailyUnique() {
		for _, e := range s.entries {
			if e.OwnerID == entry.OwnerID && e.Kind == entry.Kind && e.Date == entry.Date {
				return fmt.Errorf("%w: %s entry for %s already exists", apperrors.ErrDuplicate, entry.Kind, entry.Date)
			}
		}
	}
	s.entries[entry.EntryID] = cloneEntry(entry)
	return nil
}

func (s *Store) UpdateEntry(ctx context.Context, entry domain.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.entries[entry.EntryID]
	if !ok || current.OwnerID != entry.OwnerID {
		return fmt.Errorf("%w: entry %s", apperrors.ErrNotFound, entry.EntryID)
	}
	s.entries[entry.EntryID] = cloneEntry(entry)
	return nil
}

func (s *Store) DeleteEntry(ctx context.Context, entryID string, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.entries[entryID]
	if !ok || current.OwnerID != ownerID {
		return fmt.Errorf("%w: entry %s", apperrors.ErrNotFound, entryID)
	}
	delete(s.entries, entryID)
	return nil
}

// --- Users ---

func (s *Store) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, userID)
	}
	return &u, nil
}

func (s *Store) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			out := u
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, username)
}

func (s *Store) SaveUser(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.UserID == user.UserID || u.Username == user.Username {
			return fmt.Errorf("%w: user %s", apperrors.ErrDuplicate, user.Username)
		}
	}
	s.users[user.UserID] = user
	return nil
}

// --- Contacts ---

// AddContact records the edge c.UserID -> c.ContactUserID, replacing an existing one.
func (s *Store) AddContact(c domain.Contact) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.contacts[c.UserID]
	for i := range list {
		if list[i].ContactUserID == c.ContactUserID {
			list[i] = c
			return
		}
	}
	s.contacts[c.UserID] = append(list, c)
}

func (s *Store) ListContacts(ctx context.Context, userID string) ([]domain.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Contact{}, s.contacts[userID]...), nil
}

func (s *Store) FindContact(ctx context.Context, userID string, contactUserID string) (*domain.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.contacts[userID] {
		if c.ContactUserID == contactUserID {
			out := c
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%w: contact %s of %s", apperrors.ErrNotFound, contactUserID, userID)
}
