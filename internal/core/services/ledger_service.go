package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/checkin_ledger/internal/apperrors"
	"github.com/SscSPs/checkin_ledger/internal/core/domain"
	"github.com/SscSPs/checkin_ledger/internal/core/ledger"
	"github.com/SscSPs/checkin_ledger/internal/core/ports"
	portsrepo "github.com/SscSPs/checkin_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/checkin_ledger/internal/core/ports/services"
	"github.com/SscSPs/checkin_ledger/internal/platform/lock"
)

const (
	defaultJournalListLimit = 50
	defaultMoodHistoryLimit = 30
	defaultMoodStatsDays    = 30
	defaultStatsPeriodDays  = 30
	defaultFeedLimit        = 50
	defaultCheckInPageSize  = 20
)

// ledgerService implements the LedgerSvcFacade interface
type ledgerService struct {
	BaseService
	store        *entryStore
	contacts     portsrepo.ContactReader
	pins         *ledger.PinGate
	clock        func() time.Time
	location     *time.Location
	streakWindow int
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithClock overrides the time source used for "today" and timestamps.
func WithClock(clock func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.clock = clock
	}
}

// WithLocation sets the timezone that defines the logical day.
func WithLocation(loc *time.Location) LedgerServiceOption {
	return func(s *ledgerService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithDayLocker replaces the in-process day lock, e.g. with a Redis-backed one.
func WithDayLocker(locker ports.DayLocker) LedgerServiceOption {
	return func(s *ledgerService) {
		if locker != nil {
			s.store.locker = locker
		}
	}
}

// WithPinGate sets the PIN hasher for protected journal entries.
func WithPinGate(gate *ledger.PinGate) LedgerServiceOption {
	return func(s *ledgerService) {
		if gate != nil {
			s.pins = gate
		}
	}
}

// WithStreakWindow bounds how many days streaks look back.
func WithStreakWindow(days int) LedgerServiceOption {
	return func(s *ledgerService) {
		if days > 0 {
			s.streakWindow = days
		}
	}
}

// WithJournalMaxContent sets the journal content length limit.
func WithJournalMaxContent(n int) LedgerServiceOption {
	return func(s *ledgerService) {
		if n > 0 {
			s.store.maxContent = n
		}
	}
}

// NewLedgerService creates a new ledger service with the provided options
func NewLedgerService(entryRepo portsrepo.EntryRepositoryFacade, contactRepo portsrepo.ContactReader, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		BaseService: newBaseService(),
		store: &entryStore{
			repo:       entryRepo,
			locker:     lock.NewKeyedLocker(),
			maxContent: domain.DefaultJournalMaxContent,
		},
		contacts:     contactRepo,
		pins:         ledger.NewPinGate(0),
		clock:        time.Now,
		location:     time.UTC,
		streakWindow: ledger.DefaultStreakWindow,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure ledgerService implements the LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) now() time.Time {
	return s.clock().In(s.location)
}

func (s *ledgerService) today() domain.Day {
	return domain.DayOf(s.now())
}

// relationship resolves how viewerID relates to ownerID. A viewer is a contact
// when the owner has added them.
func (s *ledgerService) relationship(ctx context.Context, viewerID, ownerID string) (domain.Relationship, error) {
	if viewerID == ownerID {
		return domain.RelationshipSelf, nil
	}
	if s.contacts == nil {
		return domain.RelationshipStranger, nil
	}
	if _, err := s.contacts.FindContact(ctx, ownerID, viewerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.RelationshipStranger, nil
		}
		return "", fmt.Errorf("failed to resolve relationship: %w", err)
	}
	return domain.RelationshipContact, nil
}

func parseOptionalDay(raw string) (domain.Day, error) {
	if raw == "" {
		return "", nil
	}
	d, err := domain.ParseDay(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return d, nil
}
