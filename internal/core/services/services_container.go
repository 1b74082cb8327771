package services

import (
	"github.com/SscSPs/checkin_ledger/internal/core/ledger"
	"github.com/SscSPs/checkin_ledger/internal/core/ports"
	portsrepo "github.com/SscSPs/checkin_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/checkin_ledger/internal/core/ports/services"
	"github.com/SscSPs/checkin_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// locker may be nil, in which case day locks are held in-process.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, locker ports.DayLocker) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.TokenService = NewTokenService(cfg)
	container.Ledger = NewLedgerService(
		repos.EntryRepo,
		repos.ContactRepo,
		WithLocation(cfg.Location),
		WithDayLocker(locker),
		WithPinGate(ledger.NewPinGate(cfg.PinHashCost)),
		WithStreakWindow(cfg.StreakWindowDays),
		WithJournalMaxContent(cfg.JournalMaxContent),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.LedgerSvcFacade = (*ledgerService)(nil)
	_ portssvc.UserSvcFacade   = (*userService)(nil)
	_ portssvc.TokenSvcFacade  = (*tokenService)(nil)
)
