package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/SscSPs/checkin_ledger/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EntryRepo:   newPgxEntryRepository(dbPool),
		UserRepo:    newPgxUserRepository(dbPool),
		ContactRepo: newPgxContactRepository(dbPool),
	}
}
