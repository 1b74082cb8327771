package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/checkin_ledger/internal/apperrors"
)

// BaseRepository holds the pool shared by the ledger repositories.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// execOwned runs a statement scoped to a single owned row. Zero affected rows
// means the row is missing or belongs to someone else; both read as ErrNotFound.
func (r *BaseRepository) execOwned(ctx context.Context, failMsg string, query string, args ...any) error {
	tag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return apperrors.NewAppError(500, failMsg, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// rowError maps pgx.ErrNoRows to ErrNotFound and wraps anything else.
func rowError(err error, failMsg string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	return apperrors.NewAppError(500, failMsg, err)
}

// isUniqueViolation reports whether err is a Postgres unique_violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
