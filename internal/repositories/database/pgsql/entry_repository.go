package pgsql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/checkin_ledger/internal/apperrors"
	"github.com/SscSPs/checkin_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/checkin_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/checkin_ledger/internal/models"
	"github.com/SscSPs/checkin_ledger/internal/utils/mapping"
	"github.com/SscSPs/checkin_ledger/internal/utils/pagination"
)

const entryColumns = `entry_id, owner_id, kind, entry_date, visibility, payload, created_at, updated_at`

// PgxEntryRepository implements portsrepo.EntryRepositoryFacade using pgx.
type PgxEntryRepository struct {
	BaseRepository
}

func newPgxEntryRepository(pool *pgxpool.Pool) *PgxEntryRepository {
	return &PgxEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

func scanEntry(row pgx.Row) (models.Entry, error) {
	var m models.Entry
	err := row.Scan(
		&m.EntryID,
		&m.OwnerID,
		&m.Kind,
		&m.EntryDate,
		&m.Visibility,
		&m.Payload,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func collectEntries(rows pgx.Rows) ([]domain.Entry, error) {
	defer rows.Close()
	entries := []domain.Entry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan entry row", err)
		}
		d, err := mapping.ToDomainEntry(m)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to map entry row", err)
		}
		entries = append(entries, d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating entry rows", err)
	}
	return entries, nil
}

func (r *PgxEntryRepository) findOne(ctx context.Context, query string, args ...any) (*domain.Entry, error) {
	m, err := scanEntry(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, rowError(err, "failed to query entry")
	}
	d, err := mapping.ToDomainEntry(m)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to map entry row", err)
	}
	return &d, nil
}

func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE entry_id = $1;`
	return r.findOne(ctx, query, entryID)
}

func (r *PgxEntryRepository) FindEntryForDate(ctx context.Context, ownerID string, kind domain.EntryKind, date domain.Day) (*domain.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE owner_id = $1 AND kind = $2 AND entry_date = $3
		ORDER BY created_at DESC
		LIMIT 1;
	`
	return r.findOne(ctx, query, ownerID, string(kind), date.Time())
}

func (r *PgxEntryRepository) ListEntriesSince(ctx context.Context, ownerID string, kind domain.EntryKind, since domain.Day) ([]domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE owner_id = $1`
	args := []any{ownerID}
	if kind != "" {
		args = append(args, string(kind))
		query += ` AND kind = $` + strconv.Itoa(len(args))
	}
	if since != "" {
		args = append(args, since.Time())
		query += ` AND entry_date >= $` + strconv.Itoa(len(args))
	}

	query += ` ORDER BY entry_date DESC, created_at DESC, entry_id DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list entries for owner "+ownerID, err)
	}
	return collectEntries(rows)
}

func (r *PgxEntryRepository) ListRecentByOwners(ctx context.Context, ownerIDs []string, kind domain.EntryKind, limit int) ([]domain.Entry, error) {
	if len(ownerIDs) == 0 {
		return []domain.Entry{}, nil
	}
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE owner_id = ANY($1) AND kind = $2
		ORDER BY created_at DESC, entry_id DESC
		LIMIT $3;
	`
	rows, err := r.Pool.Query(ctx, query, ownerIDs, string(kind), limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list recent entries", err)
	}
	return collectEntries(rows)
}

// ListCheckIns retrieves the owner's check-ins using keyset pagination over (created_at, entry_id).
func (r *PgxEntryRepository) ListCheckIns(ctx context.Context, ownerID string, limit int, nextToken *string) ([]domain.Entry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// One extra row tells us whether there is a next page.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + entryColumns + ` FROM entries WHERE owner_id = $1 AND kind = $2`
	orderByClause := `ORDER BY created_at DESC, entry_id DESC`
	args := []any{ownerID, string(domain.KindCheckIn)}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", fmt.Errorf("%w: %v", apperrors.ErrValidation, decodeErr))
		}
		baseQuery += ` AND (created_at, entry_id) < ($3, $4)`
		args = append(args, lastCreatedAt, lastID)
	}

	query := baseQuery + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query check-ins for owner "+ownerID, err)
	}
	entries, err := collectEntries(rows)
	if err != nil {
		return nil, nil, err
	}

	if len(entries) <= limit {
		return entries, nil, nil
	}
	page := entries[:limit]
	last := page[limit-1]
	token := pagination.EncodeToken(last.CreatedAt, last.EntryID)
	return page, &token, nil
}

func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) error {
	m, err := mapping.ToModelEntry(entry)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	query := `
		INSERT INTO entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.EntryID, m.OwnerID, m.Kind, m.EntryDate, m.Visibility, m.Payload, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s entry for %s already exists", apperrors.ErrDuplicate, entry.Kind, entry.Date)
		}
		return apperrors.NewAppError(500, "failed to insert entry", err)
	}
	return nil
}

func (r *PgxEntryRepository) UpdateEntry(ctx context.Context, entry domain.Entry) error {
	m, err := mapping.ToModelEntry(entry)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	query := `
		UPDATE entries
		SET visibility = $3, payload = $4, updated_at = $5
		WHERE entry_id = $1 AND owner_id = $2;
	`
	return r.execOwned(ctx, "failed to update entry "+entry.EntryID, query,
		m.EntryID, m.OwnerID, m.Visibility, m.Payload, m.UpdatedAt)
}

func (r *PgxEntryRepository) DeleteEntry(ctx context.Context, entryID string, ownerID string) error {
	return r.execOwned(ctx, "failed to delete entry "+entryID,
		`DELETE FROM entries WHERE entry_id = $1 AND owner_id = $2;`, entryID, ownerID)
}
