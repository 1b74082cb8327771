package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/checkin_ledger/internal/apperrors"
	"github.com/SscSPs/checkin_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/checkin_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/checkin_ledger/internal/models"
	"github.com/SscSPs/checkin_ledger/internal/utils/mapping"
)

// PgxContactRepository reads the contact graph. Contacts are managed outside the ledger.
type PgxContactRepository struct {
	BaseRepository
}

func newPgxContactRepository(pool *pgxpool.Pool) *PgxContactRepository {
	return &PgxContactRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ContactReader = (*PgxContactRepository)(nil)

func (r *PgxContactRepository) ListContacts(ctx context.Context, userID string) ([]domain.Contact, error) {
	query := `
		SELECT user_id, contact_user_id, is_muted, muted_until, created_at
		FROM contacts
		WHERE user_id = $1
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list contacts for "+userID, err)
	}
	defer rows.Close()

	contacts := []domain.Contact{}
	for rows.Next() {
		var m models.Contact
		if err := rows.Scan(&m.UserID, &m.ContactUserID, &m.IsMuted, &m.MutedUntil, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan contact row", err)
		}
		contacts = append(contacts, mapping.ToDomainContact(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating contact rows", err)
	}
	return contacts, nil
}

func (r *PgxContactRepository) FindContact(ctx context.Context, userID string, contactUserID string) (*domain.Contact, error) {
	query := `
		SELECT user_id, contact_user_id, is_muted, muted_until, created_at
		FROM contacts
		WHERE user_id = $1 AND contact_user_id = $2;
	`
	var m models.Contact
	err := r.Pool.QueryRow(ctx, query, userID, contactUserID).Scan(&m.UserID, &m.ContactUserID, &m.IsMuted, &m.MutedUntil, &m.CreatedAt)
	if err != nil {
		return nil, rowError(err, "failed to find contact")
	}
	c := mapping.ToDomainContact(m)
	return &c, nil
}
