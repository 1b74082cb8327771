package repositories

import (
	"context"

	"github.com/SscSPs/checkin_ledger/internal/core/domain"
)

// ContactReader is the ledger's read-only view of the contact graph.
type ContactReader interface {
	// ListContacts returns the contacts of userID.
	ListContacts(ctx context.Context, userID string) ([]domain.Contact, error)

	// FindContact returns the edge userID -> contactUserID, or apperrors.ErrNotFound.
	FindContact(ctx context.Context, userID string, contactUserID string) (*domain.Contact, error)
}
