package ledger

import (
	"fmt"
	"strings"

	"github.com/SscSPs/checkin_ledger/internal/apperrors"
	"github.com/SscSPs/checkin_ledger/internal/core/domain"
	"golang.org/x/crypto/bcrypt"
)

// PinGate hashes and verifies the PINs that protect journal entries.
type PinGate struct {
	cost int
}

// NewPinGate returns a gate hashing with the given bcrypt cost.
// Out-of-range costs fall back to bcrypt.DefaultCost.
func NewPinGate(cost int) *PinGate {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PinGate{cost: cost}
}

// SetProtection hashes pin onto e, replacing any previous hash, and marks e protected.
func (g *PinGate) SetProtection(e *domain.Entry, pin string) error {
	if e.Journal == nil {
		return fmt.Errorf("%w: only journal entries can be protected", apperrors.ErrValidation)
	}
	if strings.TrimSpace(pin) == "" {
		return fmt.Errorf("%w: pin must not be empty", apperrors.ErrValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), g.cost)
	if err != nil {
		return fmt.Errorf("failed to hash pin: %w", err)
	}
	e.Journal.PinHash = string(hash)
	e.Journal.IsProtected = true
	return nil
}

// ClearProtection removes the PIN from e.
func (g *PinGate) ClearProtection(e *domain.Entry) {
	if e.Journal == nil {
		return
	}
	e.Journal.PinHash = ""
	e.Journal.IsProtected = false
}

// Verify reports whether candidate matches e's PIN. It is false for unprotected entries.
func (g *PinGate) Verify(e domain.Entry, candidate string) bool {
	if !e.IsProtected() || e.Journal.PinHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(e.Journal.PinHash), []byte(candidate)) == nil
}

// Check must pass before e is mutated or deleted.
func (g *PinGate) Check(e domain.Entry, pin string) error {
	if !e.IsProtected() {
		return nil
	}
	if pin == "" {
		return apperrors.ErrPinRequired
	}
	if !g.Verify(e, pin) {
		return apperrors.ErrPinMismatch
	}
	return nil
}
