package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/SscSPs/checkin_ledger/internal/apperrors"
)

// maxPasswordBytes is bcrypt's input limit; longer secrets would be silently truncated.
const maxPasswordBytes = 72

// HashPassword hashes a login password with bcrypt at the default cost.
func HashPassword(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", fmt.Errorf("%w: password exceeds %d bytes", apperrors.ErrValidation, maxPasswordBytes)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether password matches hash. An empty hash never matches.
func CheckPasswordHash(password, hash string) bool {
	if hash == "" || len(password) > maxPasswordBytes {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
