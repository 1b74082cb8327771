package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/checkin_ledger/internal/apperrors"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("user-1", "secret", time.Hour, "checkin-ledger")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "checkin-ledger", claims.Issuer)
}

func TestParseAndValidateJWT_Rejects(t *testing.T) {
	token, err := GenerateJWT("user-1", "secret", time.Hour, "checkin-ledger")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "other-secret")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	expired, err := GenerateJWT("user-1", "secret", -time.Minute, "checkin-ledger")
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(expired, "secret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	_, err = GenerateJWT("", "secret", time.Hour, "checkin-ledger")
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("correct horse", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
	assert.False(t, CheckPasswordHash("anything", ""))

	_, err = HashPassword(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
