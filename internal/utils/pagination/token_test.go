package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	createdAt := time.Date(2024, 3, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(createdAt, "entry-42")
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedAt, decodedID, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, createdAt.Equal(decodedAt), "Created at time should match after decode")
	assert.Equal(t, "entry-42", decodedID)

	// Non-UTC times are normalized.
	loc := time.FixedZone("CET", 3600)
	local := time.Date(2024, 3, 15, 15, 30, 45, 0, loc)
	decodedAt, _, err = DecodeToken(EncodeToken(local, "x"))
	require.NoError(t, err)
	assert.True(t, local.Equal(decodedAt))
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	noSeparator := base64.StdEncoding.EncodeToString([]byte("2024-03-15T00:00:00Z"))
	_, _, err = DecodeToken(noSeparator)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	badTime := base64.StdEncoding.EncodeToString([]byte("notadate|entry-1"))
	_, _, err = DecodeToken(badTime)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "created_at parse")
}

func TestAfter(t *testing.T) {
	base := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		createdAt time.Time
		id        string
		want      bool
	}{
		{"older item is on next page", base.Add(-time.Second), "z", true},
		{"newer item is not", base.Add(time.Second), "a", false},
		{"same time lower id", base, "a", true},
		{"same time same id", base, "m", false},
		{"same time higher id", base, "z", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, After(tt.createdAt, tt.id, base, "m"))
		})
	}
}
