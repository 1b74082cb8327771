package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/SscSPs/checkin_ledger/internal/core/domain"
)

func TestContact_IsMutedAt(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	later := now.Add(time.Hour)

	assert.False(t, domain.Contact{}.IsMutedAt(now))
	assert.True(t, domain.Contact{IsMuted: true}.IsMutedAt(now), "no expiry mutes forever")
	assert.True(t, domain.Contact{IsMuted: true, MutedUntil: &later}.IsMutedAt(now))
	assert.False(t, domain.Contact{IsMuted: true, MutedUntil: &later}.IsMutedAt(later), "expiry instant is unmuted")
}
