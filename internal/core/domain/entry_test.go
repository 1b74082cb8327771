package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SscSPs/checkin_ledger/internal/core/domain"
)

func TestEntry_Validate(t *testing.T) {
	base := func(kind domain.EntryKind) domain.Entry {
		return domain.Entry{Kind: kind, Date: "2024-03-10", Visibility: domain.VisibilityPrivate}
	}

	checkIn := base(domain.KindCheckIn)
	checkIn.CheckIn = &domain.CheckInPayload{Status: "ok", Mood: 10}
	assert.NoError(t, checkIn.Validate(0))
	checkIn.CheckIn.Mood = 0
	assert.Error(t, checkIn.Validate(0))

	mood := base(domain.KindMood)
	mood.Mood = &domain.MoodPayload{Label: "Happy", Score: 5}
	assert.NoError(t, mood.Validate(0))
	mood.Mood.Score = 6
	assert.Error(t, mood.Validate(0), "mood scores use the 1-5 scale")

	journal := base(domain.KindJournal)
	journal.Journal = &domain.JournalPayload{Content: strings.Repeat("é", 10)}
	assert.NoError(t, journal.Validate(10), "limit counts characters, not bytes")
	assert.Error(t, journal.Validate(9))
	journal.Journal.IsProtected = true
	assert.Error(t, journal.Validate(0), "protected entries carry a pin hash")

	missing := base(domain.KindMood)
	assert.Error(t, missing.Validate(0))

	unknown := mood
	unknown.Mood = &domain.MoodPayload{Label: "Happy", Score: 3}
	unknown.Visibility = "friends-only"
	assert.Error(t, unknown.Validate(0))
}

func TestEntry_Accessors(t *testing.T) {
	e := domain.Entry{Kind: domain.KindCheckIn, CheckIn: &domain.CheckInPayload{Status: "busy", Mood: 7, Emotions: []string{"tired"}}}
	score, ok := e.Score()
	assert.True(t, ok)
	assert.Equal(t, 7, score)
	assert.Equal(t, []string{"busy"}, e.Labels())
	assert.Equal(t, []string{"tired"}, e.Tags())

	j := domain.Entry{Kind: domain.KindJournal, Journal: &domain.JournalPayload{Content: "x"}}
	_, ok = j.Score()
	assert.False(t, ok)
	assert.False(t, j.IsProtected())
}

func TestCatalog(t *testing.T) {
	opt, ok := domain.LookupMoodOption(" happy ")
	assert.True(t, ok)
	assert.Equal(t, 4, opt.Score)

	_, ok = domain.LookupMoodOption("Content")
	assert.False(t, ok)

	assert.Equal(t, "⏳", domain.StatusEmoji("BUSY"))
	assert.Equal(t, "💬", domain.StatusEmoji("out for lunch"))
}
