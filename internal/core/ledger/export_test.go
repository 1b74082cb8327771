package ledger_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/checkin_ledger/internal/apperrors"
	"github.com/SscSPs/checkin_ledger/internal/core/domain"
	"github.com/SscSPs/checkin_ledger/internal/core/ledger"
)

func TestParseExportFormat(t *testing.T) {
	for raw, want := range map[string]ledger.ExportFormat{"": ledger.ExportText, "text": ledger.ExportText, "TXT": ledger.ExportText, "json": ledger.ExportJSON} {
		got, err := ledger.ParseExportFormat(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
	_, err := ledger.ParseExportFormat("csv")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestExportJournal(t *testing.T) {
	entries := []domain.Entry{
		journal("a", "2024-03-01", "", "first day", domain.VisibilityPrivate),
		journal("b", "2024-03-02", "Trip", "second day", domain.VisibilityPublic, "travel"),
		mood("2024-03-02", "Happy", 4),
	}
	entries[0].Journal.PinHash = "hash-that-must-not-leak"
	entries[0].Journal.IsProtected = true
	entries[1].Journal.MoodEntryID = "mood-b"

	t.Run("json", func(t *testing.T) {
		out, err := ledger.ExportJournal(entries, ledger.ExportJSON)
		require.NoError(t, err)
		assert.NotContains(t, out, "hash-that-must-not-leak")

		var decoded []struct {
			EntryID     string   `json:"entryID"`
			Tags        []string `json:"tags"`
			IsProtected bool     `json:"isProtected"`
			MoodEntryID string   `json:"moodEntryID"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		require.Len(t, decoded, 2)
		assert.Equal(t, "b", decoded[0].EntryID)
		assert.Equal(t, "mood-b", decoded[0].MoodEntryID)
		assert.Empty(t, decoded[1].MoodEntryID)
		assert.Equal(t, []string{}, decoded[1].Tags)
		assert.True(t, decoded[1].IsProtected)
	})

	t.Run("text", func(t *testing.T) {
		out, err := ledger.ExportJournal(entries, ledger.ExportText)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "# Mijn Dagboek\n\n"))
		assert.Less(t, strings.Index(out, "2024-03-02"), strings.Index(out, "2024-03-01"))
		assert.Contains(t, out, "**Trip**")
		assert.Contains(t, out, "Tags: travel")
		assert.NotContains(t, out, "Happy")
	})

	t.Run("empty json is an array", func(t *testing.T) {
		out, err := ledger.ExportJournal(nil, ledger.ExportJSON)
		require.NoError(t, err)
		assert.JSONEq(t, "[]", out)
	})
}
