package ledger

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/checkin_ledger/internal/apperrors"
	"github.com/SscSPs/checkin_ledger/internal/core/domain"
)

// ExportFormat selects the journal export serialization.
type ExportFormat string

const (
	ExportText ExportFormat = "text"
	ExportJSON ExportFormat = "json"
)

// ParseExportFormat accepts "text", "txt" and "json"; empty means text.
func ParseExportFormat(raw string) (ExportFormat, error) {
	switch strings.ToLower(raw) {
	case "", "text", "txt":
		return ExportText, nil
	case "json":
		return ExportJSON, nil
	}
	return "", fmt.Errorf("%w: unsupported export format %q", apperrors.ErrValidation, raw)
}

type exportedEntry struct {
	EntryID     string            `json:"entryID"`
	Date        domain.Day        `json:"date"`
	Title       string            `json:"title,omitempty"`
	Content     string            `json:"content"`
	Tags        []string          `json:"tags"`
	MoodEntryID string            `json:"moodEntryID,omitempty"`
	Visibility  domain.Visibility `json:"visibility"`
	IsProtected bool              `json:"isProtected"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// exportTextHeader titles the text export, in the same language as the status catalog.
const exportTextHeader = "# Mijn Dagboek\n\n"

// ExportJournal serializes journal entries newest first.
func ExportJournal(entries []domain.Entry, format ExportFormat) (string, error) {
	sorted := make([]domain.Entry, 0, len(entries))
	for _, e := range Query(entries, QueryOptions{Kind: domain.KindJournal}) {
		if e.Journal != nil {
			sorted = append(sorted, e)
		}
	}

	if format == ExportJSON {
		out := make([]exportedEntry, 0, len(sorted))
		for _, e := range sorted {
			tags := e.Journal.Tags
			if tags == nil {
				tags = []string{}
			}
			out = append(out, exportedEntry{
				EntryID:     e.EntryID,
				Date:        e.Date,
				Title:       e.Journal.Title,
				Content:     e.Journal.Content,
				Tags:        tags,
				MoodEntryID: e.Journal.MoodEntryID,
				Visibility:  e.Visibility,
				IsProtected: e.Journal.IsProtected,
				CreatedAt:   e.CreatedAt,
				UpdatedAt:   e.UpdatedAt,
			})
		}
		b, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode journal export: %w", err)
		}
		return string(b), nil
	}

	var sb strings.Builder
	sb.WriteString(exportTextHeader)
	for _, e := range sorted {
		fmt.Fprintf(&sb, "## %s\n", e.Date)
		if e.Journal.Title != "" {
			fmt.Fprintf(&sb, "**%s**\n\n", e.Journal.Title)
		}
		fmt.Fprintf(&sb, "%s\n\n", e.Journal.Content)
		if len(e.Journal.Tags) > 0 {
			fmt.Fprintf(&sb, "Tags: %s\n\n", strings.Join(e.Journal.Tags, ", "))
		}
		sb.WriteString("---\n\n")
	}
	return sb.String(), nil
}
