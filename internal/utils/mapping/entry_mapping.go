package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/checkin_ledger/internal/core/domain"
	"github.com/SscSPs/checkin_ledger/internal/models"
)

// ToModelEntry converts a domain Entry to a model Entry, encoding its payload.
func ToModelEntry(d domain.Entry) (models.Entry, error) {
	var payload any
	switch {
	case d.CheckIn != nil:
		payload = models.CheckInPayload{
			Status:          d.CheckIn.Status,
			Mood:            d.CheckIn.Mood,
			Emotions:        d.CheckIn.Emotions,
			CurrentActivity: d.CheckIn.CurrentActivity,
			TodayActivities: d.CheckIn.TodayActivities,
		}
	case d.Mood != nil:
		payload = models.MoodPayload{
			Emoji: d.Mood.Emoji,
			Label: d.Mood.Label,
			Score: d.Mood.Score,
			Notes: d.Mood.Notes,
		}
	case d.Journal != nil:
		payload = models.JournalPayload{
			Title:       d.Journal.Title,
			Content:     d.Journal.Content,
			Tags:        d.Journal.Tags,
			MediaURLs:   d.Journal.MediaURLs,
			SharedWith:  d.Journal.SharedWith,
			MoodEntryID: d.Journal.MoodEntryID,
			IsProtected: d.Journal.IsProtected,
			PinHash:     d.Journal.PinHash,
		}
	default:
		return models.Entry{}, fmt.Errorf("entry %s has no payload", d.EntryID)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return models.Entry{}, fmt.Errorf("failed to encode entry payload: %w", err)
	}

	return models.Entry{
		EntryID:    d.EntryID,
		OwnerID:    d.OwnerID,
		Kind:       string(d.Kind),
		EntryDate:  d.Date.Time(),
		Visibility: string(d.Visibility),
		Payload:    raw,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}, nil
}

// ToDomainEntry converts a model Entry to a domain Entry, decoding the payload for its kind.
func ToDomainEntry(m models.Entry) (domain.Entry, error) {
	d := domain.Entry{
		EntryID:    m.EntryID,
		OwnerID:    m.OwnerID,
		Kind:       domain.EntryKind(m.Kind),
		Date:       domain.DayOf(m.EntryDate),
		Visibility: domain.Visibility(m.Visibility),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}

	switch d.Kind {
	case domain.KindCheckIn:
		var p models.CheckInPayload
		if err := json.Unmarshal(m.Payload, &p); err != nil {
			return d, fmt.Errorf("failed to decode check-in payload of %s: %w", m.EntryID, err)
		}
		d.CheckIn = &domain.CheckInPayload{
			Status:          p.Status,
			Mood:            p.Mood,
			Emotions:        p.Emotions,
			CurrentActivity: p.CurrentActivity,
			TodayActivities: p.TodayActivities,
		}
	case domain.KindMood:
		var p models.MoodPayload
		if err := json.Unmarshal(m.Payload, &p); err != nil {
			return d, fmt.Errorf("failed to decode mood payload of %s: %w", m.EntryID, err)
		}
		d.Mood = &domain.MoodPayload{Emoji: p.Emoji, Label: p.Label, Score: p.Score, Notes: p.Notes}
	case domain.KindJournal:
		var p models.JournalPayload
		if err := json.Unmarshal(m.Payload, &p); err != nil {
			return d, fmt.Errorf("failed to decode journal payload of %s: %w", m.EntryID, err)
		}
		if p.Tags == nil {
			p.Tags = []string{}
		}
		d.Journal = &domain.JournalPayload{
			Title:       p.Title,
			Content:     p.Content,
			Tags:        p.Tags,
			MediaURLs:   p.MediaURLs,
			SharedWith:  p.SharedWith,
			MoodEntryID: p.MoodEntryID,
			IsProtected: p.IsProtected,
			PinHash:     p.PinHash,
		}
	default:
		return d, fmt.Errorf("entry %s has unknown kind %q", m.EntryID, m.Kind)
	}
	return d, nil
}
