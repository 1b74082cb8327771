package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// EntryKind distinguishes the three kinds of ledger entries.
type EntryKind string

const (
	KindCheckIn EntryKind = "checkin"
	KindMood    EntryKind = "mood"
	KindJournal EntryKind = "journal"
)

// Score bounds. Check-in ratings and mood logs use independent scales.
const (
	CheckInMoodMin = 1
	CheckInMoodMax = 10
	MoodScoreMin   = 1
	MoodScoreMax   = 5
)

// DefaultJournalMaxContent is the content length limit (in characters) for journal entries.
const DefaultJournalMaxContent = 2000

// Valid reports whether k is a known kind.
func (k EntryKind) Valid() bool {
	switch k {
	case KindCheckIn, KindMood, KindJournal:
		return true
	}
	return false
}

// DailyUnique reports whether at most one entry of this kind may exist per owner and day.
func (k EntryKind) DailyUnique() bool {
	return k == KindMood || k == KindJournal
}

// CheckInPayload is a status update with a 1-10 mood rating.
type CheckInPayload struct {
	Status          string   `json:"status"`
	Mood            int      `json:"mood"`
	Emotions        []string `json:"emotions"`
	CurrentActivity string   `json:"currentActivity"`
	TodayActivities string   `json:"todayActivities"`
}

// MoodPayload is a daily mood log scored 1-5.
type MoodPayload struct {
	Emoji string `json:"emoji"`
	Label string `json:"label"`
	Score int    `json:"score"`
	Notes string `json:"notes,omitempty"`
}

// JournalPayload is a daily journal entry. PinHash never leaves the service layer.
type JournalPayload struct {
	Title       string   `json:"title,omitempty"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
	MediaURLs   []string `json:"mediaURLs,omitempty"`
	SharedWith  []string `json:"sharedWith,omitempty"`
	MoodEntryID string   `json:"moodEntryID,omitempty"`
	IsProtected bool     `json:"isProtected"`
	PinHash     string   `json:"-"`
}

// Entry is a dated, owner-scoped ledger record. Exactly one payload is set, matching Kind.
type Entry struct {
	EntryID    string          `json:"entryID"`
	OwnerID    string          `json:"ownerID"`
	Kind       EntryKind       `json:"kind"`
	Date       Day             `json:"date"`
	Visibility Visibility      `json:"visibility"`
	CheckIn    *CheckInPayload `json:"checkIn,omitempty"`
	Mood       *MoodPayload    `json:"mood,omitempty"`
	Journal    *JournalPayload `json:"journal,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// Score returns the kind-appropriate score and whether the entry carries one.
func (e Entry) Score() (int, bool) {
	switch {
	case e.Kind == KindMood && e.Mood != nil:
		return e.Mood.Score, true
	case e.Kind == KindCheckIn && e.CheckIn != nil:
		return e.CheckIn.Mood, true
	}
	return 0, false
}

// Labels returns the categorical values counted by distributions:
// the mood label, the check-in status, or the journal tags.
func (e Entry) Labels() []string {
	switch {
	case e.Mood != nil:
		return []string{e.Mood.Label}
	case e.CheckIn != nil:
		return []string{e.CheckIn.Status}
	case e.Journal != nil:
		return e.Journal.Tags
	}
	return nil
}

// Tags returns the tag set of the entry. Check-in emotions act as tags.
func (e Entry) Tags() []string {
	switch {
	case e.Journal != nil:
		return e.Journal.Tags
	case e.CheckIn != nil:
		return e.CheckIn.Emotions
	}
	return nil
}

// TextFields returns the free-text fields that search matches against.
func (e Entry) TextFields() []string {
	switch {
	case e.Journal != nil:
		return []string{e.Journal.Title, e.Journal.Content}
	case e.CheckIn != nil:
		return []string{e.CheckIn.Status, e.CheckIn.CurrentActivity, e.CheckIn.TodayActivities}
	case e.Mood != nil:
		return []string{e.Mood.Label, e.Mood.Notes}
	}
	return nil
}

// IsProtected reports whether mutation of e is gated behind a PIN.
func (e Entry) IsProtected() bool {
	return e.Journal != nil && e.Journal.IsProtected
}

// Validate checks the payload bounds for e's kind. maxContent <= 0 uses the default.
func (e Entry) Validate(maxContent int) error {
	if !e.Kind.Valid() {
		return fmt.Errorf("unknown entry kind %q", e.Kind)
	}
	if !e.Date.Valid() {
		return fmt.Errorf("invalid entry date %q", e.Date)
	}
	if !e.Visibility.Known() {
		return fmt.Errorf("unknown visibility %q", e.Visibility)
	}
	switch e.Kind {
	case KindCheckIn:
		if e.CheckIn == nil {
			return fmt.Errorf("check-in payload is required")
		}
		return e.CheckIn.validate()
	case KindMood:
		if e.Mood == nil {
			return fmt.Errorf("mood payload is required")
		}
		return e.Mood.validate()
	default:
		if e.Journal == nil {
			return fmt.Errorf("journal payload is required")
		}
		return e.Journal.validate(maxContent)
	}
}

func (p CheckInPayload) validate() error {
	if strings.TrimSpace(p.Status) == "" {
		return fmt.Errorf("check-in status is required")
	}
	if p.Mood < CheckInMoodMin || p.Mood > CheckInMoodMax {
		return fmt.Errorf("check-in mood must be between %d and %d, got %d", CheckInMoodMin, CheckInMoodMax, p.Mood)
	}
	return nil
}

func (p MoodPayload) validate() error {
	if strings.TrimSpace(p.Label) == "" {
		return fmt.Errorf("mood label is required")
	}
	if p.Score < MoodScoreMin || p.Score > MoodScoreMax {
		return fmt.Errorf("mood score must be between %d and %d, got %d", MoodScoreMin, MoodScoreMax, p.Score)
	}
	return nil
}

func (p JournalPayload) validate(maxContent int) error {
	if maxContent <= 0 {
		maxContent = DefaultJournalMaxContent
	}
	if strings.TrimSpace(p.Content) == "" {
		return fmt.Errorf("journal content is required")
	}
	if n := utf8.RuneCountInString(p.Content); n > maxContent {
		return fmt.Errorf("journal content is %d characters, limit is %d", n, maxContent)
	}
	if p.IsProtected && p.PinHash == "" {
		return fmt.Errorf("protected journal entry requires a pin")
	}
	return nil
}
