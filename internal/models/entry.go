package models

import "time"

// Entry is the entries table row. The kind-specific fields live in Payload as JSON.
type Entry struct {
	EntryID    string    `db:"entry_id"`
	OwnerID    string    `db:"owner_id"`
	Kind       string    `db:"kind"`
	EntryDate  time.Time `db:"entry_date"`
	Visibility string    `db:"visibility"`
	Payload    []byte    `db:"payload"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// CheckInPayload is the stored form of a check-in.
type CheckInPayload struct {
	Status          string   `json:"status"`
	Mood            int      `json:"mood"`
	Emotions        []string `json:"emotions,omitempty"`
	CurrentActivity string   `json:"currentActivity,omitempty"`
	TodayActivities string   `json:"todayActivities,omitempty"`
}

// MoodPayload is the stored form of a mood log.
type MoodPayload struct {
	Emoji string `json:"emoji"`
	Label string `json:"label"`
	Score int    `json:"score"`
	Notes string `json:"notes,omitempty"`
}

// JournalPayload is the stored form of a journal entry, including the PIN hash.
type JournalPayload struct {
	Title       string   `json:"title,omitempty"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
	MediaURLs   []string `json:"mediaURLs,omitempty"`
	SharedWith  []string `json:"sharedWith,omitempty"`
	MoodEntryID string   `json:"moodEntryID,omitempty"`
	IsProtected bool     `json:"isProtected"`
	PinHash     string   `json:"pinHash,omitempty"`
}
