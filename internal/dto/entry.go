package dto

import (
	"time"

	"github.com/SscSPs/checkin_ledger/internal/core/domain"
)

// LogCheckInRequest defines the data needed to post a status update.
type LogCheckInRequest struct {
	Status          string   `json:"status" binding:"required,max=120"`
	Mood            int      `json:"mood" binding:"required,min=1,max=10"`
	Emotions        []string `json:"emotions" binding:"omitempty,dive,max=40"`
	CurrentActivity string   `json:"currentActivity" binding:"max=280"`
	TodayActivities string   `json:"todayActivities" binding:"max=1000"`
	Visibility      string   `json:"visibility" binding:"omitempty,oneof=private contacts public all"`
}

// LogMoodRequest defines the data needed to log today's mood.
// Score and Emoji may be omitted when Label names a catalog mood.
type LogMoodRequest struct {
	Label      string `json:"label" binding:"required,max=40"`
	Emoji      string `json:"emoji" binding:"max=16"`
	Score      int    `json:"score" binding:"omitempty,min=1,max=5"`
	Notes      string `json:"notes" binding:"max=500"`
	Visibility string `json:"visibility" binding:"omitempty,oneof=private contacts public all"`
}

// CreateJournalEntryRequest defines the data for today's journal entry.
// Pin unlocks an existing protected entry for today and, with IsProtected, becomes its new PIN.
type CreateJournalEntryRequest struct {
	Title       string   `json:"title" binding:"max=200"`
	Content     string   `json:"content" binding:"required"`
	Tags        []string `json:"tags" binding:"omitempty,dive,max=40"`
	MediaURLs   []string `json:"mediaURLs" binding:"omitempty,dive,url"`
	SharedWith  []string `json:"sharedWith"`
	Visibility  string   `json:"visibility" binding:"omitempty,oneof=private shared_contacts contacts public"`
	IsProtected bool     `json:"isProtected"`
	Pin         string   `json:"pin" binding:"max=64"`
}

// UpdateJournalEntryRequest defines a partial update; nil fields are left unchanged.
type UpdateJournalEntryRequest struct {
	Title       *string   `json:"title" binding:"omitempty,max=200"`
	Content     *string   `json:"content"`
	Tags        *[]string `json:"tags"`
	MediaURLs   *[]string `json:"mediaURLs"`
	SharedWith  *[]string `json:"sharedWith"`
	Visibility  *string   `json:"visibility" binding:"omitempty,oneof=private shared_contacts contacts public"`
	IsProtected *bool     `json:"isProtected"`
	NewPin      *string   `json:"newPin" binding:"omitempty,max=64"`
}

// ListEntriesParams defines the filters of entry listings.
type ListEntriesParams struct {
	Kind       string   `form:"kind" binding:"omitempty,oneof=checkin mood journal"`
	SinceDays  *int     `form:"sinceDays" binding:"omitempty,min=0"`
	Search     string   `form:"search"`
	Tags       []string `form:"tags"`
	DateFrom   string   `form:"dateFrom"`
	DateTo     string   `form:"dateTo"`
	Visibility string   `form:"privacy" binding:"omitempty,oneof=private contacts shared_contacts public"`
	Limit      int      `form:"limit" binding:"omitempty,min=1,max=500"`
}

// ListCheckInsParams defines the parameters for listing check-in history.
type ListCheckInsParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// EntryResponse defines the data returned for a ledger entry.
type EntryResponse struct {
	EntryID    string                 `json:"entryID"`
	OwnerID    string                 `json:"ownerID"`
	Kind       domain.EntryKind       `json:"kind"`
	Date       domain.Day             `json:"date"`
	Visibility domain.Visibility      `json:"visibility"`
	CheckIn    *domain.CheckInPayload `json:"checkIn,omitempty"`
	Mood       *domain.MoodPayload    `json:"mood,omitempty"`
	Journal    *domain.JournalPayload `json:"journal,omitempty"`
	LinkedMood *domain.MoodPayload    `json:"linkedMood,omitempty"`
	CreatedAt  time.Time              `json:"createdAt"`
	UpdatedAt  time.Time              `json:"updatedAt"`
}

// ListCheckInsResponse wraps a page of check-ins.
type ListCheckInsResponse struct {
	CheckIns  []EntryResponse `json:"checkIns"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// FeedItemResponse is one contact check-in in the home feed.
type FeedItemResponse struct {
	EntryResponse
	StatusEmoji  string `json:"statusEmoji"`
	ContactMuted bool   `json:"contactMuted"`
}

// ExportResponse carries a serialized journal export.
type ExportResponse struct {
	Format string `json:"format"`
	Data   string `json:"data"`
}

// ToEntryResponse converts a domain.Entry to EntryResponse DTO.
func ToEntryResponse(e *domain.Entry) EntryResponse {
	return EntryResponse{
		EntryID:    e.EntryID,
		OwnerID:    e.OwnerID,
		Kind:       e.Kind,
		Date:       e.Date,
		Visibility: e.Visibility,
		CheckIn:    e.CheckIn,
		Mood:       e.Mood,
		Journal:    e.Journal,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

// ToEntryResponses converts a slice of domain.Entry to []EntryResponse.
func ToEntryResponses(entries []domain.Entry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return responses
}

// ToJournalResponses converts journal views, attaching the linked mood when it still exists.
func ToJournalResponses(views []domain.JournalEntryView) []EntryResponse {
	responses := make([]EntryResponse, len(views))
	for i := range views {
		responses[i] = ToEntryResponse(&views[i].Entry)
		responses[i].LinkedMood = views[i].LinkedMood
	}
	return responses
}

// ToFeedResponses converts feed items to their DTOs.
func ToFeedResponses(items []domain.FeedItem) []FeedItemResponse {
	responses := make([]FeedItemResponse, len(items))
	for i := range items {
		responses[i] = FeedItemResponse{
			EntryResponse: ToEntryResponse(&items[i].Entry),
			StatusEmoji:   items[i].StatusEmoji,
			ContactMuted:  items[i].ContactMuted,
		}
	}
	return responses
}

// LimitParams binds an optional result cap from the query string.
type LimitParams struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=500"`
}

// PeriodParams binds an optional lookback window in days.
type PeriodParams struct {
	Days       int `form:"days" binding:"omitempty,min=1,max=3650"`
	PeriodDays int `form:"periodDays" binding:"omitempty,min=1,max=3650"`
}

// ExportParams binds the requested export format.
type ExportParams struct {
	Format string `form:"format" binding:"omitempty,oneof=text json"`
}
