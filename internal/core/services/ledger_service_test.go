package services_test

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/SscSPs/checkin_ledger/internal/apperrors"
	"github.com/SscSPs/checkin_ledger/internal/core/domain"
	"github.com/SscSPs/checkin_ledger/internal/core/ledger"
	portssvc "github.com/SscSPs/checkin_ledger/internal/core/ports/services"
	"github.com/SscSPs/checkin_ledger/internal/core/services"
	"github.com/SscSPs/checkin_ledger/internal/dto"
	"github.com/SscSPs/checkin_ledger/internal/repositories/memory"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *memory.Store
	svc   portssvc.LedgerSvcFacade
	now   time.Time
}

const (
	alice = "user-alice"
	bob   = "user-bob"
	carol = "user-carol"
)

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = memory.NewStore()
	suite.now = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	suite.svc = services.NewLedgerService(
		suite.store,
		suite.store,
		services.WithClock(func() time.Time { return suite.now }),
		services.WithPinGate(ledger.NewPinGate(bcrypt.MinCost)),
		services.WithJournalMaxContent(100),
	)
}

func (suite *LedgerServiceTestSuite) advance(d time.Duration) {
	suite.now = suite.now.Add(d)
}

func (suite *LedgerServiceTestSuite) protectedJournal(pin string) *domain.Entry {
	entry, err := suite.svc.CreateJournalEntry(suite.ctx, alice, dto.CreateJournalEntryRequest{
		Content:     "secret thoughts",
		IsProtected: true,
		Pin:         pin,
	})
	suite.Require().NoError(err)
	return entry
}

func (suite *LedgerServiceTestSuite) TestLogMood_UpsertsPerDay() {
	first, err := suite.svc.LogMood(suite.ctx, alice, dto.LogMoodRequest{Label: "Sad"})
	suite.Require().NoError(err)
	suite.advance(time.Hour)
	second, err := suite.svc.LogMood(suite.ctx, alice, dto.LogMoodRequest{Label: "Happy", Notes: "better"})
	suite.Require().NoError(err)

	suite.Equal(first.EntryID, second.EntryID)
	suite.Equal(first.CreatedAt, second.CreatedAt)
	suite.True(second.UpdatedAt.After(second.CreatedAt))

	moods, err := suite.svc.ListEntries(suite.ctx, alice, dto.ListEntriesParams{Kind: "mood"})
	suite.Require().NoError(err)
	suite.Require().Len(moods, 1)
	suite.Equal("Happy", moods[0].Mood.Label)
	suite.Equal(4, moods[0].Mood.Score)
	suite.Equal("🙂", moods[0].Mood.Emoji)
}

func (suite *LedgerServiceTestSuite) TestLogMood_Defaults() {
	entry, err := suite.svc.LogMood(suite.ctx, alice, dto.LogMoodRequest{Label: "Content", Visibility: "all"})
	suite.Require().NoError(err)

	suite.Equal(domain.DefaultMoodScore, entry.Mood.Score)
	suite.Equal(domain.VisibilityPublic, entry.Visibility)
	suite.Equal(domain.Day("2024-03-10"), entry.Date)

	other, err := suite.svc.LogMood(suite.ctx, bob, dto.LogMoodRequest{Label: "Tired"})
	suite.Require().NoError(err)
	suite.Equal(domain.VisibilityContacts, other.Visibility)
}

func (suite *LedgerServiceTestSuite) TestLogCheckIn_NeverMerges() {
	_, err := suite.svc.LogCheckIn(suite.ctx, alice, dto.LogCheckInRequest{Status: "ok", Mood: 6})
	suite.Require().NoError(err)
	suite.advance(time.Minute)
	latest, err := suite.svc.LogCheckIn(suite.ctx, alice, dto.LogCheckInRequest{Status: "busy", Mood: 4})
	suite.Require().NoError(err)

	all, err := suite.svc.ListEntries(suite.ctx, alice, dto.ListEntriesParams{Kind: "checkin"})
	suite.Require().NoError(err)
	suite.Len(all, 2)

	got, err := suite.svc.GetEntryForDate(suite.ctx, alice, domain.KindCheckIn, "2024-03-10")
	suite.Require().NoError(err)
	suite.Equal(latest.EntryID, got.EntryID)
}

func (suite *LedgerServiceTestSuite) TestRequiresUser() {
	_, err := suite.svc.LogMood(suite.ctx, "", dto.LogMoodRequest{Label: "Happy"})
	suite.ErrorIs(err, apperrors.ErrNotAuthenticated)

	_, err = suite.svc.LogCheckIn(suite.ctx, "", dto.LogCheckInRequest{Status: "ok", Mood: 5})
	suite.ErrorIs(err, apperrors.ErrNotAuthenticated)

	err = suite.svc.DeleteEntry(suite.ctx, "", "anything", "")
	suite.ErrorIs(err, apperrors.ErrNotAuthenticated)
}

func (suite *LedgerServiceTestSuite) TestValidationFailuresWriteNothing() {
	_, err := suite.svc.LogCheckIn(suite.ctx, alice, dto.LogCheckInRequest{Status: "ok", Mood: 11})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.svc.LogMood(suite.ctx, alice, dto.LogMoodRequest{Label: "Happy", Score: 6})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.svc.CreateJournalEntry(suite.ctx, alice, dto.CreateJournalEntryRequest{Content: strings.Repeat("x", 101)})
	suite.ErrorIs(err, apperrors.ErrValidation)

	entries, err := suite.svc.ListEntries(suite.ctx, alice, dto.ListEntriesParams{})
	suite.Require().NoError(err)
	suite.Empty(entries)
}

func (suite *LedgerServiceTestSuite) TestGetEntryForDate_Errors() {
	_, err := suite.svc.GetEntryForDate(suite.ctx, alice, domain.KindMood, "2024-03-10")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.svc.GetEntryForDate(suite.ctx, alice, domain.KindMood, "10/03/2024")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.svc.GetEntryForDate(suite.ctx, alice, "diary", "2024-03-10")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestDeleteProtectedEntry() {
	entry := suite.protectedJournal("1234")
	suite.True(entry.IsProtected())

	err := suite.svc.DeleteEntry(suite.ctx, alice, entry.EntryID, "")
	suite.ErrorIs(err, apperrors.ErrPinRequired)

	err = suite.svc.DeleteEntry(suite.ctx, alice, entry.EntryID, "0000")
	suite.ErrorIs(err, apperrors.ErrPinMismatch)

	_, err = suite.svc.GetEntryForDate(suite.ctx, alice, domain.KindJournal, "2024-03-10")
	suite.Require().NoError(err, "entry must survive failed deletes")

	suite.NoError(suite.svc.DeleteEntry(suite.ctx, alice, entry.EntryID, "1234"))

	_, err = suite.svc.GetEntryForDate(suite.ctx, alice, domain.KindJournal, "2024-03-10")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestDeleteEntry_ForeignOwnerIsNotFound() {
	entry, err := suite.svc.LogMood(suite.ctx, alice, dto.LogMoodRequest{Label: "Happy"})
	suite.Require().NoError(err)

	err = suite.svc.DeleteEntry(suite.ctx, bob, entry.EntryID, "")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	err = suite.svc.DeleteEntry(suite.ctx, alice, "missing", "")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.svc.GetTodaysMood(suite.ctx, alice)
	suite.NoError(err)
}

func (suite *LedgerServiceTestSuite) TestUpdateProtectedEntry() {
	entry := suite.protectedJournal("1234")
	content := "rewritten"

	_, err := suite.svc.UpdateJournalEntry(suite.ctx, alice, entry.EntryID, dto.UpdateJournalEntryRequest{Content: &content}, "0000")
	suite.ErrorIs(err, apperrors.ErrPinMismatch)

	current, err := suite.svc.GetEntryForDate(suite.ctx, alice, domain.KindJournal, "2024-03-10")
	suite.Require().NoError(err)
	suite.Equal("secret thoughts", current.Journal.Content)

	suite.advance(time.Minute)
	updated, err := suite.svc.UpdateJournalEntry(suite.ctx, alice, entry.EntryID, dto.UpdateJournalEntryRequest{Content: &content}, "1234")
	suite.Require().NoError(err)
	suite.Equal(content, updated.Journal.Content)
	suite.True(updated.IsProtected())
	suite.Equal(entry.CreatedAt, updated.CreatedAt)

	unprotect := false
	updated, err = suite.svc.UpdateJournalEntry(suite.ctx, alice, entry.EntryID, dto.UpdateJournalEntryRequest{IsProtected: &unprotect}, "1234")
	suite.Require().NoError(err)
	suite.False(updated.IsProtected())

	suite.NoError(suite.svc.DeleteEntry(suite.ctx, alice, entry.EntryID, ""))
}

func (suite *LedgerServiceTestSuite) TestUpdateJournal_ProtectWithoutPin() {
	entry, err := suite.svc.CreateJournalEntry(suite.ctx, alice, dto.CreateJournalEntryRequest{Content: "open"})
	suite.Require().NoError(err)

	protect := true
	_, err = suite.svc.UpdateJournalEntry(suite.ctx, alice, entry.EntryID, dto.UpdateJournalEntryRequest{IsProtected: &protect}, "")
	suite.ErrorIs(err, apperrors.ErrValidation)

	newPin := "4321"
	updated, err := suite.svc.UpdateJournalEntry(suite.ctx, alice, entry.EntryID, dto.UpdateJournalEntryRequest{IsProtected: &protect, NewPin: &newPin}, "")
	suite.Require().NoError(err)
	suite.True(updated.IsProtected())
}

func (suite *LedgerServiceTestSuite) TestUpdateJournal_RejectsOtherKinds() {
	mood, err := suite.svc.LogMood(suite.ctx, alice, dto.LogMoodRequest{Label: "Happy"})
	suite.Require().NoError(err)
	content := "x"

	_, err = suite.svc.UpdateJournalEntry(suite.ctx, alice, mood.EntryID, dto.UpdateJournalEntryRequest{Content: &content}, "")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestCreateJournal_ReplacesProtectedOnlyWithPin() {
	suite.protectedJournal("1234")

	_, err := suite.svc.CreateJournalEntry(suite.ctx, alice, dto.CreateJournalEntryRequest{Content: "overwrite"})
	suite.ErrorIs(err, apperrors.ErrPinRequired)

	replaced, err := suite.svc.CreateJournalEntry(suite.ctx, alice, dto.CreateJournalEntryRequest{Content: "overwrite", Pin: "1234"})
	suite.Require().NoError(err)
	suite.Equal("overwrite", replaced.Journal.Content)
	suite.True(replaced.Journal.IsProtected)

	_, err = suite.svc.CreateJournalEntry(suite.ctx, alice, dto.CreateJournalEntryRequest{Content: "again"})
	suite.ErrorIs(err, apperrors.ErrPinRequired)
	err = suite.svc.DeleteEntry(suite.ctx, alice, replaced.EntryID, "0000")
	suite.ErrorIs(err, apperrors.ErrPinMismatch)
}

func (suite *LedgerServiceTestSuite) TestJournal_LinkedMood() {
	mood, err := suite.svc.LogMood(suite.ctx, alice, dto.LogMoodRequest{Label: "Grateful"})
	suite.Require().NoError(err)
	entry, err := suite.svc.CreateJournalEntry(suite.ctx, alice, dto.CreateJournalEntryRequest{Content: "a good day", Tags: []string{"family"}})
	suite.Require().NoError(err)
	suite.Equal(mood.EntryID, entry.Journal.MoodEntryID)
	suite.Equal(domain.VisibilityPrivate, entry.Visibility)

	views, err := suite.svc.ListJournalEntries(suite.ctx, alice, dto.ListEntriesParams{})
	suite.Require().NoError(err)
	suite.Require().Len(views, 1)
	suite.Require().NotNil(views[0].LinkedMood)
	suite.Equal("Grateful", views[0].LinkedMood.Label)

	suite.Require().NoError(suite.svc.DeleteEntry(suite.ctx, alice, mood.EntryID, ""))

	views, err = suite.svc.ListJournalEntries(suite.ctx, alice, dto.ListEntriesParams{})
	suite.Require().NoError(err)
	suite.Require().Len(views, 1)
	suite.Nil(views[0].LinkedMood)
}

func (suite *LedgerServiceTestSuite) TestJournal_TagsStatsAndExport() {
	_, err := suite.svc.CreateJournalEntry(suite.ctx, alice, dto.CreateJournalEntryRequest{Content: "one two three", Tags: []string{"work", "gym"}})
	suite.Require().NoError(err)
	suite.advance(24 * time.Hour)
	_, err = suite.svc.CreateJournalEntry(suite.ctx, alice, dto.CreateJournalEntryRequest{Content: "four five", Tags: []string{"work"}})
	suite.Require().NoError(err)

	tags, err := suite.svc.UserTags(suite.ctx, alice)
	suite.Require().NoError(err)
	suite.Equal([]string{"gym", "work"}, tags)

	stats, err := suite.svc.JournalStats(suite.ctx, alice)
	suite.Require().NoError(err)
	suite.Equal(2, stats.TotalEntries)
	suite.Equal(5, stats.TotalWords)
	suite.Equal(2, stats.CurrentStreak)
	suite.Require().NotEmpty(stats.TopTags)
	suite.Equal("work", stats.TopTags[0].Label)

	out, err := suite.svc.ExportJournal(suite.ctx, alice, "json")
	suite.Require().NoError(err)
	var exported []map[string]any
	suite.Require().NoError(json.Unmarshal([]byte(out), &exported))
	suite.Require().Len(exported, 2)
	suite.Equal("2024-03-11", exported[0]["date"])

	_, err = suite.svc.ExportJournal(suite.ctx, alice, "pdf")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestMoodHistory_RespectsRelationship() {
	_, err := suite.svc.LogMood(suite.ctx, alice, dto.LogMoodRequest{Label: "Sad", Visibility: "private"})
	suite.Require().NoError(err)
	suite.advance(24 * time.Hour)
	_, err = suite.svc.LogMood(suite.ctx, alice, dto.LogMoodRequest{Label: "Neutral", Visibility: "contacts"})
	suite.Require().NoError(err)
	suite.advance(24 * time.Hour)
	_, err = suite.svc.LogMood(suite.ctx, alice, dto.LogMoodRequest{Label: "Happy", Visibility: "public"})
	suite.Require().NoError(err)

	suite.store.AddContact(domain.Contact{UserID: alice, ContactUserID: bob})

	own, err := suite.svc.MoodHistory(suite.ctx, alice, alice, 0)
	suite.Require().NoError(err)
	suite.Len(own, 3)

	contact, err := suite.svc.MoodHistory(suite.ctx, bob, alice, 0)
	suite.Require().NoError(err)
	suite.Len(contact, 2)
	suite.Equal("Happy", contact[0].Mood.Label)

	stranger, err := suite.svc.MoodHistory(suite.ctx, carol, alice, 0)
	suite.Require().NoError(err)
	suite.Require().Len(stranger, 1)
	suite.Equal("Happy", stranger[0].Mood.Label)

	stats, err := suite.svc.MoodStats(suite.ctx, carol, alice, 7)
	suite.Require().NoError(err)
	suite.Equal(1, stats.TotalEntries)
}

func (suite *LedgerServiceTestSuite) TestGetLatestCheckIn_SkipsHidden() {
	visible, err := suite.svc.LogCheckIn(suite.ctx, alice, dto.LogCheckInRequest{Status: "ok", Mood: 7, Visibility: "public"})
	suite.Require().NoError(err)
	suite.advance(time.Minute)
	hidden, err := suite.svc.LogCheckIn(suite.ctx, alice, dto.LogCheckInRequest{Status: "busy", Mood: 3, Visibility: "private"})
	suite.Require().NoError(err)

	got, err := suite.svc.GetLatestCheckIn(suite.ctx, carol, alice)
	suite.Require().NoError(err)
	suite.Equal(visible.EntryID, got.EntryID)

	got, err = suite.svc.GetLatestCheckIn(suite.ctx, alice, "")
	suite.Require().NoError(err)
	suite.Equal(hidden.EntryID, got.EntryID)

	_, err = suite.svc.GetLatestCheckIn(suite.ctx, alice, bob)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestListCheckInHistory_Pages() {
	for i := 0; i < 3; i++ {
		_, err := suite.svc.LogCheckIn(suite.ctx, alice, dto.LogCheckInRequest{Status: "ok", Mood: 5 + i})
		suite.Require().NoError(err)
		suite.advance(time.Minute)
	}

	page, err := suite.svc.ListCheckInHistory(suite.ctx, alice, dto.ListCheckInsParams{Limit: 2})
	suite.Require().NoError(err)
	suite.Require().Len(page.CheckIns, 2)
	suite.Equal(7, page.CheckIns[0].CheckIn.Mood)
	suite.Require().NotNil(page.NextToken)

	rest, err := suite.svc.ListCheckInHistory(suite.ctx, alice, dto.ListCheckInsParams{Limit: 2, NextToken: page.NextToken})
	suite.Require().NoError(err)
	suite.Require().Len(rest.CheckIns, 1)
	suite.Equal(5, rest.CheckIns[0].CheckIn.Mood)
	suite.Nil(rest.NextToken)

	bad := "not-a-token"
	_, err = suite.svc.ListCheckInHistory(suite.ctx, alice, dto.ListCheckInsParams{NextToken: &bad})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestContactFeed() {
	until := suite.now.Add(time.Hour)
	suite.store.AddContact(domain.Contact{UserID: alice, ContactUserID: bob, IsMuted: true, MutedUntil: &until})
	suite.store.AddContact(domain.Contact{UserID: alice, ContactUserID: carol})
	suite.store.AddContact(domain.Contact{UserID: bob, ContactUserID: alice})

	shared, err := suite.svc.LogCheckIn(suite.ctx, bob, dto.LogCheckInRequest{Status: "ok", Mood: 8})
	suite.Require().NoError(err)
	_, err = suite.svc.LogCheckIn(suite.ctx, bob, dto.LogCheckInRequest{Status: "busy", Mood: 2, Visibility: "private"})
	suite.Require().NoError(err)
	// carol never added alice, so her contacts-only check-in stays hidden.
	_, err = suite.svc.LogCheckIn(suite.ctx, carol, dto.LogCheckInRequest{Status: "call", Mood: 5})
	suite.Require().NoError(err)

	feed, err := suite.svc.ContactFeed(suite.ctx, alice, 0)
	suite.Require().NoError(err)
	suite.Require().Len(feed, 1)
	suite.Equal(shared.EntryID, feed[0].EntryID)
	suite.Equal("✅", feed[0].StatusEmoji)
	suite.True(feed[0].ContactMuted)

	suite.advance(2 * time.Hour)
	feed, err = suite.svc.ContactFeed(suite.ctx, alice, 0)
	suite.Require().NoError(err)
	suite.Require().Len(feed, 1)
	suite.False(feed[0].ContactMuted)

	empty, err := suite.svc.ContactFeed(suite.ctx, carol, 0)
	suite.Require().NoError(err)
	suite.Empty(empty)
}

func (suite *LedgerServiceTestSuite) TestContactFeed_SkipsPastNewerHiddenCheckIns() {
	suite.store.AddContact(domain.Contact{UserID: alice, ContactUserID: bob})
	suite.store.AddContact(domain.Contact{UserID: bob, ContactUserID: alice})

	shared, err := suite.svc.LogCheckIn(suite.ctx, bob, dto.LogCheckInRequest{Status: "ok", Mood: 7})
	suite.Require().NoError(err)
	for i := 0; i < 3; i++ {
		suite.advance(time.Minute)
		_, err = suite.svc.LogCheckIn(suite.ctx, bob, dto.LogCheckInRequest{Status: "busy", Mood: 3, Visibility: "private"})
		suite.Require().NoError(err)
	}

	feed, err := suite.svc.ContactFeed(suite.ctx, alice, 3)
	suite.Require().NoError(err)
	suite.Require().Len(feed, 1)
	suite.Equal(shared.EntryID, feed[0].EntryID)

	feed, err = suite.svc.ContactFeed(suite.ctx, alice, 1)
	suite.Require().NoError(err)
	suite.Require().Len(feed, 1)
	suite.Equal(shared.EntryID, feed[0].EntryID)
}

func (suite *LedgerServiceTestSuite) TestGetStats() {
	for i, score := range []int{4, 2, 4} {
		if i > 0 {
			suite.advance(24 * time.Hour)
		}
		_, err := suite.svc.LogMood(suite.ctx, alice, dto.LogMoodRequest{Label: "Happy", Score: score})
		suite.Require().NoError(err)
	}
	_, err := suite.svc.LogCheckIn(suite.ctx, alice, dto.LogCheckInRequest{Status: "ok", Mood: 9})
	suite.Require().NoError(err)

	stats, err := suite.svc.GetStats(suite.ctx, alice, 7)
	suite.Require().NoError(err)
	suite.Equal(7, stats.PeriodDays)
	suite.Equal(3, stats.Moods.TotalEntries)
	suite.Equal("3.33", stats.Moods.AverageScore.StringFixed(2))
	suite.Equal(1, stats.CheckIns.TotalEntries)
	suite.Equal(3, stats.Streaks.Current)
	suite.Equal(3, stats.Streaks.Longest)
}

func (suite *LedgerServiceTestSuite) TestConcurrentMoodUpsertsKeepOneEntry() {
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			_, err := suite.svc.LogMood(suite.ctx, alice, dto.LogMoodRequest{Label: "Neutral", Score: score})
			assert.NoError(suite.T(), err)
		}(i%5 + 1)
	}
	wg.Wait()

	moods, err := suite.svc.ListEntries(suite.ctx, alice, dto.ListEntriesParams{Kind: "mood"})
	suite.Require().NoError(err)
	suite.Len(moods, 1)
}

func (suite *LedgerServiceTestSuite) TestListEntries_SameDayOrderIsStable() {
	var ids []string
	for i := 0; i < 6; i++ {
		suite.advance(time.Minute)
		entry, err := suite.svc.LogCheckIn(suite.ctx, alice, dto.LogCheckInRequest{Status: "ok", Mood: 5})
		suite.Require().NoError(err)
		ids = append([]string{entry.EntryID}, ids...)
	}

	for i := 0; i < 10; i++ {
		entries, err := suite.svc.ListEntries(suite.ctx, alice, dto.ListEntriesParams{})
		suite.Require().NoError(err)
		got := make([]string, 0, len(entries))
		for _, e := range entries {
			got = append(got, e.EntryID)
		}
		suite.Require().Equal(ids, got)
	}
}

func (suite *LedgerServiceTestSuite) TestListEntries_SinceDaysAndFilters() {
	_, err := suite.svc.CreateJournalEntry(suite.ctx, alice, dto.CreateJournalEntryRequest{Content: "Old notes", Tags: []string{"archive"}})
	suite.Require().NoError(err)
	suite.advance(10 * 24 * time.Hour)
	_, err = suite.svc.CreateJournalEntry(suite.ctx, alice, dto.CreateJournalEntryRequest{Title: "Run", Content: "Morning RUN", Tags: []string{"gym"}})
	suite.Require().NoError(err)

	week := 7
	recent, err := suite.svc.ListEntries(suite.ctx, alice, dto.ListEntriesParams{SinceDays: &week})
	suite.Require().NoError(err)
	suite.Len(recent, 1)

	found, err := suite.svc.ListEntries(suite.ctx, alice, dto.ListEntriesParams{Search: "run"})
	suite.Require().NoError(err)
	suite.Len(found, 1)

	tagged, err := suite.svc.ListEntries(suite.ctx, alice, dto.ListEntriesParams{Tags: []string{"archive"}})
	suite.Require().NoError(err)
	suite.Len(tagged, 1)

	_, err = suite.svc.ListEntries(suite.ctx, alice, dto.ListEntriesParams{DateFrom: "yesterday"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
