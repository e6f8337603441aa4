package social

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathquest/app/internal/catalog"
	"github.com/mathquest/app/internal/models"
)

var now = time.Date(2025, 12, 17, 10, 0, 0, 0, time.UTC) // Wednesday

func clock() time.Time { return now }

func newBook() *FriendsBook {
	c := catalog.Default()
	friends := c.Friends()
	return NewFriendsBook("Ana", friends, c.IncomingRequests("Ana"), c.OutgoingRequests("Ana"), NewDirectory(friends, clock), clock)
}

func TestFriendsOrder(t *testing.T) {
	got := newBook().Friends()
	names := make([]string, len(got))
	for i, f := range got {
		names[i] = f.Username
	}
	assert.Equal(t, []string{"MathWizard", "AlgebraQueen", "TrigMaster", "GeometryKing", "NumberNinja"}, names)
}

func TestSearch(t *testing.T) {
	b := newBook()

	got := b.Search("  Euler ")
	require.Len(t, got, 3)
	assert.Equal(t, "Euler", got[0].Username)
	assert.Equal(t, "Euler123", got[1].Username)
	assert.Equal(t, "ProEuler", got[2].Username)

	assert.Empty(t, b.Search("   "))

	// Existing friend is excluded but variants remain.
	got = b.Search("MathWizard")
	for _, f := range got {
		assert.NotEqual(t, "MathWizard", f.Username)
	}
	assert.Len(t, got, 2)

	// Self and already requested players are excluded.
	assert.Len(t, b.Search("Ana"), 2)
	for _, f := range b.Search("EquationExpert") {
		assert.NotEqual(t, "EquationExpert", f.Username)
	}
}

func TestDirectoryIsDeterministic(t *testing.T) {
	d := NewDirectory(nil, clock)
	a, b := d.Lookup("Euler"), d.Lookup("Euler")
	assert.Equal(t, a, b)
	assert.GreaterOrEqual(t, a.TotalXP, 500)
	assert.Less(t, a.TotalXP, 3500)
	assert.GreaterOrEqual(t, a.WeeklyXP, 50)
	assert.Equal(t, a.TotalXP/200+1, a.Level)
	if a.IsOnline {
		assert.Empty(t, a.LastSeen)
	}
}

func TestSendRequest(t *testing.T) {
	b := newBook()
	req, err := b.SendRequest("Euler")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(req.ID, "req-"))
	assert.Equal(t, "Ana", req.From)
	assert.Equal(t, models.FriendPending, req.Status)
	assert.Equal(t, now, req.SentAt)
	assert.Len(t, b.Outgoing(), 3)

	_, err = b.SendRequest("Euler")
	assert.ErrorIs(t, err, ErrAlreadyRequested)
	_, err = b.SendRequest("Ana")
	assert.ErrorIs(t, err, ErrSelfRequest)
	_, err = b.SendRequest("MathWizard")
	assert.ErrorIs(t, err, ErrAlreadyFriends)
	_, err = b.SendRequest(" ")
	assert.ErrorIs(t, err, ErrEmptyUsername)

	for _, f := range b.Search("Euler") {
		assert.NotEqual(t, "Euler", f.Username)
	}
}

func TestAcceptRejectCancelRemove(t *testing.T) {
	b := newBook()

	f, err := b.Accept("req-1")
	require.NoError(t, err)
	assert.Equal(t, "CalculusHero", f.Username)
	assert.Equal(t, "2025-12-17", f.FriendsSince)
	assert.Len(t, b.Friends(), 6)
	assert.Len(t, b.Incoming(), 2)

	_, err = b.Accept("req-1")
	assert.ErrorIs(t, err, ErrRequestNotFound)

	require.NoError(t, b.Reject("req-2"))
	assert.ErrorIs(t, b.Reject("req-2"), ErrRequestNotFound)
	assert.Len(t, b.Incoming(), 1)

	require.NoError(t, b.Cancel("req-4"))
	assert.ErrorIs(t, b.Cancel("req-4"), ErrRequestNotFound)
	assert.Len(t, b.Outgoing(), 1)

	require.NoError(t, b.Remove("CalculusHero"))
	assert.ErrorIs(t, b.Remove("CalculusHero"), ErrFriendNotFound)
	assert.Len(t, b.Friends(), 5)
}

func TestAcceptFromExistingFriendKeepsRequest(t *testing.T) {
	c := catalog.Default()
	friends := c.Friends()
	incoming := []models.FriendRequest{{ID: "req-9", From: "MathWizard", To: "Ana", SentAt: now, Status: models.FriendPending}}
	b := NewFriendsBook("Ana", friends, incoming, nil, NewDirectory(friends, clock), clock)

	_, err := b.Accept("req-9")
	assert.ErrorIs(t, err, ErrAlreadyFriends)
	assert.Len(t, b.Incoming(), 1)
	assert.Len(t, b.Friends(), len(friends))

	require.NoError(t, b.Reject("req-9"))
	assert.Empty(t, b.Incoming())
}

func TestFilterCommunity(t *testing.T) {
	users := catalog.Default().CommunityUsers()

	all := FilterCommunity(users, "", CommunityAll)
	require.Len(t, all, 6)
	for i := 1; i < len(all); i++ {
		assert.GreaterOrEqual(t, all[i-1].TotalXP, all[i].TotalXP)
	}

	top := FilterCommunity(users, "", CommunityTop)
	assert.Len(t, top, 5)

	active := FilterCommunity(users, "", CommunityActive)
	assert.Len(t, active, 6)

	got := FilterCommunity(users, "MASTER", CommunityAll)
	require.Len(t, got, 1)
	assert.Equal(t, "TrigMaster", got[0].Username)

	assert.Empty(t, FilterCommunity(users, "zzz", CommunityAll))
}

func TestBuildWeeklyRanking(t *testing.T) {
	ranking := catalog.Default().OfflineRanking()
	me := models.UserProfile{Username: "Ana", TotalXP: 1250, WeeklyXP: 1000}

	board := BuildWeeklyRanking(ranking, me, now)
	require.Len(t, board.Entries, 10)
	require.NotNil(t, board.CurrentUser)
	assert.Equal(t, 8, board.CurrentUser.Rank)
	assert.Equal(t, 7, board.CurrentUser.Level)
	assert.Equal(t, 4, board.DaysUntilReset)

	for i, e := range board.Entries {
		assert.Equal(t, i+1, e.Rank)
	}
	assert.Equal(t, "🥇", board.Entries[0].Badge)
	assert.Equal(t, "🥈", board.Entries[1].Badge)
	assert.Equal(t, "🥉", board.Entries[2].Badge)
	assert.Empty(t, board.Entries[3].Badge)
}

func TestBuildWeeklyRanking_ReplacesExistingRow(t *testing.T) {
	entries := []models.RankingEntry{
		{Rank: 1, Username: "mathgenius", WeeklyXP: 10},
		{Rank: 2, Username: "Other", WeeklyXP: 500},
	}
	me := models.UserProfile{Username: "MathGenius", TotalXP: 4850, WeeklyXP: 2500}

	board := BuildWeeklyRanking(entries, me, now)
	require.Len(t, board.Entries, 2)
	assert.Equal(t, "MathGenius", board.Entries[0].Username)
	assert.True(t, board.Entries[0].IsCurrentUser)
	assert.Equal(t, 25, board.Entries[0].Level)
	assert.Equal(t, 1, board.CurrentUser.Rank)
}

func TestDaysUntilReset(t *testing.T) {
	sunday := time.Date(2025, 12, 14, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		assert.Equal(t, 7-i, DaysUntilReset(sunday.AddDate(0, 0, i)))
	}
}
