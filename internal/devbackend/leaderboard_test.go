package devbackend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mathquest/app/internal/backend"
	"github.com/mathquest/app/internal/models"
)

func newRedisLeaderboard(t *testing.T) (*RedisLeaderboard, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisLeaderboard(client), mr
}

func TestRedisLeaderboard(t *testing.T) {
	lb, mr := newRedisLeaderboard(t)
	ctx := context.Background()

	require.NoError(t, lb.Record(ctx, "Ana", 300))
	require.NoError(t, lb.Record(ctx, "Bia", 900))
	require.NoError(t, lb.Record(ctx, "Caio", 500))
	require.NoError(t, lb.Record(ctx, "Ana", 1000))

	top, err := lb.Top(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []Standing{{Name: "Ana", WeeklyXP: 1000}, {Name: "Bia", WeeklyXP: 900}}, top)
	assert.True(t, mr.Exists(weeklyKey))

	require.NoError(t, lb.Reset(ctx))
	assert.False(t, mr.Exists(weeklyKey))
	top, err = lb.Top(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestRankingServedFromLeaderboard(t *testing.T) {
	lb, _ := newRedisLeaderboard(t)
	ts, store := newTestServer(t, lb)
	ctx := context.Background()
	require.NoError(t, SyncLeaderboard(ctx, store, lb))
	require.NoError(t, lb.Record(ctx, "TrigMaster", 9000))

	c := backend.NewClient(ts.URL, backend.NewMemoryStore())
	_, err := c.Login(ctx, models.Credentials{Email: SeedEmail("AlgebraKing"), Password: SeedPassword})
	require.NoError(t, err)

	ranking, err := c.WeeklyRanking(ctx, 10)
	require.NoError(t, err)
	require.Len(t, ranking, 6)
	assert.Equal(t, "TrigMaster", ranking[0].Username)
	assert.Equal(t, 9000, ranking[0].WeeklyXP)
	assert.Equal(t, 18, ranking[0].Level)
}

func TestRankingFallsBackToStore(t *testing.T) {
	lb, mr := newRedisLeaderboard(t)
	ts, _ := newTestServer(t, lb)
	mr.SetError("LOADING")

	ctx := context.Background()
	c := backend.NewClient(ts.URL, backend.NewMemoryStore())
	_, err := c.Login(ctx, models.Credentials{Email: SeedEmail("MathGenius"), Password: SeedPassword})
	require.NoError(t, err)

	ranking, err := c.WeeklyRanking(ctx, 10)
	require.NoError(t, err)
	require.NotEmpty(t, ranking)
	assert.Equal(t, "MathGenius", ranking[0].Username)
}

func TestResetWorkerTick(t *testing.T) {
	lb, mr := newRedisLeaderboard(t)
	_, store := newTestServer(t, lb)
	ctx := context.Background()
	require.NoError(t, SyncLeaderboard(ctx, store, lb))

	w := NewResetWorker(store, lb, zap.NewNop())
	saturday := time.Date(2025, 12, 20, 3, 0, 0, 0, time.UTC)
	sunday := saturday.AddDate(0, 0, 1)

	assert.False(t, w.Tick(ctx, saturday))
	assert.True(t, w.Tick(ctx, sunday))
	assert.False(t, w.Tick(ctx, sunday.Add(time.Hour)))
	assert.False(t, mr.Exists(weeklyKey))

	users, err := store.WeeklyTop(ctx, 0)
	require.NoError(t, err)
	for _, u := range users {
		assert.Zero(t, u.WeeklyXP, u.Name)
	}
}

func TestResetWorkerStops(t *testing.T) {
	w := NewResetWorker(NewMemoryStore(), nil, zap.NewNop())
	w.interval = time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("duplicate key")))
}

func TestEmbeddedMigrations(t *testing.T) {
	src, err := iofs.New(migrationsFS, "migrations")
	require.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)
}

func TestStoreRejectsDuplicateEmail(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	u, err := s.CreateUser(ctx, User{Email: " Ana@Example.com ", Name: "ana"})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", u.Email)

	_, err = s.CreateUser(ctx, User{Email: "ana@example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	got, err := s.UserByEmail(ctx, "ANA@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = s.UserByID(ctx, 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRankingResponseShape(t *testing.T) {
	ts, _ := newTestServer(t, nil)
	ti := tokenIssuer{secret: testSecret, now: time.Now}
	access, err := ti.issue(1, tokenAccess, accessTTL)
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/rankings/weekly?limit=500", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body rankingResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Period)
	assert.Len(t, body.Entries, 6)
}
