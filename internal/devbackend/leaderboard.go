package devbackend

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Standing is one row of the weekly leaderboard.
type Standing struct {
	Name     string
	WeeklyXP int
}

// Leaderboard keeps weekly XP by player name.
type Leaderboard interface {
	Record(ctx context.Context, name string, weeklyXP int) error
	Top(ctx context.Context, limit int) ([]Standing, error)
	Reset(ctx context.Context) error
}

const weeklyKey = "mathquest:ranking:weekly"

// RedisLeaderboard stores weekly XP in a sorted set.
type RedisLeaderboard struct {
	client *redis.Client
	key    string
}

func NewRedisLeaderboard(client *redis.Client) *RedisLeaderboard {
	return &RedisLeaderboard{client: client, key: weeklyKey}
}

// DialRedis connects and pings.
func DialRedis(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return client, nil
}

func (l *RedisLeaderboard) Record(ctx context.Context, name string, weeklyXP int) error {
	if err := l.client.ZAdd(ctx, l.key, redis.Z{Score: float64(weeklyXP), Member: name}).Err(); err != nil {
		return fmt.Errorf("record weekly xp: %w", err)
	}
	return nil
}

func (l *RedisLeaderboard) Top(ctx context.Context, limit int) ([]Standing, error) {
	zs, err := l.client.ZRevRangeWithScores(ctx, l.key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read weekly ranking: %w", err)
	}
	out := make([]Standing, 0, len(zs))
	for _, z := range zs {
		name, _ := z.Member.(string)
		out = append(out, Standing{Name: name, WeeklyXP: int(z.Score)})
	}
	return out, nil
}

func (l *RedisLeaderboard) Reset(ctx context.Context) error {
	if err := l.client.Del(ctx, l.key).Err(); err != nil {
		return fmt.Errorf("reset weekly ranking: %w", err)
	}
	return nil
}

// SyncLeaderboard copies the store's weekly standings into lb.
func SyncLeaderboard(ctx context.Context, s Store, lb Leaderboard) error {
	users, err := s.WeeklyTop(ctx, 0)
	if err != nil {
		return err
	}
	for _, u := range users {
		if err := lb.Record(ctx, u.Name, u.WeeklyXP); err != nil {
			return err
		}
	}
	return nil
}

// ── Weekly reset ────────────────────────────────────────

// ResetWorker clears weekly XP when the week rolls over on Sunday, UTC.
type ResetWorker struct {
	store    Store
	board    Leaderboard
	logger   *zap.Logger
	interval time.Duration
	lastWeek string
}

func NewResetWorker(s Store, lb Leaderboard, logger *zap.Logger) *ResetWorker {
	return &ResetWorker{store: s, board: lb, logger: logger.Named("weekly-reset"), interval: time.Hour}
}

// Run checks once per interval until ctx is done.
func (w *ResetWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("weekly reset worker started")
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("weekly reset worker shutting down")
			return
		case t := <-ticker.C:
			w.Tick(ctx, t)
		}
	}
}

// Tick resets once for the first check on a Sunday. It reports whether a
// reset ran.
func (w *ResetWorker) Tick(ctx context.Context, now time.Time) bool {
	utc := now.UTC()
	if utc.Weekday() != time.Sunday {
		return false
	}
	week := utc.Format("2006-01-02")
	if week == w.lastWeek {
		return false
	}

	w.logger.Info("running weekly ranking reset", zap.String("week", week))
	if err := w.store.ResetWeekly(ctx); err != nil {
		w.logger.Error("weekly reset failed", zap.Error(err))
		return false
	}
	if w.board != nil {
		if err := w.board.Reset(ctx); err != nil {
			w.logger.Error("leaderboard reset failed", zap.Error(err))
		}
	}
	w.lastWeek = week
	return true
}
