package devbackend

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mathquest/app/internal/models"
)

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrUserNotFound = errors.New("user not found")
)

// User is the persisted account record.
type User struct {
	ID               int64
	Email            string
	Name             string
	PasswordHash     string
	TotalXP          int
	WeeklyXP         int
	TimeSpentMinutes int
	ManuscriptCount  int
	SubmissionsCount int
	CorrectAnswers   int
	CategoriesStats  map[string]models.CategoryStatsEntry
	CreatedAt        time.Time
}

// Store persists accounts. Emails are stored lowercased.
type Store interface {
	CreateUser(ctx context.Context, u User) (*User, error)
	UserByEmail(ctx context.Context, email string) (*User, error)
	UserByID(ctx context.Context, id int64) (*User, error)
	WeeklyTop(ctx context.Context, limit int) ([]User, error)
	ResetWeekly(ctx context.Context) error
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ── In-memory store ─────────────────────────────────────

type MemoryStore struct {
	mu      sync.RWMutex
	nextID  int64
	byID    map[int64]*User
	byEmail map[string]int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:    make(map[int64]*User),
		byEmail: make(map[string]int64),
	}
}

func (s *MemoryStore) CreateUser(_ context.Context, u User) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.Email = normalizeEmail(u.Email)
	if _, ok := s.byEmail[u.Email]; ok {
		return nil, ErrEmailTaken
	}
	s.nextID++
	u.ID = s.nextID
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	if u.CategoriesStats == nil {
		u.CategoriesStats = map[string]models.CategoryStatsEntry{}
	}
	s.byID[u.ID] = &u
	s.byEmail[u.Email] = u.ID

	out := u
	return &out, nil
}

func (s *MemoryStore) UserByEmail(ctx context.Context, email string) (*User, error) {
	s.mu.RLock()
	id, ok := s.byEmail[normalizeEmail(email)]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrUserNotFound
	}
	return s.UserByID(ctx, id)
}

func (s *MemoryStore) UserByID(_ context.Context, id int64) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (s *MemoryStore) WeeklyTop(_ context.Context, limit int) ([]User, error) {
	s.mu.RLock()
	users := make([]User, 0, len(s.byID))
	for _, u := range s.byID {
		users = append(users, *u)
	}
	s.mu.RUnlock()

	sort.Slice(users, func(i, j int) bool {
		if users[i].WeeklyXP != users[j].WeeklyXP {
			return users[i].WeeklyXP > users[j].WeeklyXP
		}
		return users[i].ID < users[j].ID
	})
	if limit > 0 && len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

func (s *MemoryStore) ResetWeekly(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.byID {
		u.WeeklyXP = 0
	}
	return nil
}

// ── Seeding ─────────────────────────────────────────────

// SeedPassword is the password of every seeded account.
const SeedPassword = "mathquest"

// SeedEmail is the login address of a seeded player.
func SeedEmail(username string) string {
	return strings.ToLower(username) + "@mathquest.dev"
}

// Seed creates an account for each community player, all sharing
// SeedPassword. Existing emails are skipped.
func Seed(ctx context.Context, s Store, players []models.UserProfile, passwordHash string) error {
	for _, p := range players {
		stats := make(map[string]models.CategoryStatsEntry, len(p.CategoryStats))
		for _, cs := range p.CategoryStats {
			stats[cs.CategoryName] = models.CategoryStatsEntry{Submissions: cs.QuestionsCompleted, XPEarned: cs.XPEarned}
		}
		joined, err := time.Parse("2006-01-02", p.JoinedDate)
		if err != nil {
			joined = time.Now().UTC()
		}
		_, err = s.CreateUser(ctx, User{
			Email:            SeedEmail(p.Username),
			Name:             p.Username,
			PasswordHash:     passwordHash,
			TotalXP:          p.TotalXP,
			WeeklyXP:         p.WeeklyXP,
			TimeSpentMinutes: p.TimeSpentMinutes,
			ManuscriptCount:  p.ManuscriptsValidated,
			SubmissionsCount: p.QuestionsCompleted,
			CorrectAnswers:   p.QuestionsCompleted * 4 / 5,
			CategoriesStats:  stats,
			CreatedAt:        joined,
		})
		if err != nil && !errors.Is(err, ErrEmailTaken) {
			return err
		}
	}
	return nil
}
