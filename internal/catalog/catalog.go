package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mathquest/app/internal/models"
)

// Catalog is the read-only content source. All accessors return copies.
type Catalog struct {
	categories   []models.Category
	questions    []models.Question
	achievements []models.AchievementDefinition
	users        []models.UserProfile
	ranking      []models.RankingEntry
	friends      []models.Friend
	incoming     []models.FriendRequest
	outgoing     []models.FriendRequest
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		categories:   defaultCategories(),
		questions:    defaultQuestions(),
		achievements: defaultAchievements(),
		users:        communityUsers(),
		ranking:      offlineRanking(),
		friends:      mockFriends(),
		incoming:     mockIncomingRequests(),
		outgoing:     mockOutgoingRequests(),
	}
}

// New builds a catalog from explicit content. Used by tests and by callers
// that load content elsewhere.
func New(categories []models.Category, questions []models.Question, achievements []models.AchievementDefinition) *Catalog {
	return &Catalog{categories: categories, questions: questions, achievements: achievements}
}

// ── Categories & Questions ──────────────────────────────

func (c *Catalog) Categories() []models.Category {
	return append([]models.Category(nil), c.categories...)
}

func (c *Catalog) Category(id string) (models.Category, bool) {
	for _, cat := range c.categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return models.Category{}, false
}

// CategoryIDByName resolves a display name ("Álgebra") or id to a category id.
func (c *Catalog) CategoryIDByName(name string) (string, bool) {
	for _, cat := range c.categories {
		if strings.EqualFold(cat.Name, name) || cat.ID == name {
			return cat.ID, true
		}
	}
	return "", false
}

func (c *Catalog) Question(id string) (models.Question, bool) {
	for _, q := range c.questions {
		if q.ID == id {
			return q, true
		}
	}
	return models.Question{}, false
}

func (c *Catalog) Questions() []models.Question {
	return append([]models.Question(nil), c.questions...)
}

// QuestionsFor lists the questions of a subcategory in catalog order. An
// empty subcategoryID lists the whole category.
func (c *Catalog) QuestionsFor(categoryID, subcategoryID string) []models.Question {
	var out []models.Question
	for _, q := range c.questions {
		if q.CategoryID == categoryID && (subcategoryID == "" || q.SubcategoryID == subcategoryID) {
			out = append(out, q)
		}
	}
	return out
}

// ── Achievements ────────────────────────────────────────

func (c *Catalog) Achievements() []models.AchievementDefinition {
	return append([]models.AchievementDefinition(nil), c.achievements...)
}

func (c *Catalog) Achievement(id string) (models.AchievementDefinition, bool) {
	for _, a := range c.achievements {
		if a.ID == id {
			return a, true
		}
	}
	return models.AchievementDefinition{}, false
}

// ── Community ───────────────────────────────────────────

func (c *Catalog) CommunityUsers() []models.UserProfile {
	out := make([]models.UserProfile, len(c.users))
	for i, u := range c.users {
		out[i] = u.Clone()
	}
	return out
}

// User looks up a community profile by exact username.
func (c *Catalog) User(username string) (models.UserProfile, bool) {
	for _, u := range c.users {
		if u.Username == username {
			return u.Clone(), true
		}
	}
	return models.UserProfile{}, false
}

// OfflineRanking is the weekly ranking shown when the ranking service has no data.
func (c *Catalog) OfflineRanking() []models.RankingEntry {
	return append([]models.RankingEntry(nil), c.ranking...)
}

func (c *Catalog) Friends() []models.Friend {
	out := make([]models.Friend, len(c.friends))
	for i, f := range c.friends {
		f.Badges = append([]string(nil), f.Badges...)
		out[i] = f
	}
	return out
}

// IncomingRequests returns the seeded requests addressed to owner.
func (c *Catalog) IncomingRequests(owner string) []models.FriendRequest {
	out := make([]models.FriendRequest, len(c.incoming))
	for i, r := range c.incoming {
		r.To = owner
		out[i] = r
	}
	return out
}

// OutgoingRequests returns the seeded requests sent by owner.
func (c *Catalog) OutgoingRequests(owner string) []models.FriendRequest {
	out := make([]models.FriendRequest, len(c.outgoing))
	for i, r := range c.outgoing {
		r.From = owner
		out[i] = r
	}
	return out
}

// ── Integrity ───────────────────────────────────────────

// Validate checks question invariants and catalog references.
func (c *Catalog) Validate() error {
	var errs []error
	seen := make(map[string]bool)
	for _, q := range c.questions {
		if seen[q.ID] {
			errs = append(errs, fmt.Errorf("question %s: duplicate id", q.ID))
		}
		seen[q.ID] = true

		if len(q.Options) < 2 {
			errs = append(errs, fmt.Errorf("question %s: needs at least 2 options, has %d", q.ID, len(q.Options)))
		}
		if !q.HasOption(q.CorrectAnswer) {
			errs = append(errs, fmt.Errorf("question %s: correct answer %d out of range", q.ID, q.CorrectAnswer))
		}
		if q.XP <= 0 {
			errs = append(errs, fmt.Errorf("question %s: xp must be positive", q.ID))
		}
		if !models.ValidDifficulties[q.Difficulty] {
			errs = append(errs, fmt.Errorf("question %s: unknown difficulty %q", q.ID, q.Difficulty))
		}
		cat, ok := c.Category(q.CategoryID)
		if !ok {
			errs = append(errs, fmt.Errorf("question %s: unknown category %q", q.ID, q.CategoryID))
			continue
		}
		if !hasSubcategory(cat, q.SubcategoryID) {
			errs = append(errs, fmt.Errorf("question %s: unknown subcategory %q", q.ID, q.SubcategoryID))
		}
	}
	return errors.Join(errs...)
}

func hasSubcategory(cat models.Category, id string) bool {
	for _, s := range cat.Subcategories {
		if s.ID == id {
			return true
		}
	}
	return false
}

// DefaultProfile is the starting profile for a freshly signed-in player before
// any remote data arrives.
func DefaultProfile(username string) models.UserProfile {
	return models.UserProfile{
		Username:           username,
		TotalXP:            1250,
		WeeklyXP:           380,
		TimeSpentMinutes:   345,
		QuestionsCompleted: 42,
		FavoriteCategory:   "Álgebra",
		Badges:             []string{"🥉"},
		Achievements: []models.Achievement{
			{ID: "first-win", Name: "Primeira Vitória", Description: "Complete sua primeira questão", Icon: "🎯", UnlockedAt: "2025-12-01"},
			{ID: "manuscript-master", Name: "Mestre do Manuscrito", Description: "Valide 10 resoluções manuscritas", Icon: "✍️", UnlockedAt: "2025-12-05"},
		},
		ManuscriptsValidated: 10,
		CategoryStats: []models.CategoryStat{
			{CategoryID: "algebra", CategoryName: "Álgebra", QuestionsCompleted: 18, XPEarned: 650},
			{CategoryID: "geometria", CategoryName: "Geometria", QuestionsCompleted: 12, XPEarned: 380},
			{CategoryID: "trigonometria", CategoryName: "Trigonometria", QuestionsCompleted: 8, XPEarned: 150},
			{CategoryID: "aritmetica", CategoryName: "Aritmética", QuestionsCompleted: 4, XPEarned: 70},
		},
		JoinedDate: "2025-11-15",
	}
}
