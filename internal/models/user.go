package models

import "strings"

// UserProfile is the signed-in player's aggregate. Level is not stored; it is
// always derived from TotalXP.
type UserProfile struct {
	Username             string         `json:"username"`
	TotalXP              int            `json:"total_xp"`
	WeeklyXP             int            `json:"weekly_xp"`
	TimeSpentMinutes     int            `json:"time_spent_minutes"`
	QuestionsCompleted   int            `json:"questions_completed"`
	ManuscriptsValidated int            `json:"manuscripts_validated"`
	CorrectStreak        int            `json:"correct_streak"`
	FavoriteCategory     string         `json:"favorite_category"`
	Badges               []string       `json:"badges"`
	Achievements         []Achievement  `json:"achievements"`
	CategoryStats        []CategoryStat `json:"category_stats"`
	JoinedDate           string         `json:"joined_date"`
}

// HasAchievement reports whether the achievement id is unlocked.
func (p UserProfile) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}

// CategoryStat returns the stat row for a category, if any.
func (p UserProfile) CategoryStat(categoryID string) (CategoryStat, bool) {
	for _, s := range p.CategoryStats {
		if s.CategoryID == categoryID {
			return s, true
		}
	}
	return CategoryStat{}, false
}

// Clone returns a deep copy so callers cannot alias the controller's state.
func (p UserProfile) Clone() UserProfile {
	out := p
	out.Badges = append([]string(nil), p.Badges...)
	out.Achievements = append([]Achievement(nil), p.Achievements...)
	out.CategoryStats = append([]CategoryStat(nil), p.CategoryStats...)
	return out
}

// SameUsername compares usernames the way the community search does.
func SameUsername(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

type CategoryStat struct {
	CategoryID         string `json:"category_id"`
	CategoryName       string `json:"category_name"`
	QuestionsCompleted int    `json:"questions_completed"`
	XPEarned           int    `json:"xp_earned"`
}

// ── Backend wire types ────────────────────────────────────

type UserData struct {
	ID               int64   `json:"id"`
	Email            string  `json:"email"`
	Name             string  `json:"name"`
	PictureURL       *string `json:"picture_url"`
	Bio              *string `json:"bio"`
	Level            int     `json:"level"`
	XP               int     `json:"xp"`
	TotalXP          int     `json:"total_xp"`
	TimeSpentMinutes int     `json:"time_spent_minutes"`
	ManuscriptCount  int     `json:"manuscript_count"`
	IsActive         bool    `json:"is_active"`
	CreatedAt        string  `json:"created_at"`
}

type CategoryStatsEntry struct {
	Submissions int `json:"submissions"`
	XPEarned    int `json:"xp_earned"`
}

type UserStats struct {
	UserID           int64                         `json:"user_id"`
	Email            string                        `json:"email"`
	Name             string                        `json:"name"`
	Level            int                           `json:"level"`
	XP               int                           `json:"xp"`
	TotalXP          int                           `json:"total_xp"`
	TimeSpentMinutes int                           `json:"time_spent_minutes"`
	ManuscriptCount  int                           `json:"manuscript_count"`
	SubmissionsCount int                           `json:"submissions_count"`
	CorrectAnswers   int                           `json:"correct_answers"`
	Accuracy         float64                       `json:"accuracy"`
	CategoriesStats  map[string]CategoryStatsEntry `json:"categories_stats"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterForm struct {
	Username        string `json:"username" validate:"required,min=3"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type AuthResponse struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	User         UserData `json:"user"`
}

// ErrorResponse is the backend's error body. Older deployments used "error".
type ErrorResponse struct {
	Detail string `json:"detail,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Message returns whichever field is set.
func (e ErrorResponse) Message() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Error
}
