package gamification

import (
	"sort"
	"time"

	"github.com/mathquest/app/internal/models"
)

// NoFavoriteCategory is shown when the backend has no category data or the
// stats request failed.
const NoFavoriteCategory = "Nenhuma ainda"

// Submission is one scored answer ready to be applied to a profile.
type Submission struct {
	Question     models.Question
	CategoryName string
	Result       models.SubmissionResult
	Elapsed      time.Duration
	At           time.Time
}

// ApplySubmission folds a scored answer into the profile and returns the
// achievements it unlocked. Level is never touched; it is derived from TotalXP.
func ApplySubmission(p *models.UserProfile, sub Submission, defs []models.AchievementDefinition) []models.Achievement {
	xp := sub.Result.XPAwarded
	p.TotalXP += xp
	p.WeeklyXP += xp
	p.TimeSpentMinutes += StudyMinutes(sub.Elapsed)
	p.QuestionsCompleted++

	if sub.Result.IsCorrect {
		p.CorrectStreak++
	} else {
		p.CorrectStreak = 0
	}
	if sub.Result.JustificationValid {
		p.ManuscriptsValidated++
	}

	addCategoryXP(p, sub.Question.CategoryID, sub.CategoryName, xp)
	return UnlockAchievements(p, defs, sub.At)
}

// StudyMinutes converts time on the question screen to whole minutes, with a
// one-minute floor.
func StudyMinutes(elapsed time.Duration) int {
	m := int(elapsed / time.Minute)
	if m < 1 {
		return 1
	}
	return m
}

func addCategoryXP(p *models.UserProfile, categoryID, categoryName string, xp int) {
	if categoryID == "" {
		return
	}
	for i := range p.CategoryStats {
		if p.CategoryStats[i].CategoryID == categoryID {
			p.CategoryStats[i].QuestionsCompleted++
			p.CategoryStats[i].XPEarned += xp
			return
		}
	}
	if categoryName == "" {
		categoryName = categoryID
	}
	p.CategoryStats = append(p.CategoryStats, models.CategoryStat{
		CategoryID:         categoryID,
		CategoryName:       categoryName,
		QuestionsCompleted: 1,
		XPEarned:           xp,
	})
}

// FavoriteCategory picks the category with the most XP. Ties go to the
// alphabetically first name.
func FavoriteCategory(stats map[string]models.CategoryStatsEntry) string {
	best, bestXP := "", -1
	for name, s := range stats {
		if s.XPEarned > bestXP || (s.XPEarned == bestXP && name < best) {
			best, bestXP = name, s.XPEarned
		}
	}
	if best == "" {
		return NoFavoriteCategory
	}
	return best
}

// ── Remote data ─────────────────────────────────────────

// CategoryResolver maps a backend category name to a catalog category id.
type CategoryResolver interface {
	CategoryIDByName(name string) (string, bool)
}

// MergeUser overwrites the profile fields the backend's user record owns.
// The backend's level and xp fields are ignored: level is derived locally.
func MergeUser(p *models.UserProfile, u models.UserData) {
	if u.Name != "" {
		p.Username = u.Name
	}
	p.TotalXP = u.TotalXP
	p.TimeSpentMinutes = u.TimeSpentMinutes
	p.ManuscriptsValidated = u.ManuscriptCount
	if t, err := time.Parse(time.RFC3339, u.CreatedAt); err == nil {
		p.JoinedDate = t.Format("2006-01-02")
	}
}

// MergeStats overwrites counters and category stats from the backend. Weekly
// XP stays local since the stats endpoint does not report it.
func MergeStats(p *models.UserProfile, s models.UserStats, resolver CategoryResolver) {
	p.TotalXP = s.TotalXP
	p.TimeSpentMinutes = s.TimeSpentMinutes
	p.QuestionsCompleted = s.SubmissionsCount
	p.ManuscriptsValidated = s.ManuscriptCount
	p.FavoriteCategory = FavoriteCategory(s.CategoriesStats)

	if len(s.CategoriesStats) == 0 {
		return
	}
	stats := make([]models.CategoryStat, 0, len(s.CategoriesStats))
	for name, entry := range s.CategoriesStats {
		id := name
		if resolver != nil {
			if resolved, ok := resolver.CategoryIDByName(name); ok {
				id = resolved
			}
		}
		stats = append(stats, models.CategoryStat{
			CategoryID:         id,
			CategoryName:       name,
			QuestionsCompleted: entry.Submissions,
			XPEarned:           entry.XPEarned,
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].XPEarned != stats[j].XPEarned {
			return stats[i].XPEarned > stats[j].XPEarned
		}
		return stats[i].CategoryName < stats[j].CategoryName
	})
	p.CategoryStats = stats
}
