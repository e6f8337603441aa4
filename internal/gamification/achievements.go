package gamification

import (
	"time"

	"github.com/mathquest/app/internal/models"
)

// achievementRule ties a catalog achievement to a profile counter. Achievements
// without a rule (time-of-day, ranking, streak-of-days) are only granted by
// the backend.
type achievementRule struct {
	metric func(p *models.UserProfile) int
	target int
	exact  bool
}

func questions(p *models.UserProfile) int   { return p.QuestionsCompleted }
func streak(p *models.UserProfile) int      { return p.CorrectStreak }
func manuscripts(p *models.UserProfile) int { return p.ManuscriptsValidated }
func minutes(p *models.UserProfile) int     { return p.TimeSpentMinutes }

func inCategory(id string) func(p *models.UserProfile) int {
	return func(p *models.UserProfile) int {
		s, _ := p.CategoryStat(id)
		return s.QuestionsCompleted
	}
}

var rules = map[string]achievementRule{
	"first-win":         {metric: questions, target: 1},
	"getting-started":   {metric: questions, target: 10},
	"dedicated-solver":  {metric: questions, target: 50},
	"centenarian":       {metric: questions, target: 100},
	"master-solver":     {metric: questions, target: 500},
	"lucky-seven":       {metric: questions, target: 777, exact: true},
	"no-mistakes":       {metric: streak, target: 20},
	"perfectionist":     {metric: streak, target: 50},
	"manuscript-master": {metric: manuscripts, target: 10},
	"manuscript-legend": {metric: manuscripts, target: 100},
	"manuscript-god":    {metric: manuscripts, target: 500},
	"algebra-master":    {metric: inCategory("algebra"), target: 100},
	"geometry-master":   {metric: inCategory("geometria"), target: 100},
	"trig-master":       {metric: inCategory("trigonometria"), target: 80},
	"arithmetic-master": {metric: inCategory("aritmetica"), target: 60},
	"marathon-runner":   {metric: minutes, target: 600},
}

func (r achievementRule) met(p *models.UserProfile) bool {
	v := r.metric(p)
	if r.exact {
		return v == r.target
	}
	return v >= r.target
}

// UnlockAchievements adds every rule-backed achievement the profile now
// qualifies for and returns the newly unlocked ones in catalog order.
func UnlockAchievements(p *models.UserProfile, defs []models.AchievementDefinition, at time.Time) []models.Achievement {
	var unlocked []models.Achievement
	for _, def := range defs {
		rule, ok := rules[def.ID]
		if !ok || p.HasAchievement(def.ID) || !rule.met(p) {
			continue
		}
		a := models.Achievement{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Icon:        def.Icon,
			UnlockedAt:  at.Format("2006-01-02"),
		}
		p.Achievements = append(p.Achievements, a)
		unlocked = append(unlocked, a)
	}
	return unlocked
}

// Progress returns how far the profile is toward an achievement. Definitions
// without a progress bar measure against their rule's target. Unlocked
// achievements report full progress.
func Progress(def models.AchievementDefinition, p *models.UserProfile) (current, max int) {
	rule, ok := rules[def.ID]
	max = def.MaxProgress
	if max == 0 && ok {
		max = rule.target
	}
	if max == 0 {
		max = 1
	}
	if p.HasAchievement(def.ID) {
		return max, max
	}
	if !ok {
		return 0, max
	}
	current = rule.metric(p)
	if current > max {
		current = max
	}
	return current, max
}

// ── Presentation ────────────────────────────────────────

func TierName(t models.AchievementTier) string {
	switch t {
	case models.TierBronze:
		return "Bronze"
	case models.TierSilver:
		return "Prata"
	case models.TierGold:
		return "Ouro"
	case models.TierPlatinum:
		return "Platina"
	default:
		return string(t)
	}
}

// RarityLabel buckets the share of players holding an achievement.
func RarityLabel(rarity float64) string {
	switch {
	case rarity >= 80:
		return "Comum"
	case rarity >= 50:
		return "Incomum"
	case rarity >= 20:
		return "Raro"
	case rarity >= 5:
		return "Muito Raro"
	default:
		return "Ultra Raro"
	}
}

const (
	FilterAll      = "all"
	FilterUnlocked = "unlocked"
	FilterLocked   = "locked"
)

// AchievementView is an achievement definition as seen by one player.
// MaxProgress is always the goal Progress measures against.
type AchievementView struct {
	models.AchievementDefinition
	Unlocked    bool   `json:"unlocked"`
	UnlockedAt  string `json:"unlocked_at,omitempty"`
	Progress    int    `json:"progress"`
	TierName    string `json:"tier_name"`
	RarityLabel string `json:"rarity_label"`
}

// FilterAchievements lists achievements for the achievements screen. filter is
// all, unlocked, locked or a tier; category is an achievement category or
// empty/"all" for any. Locked secret achievements are masked.
func FilterAchievements(defs []models.AchievementDefinition, p *models.UserProfile, filter string, category string) []AchievementView {
	unlockedAt := make(map[string]string, len(p.Achievements))
	for _, a := range p.Achievements {
		unlockedAt[a.ID] = a.UnlockedAt
	}

	var out []AchievementView
	for _, def := range defs {
		at, unlocked := unlockedAt[def.ID]
		switch filter {
		case "", FilterAll:
		case FilterUnlocked:
			if !unlocked {
				continue
			}
		case FilterLocked:
			if unlocked {
				continue
			}
		default:
			if string(def.Tier) != filter {
				continue
			}
		}
		if category != "" && category != FilterAll && string(def.Category) != category {
			continue
		}

		v := AchievementView{
			AchievementDefinition: def,
			Unlocked:              unlocked,
			UnlockedAt:            at,
			TierName:              TierName(def.Tier),
			RarityLabel:           RarityLabel(def.Rarity),
		}
		v.Progress, v.MaxProgress = Progress(def, p)
		if def.IsSecret && !unlocked {
			v.Name = "???"
			v.Description = "Conquista secreta. Continue jogando para descobrir!"
			v.Requirement = "???"
		}
		out = append(out, v)
	}
	return out
}

// Counts reports unlocked and total achievements.
func Counts(defs []models.AchievementDefinition, p *models.UserProfile) (unlocked, total int) {
	for _, def := range defs {
		if p.HasAchievement(def.ID) {
			unlocked++
		}
	}
	return unlocked, len(defs)
}
