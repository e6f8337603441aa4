package models

// ── Achievements ──────────────────────────────────────────

type AchievementTier string

const (
	TierBronze   AchievementTier = "bronze"
	TierSilver   AchievementTier = "silver"
	TierGold     AchievementTier = "gold"
	TierPlatinum AchievementTier = "platinum"
)

var AchievementTiers = []AchievementTier{TierBronze, TierSilver, TierGold, TierPlatinum}

type AchievementCategory string

const (
	AchievementProgress   AchievementCategory = "progress"
	AchievementSkill      AchievementCategory = "skill"
	AchievementDedication AchievementCategory = "dedication"
	AchievementSpecial    AchievementCategory = "special"
)

// AchievementDefinition describes an achievement in the catalog. Rarity is the
// percentage of players holding it.
type AchievementDefinition struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
	Tier        AchievementTier     `json:"tier"`
	Rarity      float64             `json:"rarity"`
	IsSecret    bool                `json:"is_secret"`
	Requirement string              `json:"requirement"`
	Category    AchievementCategory `json:"category"`
	MaxProgress int                 `json:"max_progress,omitempty"`
}

// Achievement is an unlocked achievement on a profile.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	UnlockedAt  string `json:"unlocked_at"`
}

// ── Ranking ───────────────────────────────────────────────

type RankingEntry struct {
	Rank          int    `json:"rank"`
	Username      string `json:"username"`
	WeeklyXP      int    `json:"weekly_xp"`
	Level         int    `json:"level"`
	Badge         string `json:"badge,omitempty"`
	IsCurrentUser bool   `json:"is_current_user,omitempty"`
}
