package gamification

// XPPerLevel is the width of every level.
const XPPerLevel = 200

// Level returns the level for cumulative XP. Negative XP counts as zero.
func Level(totalXP int) int {
	return clampXP(totalXP)/XPPerLevel + 1
}

// XPIntoLevel returns the XP earned inside the current level.
func XPIntoLevel(totalXP int) int {
	return clampXP(totalXP) % XPPerLevel
}

// XPToNextLevel returns the XP still needed to reach the next level.
func XPToNextLevel(totalXP int) int {
	return XPPerLevel - XPIntoLevel(totalXP)
}

// LevelSummary is the progress bar shown on the profile and header.
type LevelSummary struct {
	Level       int     `json:"level"`
	XPIntoLevel int     `json:"xp_into_level"`
	XPToNext    int     `json:"xp_to_next"`
	Percent     float64 `json:"percent"`
}

func Summarize(totalXP int) LevelSummary {
	into := XPIntoLevel(totalXP)
	return LevelSummary{
		Level:       Level(totalXP),
		XPIntoLevel: into,
		XPToNext:    XPPerLevel - into,
		Percent:     float64(into) / XPPerLevel * 100,
	}
}

func clampXP(xp int) int {
	if xp < 0 {
		return 0
	}
	return xp
}
