package gamification

import (
	"testing"
	"time"

	"github.com/mathquest/app/internal/catalog"
	"github.com/mathquest/app/internal/models"
)

var day = time.Date(2025, 12, 20, 14, 0, 0, 0, time.UTC)

func ids(as []models.Achievement) []string {
	out := make([]string, len(as))
	for i, a := range as {
		out[i] = a.ID
	}
	return out
}

func TestUnlockAchievements_QuestionMilestones(t *testing.T) {
	defs := catalog.Default().Achievements()
	p := &models.UserProfile{QuestionsCompleted: 10}

	got := ids(UnlockAchievements(p, defs, day))
	want := []string{"first-win", "getting-started"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("unlocked = %v, want %v", got, want)
	}
	if p.Achievements[0].UnlockedAt != "2025-12-20" {
		t.Errorf("UnlockedAt = %q, want 2025-12-20", p.Achievements[0].UnlockedAt)
	}

	// Already held achievements are not unlocked twice.
	if again := UnlockAchievements(p, defs, day); len(again) != 0 {
		t.Errorf("second pass unlocked %v, want none", ids(again))
	}
}

func TestUnlockAchievements_LuckySevenIsExact(t *testing.T) {
	defs := catalog.Default().Achievements()

	p := &models.UserProfile{QuestionsCompleted: 778}
	for _, a := range UnlockAchievements(p, defs, day) {
		if a.ID == "lucky-seven" {
			t.Error("lucky-seven unlocked at 778 questions")
		}
	}

	p = &models.UserProfile{QuestionsCompleted: 777}
	if !containsID(UnlockAchievements(p, defs, day), "lucky-seven") {
		t.Error("lucky-seven not unlocked at 777 questions")
	}
}

func TestUnlockAchievements_CategoryAndManuscripts(t *testing.T) {
	defs := catalog.Default().Achievements()
	p := &models.UserProfile{
		ManuscriptsValidated: 100,
		TimeSpentMinutes:     600,
		CategoryStats: []models.CategoryStat{
			{CategoryID: "trigonometria", QuestionsCompleted: 80},
			{CategoryID: "algebra", QuestionsCompleted: 99},
		},
	}
	got := UnlockAchievements(p, defs, day)
	for _, id := range []string{"manuscript-master", "manuscript-legend", "trig-master", "marathon-runner"} {
		if !containsID(got, id) {
			t.Errorf("%s not unlocked", id)
		}
	}
	for _, id := range []string{"manuscript-god", "algebra-master", "weekly-champion"} {
		if containsID(got, id) {
			t.Errorf("%s unlocked unexpectedly", id)
		}
	}
}

func TestProgress(t *testing.T) {
	c := catalog.Default()
	centenarian, _ := c.Achievement("centenarian")
	speedster, _ := c.Achievement("speedster")

	p := &models.UserProfile{QuestionsCompleted: 42}
	if cur, max := Progress(centenarian, p); cur != 42 || max != 100 {
		t.Errorf("Progress(centenarian) = %d/%d, want 42/100", cur, max)
	}

	p.QuestionsCompleted = 250
	if cur, _ := Progress(centenarian, p); cur != 100 {
		t.Errorf("Progress(centenarian) = %d, want capped at 100", cur)
	}

	if cur, max := Progress(speedster, p); cur != 0 || max != 1 {
		t.Errorf("Progress(speedster) = %d/%d, want 0/1", cur, max)
	}

	p.Achievements = []models.Achievement{{ID: "speedster"}}
	if cur, max := Progress(speedster, p); cur != 1 || max != 1 {
		t.Errorf("Progress(unlocked speedster) = %d/%d, want 1/1", cur, max)
	}
}

func TestProgress_RuleTargetWithoutProgressBar(t *testing.T) {
	c := catalog.Default()
	p := catalog.DefaultProfile("Ana")

	tests := []struct {
		id  string
		cur int
		max int
	}{
		{"marathon-runner", 345, 600},
		{"lucky-seven", 42, 777},
		{"speedster", 0, 1},
	}
	for _, tt := range tests {
		def, ok := c.Achievement(tt.id)
		if !ok {
			t.Fatalf("missing achievement %q", tt.id)
		}
		if def.MaxProgress != 0 {
			t.Fatalf("%s has MaxProgress %d, want none", tt.id, def.MaxProgress)
		}
		if cur, max := Progress(def, &p); cur != tt.cur || max != tt.max {
			t.Errorf("Progress(%s) = %d/%d, want %d/%d", tt.id, cur, max, tt.cur, tt.max)
		}
	}

	for _, v := range FilterAchievements(c.Achievements(), &p, FilterLocked, "") {
		if v.ID == "marathon-runner" && (v.Progress != 345 || v.MaxProgress != 600) {
			t.Errorf("locked marathon-runner view = %d/%d, want 345/600", v.Progress, v.MaxProgress)
		}
	}
}

func TestRarityLabel(t *testing.T) {
	tests := []struct {
		rarity float64
		want   string
	}{
		{98.5, "Comum"},
		{80, "Comum"},
		{62.4, "Incomum"},
		{50, "Incomum"},
		{23.8, "Raro"},
		{8.3, "Muito Raro"},
		{5, "Muito Raro"},
		{4.9, "Ultra Raro"},
		{0.8, "Ultra Raro"},
	}
	for _, tt := range tests {
		if got := RarityLabel(tt.rarity); got != tt.want {
			t.Errorf("RarityLabel(%v) = %q, want %q", tt.rarity, got, tt.want)
		}
	}
}

func TestTierName(t *testing.T) {
	want := []string{"Bronze", "Prata", "Ouro", "Platina"}
	for i, tier := range models.AchievementTiers {
		if got := TierName(tier); got != want[i] {
			t.Errorf("TierName(%s) = %q, want %q", tier, got, want[i])
		}
	}
}

func TestFilterAchievements(t *testing.T) {
	defs := catalog.Default().Achievements()
	p := catalog.DefaultProfile("Ana")

	unlocked := FilterAchievements(defs, &p, FilterUnlocked, "")
	if len(unlocked) != 2 {
		t.Fatalf("unlocked = %d, want 2", len(unlocked))
	}
	for _, v := range unlocked {
		if !v.Unlocked || v.UnlockedAt == "" {
			t.Errorf("%s: Unlocked=%v UnlockedAt=%q", v.ID, v.Unlocked, v.UnlockedAt)
		}
	}

	locked := FilterAchievements(defs, &p, FilterLocked, "")
	if len(locked) != len(defs)-2 {
		t.Errorf("locked = %d, want %d", len(locked), len(defs)-2)
	}

	for _, v := range FilterAchievements(defs, &p, string(models.TierPlatinum), string(models.AchievementSkill)) {
		if v.Tier != models.TierPlatinum || v.Category != models.AchievementSkill {
			t.Errorf("%s: tier=%s category=%s", v.ID, v.Tier, v.Category)
		}
	}

	for _, v := range FilterAchievements(defs, &p, FilterAll, string(models.AchievementSpecial)) {
		if v.IsSecret && v.Name != "???" {
			t.Errorf("locked secret %s shows name %q", v.ID, v.Name)
		}
	}

	if got, total := Counts(defs, &p); got != 2 || total != 27 {
		t.Errorf("Counts() = %d/%d, want 2/27", got, total)
	}
}

func containsID(as []models.Achievement, id string) bool {
	for _, a := range as {
		if a.ID == id {
			return true
		}
	}
	return false
}
