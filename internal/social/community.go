package social

import (
	"sort"
	"strings"
	"time"

	"github.com/mathquest/app/internal/gamification"
	"github.com/mathquest/app/internal/models"
)

// Community filters.
const (
	CommunityAll    = "all"
	CommunityTop    = "top"
	CommunityActive = "active"

	topTotalXP     = 3000
	activeWeeklyXP = 1000
)

// FilterCommunity matches usernames case-insensitively, applies the filter
// and sorts by total XP.
func FilterCommunity(users []models.UserProfile, search, filter string) []models.UserProfile {
	needle := strings.ToLower(strings.TrimSpace(search))

	var out []models.UserProfile
	for _, u := range users {
		if !strings.Contains(strings.ToLower(u.Username), needle) {
			continue
		}
		switch filter {
		case CommunityTop:
			if u.TotalXP < topTotalXP {
				continue
			}
		case CommunityActive:
			if u.WeeklyXP < activeWeeklyXP {
				continue
			}
		}
		out = append(out, u)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalXP > out[j].TotalXP })
	return out
}

// ── Weekly ranking ──────────────────────────────────────

var medals = map[int]string{1: "🥇", 2: "🥈", 3: "🥉"}

// WeeklyBoard is the ranking screen model.
type WeeklyBoard struct {
	Entries        []models.RankingEntry `json:"entries"`
	CurrentUser    *models.RankingEntry  `json:"current_user,omitempty"`
	DaysUntilReset int                   `json:"days_until_reset"`
	Offline        bool                  `json:"offline"`
}

// BuildWeeklyRanking merges the current player into entries, replacing any row
// with the same username, then sorts by weekly XP and re-ranks.
func BuildWeeklyRanking(entries []models.RankingEntry, current models.UserProfile, now time.Time) WeeklyBoard {
	rows := make([]models.RankingEntry, 0, len(entries)+1)
	for _, e := range entries {
		if current.Username != "" && models.SameUsername(e.Username, current.Username) {
			continue
		}
		e.IsCurrentUser = false
		rows = append(rows, e)
	}
	if current.Username != "" {
		rows = append(rows, models.RankingEntry{
			Username:      current.Username,
			WeeklyXP:      current.WeeklyXP,
			Level:         gamification.Level(current.TotalXP),
			IsCurrentUser: true,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].WeeklyXP != rows[j].WeeklyXP {
			return rows[i].WeeklyXP > rows[j].WeeklyXP
		}
		return rows[i].Username < rows[j].Username
	})

	board := WeeklyBoard{Entries: rows, DaysUntilReset: DaysUntilReset(now)}
	for i := range rows {
		rows[i].Rank = i + 1
		rows[i].Badge = medals[i+1]
		if rows[i].IsCurrentUser {
			cu := rows[i]
			board.CurrentUser = &cu
		}
	}
	return board
}

// DaysUntilReset counts down to the Sunday reset (Sunday is 7).
func DaysUntilReset(now time.Time) int {
	return 7 - int(now.Weekday())
}
