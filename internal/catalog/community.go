package catalog

import (
	"time"

	"github.com/mathquest/app/internal/models"
)

func stats(alg, algXP, geo, geoXP, trig, trigXP, arit, aritXP int) []models.CategoryStat {
	return []models.CategoryStat{
		{CategoryID: "algebra", CategoryName: "Álgebra", QuestionsCompleted: alg, XPEarned: algXP},
		{CategoryID: "geometria", CategoryName: "Geometria", QuestionsCompleted: geo, XPEarned: geoXP},
		{CategoryID: "trigonometria", CategoryName: "Trigonometria", QuestionsCompleted: trig, XPEarned: trigXP},
		{CategoryID: "aritmetica", CategoryName: "Aritmética", QuestionsCompleted: arit, XPEarned: aritXP},
	}
}

func communityUsers() []models.UserProfile {
	return []models.UserProfile{
		{
			Username: "MathGenius", TotalXP: 4850, WeeklyXP: 2450, TimeSpentMinutes: 1240, QuestionsCompleted: 187,
			FavoriteCategory: "Álgebra", Badges: []string{"🥇", "👑", "⚡"},
			Achievements: []models.Achievement{
				{ID: "algebra-master", Name: "Mestre da Álgebra", Description: "Complete 100 questões de álgebra", Icon: "📐", UnlockedAt: "2025-11-20"},
				{ID: "speedster", Name: "Velocista", Description: "Resolva 10 questões em menos de 1 hora", Icon: "⚡", UnlockedAt: "2025-11-25"},
				{ID: "weekly-champion", Name: "Campeão Semanal", Description: "Fique em 1º lugar no ranking semanal", Icon: "🏆", UnlockedAt: "2025-12-01"},
				{ID: "perfectionist", Name: "Perfeccionista", Description: "Acerte 50 questões seguidas", Icon: "💎", UnlockedAt: "2025-12-05"},
			},
			CategoryStats: stats(78, 2340, 52, 1560, 38, 710, 19, 240),
			JoinedDate:    "2025-09-10",
		},
		{
			Username: "AlgebraKing", TotalXP: 4120, WeeklyXP: 2180, TimeSpentMinutes: 980, QuestionsCompleted: 156,
			FavoriteCategory: "Álgebra", Badges: []string{"🥈", "📐"},
			Achievements: []models.Achievement{
				{ID: "algebra-master", Name: "Mestre da Álgebra", Description: "Complete 100 questões de álgebra", Icon: "📐", UnlockedAt: "2025-10-15"},
				{ID: "top-3-weekly", Name: "Top 3 Semanal", Description: "Fique no Top 3 do ranking semanal", Icon: "🥈", UnlockedAt: "2025-12-08"},
				{ID: "manuscript-legend", Name: "Lenda do Manuscrito", Description: "Valide 100 resoluções manuscritas", Icon: "📝", UnlockedAt: "2025-11-30"},
			},
			CategoryStats: stats(92, 2760, 34, 820, 22, 440, 8, 100),
			JoinedDate:    "2025-10-01",
		},
		{
			Username: "GeometriaPro", TotalXP: 3820, WeeklyXP: 1920, TimeSpentMinutes: 875, QuestionsCompleted: 142,
			FavoriteCategory: "Geometria", Badges: []string{"🥉", "📏"},
			Achievements: []models.Achievement{
				{ID: "geometry-master", Name: "Rei da Geometria", Description: "Complete 100 questões de geometria", Icon: "📏", UnlockedAt: "2025-11-18"},
				{ID: "veteran", Name: "Veterano", Description: "Jogue por 90 dias consecutivos", Icon: "🔥", UnlockedAt: "2025-12-01"},
				{ID: "top-3-weekly", Name: "Top 3 Semanal", Description: "Fique no Top 3 do ranking semanal", Icon: "🥉", UnlockedAt: "2025-12-08"},
			},
			CategoryStats: stats(31, 780, 88, 2640, 18, 320, 5, 80),
			JoinedDate:    "2025-09-15",
		},
		{
			Username: "TrigMaster", TotalXP: 3450, WeeklyXP: 1650, TimeSpentMinutes: 720, QuestionsCompleted: 118,
			FavoriteCategory: "Trigonometria", Badges: []string{"📊", "🎯"},
			Achievements: []models.Achievement{
				{ID: "trig-master", Name: "Mestre da Trigonometria", Description: "Complete 80 questões de trigonometria", Icon: "📊", UnlockedAt: "2025-11-22"},
				{ID: "first-win", Name: "Primeira Vitória", Description: "Complete sua primeira questão", Icon: "🎯", UnlockedAt: "2025-10-05"},
				{ID: "no-mistakes", Name: "Impecável", Description: "Acerte 20 questões sem errar", Icon: "✨", UnlockedAt: "2025-11-10"},
			},
			CategoryStats: stats(26, 780, 14, 350, 74, 2220, 4, 100),
			JoinedDate:    "2025-10-05",
		},
		{
			Username: "CalculusLord", TotalXP: 3280, WeeklyXP: 1480, TimeSpentMinutes: 650, QuestionsCompleted: 102,
			FavoriteCategory: "Álgebra", Badges: []string{"🎓"},
			Achievements: []models.Achievement{
				{ID: "marathon-runner", Name: "Maratonista", Description: "Estude por 10 horas", Icon: "🏃", UnlockedAt: "2025-11-15"},
				{ID: "centenarian", Name: "Centenário", Description: "Complete 100 questões", Icon: "💯", UnlockedAt: "2025-12-01"},
			},
			CategoryStats: stats(58, 1740, 28, 840, 12, 480, 4, 220),
			JoinedDate:    "2025-10-20",
		},
		{
			Username: "NumberTheory", TotalXP: 2980, WeeklyXP: 1320, TimeSpentMinutes: 580, QuestionsCompleted: 94,
			FavoriteCategory: "Aritmética", Badges: []string{"🔢"},
			Achievements: []models.Achievement{
				{ID: "arithmetic-master", Name: "Mestre da Aritmética", Description: "Complete 60 questões de aritmética", Icon: "🔢", UnlockedAt: "2025-11-28"},
				{ID: "first-win", Name: "Primeira Vitória", Description: "Complete sua primeira questão", Icon: "🎯", UnlockedAt: "2025-10-22"},
			},
			CategoryStats: stats(20, 600, 10, 400, 2, 120, 62, 1860),
			JoinedDate:    "2025-10-22",
		},
	}
}

// offlineRanking mirrors the community board plus a few players that only
// appear on the weekly ranking.
func offlineRanking() []models.RankingEntry {
	return []models.RankingEntry{
		{Username: "MathGenius", WeeklyXP: 2450, Level: 25},
		{Username: "AlgebraKing", WeeklyXP: 2180, Level: 21},
		{Username: "GeometriaPro", WeeklyXP: 1920, Level: 20},
		{Username: "TrigMaster", WeeklyXP: 1650, Level: 18},
		{Username: "CalculusLord", WeeklyXP: 1480, Level: 17},
		{Username: "NumberTheory", WeeklyXP: 1320, Level: 15},
		{Username: "FunctionFan", WeeklyXP: 1150, Level: 14},
		{Username: "EquationSolver", WeeklyXP: 890, Level: 11},
		{Username: "MathLover99", WeeklyXP: 720, Level: 10},
	}
}

func mockFriends() []models.Friend {
	return []models.Friend{
		{Username: "MathWizard", Level: 15, TotalXP: 2850, WeeklyXP: 520, IsOnline: true, FriendsSince: "2025-11-20", Badges: []string{"🥇", "🔥"}},
		{Username: "AlgebraQueen", Level: 11, TotalXP: 2100, WeeklyXP: 340, IsOnline: true, FriendsSince: "2025-11-25", Badges: []string{"🥈"}},
		{Username: "GeometryKing", Level: 10, TotalXP: 1900, WeeklyXP: 280, LastSeen: "2 horas atrás", FriendsSince: "2025-12-01", Badges: []string{"🥉"}},
		{Username: "TrigMaster", Level: 13, TotalXP: 2400, WeeklyXP: 410, LastSeen: "1 dia atrás", FriendsSince: "2025-11-18", Badges: []string{"🥈", "✍️"}},
		{Username: "NumberNinja", Level: 8, TotalXP: 1400, WeeklyXP: 180, LastSeen: "3 horas atrás", FriendsSince: "2025-12-05", Badges: []string{"🥉"}},
	}
}

func at(layout string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", layout)
	if err != nil {
		panic(err)
	}
	return t
}

func mockIncomingRequests() []models.FriendRequest {
	return []models.FriendRequest{
		{ID: "req-1", From: "CalculusHero", SentAt: at("2025-12-12T10:30:00"), Status: models.FriendPending},
		{ID: "req-2", From: "ProblemSolver99", SentAt: at("2025-12-11T15:20:00"), Status: models.FriendPending},
		{ID: "req-3", From: "MathGenius", SentAt: at("2025-12-10T09:45:00"), Status: models.FriendPending},
	}
}

func mockOutgoingRequests() []models.FriendRequest {
	return []models.FriendRequest{
		{ID: "req-4", To: "EquationExpert", SentAt: at("2025-12-11T14:00:00"), Status: models.FriendPending},
		{ID: "req-5", To: "FormulaFanatic", SentAt: at("2025-12-09T11:30:00"), Status: models.FriendPending},
	}
}
