package catalog

import "github.com/mathquest/app/internal/models"

func defaultAchievements() []models.AchievementDefinition {
	return []models.AchievementDefinition{
		// Progress
		{ID: "first-win", Name: "Primeira Vitória", Description: "Complete sua primeira questão", Icon: "🎯", Tier: models.TierBronze, Rarity: 98.5, Requirement: "Complete 1 questão", Category: models.AchievementProgress, MaxProgress: 1},
		{ID: "getting-started", Name: "Iniciante", Description: "Complete 10 questões", Icon: "📚", Tier: models.TierBronze, Rarity: 87.3, Requirement: "Complete 10 questões", Category: models.AchievementProgress, MaxProgress: 10},
		{ID: "dedicated-solver", Name: "Resolvedor Dedicado", Description: "Complete 50 questões", Icon: "🎓", Tier: models.TierSilver, Rarity: 45.2, Requirement: "Complete 50 questões", Category: models.AchievementProgress, MaxProgress: 50},
		{ID: "centenarian", Name: "Centenário", Description: "Complete 100 questões", Icon: "💯", Tier: models.TierGold, Rarity: 23.8, Requirement: "Complete 100 questões", Category: models.AchievementProgress, MaxProgress: 100},
		{ID: "master-solver", Name: "Mestre Solucionador", Description: "Complete 500 questões", Icon: "👑", Tier: models.TierPlatinum, Rarity: 4.1, Requirement: "Complete 500 questões", Category: models.AchievementProgress, MaxProgress: 500},

		// Skill
		{ID: "perfectionist", Name: "Perfeccionista", Description: "Acerte 50 questões consecutivas", Icon: "💎", Tier: models.TierGold, Rarity: 12.5, Requirement: "Acerte 50 questões seguidas", Category: models.AchievementSkill, MaxProgress: 50},
		{ID: "no-mistakes", Name: "Impecável", Description: "Acerte 20 questões sem errar", Icon: "✨", Tier: models.TierSilver, Rarity: 34.6, Requirement: "Acerte 20 questões consecutivas", Category: models.AchievementSkill, MaxProgress: 20},
		{ID: "speedster", Name: "Velocista", Description: "Resolva 10 questões em menos de 1 hora", Icon: "⚡", Tier: models.TierSilver, Rarity: 28.9, Requirement: "Complete 10 questões em até 60 minutos", Category: models.AchievementSkill},
		{ID: "speed-demon", Name: "Demônio da Velocidade", Description: "Resolva uma questão difícil em menos de 2 minutos", Icon: "🔥", Tier: models.TierGold, Rarity: 8.3, Requirement: "Complete questão difícil em < 2min", Category: models.AchievementSkill},

		// Manuscripts
		{ID: "manuscript-master", Name: "Mestre do Manuscrito", Description: "Valide 10 resoluções manuscritas", Icon: "✍️", Tier: models.TierBronze, Rarity: 62.4, Requirement: "Valide 10 manuscritos pela IA", Category: models.AchievementSkill, MaxProgress: 10},
		{ID: "manuscript-legend", Name: "Lenda do Manuscrito", Description: "Valide 100 resoluções manuscritas", Icon: "📝", Tier: models.TierGold, Rarity: 15.7, Requirement: "Valide 100 manuscritos pela IA", Category: models.AchievementSkill, MaxProgress: 100},
		{ID: "manuscript-god", Name: "Deus do Manuscrito", Description: "Valide 500 resoluções manuscritas", Icon: "🖊️", Tier: models.TierPlatinum, Rarity: 2.1, Requirement: "Valide 500 manuscritos pela IA", Category: models.AchievementDedication, MaxProgress: 500},

		// Category masters
		{ID: "algebra-master", Name: "Mestre da Álgebra", Description: "Complete 100 questões de álgebra", Icon: "📐", Tier: models.TierGold, Rarity: 19.4, Requirement: "Complete 100 questões de Álgebra", Category: models.AchievementProgress, MaxProgress: 100},
		{ID: "geometry-master", Name: "Rei da Geometria", Description: "Complete 100 questões de geometria", Icon: "📏", Tier: models.TierGold, Rarity: 17.8, Requirement: "Complete 100 questões de Geometria", Category: models.AchievementProgress, MaxProgress: 100},
		{ID: "trig-master", Name: "Mestre da Trigonometria", Description: "Complete 80 questões de trigonometria", Icon: "📊", Tier: models.TierGold, Rarity: 14.2, Requirement: "Complete 80 questões de Trigonometria", Category: models.AchievementProgress, MaxProgress: 80},
		{ID: "arithmetic-master", Name: "Mestre da Aritmética", Description: "Complete 60 questões de aritmética", Icon: "🔢", Tier: models.TierSilver, Rarity: 31.5, Requirement: "Complete 60 questões de Aritmética", Category: models.AchievementProgress, MaxProgress: 60},

		// Dedication
		{ID: "weekend-warrior", Name: "Guerreiro de Fim de Semana", Description: "Ganhe 1000 XP em um final de semana", Icon: "🎮", Tier: models.TierSilver, Rarity: 22.1, Requirement: "Ganhe 1000 XP no sábado ou domingo", Category: models.AchievementDedication},
		{ID: "marathon-runner", Name: "Maratonista", Description: "Estude por 10 horas", Icon: "🏃", Tier: models.TierSilver, Rarity: 38.7, Requirement: "Acumule 10 horas de estudo", Category: models.AchievementDedication},
		{ID: "veteran", Name: "Veterano", Description: "Jogue por 90 dias consecutivos", Icon: "🔥", Tier: models.TierPlatinum, Rarity: 5.3, Requirement: "Acesse a plataforma por 90 dias seguidos", Category: models.AchievementDedication},
		{ID: "early-bird", Name: "Madrugador", Description: "Resolva 10 questões antes das 7h da manhã", Icon: "🌅", Tier: models.TierBronze, Rarity: 18.9, Requirement: "Complete 10 questões antes das 7h", Category: models.AchievementSpecial, MaxProgress: 10},
		{ID: "night-owl", Name: "Coruja da Noite", Description: "Resolva 10 questões depois das 23h", Icon: "🦉", Tier: models.TierBronze, Rarity: 42.3, Requirement: "Complete 10 questões após às 23h", Category: models.AchievementSpecial, MaxProgress: 10},

		// Ranking
		{ID: "top-3-weekly", Name: "Top 3 Semanal", Description: "Fique no Top 3 do ranking semanal", Icon: "🥉", Tier: models.TierSilver, Rarity: 8.7, Requirement: "Termine a semana no Top 3", Category: models.AchievementSkill},
		{ID: "weekly-champion", Name: "Campeão Semanal", Description: "Fique em 1º lugar no ranking semanal", Icon: "🏆", Tier: models.TierGold, Rarity: 2.9, Requirement: "Termine a semana em 1º lugar", Category: models.AchievementSkill},
		{ID: "three-time-champion", Name: "Tricampeão", Description: "Ganhe o ranking semanal 3 vezes", Icon: "👑", Tier: models.TierPlatinum, Rarity: 0.8, Requirement: "Seja campeão semanal 3 vezes", Category: models.AchievementSkill, MaxProgress: 3},

		// Secret
		{ID: "secret-explorer", Name: "???", Description: "Uma conquista misteriosa aguarda...", Icon: "❓", Tier: models.TierGold, Rarity: 3.2, IsSecret: true, Requirement: "Complete todas as questões de todas as categorias", Category: models.AchievementSpecial},
		{ID: "lucky-seven", Name: "Sorte Grande", Description: "Resolva exatamente 777 questões", Icon: "🎰", Tier: models.TierPlatinum, Rarity: 1.1, IsSecret: true, Requirement: "Complete exatamente 777 questões", Category: models.AchievementSpecial},
		{ID: "christmas-solver", Name: "Espírito Natalino", Description: "Resolva 25 questões no dia 25 de dezembro", Icon: "🎄", Tier: models.TierSilver, Rarity: 6.4, IsSecret: true, Requirement: "Complete 25 questões no Natal", Category: models.AchievementSpecial},
	}
}
