package catalog

import "github.com/mathquest/app/internal/models"

func defaultCategories() []models.Category {
	return []models.Category{
		{
			ID: "aritmetica", Name: "Aritmética", Icon: "🔢",
			Subcategories: []models.Subcategory{
				{ID: "divisibilidade", Name: "Divisibilidade", Description: "Critérios de divisibilidade, MDC e MMC", QuestionCount: 15},
				{ID: "numeros-primos", Name: "Números Primos", Description: "Fatoração, primalidade e teoremas", QuestionCount: 12},
				{ID: "porcentagem", Name: "Porcentagem", Description: "Cálculos percentuais e aplicações", QuestionCount: 18},
			},
		},
		{
			ID: "algebra", Name: "Álgebra", Icon: "📐",
			Subcategories: []models.Subcategory{
				{ID: "equacoes-1-grau", Name: "Equações 1º Grau", Description: "Sistemas e problemas lineares", QuestionCount: 20},
				{ID: "equacoes-2-grau", Name: "Equações 2º Grau", Description: "Bhaskara, Viète e aplicações", QuestionCount: 22},
				{ID: "funcoes", Name: "Funções", Description: "Funções lineares, quadráticas e exponenciais", QuestionCount: 25},
				{ID: "polinomios", Name: "Polinômios", Description: "Operações e teoremas", QuestionCount: 16},
			},
		},
		{
			ID: "geometria", Name: "Geometria", Icon: "📏",
			Subcategories: []models.Subcategory{
				{ID: "geometria-plana", Name: "Geometria Plana", Description: "Áreas e perímetros", QuestionCount: 18},
				{ID: "geometria-espacial", Name: "Geometria Espacial", Description: "Volumes e superfícies", QuestionCount: 14},
				{ID: "geometria-analitica", Name: "Geometria Analítica", Description: "Distâncias, retas e circunferências", QuestionCount: 20},
			},
		},
		{
			ID: "trigonometria", Name: "Trigonometria", Icon: "📊",
			Subcategories: []models.Subcategory{
				{ID: "razoes-trigonometricas", Name: "Razões Trigonométricas", Description: "Seno, cosseno e tangente", QuestionCount: 15},
				{ID: "identidades", Name: "Identidades", Description: "Fórmulas e transformações", QuestionCount: 17},
				{ID: "equacoes-trigonometricas", Name: "Equações Trigonométricas", Description: "Resolução e sistemas", QuestionCount: 13},
			},
		},
	}
}

func defaultQuestions() []models.Question {
	return []models.Question{
		// Álgebra - Equações 2º Grau
		{
			ID: "eq2-001", Name: "Raízes Reais",
			Description: "Encontre as raízes reais da equação x² - 5x + 6 = 0",
			Difficulty:  models.DifficultyEasy, XP: 50,
			Options:       []string{"x₁ = 2 e x₂ = 3", "x₁ = 1 e x₂ = 6", "x₁ = -2 e x₂ = -3", "x₁ = 0 e x₂ = 5", "Não há raízes reais"},
			CorrectAnswer: 0, CategoryID: "algebra", SubcategoryID: "equacoes-2-grau",
		},
		{
			ID: "eq2-002", Name: "Soma das Raízes",
			Description: "Na equação 2x² - 8x + k = 0, sabendo que uma raiz é 3, determine o valor de k e a outra raiz.",
			Difficulty:  models.DifficultyMedium, XP: 100,
			Options:       []string{"k = -6 e x₂ = 1", "k = 6 e x₂ = 1", "k = 6 e x₂ = -1", "k = -6 e x₂ = -1", "k = 12 e x₂ = 2"},
			CorrectAnswer: 1, CategoryID: "algebra", SubcategoryID: "equacoes-2-grau",
		},
		{
			ID: "eq2-003", Name: "Discriminante",
			Description: "Determine os valores de m para que a equação x² - 2mx + m² - 1 = 0 tenha duas raízes reais distintas.",
			Difficulty:  models.DifficultyHard, XP: 150,
			Options:       []string{"m ∈ ℝ", "m > 0", "m < 0", "m ≠ 0", "Não existe m que satisfaça"},
			CorrectAnswer: 0, CategoryID: "algebra", SubcategoryID: "equacoes-2-grau",
		},

		// Geometria - Geometria Plana
		{
			ID: "geop-001", Name: "Área do Trapézio",
			Description: "Um trapézio tem bases medindo 8 cm e 12 cm, e altura de 5 cm. Calcule sua área.",
			Difficulty:  models.DifficultyEasy, XP: 50,
			Options:       []string{"40 cm²", "50 cm²", "60 cm²", "100 cm²", "120 cm²"},
			CorrectAnswer: 1, CategoryID: "geometria", SubcategoryID: "geometria-plana",
		},
		{
			ID: "geop-002", Name: "Teorema de Pitágoras",
			Description: "Um triângulo retângulo tem catetos medindo 5 cm e 12 cm. Qual é a medida da hipotenusa?",
			Difficulty:  models.DifficultyEasy, XP: 50,
			Options:       []string{"13 cm", "17 cm", "15 cm", "14 cm", "11 cm"},
			CorrectAnswer: 0, CategoryID: "geometria", SubcategoryID: "geometria-plana",
		},

		// Trigonometria - Razões
		{
			ID: "trig-001", Name: "Seno de 30°",
			Description: "Calcule o valor de sen(30°) + cos(60°)",
			Difficulty:  models.DifficultyEasy, XP: 50,
			Options:       []string{"1", "1/2", "√3/2", "√3", "0"},
			CorrectAnswer: 0, CategoryID: "trigonometria", SubcategoryID: "razoes-trigonometricas",
		},
		{
			ID: "trig-002", Name: "Relação Fundamental",
			Description: "Se sen(x) = 3/5 e x está no primeiro quadrante, calcule cos(x).",
			Difficulty:  models.DifficultyMedium, XP: 100,
			Options:       []string{"3/5", "4/5", "5/3", "5/4", "2/5"},
			CorrectAnswer: 1, CategoryID: "trigonometria", SubcategoryID: "razoes-trigonometricas",
		},

		// Aritmética - Divisibilidade
		{
			ID: "arit-001", Name: "MDC",
			Description: "Calcule o MDC entre 48 e 72.",
			Difficulty:  models.DifficultyEasy, XP: 50,
			Options:       []string{"12", "24", "6", "8", "144"},
			CorrectAnswer: 1, CategoryID: "aritmetica", SubcategoryID: "divisibilidade",
		},
		{
			ID: "arit-002", Name: "MMC",
			Description: "Três sinais de trânsito piscam a cada 4, 6 e 9 segundos respectivamente. Se piscam juntos agora, depois de quantos segundos piscarão juntos novamente?",
			Difficulty:  models.DifficultyMedium, XP: 100,
			Options:       []string{"18 segundos", "36 segundos", "72 segundos", "108 segundos", "216 segundos"},
			CorrectAnswer: 1, CategoryID: "aritmetica", SubcategoryID: "divisibilidade",
		},

		// Álgebra - Funções
		{
			ID: "func-001", Name: "Função Composta",
			Description: "Dadas f(x) = 2x + 1 e g(x) = x² - 1, calcule (f ∘ g)(2).",
			Difficulty:  models.DifficultyMedium, XP: 100,
			Options:       []string{"5", "7", "9", "11", "13"},
			CorrectAnswer: 1, CategoryID: "algebra", SubcategoryID: "funcoes",
		},
		{
			ID: "func-002", Name: "Função Inversa",
			Description: "Encontre a função inversa de f(x) = (3x - 2)/5.",
			Difficulty:  models.DifficultyHard, XP: 150,
			Options:       []string{"f⁻¹(x) = (5x + 2)/3", "f⁻¹(x) = (5x - 2)/3", "f⁻¹(x) = (3x + 2)/5", "f⁻¹(x) = 3x/5 + 2", "f⁻¹(x) = (2 - 5x)/3"},
			CorrectAnswer: 0, CategoryID: "algebra", SubcategoryID: "funcoes",
		},

		// Geometria Analítica
		{
			ID: "geoa-001", Name: "Distância entre Pontos",
			Description: "Calcule a distância entre os pontos A(1, 2) e B(4, 6).",
			Difficulty:  models.DifficultyEasy, XP: 50,
			Options:       []string{"5", "√7", "7", "√5", "3"},
			CorrectAnswer: 0, CategoryID: "geometria", SubcategoryID: "geometria-analitica",
		},
		{
			ID: "geoa-002", Name: "Equação da Reta",
			Description: "Encontre a equação da reta que passa pelos pontos (2, 3) e (4, 7).",
			Difficulty:  models.DifficultyMedium, XP: 100,
			Options:       []string{"y = 2x - 1", "y = 2x + 1", "y = x + 1", "y = 3x - 3", "y = x - 1"},
			CorrectAnswer: 0, CategoryID: "geometria", SubcategoryID: "geometria-analitica",
		},
	}
}
