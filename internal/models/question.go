package models

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
)

var ValidDifficulties = map[Difficulty]bool{
	DifficultyEasy:   true,
	DifficultyMedium: true,
	DifficultyHard:   true,
	DifficultyExpert: true,
}

// Label returns the player-facing name of the difficulty.
func (d Difficulty) Label() string {
	switch d {
	case DifficultyEasy:
		return "Fácil"
	case DifficultyMedium:
		return "Médio"
	case DifficultyHard:
		return "Difícil"
	case DifficultyExpert:
		return "Expert"
	default:
		return string(d)
	}
}

type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Icon          string        `json:"icon"`
	Subcategories []Subcategory `json:"subcategories"`
}

type Subcategory struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	QuestionCount int    `json:"question_count"`
}

// Question is an immutable multiple-choice item. CorrectAnswer indexes Options.
type Question struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Image         string     `json:"image,omitempty"`
	Difficulty    Difficulty `json:"difficulty"`
	XP            int        `json:"xp"`
	Options       []string   `json:"options"`
	CorrectAnswer int        `json:"correct_answer"`
	CategoryID    string     `json:"category_id"`
	SubcategoryID string     `json:"subcategory_id"`
}

// HasOption reports whether i is a valid index into Options.
func (q Question) HasOption(i int) bool {
	return i >= 0 && i < len(q.Options)
}
