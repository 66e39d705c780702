package model

type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyMedium   Difficulty = "medium"
	DifficultyHard     Difficulty = "hard"
	DifficultyVeryHard Difficulty = "very_hard"
)

// Difficulties все уровни сложности в порядке возрастания
var Difficulties = []Difficulty{
	DifficultyEasy,
	DifficultyMedium,
	DifficultyHard,
	DifficultyVeryHard,
}

// IsValid проверяет что уровень сложности известен
func (d Difficulty) IsValid() bool {
	for _, known := range Difficulties {
		if d == known {
			return true
		}
	}
	return false
}

type Question struct {
	ID             string     `json:"id"`
	Code           string     `json:"code"`
	SubjectID      string     `json:"subjectId"`
	Content        string     `json:"content"`
	Difficulty     Difficulty `json:"difficulty"`
	KnowledgeBlock string     `json:"knowledgeBlock"`
}

func (q Question) GetID() string { return q.ID }
