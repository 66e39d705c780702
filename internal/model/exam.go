package model

import "time"

// ExamStructureItem запрос на count вопросов заданной сложности и блока знаний
type ExamStructureItem struct {
	Difficulty     Difficulty `json:"difficulty"`
	KnowledgeBlock string     `json:"knowledgeBlock"`
	Count          int        `json:"count"`
}

type Exam struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	SubjectID string              `json:"subjectId"`
	Structure []ExamStructureItem `json:"structure"`
	Questions []string            `json:"questions"`
	CreatedAt time.Time           `json:"createdAt"`
}

func (e Exam) GetID() string { return e.ID }

// TotalCount сумма запрошенных вопросов по всей структуре
func TotalCount(structure []ExamStructureItem) int {
	total := 0
	for _, item := range structure {
		total += item.Count
	}
	return total
}
