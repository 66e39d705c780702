// Package examgen собирает экзамен из банка вопросов по структуре квот.
package examgen

import (
	"fmt"
	"math/rand/v2"

	"github.com/Freeeeeet/admin_bot/internal/model"
)

// Random источник случайности для выборки. *rand.Rand из math/rand/v2 подходит как есть.
type Random interface {
	IntN(n int) int
}

// globalRandom глобальный источник math/rand/v2, безопасен для конкурентного использования
type globalRandom struct{}

func (globalRandom) IntN(n int) int { return rand.IntN(n) }

type Generator struct {
	rnd Random
}

// New создаёт генератор с заданным источником случайности
func New(rnd Random) *Generator {
	return &Generator{rnd: rnd}
}

// NewDefault создаёт генератор на глобальном источнике без фиксированного seed
func NewDefault() *Generator {
	return New(globalRandom{})
}

// Generate возвращает id вопросов для экзамена по предмету subjectID.
//
// Элементы структуры обрабатываются по порядку, вопрос не может попасть в экзамен
// дважды. Если хотя бы одному элементу не хватает вопросов, возвращается
// *InsufficientQuestionsError и ни одного id.
func (g *Generator) Generate(subjectID string, structure []model.ExamStructureItem, pool []model.Question) ([]string, error) {
	for i, item := range structure {
		if item.Count <= 0 {
			return nil, fmt.Errorf("structure item %d: %w", i, ErrInvalidCount)
		}
	}

	subjectQuestions := filterSubject(pool, subjectID)

	selected := make([]string, 0, model.TotalCount(structure))
	used := make(map[string]struct{}, cap(selected))

	for _, item := range structure {
		var matching []string
		for _, q := range subjectQuestions {
			if q.Difficulty != item.Difficulty || q.KnowledgeBlock != item.KnowledgeBlock {
				continue
			}
			if _, taken := used[q.ID]; taken {
				continue
			}
			matching = append(matching, q.ID)
		}

		if len(matching) < item.Count {
			return nil, &InsufficientQuestionsError{
				Difficulty:     item.Difficulty,
				KnowledgeBlock: item.KnowledgeBlock,
				Requested:      item.Count,
				Available:      len(matching),
			}
		}

		for _, id := range g.sample(matching, item.Count) {
			used[id] = struct{}{}
			selected = append(selected, id)
		}
	}

	return selected, nil
}

// sample выбирает k элементов без возвращения (частичный Фишер-Йетс).
// ids перемешивается на месте.
func (g *Generator) sample(ids []string, k int) []string {
	for i := 0; i < k; i++ {
		j := i + g.rnd.IntN(len(ids)-i)
		ids[i], ids[j] = ids[j], ids[i]
	}
	return ids[:k]
}

// filterSubject оставляет вопросы предмета, повторяющийся id учитывается один раз
func filterSubject(pool []model.Question, subjectID string) []model.Question {
	seen := make(map[string]struct{})
	var result []model.Question
	for _, q := range pool {
		if q.SubjectID != subjectID {
			continue
		}
		if _, dup := seen[q.ID]; dup {
			continue
		}
		seen[q.ID] = struct{}{}
		result = append(result, q)
	}
	return result
}
