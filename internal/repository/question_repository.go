package repository

import (
	"context"

	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/Freeeeeet/admin_bot/internal/repository/base"
	"github.com/Freeeeeet/admin_bot/internal/storage"
)

type QuestionRepository struct {
	*base.Collection[model.Question]
}

func NewQuestionRepository(backend storage.Backend) *QuestionRepository {
	return &QuestionRepository{Collection: base.NewCollection[model.Question](backend, QuestionsKey)}
}

// GetBySubjectID получает вопросы предмета
func (r *QuestionRepository) GetBySubjectID(ctx context.Context, subjectID string) ([]model.Question, error) {
	return r.Find(ctx, func(q model.Question) bool {
		return q.SubjectID == subjectID
	})
}
