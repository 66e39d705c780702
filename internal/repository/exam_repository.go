package repository

import (
	"context"

	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/Freeeeeet/admin_bot/internal/repository/base"
	"github.com/Freeeeeet/admin_bot/internal/storage"
)

type ExamRepository struct {
	*base.Collection[model.Exam]
}

func NewExamRepository(backend storage.Backend) *ExamRepository {
	return &ExamRepository{Collection: base.NewCollection[model.Exam](backend, ExamsKey)}
}

// GetBySubjectID получает экзамены по предмету
func (r *ExamRepository) GetBySubjectID(ctx context.Context, subjectID string) ([]model.Exam, error) {
	return r.Find(ctx, func(e model.Exam) bool {
		return e.SubjectID == subjectID
	})
}
