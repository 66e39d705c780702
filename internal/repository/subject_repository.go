package repository

import (
	"context"
	"strings"

	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/Freeeeeet/admin_bot/internal/repository/base"
	"github.com/Freeeeeet/admin_bot/internal/storage"
)

type SubjectRepository struct {
	*base.Collection[model.Subject]
}

func NewSubjectRepository(backend storage.Backend) *SubjectRepository {
	return &SubjectRepository{Collection: base.NewCollection[model.Subject](backend, SubjectsKey)}
}

// GetByCode получает предмет по коду (без учёта регистра) или nil
func (r *SubjectRepository) GetByCode(ctx context.Context, code string) (*model.Subject, error) {
	found, err := r.Find(ctx, func(s model.Subject) bool {
		return strings.EqualFold(s.Code, strings.TrimSpace(code))
	})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}
