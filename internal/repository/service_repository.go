package repository

import (
	"context"
	"strings"

	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/Freeeeeet/admin_bot/internal/repository/base"
	"github.com/Freeeeeet/admin_bot/internal/storage"
)

type ServiceRepository struct {
	*base.Collection[model.Service]
}

func NewServiceRepository(backend storage.Backend) *ServiceRepository {
	return &ServiceRepository{Collection: base.NewCollection[model.Service](backend, ServicesKey)}
}

// GetByName ищет услугу по названию без учёта регистра
func (r *ServiceRepository) GetByName(ctx context.Context, name string) (*model.Service, error) {
	found, err := r.Find(ctx, func(s model.Service) bool {
		return strings.EqualFold(strings.TrimSpace(s.Name), strings.TrimSpace(name))
	})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}
