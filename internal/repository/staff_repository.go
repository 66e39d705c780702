package repository

import (
	"context"

	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/Freeeeeet/admin_bot/internal/repository/base"
	"github.com/Freeeeeet/admin_bot/internal/storage"
)

type StaffRepository struct {
	*base.Collection[model.Staff]
}

func NewStaffRepository(backend storage.Backend) *StaffRepository {
	return &StaffRepository{Collection: base.NewCollection[model.Staff](backend, StaffKey)}
}

// GetByServiceID возвращает сотрудников, которые оказывают услугу
func (r *StaffRepository) GetByServiceID(ctx context.Context, serviceID string) ([]model.Staff, error) {
	return r.Find(ctx, func(s model.Staff) bool {
		return s.Provides(serviceID)
	})
}
