package repository

import (
	"context"

	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/Freeeeeet/admin_bot/internal/repository/base"
	"github.com/Freeeeeet/admin_bot/internal/storage"
)

type AppointmentRepository struct {
	*base.Collection[model.Appointment]
}

func NewAppointmentRepository(backend storage.Backend) *AppointmentRepository {
	return &AppointmentRepository{Collection: base.NewCollection[model.Appointment](backend, AppointmentsKey)}
}

// GetByDate получает все записи на дату (любой статус)
func (r *AppointmentRepository) GetByDate(ctx context.Context, date string) ([]model.Appointment, error) {
	return r.Find(ctx, func(a model.Appointment) bool {
		return a.Date == date
	})
}

// GetByStaffAndDate получает записи сотрудника на дату (любой статус)
func (r *AppointmentRepository) GetByStaffAndDate(ctx context.Context, staffID, date string) ([]model.Appointment, error) {
	return r.Find(ctx, func(a model.Appointment) bool {
		return a.StaffID == staffID && a.Date == date
	})
}

// GetByStatus получает записи с указанным статусом
func (r *AppointmentRepository) GetByStatus(ctx context.Context, status model.AppointmentStatus) ([]model.Appointment, error) {
	return r.Find(ctx, func(a model.Appointment) bool {
		return a.Status == status
	})
}
