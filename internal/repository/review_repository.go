package repository

import (
	"context"

	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/Freeeeeet/admin_bot/internal/repository/base"
	"github.com/Freeeeeet/admin_bot/internal/storage"
)

type ReviewRepository struct {
	*base.Collection[model.Review]
}

func NewReviewRepository(backend storage.Backend) *ReviewRepository {
	return &ReviewRepository{Collection: base.NewCollection[model.Review](backend, ReviewsKey)}
}

// GetByAppointmentID получает отзыв к записи или nil
func (r *ReviewRepository) GetByAppointmentID(ctx context.Context, appointmentID string) (*model.Review, error) {
	found, err := r.Find(ctx, func(rv model.Review) bool {
		return rv.AppointmentID == appointmentID
	})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}
