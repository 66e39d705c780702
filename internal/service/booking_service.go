package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Freeeeeet/admin_bot/internal/availability"
	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/Freeeeeet/admin_bot/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AppointmentInput struct {
	CustomerName  string `json:"customerName" validate:"required,max=100"`
	CustomerPhone string `json:"customerPhone" validate:"required,max=32"`
	ServiceID     string `json:"serviceId" validate:"required"`
	StaffID       string `json:"staffId" validate:"required"`
	Date          string `json:"date" validate:"required,date"`
	Time          string `json:"time" validate:"required,clock"`
}

type reviewInput struct {
	Rating  int    `json:"rating" validate:"gte=1,lte=5"`
	Comment string `json:"comment" validate:"max=1000"`
}

type responseInput struct {
	Response string `json:"response" validate:"required,max=1000"`
}

// BookingService записи клиентов и отзывы
type BookingService struct {
	// mu держится от снимка данных до записи. Защищает только внутри одного процесса.
	mu sync.Mutex

	services     *repository.ServiceRepository
	staff        *repository.StaffRepository
	appointments *repository.AppointmentRepository
	reviews      *repository.ReviewRepository
	logger       *zap.Logger
	now          func() time.Time
}

func NewBookingService(
	services *repository.ServiceRepository,
	staff *repository.StaffRepository,
	appointments *repository.AppointmentRepository,
	reviews *repository.ReviewRepository,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		services:     services,
		staff:        staff,
		appointments: appointments,
		reviews:      reviews,
		logger:       logger,
		now:          time.Now,
	}
}

// CreateAppointment проверяет доступность и сохраняет запись со статусом pending.
// При отказе возвращает *availability.Rejection.
func (s *BookingService) CreateAppointment(ctx context.Context, in AppointmentInput) (*model.Appointment, error) {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerPhone = strings.TrimSpace(in.CustomerPhone)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	date, err := model.ParseDate(in.Date)
	if err != nil {
		return nil, invalidField("date", "date")
	}
	start, err := model.ParseClock(in.Time)
	if err != nil {
		return nil, invalidField("time", "clock")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	staff, err := s.staff.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get staff: %w", err)
	}
	services, err := s.services.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get services: %w", err)
	}
	appointments, err := s.appointments.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get appointments: %w", err)
	}

	req := availability.Request{
		StaffID:   in.StaffID,
		ServiceID: in.ServiceID,
		Date:      date,
		Start:     start,
	}
	if err := availability.Check(req, staff, services, appointments); err != nil {
		s.logger.Info("Appointment rejected",
			zap.String("reason", availability.ReasonCode(err)),
			zap.String("staff_id", in.StaffID),
			zap.String("service_id", in.ServiceID),
			zap.String("date", in.Date),
			zap.String("time", in.Time),
		)
		return nil, err
	}

	appointment := model.Appointment{
		ID:            uuid.NewString(),
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		ServiceID:     in.ServiceID,
		StaffID:       in.StaffID,
		Date:          model.FormatDate(date),
		Time:          start.String(),
		Status:        model.AppointmentStatusPending,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.appointments.Add(ctx, appointment); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	s.logger.Info("Appointment created",
		zap.String("appointment_id", appointment.ID),
		zap.String("staff_id", appointment.StaffID),
		zap.String("service_id", appointment.ServiceID),
		zap.String("date", appointment.Date),
		zap.String("time", appointment.Time),
	)

	return &appointment, nil
}

// ConfirmAppointment pending -> confirmed
func (s *BookingService) ConfirmAppointment(ctx context.Context, id string) (*model.Appointment, error) {
	return s.transition(ctx, id, model.AppointmentStatusConfirmed)
}

// CompleteAppointment confirmed -> completed
func (s *BookingService) CompleteAppointment(ctx context.Context, id string) (*model.Appointment, error) {
	return s.transition(ctx, id, model.AppointmentStatusCompleted)
}

// CancelAppointment pending/confirmed -> cancelled
func (s *BookingService) CancelAppointment(ctx context.Context, id string) (*model.Appointment, error) {
	return s.transition(ctx, id, model.AppointmentStatusCancelled)
}

func (s *BookingService) transition(ctx context.Context, id string, next model.AppointmentStatus) (*model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	appointment, err := s.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	prev := appointment.Status
	if err := appointment.TransitionTo(next); err != nil {
		return nil, fmt.Errorf("%s -> %s: %w", prev, next, err)
	}

	if err := s.appointments.Update(ctx, *appointment); err != nil {
		return nil, fmt.Errorf("update appointment: %w", err)
	}

	s.logger.Info("Appointment status changed",
		zap.String("appointment_id", id),
		zap.String("from", string(prev)),
		zap.String("to", string(next)),
	)

	return appointment, nil
}

// ListAppointments получает все записи
func (s *BookingService) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	return s.appointments.GetAll(ctx)
}

// ListAppointmentsByDate получает записи на дату, отсортированные по времени
func (s *BookingService) ListAppointmentsByDate(ctx context.Context, date string) ([]model.Appointment, error) {
	if _, err := model.ParseDate(date); err != nil {
		return nil, invalidField("date", "date")
	}

	appointments, err := s.appointments.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("get appointments by date: %w", err)
	}

	sort.SliceStable(appointments, func(i, j int) bool {
		return appointments[i].Time < appointments[j].Time
	})
	return appointments, nil
}

// GetAppointment получает запись по ID
func (s *BookingService) GetAppointment(ctx context.Context, id string) (*model.Appointment, error) {
	appointment, err := s.appointments.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}

// AddReview добавляет отзыв к завершённой записи
func (s *BookingService) AddReview(ctx context.Context, appointmentID string, rating int, comment string) (*model.Review, error) {
	in := reviewInput{Rating: rating, Comment: strings.TrimSpace(comment)}
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	appointment, err := s.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment.Status != model.AppointmentStatusCompleted {
		return nil, ErrAppointmentNotCompleted
	}

	existing, err := s.reviews.GetByAppointmentID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}
	if existing != nil {
		return nil, ErrReviewExists
	}

	review := model.Review{
		ID:            uuid.NewString(),
		AppointmentID: appointmentID,
		Rating:        in.Rating,
		Comment:       in.Comment,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.reviews.Add(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.logger.Info("Review added",
		zap.String("review_id", review.ID),
		zap.String("appointment_id", appointmentID),
		zap.Int("rating", rating),
	)

	return &review, nil
}

// RespondToReview сохраняет ответ сотрудника, повторный ответ заменяет предыдущий
func (s *BookingService) RespondToReview(ctx context.Context, reviewID, response string) (*model.Review, error) {
	in := responseInput{Response: strings.TrimSpace(response)}
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	review, err := s.reviews.Get(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}

	review.StaffResponse = in.Response
	if err := s.reviews.Update(ctx, *review); err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}

	s.logger.Info("Review answered", zap.String("review_id", reviewID))
	return review, nil
}

// ListReviews получает все отзывы
func (s *BookingService) ListReviews(ctx context.Context) ([]model.Review, error) {
	return s.reviews.GetAll(ctx)
}

// GetReviewByAppointment получает отзыв к записи
func (s *BookingService) GetReviewByAppointment(ctx context.Context, appointmentID string) (*model.Review, error) {
	review, err := s.reviews.GetByAppointmentID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}
	return review, nil
}

// CancelStalePending отменяет неподтверждённые записи на уже прошедшие даты.
// Возвращает количество отменённых.
func (s *BookingService) CancelStalePending(ctx context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, err := s.appointments.GetByStatus(ctx, model.AppointmentStatusPending)
	if err != nil {
		return 0, fmt.Errorf("get pending appointments: %w", err)
	}

	// Формат YYYY-MM-DD сравнивается как строка
	today := model.FormatDate(now)
	cancelled := 0
	for _, appointment := range pending {
		if appointment.Date >= today {
			continue
		}
		if err := appointment.TransitionTo(model.AppointmentStatusCancelled); err != nil {
			return cancelled, err
		}
		if err := s.appointments.Update(ctx, appointment); err != nil {
			return cancelled, fmt.Errorf("cancel appointment %s: %w", appointment.ID, err)
		}
		cancelled++
	}

	if cancelled > 0 {
		s.logger.Info("Stale pending appointments cancelled",
			zap.Int("count", cancelled),
			zap.String("before", today),
		)
	}

	return cancelled, nil
}
