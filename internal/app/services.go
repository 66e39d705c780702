package app

import (
	"context"

	"github.com/Freeeeeet/admin_bot/internal/config"
	"github.com/Freeeeeet/admin_bot/internal/examgen"
	"github.com/Freeeeeet/admin_bot/internal/repository"
	"github.com/Freeeeeet/admin_bot/internal/service"
	"github.com/Freeeeeet/admin_bot/internal/storage"
	"go.uber.org/zap"
)

// Services сервисы поверх одного хранилища, общие для бота и API
type Services struct {
	Catalog      *service.CatalogService
	Booking      *service.BookingService
	QuestionBank *service.QuestionBankService
	Courses      *service.CourseService
	Study        *service.StudyService

	backend storage.Backend
	logger  *zap.Logger
}

// NewServices открывает хранилище и собирает сервисы
func NewServices(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Services, error) {
	backend, err := OpenBackend(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	return NewServicesWithBackend(backend, logger), nil
}

// NewServicesWithBackend собирает сервисы над готовым хранилищем
func NewServicesWithBackend(backend storage.Backend, logger *zap.Logger) *Services {
	repos := repository.New(backend)

	return &Services{
		Catalog:      service.NewCatalogService(repos.Services, repos.Staff, logger),
		Booking:      service.NewBookingService(repos.Services, repos.Staff, repos.Appointments, repos.Reviews, logger),
		QuestionBank: service.NewQuestionBankService(repos.Subjects, repos.Questions, repos.Exams, examgen.NewDefault(), logger),
		Courses:      service.NewCourseService(repos.Instructors, repos.Courses, logger),
		Study:        service.NewStudyService(repos.StudySubjects, repos.StudySessions, repos.StudyGoals, logger),
		backend:      backend,
		logger:       logger,
	}
}

// Close закрывает хранилище
func (s *Services) Close() {
	if err := s.backend.Close(); err != nil {
		s.logger.Error("Failed to close storage", zap.Error(err))
	}
}
