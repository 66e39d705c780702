package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/Freeeeeet/admin_bot/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ServiceInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Price    int    `json:"price" validate:"gte=0"`
	Duration int    `json:"duration" validate:"gt=0,lte=1440"`
}

type WorkingHoursInput struct {
	DayOfWeek int    `json:"dayOfWeek" validate:"gte=0,lte=6"`
	StartTime string `json:"startTime" validate:"required,clock"`
	EndTime   string `json:"endTime" validate:"required,clock"`
}

type StaffInput struct {
	Name               string              `json:"name" validate:"required,max=100"`
	MaxCustomersPerDay int                 `json:"maxCustomersPerDay" validate:"gt=0"`
	WorkingHours       []WorkingHoursInput `json:"workingHours" validate:"dive"`
	ServiceIDs         []string            `json:"services" validate:"unique,dive,required"`
}

// CatalogService услуги и сотрудники
type CatalogService struct {
	services *repository.ServiceRepository
	staff    *repository.StaffRepository
	logger   *zap.Logger
}

func NewCatalogService(
	services *repository.ServiceRepository,
	staff *repository.StaffRepository,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		services: services,
		staff:    staff,
		logger:   logger,
	}
}

// ListServices получает все услуги
func (s *CatalogService) ListServices(ctx context.Context) ([]model.Service, error) {
	return s.services.GetAll(ctx)
}

// GetService получает услугу по ID
func (s *CatalogService) GetService(ctx context.Context, id string) (*model.Service, error) {
	service, err := s.services.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}
	return service, nil
}

// FindServiceByName ищет услугу по названию без учёта регистра
func (s *CatalogService) FindServiceByName(ctx context.Context, name string) (*model.Service, error) {
	service, err := s.services.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get service by name: %w", err)
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}
	return service, nil
}

// CreateService создаёт услугу
func (s *CatalogService) CreateService(ctx context.Context, in ServiceInput) (*model.Service, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	service := model.Service{
		ID:       uuid.NewString(),
		Name:     in.Name,
		Price:    in.Price,
		Duration: in.Duration,
	}
	if err := s.services.Add(ctx, service); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	s.logger.Info("Service created",
		zap.String("service_id", service.ID),
		zap.String("name", service.Name),
		zap.Int("duration", service.Duration),
	)

	return &service, nil
}

// UpdateService обновляет услугу
func (s *CatalogService) UpdateService(ctx context.Context, id string, in ServiceInput) (*model.Service, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	service, err := s.GetService(ctx, id)
	if err != nil {
		return nil, err
	}

	service.Name = in.Name
	service.Price = in.Price
	service.Duration = in.Duration

	if err := s.services.Update(ctx, *service); err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}

	s.logger.Info("Service updated", zap.String("service_id", id))
	return service, nil
}

// DeleteService удаляет услугу и убирает её из списков сотрудников.
// Существующие записи на услугу остаются в истории.
func (s *CatalogService) DeleteService(ctx context.Context, id string) error {
	if _, err := s.GetService(ctx, id); err != nil {
		return err
	}

	if err := s.services.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete service: %w", err)
	}

	providers, err := s.staff.GetByServiceID(ctx, id)
	if err != nil {
		return fmt.Errorf("get staff by service: %w", err)
	}
	for _, member := range providers {
		kept := make([]string, 0, len(member.ServiceIDs))
		for _, serviceID := range member.ServiceIDs {
			if serviceID != id {
				kept = append(kept, serviceID)
			}
		}
		member.ServiceIDs = kept
		if err := s.staff.Update(ctx, member); err != nil {
			return fmt.Errorf("update staff %s: %w", member.ID, err)
		}
	}

	s.logger.Info("Service deleted",
		zap.String("service_id", id),
		zap.Int("staff_updated", len(providers)),
	)
	return nil
}

// ListStaff получает всех сотрудников
func (s *CatalogService) ListStaff(ctx context.Context) ([]model.Staff, error) {
	return s.staff.GetAll(ctx)
}

// GetStaff получает сотрудника по ID
func (s *CatalogService) GetStaff(ctx context.Context, id string) (*model.Staff, error) {
	member, err := s.staff.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get staff: %w", err)
	}
	if member == nil {
		return nil, ErrStaffNotFound
	}
	return member, nil
}

// StaffForService сотрудники, оказывающие услугу
func (s *CatalogService) StaffForService(ctx context.Context, serviceID string) ([]model.Staff, error) {
	return s.staff.GetByServiceID(ctx, serviceID)
}

// CreateStaff создаёт сотрудника
func (s *CatalogService) CreateStaff(ctx context.Context, in StaffInput) (*model.Staff, error) {
	hours, err := s.checkStaff(ctx, &in)
	if err != nil {
		return nil, err
	}

	member := model.Staff{
		ID:                 uuid.NewString(),
		Name:               in.Name,
		MaxCustomersPerDay: in.MaxCustomersPerDay,
		WorkingHours:       hours,
		ServiceIDs:         in.ServiceIDs,
	}
	if err := s.staff.Add(ctx, member); err != nil {
		return nil, fmt.Errorf("create staff: %w", err)
	}

	s.logger.Info("Staff created",
		zap.String("staff_id", member.ID),
		zap.String("name", member.Name),
		zap.Int("working_days", len(hours)),
	)

	return &member, nil
}

// UpdateStaff обновляет сотрудника
func (s *CatalogService) UpdateStaff(ctx context.Context, id string, in StaffInput) (*model.Staff, error) {
	hours, err := s.checkStaff(ctx, &in)
	if err != nil {
		return nil, err
	}

	member, err := s.GetStaff(ctx, id)
	if err != nil {
		return nil, err
	}

	member.Name = in.Name
	member.MaxCustomersPerDay = in.MaxCustomersPerDay
	member.WorkingHours = hours
	member.ServiceIDs = in.ServiceIDs

	if err := s.staff.Update(ctx, *member); err != nil {
		return nil, fmt.Errorf("update staff: %w", err)
	}

	s.logger.Info("Staff updated", zap.String("staff_id", id))
	return member, nil
}

// DeleteStaff удаляет сотрудника. Записи к нему остаются в истории.
func (s *CatalogService) DeleteStaff(ctx context.Context, id string) error {
	if _, err := s.GetStaff(ctx, id); err != nil {
		return err
	}

	if err := s.staff.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete staff: %w", err)
	}

	s.logger.Info("Staff deleted", zap.String("staff_id", id))
	return nil
}

// checkStaff проверяет ввод сотрудника и возвращает рабочие часы для хранения
func (s *CatalogService) checkStaff(ctx context.Context, in *StaffInput) ([]model.WorkingHours, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(*in); err != nil {
		return nil, err
	}

	seen := make(map[int]bool, len(in.WorkingHours))
	hours := make([]model.WorkingHours, 0, len(in.WorkingHours))
	for _, wh := range in.WorkingHours {
		if seen[wh.DayOfWeek] {
			return nil, fmt.Errorf("day %d: %w", wh.DayOfWeek, ErrDuplicateWorkingDay)
		}
		seen[wh.DayOfWeek] = true

		// Формат уже проверен тегом clock
		start, _ := model.ParseClock(wh.StartTime)
		end, _ := model.ParseClock(wh.EndTime)
		if start >= end {
			return nil, fmt.Errorf("day %d %s-%s: %w", wh.DayOfWeek, wh.StartTime, wh.EndTime, ErrInvalidWorkingHours)
		}

		hours = append(hours, model.WorkingHours{
			DayOfWeek: wh.DayOfWeek,
			StartTime: wh.StartTime,
			EndTime:   wh.EndTime,
		})
	}

	if in.ServiceIDs == nil {
		in.ServiceIDs = []string{}
	}
	for _, serviceID := range in.ServiceIDs {
		service, err := s.services.Get(ctx, serviceID)
		if err != nil {
			return nil, fmt.Errorf("get service: %w", err)
		}
		if service == nil {
			return nil, fmt.Errorf("%s: %w", serviceID, ErrServiceNotFound)
		}
	}

	return hours, nil
}
