package handlers

import (
	"context"
	"testing"

	"github.com/Freeeeeet/admin_bot/internal/controller/state"
	"github.com/Freeeeeet/admin_bot/internal/examgen"
	"github.com/Freeeeeet/admin_bot/internal/repository"
	"github.com/Freeeeeet/admin_bot/internal/service"
	"github.com/Freeeeeet/admin_bot/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	h         *Handlers
	serviceID string
	staffID   string
}

// newFixture услуга на 45 минут и сотрудник Пн-Пт 09:00-18:00
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	repos := repository.New(storage.NewMemoryBackend())
	logger := zap.NewNop()
	catalog := service.NewCatalogService(repos.Services, repos.Staff, logger)
	booking := service.NewBookingService(repos.Services, repos.Staff, repos.Appointments, repos.Reviews, logger)
	bank := service.NewQuestionBankService(repos.Subjects, repos.Questions, repos.Exams, examgen.NewDefault(), logger)

	svc, err := catalog.CreateService(ctx, service.ServiceInput{Name: "Стрижка", Price: 150000, Duration: 45})
	require.NoError(t, err)

	hours, err := parseWorkingHours("Пн-Пт 09:00-18:00")
	require.NoError(t, err)
	member, err := catalog.CreateStaff(ctx, service.StaffInput{
		Name:               "Анна",
		MaxCustomersPerDay: 5,
		WorkingHours:       hours,
		ServiceIDs:         []string{svc.ID},
	})
	require.NoError(t, err)

	courses := service.NewCourseService(repos.Instructors, repos.Courses, logger)
	study := service.NewStudyService(repos.StudySubjects, repos.StudySessions, repos.StudyGoals, logger)

	h := NewHandlers(catalog, booking, bank, courses, study, state.NewManager(), func(int64) bool { return true }, logger)
	return &fixture{h: h, serviceID: svc.ID, staffID: member.ID}
}

func (f *fixture) book(t *testing.T, date, clock string) string {
	t.Helper()
	a, err := f.h.bookingService.CreateAppointment(context.Background(), service.AppointmentInput{
		CustomerName:  "Иван",
		CustomerPhone: "+79000000000",
		ServiceID:     f.serviceID,
		StaffID:       f.staffID,
		Date:          date,
		Time:          clock,
	})
	require.NoError(t, err)
	return a.ID
}

func TestDayHint(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.book(t, "2025-01-06", "14:00")
	f.book(t, "2025-01-06", "10:00")
	cancelled := f.book(t, "2025-01-06", "12:00")
	_, err := f.h.bookingService.CancelAppointment(ctx, cancelled)
	require.NoError(t, err)

	hint := f.h.dayHint(ctx, f.staffID, "2025-01-06")
	assert.Contains(t, hint, "Рабочие часы: 09:00-18:00")
	assert.Contains(t, hint, "Занято: 10:00-10:45, 14:00-14:45")
	assert.NotContains(t, hint, "12:00")

	// 2025-01-05 воскресенье
	assert.Contains(t, f.h.dayHint(ctx, f.staffID, "2025-01-05"), "не работает")
	assert.Empty(t, f.h.dayHint(ctx, "missing", "2025-01-06"))
}

func TestActiveAppointments(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	late := f.book(t, "2025-01-07", "09:00")
	early := f.book(t, "2025-01-06", "15:00")
	earliest := f.book(t, "2025-01-06", "09:30")
	done := f.book(t, "2025-01-06", "11:00")
	_, err := f.h.bookingService.ConfirmAppointment(ctx, done)
	require.NoError(t, err)
	_, err = f.h.bookingService.CompleteAppointment(ctx, done)
	require.NoError(t, err)

	active, err := f.h.activeAppointments(ctx)
	require.NoError(t, err)

	ids := make([]string, 0, len(active))
	for _, a := range active {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{earliest, early, late}, ids)
}
