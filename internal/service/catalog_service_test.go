package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Freeeeeet/admin_bot/internal/repository"
	"github.com/Freeeeeet/admin_bot/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRepos() *repository.Repositories {
	return repository.New(storage.NewMemoryBackend())
}

func newTestCatalog(repos *repository.Repositories) *CatalogService {
	return NewCatalogService(repos.Services, repos.Staff, zap.NewNop())
}

func mondayToFriday(start, end string) []WorkingHoursInput {
	hours := make([]WorkingHoursInput, 0, 5)
	for day := 1; day <= 5; day++ {
		hours = append(hours, WorkingHoursInput{DayOfWeek: day, StartTime: start, EndTime: end})
	}
	return hours
}

func TestCatalogService_Services(t *testing.T) {
	ctx := context.Background()
	catalog := newTestCatalog(newTestRepos())

	created, err := catalog.CreateService(ctx, ServiceInput{Name: "  Haircut ", Price: 1500, Duration: 30})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Haircut", created.Name)

	found, err := catalog.FindServiceByName(ctx, "HAIRCUT")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	updated, err := catalog.UpdateService(ctx, created.ID, ServiceInput{Name: "Haircut", Price: 1700, Duration: 45})
	require.NoError(t, err)
	assert.Equal(t, 45, updated.Duration)

	got, err := catalog.GetService(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1700, got.Price)

	_, err = catalog.UpdateService(ctx, "missing", ServiceInput{Name: "X", Duration: 10})
	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogService_ServiceValidation(t *testing.T) {
	ctx := context.Background()
	catalog := newTestCatalog(newTestRepos())

	tests := []struct {
		name  string
		input ServiceInput
		field string
		tag   string
	}{
		{"empty name", ServiceInput{Name: "   ", Duration: 30}, "name", "required"},
		{"zero duration", ServiceInput{Name: "A", Duration: 0}, "duration", "gt"},
		{"negative price", ServiceInput{Name: "A", Price: -1, Duration: 30}, "price", "gte"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.CreateService(ctx, tt.input)
			require.ErrorIs(t, err, ErrInvalidInput)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.tag, verr.Tag)
		})
	}
}

func TestCatalogService_Staff(t *testing.T) {
	ctx := context.Background()
	catalog := newTestCatalog(newTestRepos())

	haircut, err := catalog.CreateService(ctx, ServiceInput{Name: "Haircut", Duration: 30})
	require.NoError(t, err)

	member, err := catalog.CreateStaff(ctx, StaffInput{
		Name:               "Anna",
		MaxCustomersPerDay: 8,
		WorkingHours:       mondayToFriday("09:00", "17:00"),
		ServiceIDs:         []string{haircut.ID},
	})
	require.NoError(t, err)
	require.Len(t, member.WorkingHours, 5)

	providers, err := catalog.StaffForService(ctx, haircut.ID)
	require.NoError(t, err)
	require.Len(t, providers, 1)
	assert.Equal(t, member.ID, providers[0].ID)

	updated, err := catalog.UpdateStaff(ctx, member.ID, StaffInput{
		Name:               "Anna K.",
		MaxCustomersPerDay: 4,
		WorkingHours:       []WorkingHoursInput{{DayOfWeek: 6, StartTime: "10:00", EndTime: "14:00"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Anna K.", updated.Name)
	assert.Empty(t, updated.ServiceIDs)

	require.NoError(t, catalog.DeleteStaff(ctx, member.ID))
	_, err = catalog.GetStaff(ctx, member.ID)
	assert.ErrorIs(t, err, ErrStaffNotFound)
	assert.ErrorIs(t, catalog.DeleteStaff(ctx, member.ID), ErrStaffNotFound)
}

func TestCatalogService_StaffInputRules(t *testing.T) {
	ctx := context.Background()
	catalog := newTestCatalog(newTestRepos())

	tests := []struct {
		name  string
		input StaffInput
		want  error
	}{
		{
			name: "duplicate day",
			input: StaffInput{Name: "A", MaxCustomersPerDay: 1, WorkingHours: []WorkingHoursInput{
				{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
				{DayOfWeek: 1, StartTime: "13:00", EndTime: "17:00"},
			}},
			want: ErrDuplicateWorkingDay,
		},
		{
			name: "start after end",
			input: StaffInput{Name: "A", MaxCustomersPerDay: 1, WorkingHours: []WorkingHoursInput{
				{DayOfWeek: 1, StartTime: "17:00", EndTime: "09:00"},
			}},
			want: ErrInvalidWorkingHours,
		},
		{
			name:  "unknown service",
			input: StaffInput{Name: "A", MaxCustomersPerDay: 1, ServiceIDs: []string{"nope"}},
			want:  ErrServiceNotFound,
		},
		{
			name: "bad clock",
			input: StaffInput{Name: "A", MaxCustomersPerDay: 1, WorkingHours: []WorkingHoursInput{
				{DayOfWeek: 1, StartTime: "9:00", EndTime: "17:00"},
			}},
			want: ErrInvalidInput,
		},
		{
			name: "day out of range",
			input: StaffInput{Name: "A", MaxCustomersPerDay: 1, WorkingHours: []WorkingHoursInput{
				{DayOfWeek: 7, StartTime: "09:00", EndTime: "17:00"},
			}},
			want: ErrInvalidInput,
		},
		{
			name:  "zero capacity",
			input: StaffInput{Name: "A", MaxCustomersPerDay: 0},
			want:  ErrInvalidInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.CreateStaff(ctx, tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	all, err := catalog.ListStaff(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCatalogService_NestedFieldPath(t *testing.T) {
	_, err := newTestCatalog(newTestRepos()).CreateStaff(context.Background(), StaffInput{
		Name:               "A",
		MaxCustomersPerDay: 1,
		WorkingHours: []WorkingHoursInput{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"},
			{DayOfWeek: 2, StartTime: "09:00", EndTime: "25:00"},
		},
	})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "workingHours[1].endTime", verr.Field)
	assert.Equal(t, "clock", verr.Tag)
}

func TestCatalogService_DeleteServiceDetachesStaff(t *testing.T) {
	ctx := context.Background()
	catalog := newTestCatalog(newTestRepos())

	a, err := catalog.CreateService(ctx, ServiceInput{Name: "A", Duration: 30})
	require.NoError(t, err)
	b, err := catalog.CreateService(ctx, ServiceInput{Name: "B", Duration: 30})
	require.NoError(t, err)

	member, err := catalog.CreateStaff(ctx, StaffInput{
		Name:               "Anna",
		MaxCustomersPerDay: 1,
		ServiceIDs:         []string{a.ID, b.ID},
	})
	require.NoError(t, err)

	require.NoError(t, catalog.DeleteService(ctx, a.ID))

	got, err := catalog.GetStaff(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{b.ID}, got.ServiceIDs)

	assert.ErrorIs(t, catalog.DeleteService(ctx, a.ID), ErrServiceNotFound)
}
