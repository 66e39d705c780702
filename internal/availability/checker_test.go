package availability

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	monday = "2025-01-06"
	sunday = "2025-01-05"
)

func testStaff(maxPerDay int) model.Staff {
	return model.Staff{
		ID:                 "staff-1",
		Name:               "Anna",
		MaxCustomersPerDay: maxPerDay,
		WorkingHours: []model.WorkingHours{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"},
		},
		ServiceIDs: []string{"svc-30", "svc-60"},
	}
}

func testServices() []model.Service {
	return []model.Service{
		{ID: "svc-30", Name: "Short", Duration: 30},
		{ID: "svc-60", Name: "Long", Duration: 60},
	}
}

func appointmentAt(id, date, clock, serviceID string, status model.AppointmentStatus) model.Appointment {
	return model.Appointment{
		ID:        id,
		StaffID:   "staff-1",
		ServiceID: serviceID,
		Date:      date,
		Time:      clock,
		Status:    status,
	}
}

func request(t *testing.T, date, clock, serviceID string) Request {
	t.Helper()
	d, err := model.ParseDate(date)
	require.NoError(t, err)
	c, err := model.ParseClock(clock)
	require.NoError(t, err)
	return Request{StaffID: "staff-1", ServiceID: serviceID, Date: d, Start: c}
}

func TestCheck_CapacityCheckedBeforeOverlap(t *testing.T) {
	staff := []model.Staff{testStaff(1)}
	existing := []model.Appointment{appointmentAt("a1", monday, "09:00", "svc-30", model.AppointmentStatusConfirmed)}

	err := Check(request(t, monday, "09:00", "svc-60"), staff, testServices(), existing)

	require.ErrorIs(t, err, ErrStaffFullyBooked)
	var rej *Rejection
	require.True(t, errors.As(err, &rej))
	assert.Equal(t, 1, rej.Limit)
	assert.Equal(t, "staff_fully_booked", rej.Code())
}

func TestCheck_TouchingBoundaryAccepted(t *testing.T) {
	staff := []model.Staff{testStaff(5)}
	existing := []model.Appointment{appointmentAt("a1", monday, "09:00", "svc-30", model.AppointmentStatusConfirmed)}

	err := Check(request(t, monday, "09:30", "svc-30"), staff, testServices(), existing)

	assert.NoError(t, err)
}

func TestCheck_OverlapRejected(t *testing.T) {
	staff := []model.Staff{testStaff(5)}
	existing := []model.Appointment{appointmentAt("a1", monday, "09:00", "svc-30", model.AppointmentStatusConfirmed)}

	err := Check(request(t, monday, "09:15", "svc-30"), staff, testServices(), existing)

	require.ErrorIs(t, err, ErrTimeConflict)
	var rej *Rejection
	require.True(t, errors.As(err, &rej))
	assert.Equal(t, "a1", rej.ConflictID)
	assert.Equal(t, "09:00", rej.ConflictStart)
	assert.Equal(t, "09:30", rej.ConflictEnd)
}

func TestCheck_NotWorkingThatDay(t *testing.T) {
	err := Check(request(t, sunday, "10:00", "svc-30"), []model.Staff{testStaff(5)}, testServices(), nil)

	assert.ErrorIs(t, err, ErrStaffNotWorkingThatDay)
}

func TestCheck_PipelineOrder(t *testing.T) {
	tests := []struct {
		name     string
		staff    []model.Staff
		services []model.Service
		req      Request
		want     error
	}{
		{
			name:     "unknown staff wins over unknown service",
			staff:    nil,
			services: nil,
			req:      request(t, monday, "10:00", "missing"),
			want:     ErrStaffNotFound,
		},
		{
			name:     "day checked before service",
			staff:    []model.Staff{testStaff(5)},
			services: nil,
			req:      request(t, sunday, "10:00", "missing"),
			want:     ErrStaffNotWorkingThatDay,
		},
		{
			name:     "hours checked before service",
			staff:    []model.Staff{testStaff(5)},
			services: nil,
			req:      request(t, monday, "08:59", "missing"),
			want:     ErrOutsideWorkingHours,
		},
		{
			name:     "service resolved last before overlap",
			staff:    []model.Staff{testStaff(5)},
			services: testServices(),
			req:      request(t, monday, "10:00", "missing"),
			want:     ErrServiceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.req, tt.staff, tt.services, nil)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCheck_WorkingHoursInclusive(t *testing.T) {
	staff := []model.Staff{testStaff(5)}

	assert.NoError(t, Check(request(t, monday, "09:00", "svc-30"), staff, testServices(), nil))
	assert.NoError(t, Check(request(t, monday, "17:00", "svc-30"), staff, testServices(), nil))

	err := Check(request(t, monday, "17:01", "svc-30"), staff, testServices(), nil)
	require.ErrorIs(t, err, ErrOutsideWorkingHours)
	var rej *Rejection
	require.True(t, errors.As(err, &rej))
	assert.Equal(t, "09:00", rej.WorkingFrom)
	assert.Equal(t, "17:00", rej.WorkingTo)
}

func TestCheck_InactiveStatusesIgnored(t *testing.T) {
	staff := []model.Staff{testStaff(1)}
	existing := []model.Appointment{
		appointmentAt("a1", monday, "09:00", "svc-30", model.AppointmentStatusCancelled),
		appointmentAt("a2", monday, "09:00", "svc-30", model.AppointmentStatusCompleted),
	}

	assert.NoError(t, Check(request(t, monday, "09:00", "svc-30"), staff, testServices(), existing))
}

func TestCheck_OtherStaffAndDatesIgnored(t *testing.T) {
	staff := []model.Staff{testStaff(1)}
	other := appointmentAt("a1", monday, "09:00", "svc-30", model.AppointmentStatusConfirmed)
	other.StaffID = "staff-2"
	existing := []model.Appointment{
		other,
		appointmentAt("a2", "2025-01-13", "09:00", "svc-30", model.AppointmentStatusPending),
	}

	assert.NoError(t, Check(request(t, monday, "09:00", "svc-30"), staff, testServices(), existing))
}

func TestCheck_EndingWhenExistingBeginsAccepted(t *testing.T) {
	staff := []model.Staff{testStaff(5)}
	existing := []model.Appointment{appointmentAt("a1", monday, "10:00", "svc-30", model.AppointmentStatusPending)}

	assert.NoError(t, Check(request(t, monday, "09:00", "svc-60"), staff, testServices(), existing))
	assert.ErrorIs(t, Check(request(t, monday, "09:01", "svc-60"), staff, testServices(), existing), ErrTimeConflict)
}

func TestCheck_CandidateContainsExisting(t *testing.T) {
	staff := []model.Staff{testStaff(5)}
	existing := []model.Appointment{appointmentAt("a1", monday, "10:15", "svc-30", model.AppointmentStatusPending)}

	err := Check(request(t, monday, "10:00", "svc-60"), staff, testServices(), existing)

	assert.ErrorIs(t, err, ErrTimeConflict)
}

func TestCheck_ExistingWithUnknownServiceSkipped(t *testing.T) {
	staff := []model.Staff{testStaff(5)}
	existing := []model.Appointment{appointmentAt("a1", monday, "09:00", "deleted", model.AppointmentStatusConfirmed)}

	assert.NoError(t, Check(request(t, monday, "09:00", "svc-30"), staff, testServices(), existing))
}

func TestCheck_DuplicateDayEntryUsesFirst(t *testing.T) {
	s := testStaff(5)
	s.WorkingHours = append(s.WorkingHours, model.WorkingHours{DayOfWeek: 1, StartTime: "18:00", EndTime: "20:00"})

	err := Check(request(t, monday, "19:00", "svc-30"), []model.Staff{s}, testServices(), nil)

	assert.ErrorIs(t, err, ErrOutsideWorkingHours)
}

func TestOverlaps(t *testing.T) {
	assert.False(t, Overlaps(0, 30, 30, 60))
	assert.False(t, Overlaps(30, 60, 0, 30))
	assert.True(t, Overlaps(0, 31, 30, 60))
	assert.True(t, Overlaps(10, 20, 0, 60))
	assert.True(t, Overlaps(0, 60, 10, 20))
}

// Случайные заявки принимаются по одной, принятые добавляются в снимок.
// Итоговое расписание не должно нарушать ни одного свойства.
func TestCheck_AcceptedScheduleInvariants(t *testing.T) {
	rnd := rand.New(rand.NewPCG(7, 11))
	services := testServices()
	staff := []model.Staff{
		testStaff(6),
		{
			ID:                 "staff-2",
			MaxCustomersPerDay: 3,
			WorkingHours: []model.WorkingHours{
				{DayOfWeek: 1, StartTime: "12:00", EndTime: "15:00"},
				{DayOfWeek: 2, StartTime: "08:00", EndTime: "10:00"},
			},
		},
	}
	dates := []string{monday, "2025-01-07", sunday}
	statuses := []model.AppointmentStatus{
		model.AppointmentStatusPending,
		model.AppointmentStatusConfirmed,
	}

	var accepted []model.Appointment
	for i := 0; i < 500; i++ {
		member := staff[rnd.IntN(len(staff))]
		date := dates[rnd.IntN(len(dates))]
		clock := model.Clock(7*60 + rnd.IntN(12*60))
		svc := services[rnd.IntN(len(services))]

		d, err := model.ParseDate(date)
		require.NoError(t, err)
		req := Request{StaffID: member.ID, ServiceID: svc.ID, Date: d, Start: clock}
		if Check(req, staff, services, accepted) != nil {
			continue
		}

		accepted = append(accepted, model.Appointment{
			ID:        fmt.Sprintf("a%d", i),
			StaffID:   member.ID,
			ServiceID: svc.ID,
			Date:      date,
			Time:      clock.String(),
			Status:    statuses[rnd.IntN(len(statuses))],
		})
	}
	require.NotEmpty(t, accepted)

	duration := map[string]int{}
	for _, s := range services {
		duration[s.ID] = s.Duration
	}

	perDay := map[string]int{}
	for i, a := range accepted {
		perDay[a.StaffID+a.Date]++

		member := findStaff(staff, a.StaffID)
		d, _ := model.ParseDate(a.Date)
		hours, ok := member.HoursFor(int(d.Weekday()))
		require.True(t, ok, "P3: working day for %s", a.ID)
		start, _ := model.ParseClock(a.Time)
		assert.True(t, withinHours(start, hours), "P3: %s at %s", a.ID, a.Time)

		for _, b := range accepted[i+1:] {
			if a.StaffID != b.StaffID || a.Date != b.Date {
				continue
			}
			bs, _ := model.ParseClock(b.Time)
			assert.False(t,
				Overlaps(start, start.Add(duration[a.ServiceID]), bs, bs.Add(duration[b.ServiceID])),
				"P1: %s and %s overlap", a.ID, b.ID)
		}
	}

	for _, member := range staff {
		for _, date := range dates {
			assert.LessOrEqual(t, perDay[member.ID+date], member.MaxCustomersPerDay, "P2: %s %s", member.ID, date)
		}
	}
}
