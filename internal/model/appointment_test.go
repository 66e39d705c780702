package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to AppointmentStatus
		want     bool
	}{
		{AppointmentStatusPending, AppointmentStatusConfirmed, true},
		{AppointmentStatusPending, AppointmentStatusCancelled, true},
		{AppointmentStatusPending, AppointmentStatusCompleted, false},
		{AppointmentStatusConfirmed, AppointmentStatusCompleted, true},
		{AppointmentStatusConfirmed, AppointmentStatusCancelled, true},
		{AppointmentStatusConfirmed, AppointmentStatusPending, false},
		{AppointmentStatusCompleted, AppointmentStatusCancelled, false},
		{AppointmentStatusCompleted, AppointmentStatusPending, false},
		{AppointmentStatusCancelled, AppointmentStatusPending, false},
		{AppointmentStatusCancelled, AppointmentStatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestAppointmentStatus_IsTerminal(t *testing.T) {
	assert.False(t, AppointmentStatusPending.IsTerminal())
	assert.False(t, AppointmentStatusConfirmed.IsTerminal())
	assert.True(t, AppointmentStatusCompleted.IsTerminal())
	assert.True(t, AppointmentStatusCancelled.IsTerminal())
}

func TestAppointment_TransitionTo(t *testing.T) {
	a := &Appointment{Status: AppointmentStatusPending}

	require.NoError(t, a.TransitionTo(AppointmentStatusConfirmed))
	require.NoError(t, a.TransitionTo(AppointmentStatusCompleted))

	err := a.TransitionTo(AppointmentStatusCancelled)
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, AppointmentStatusCompleted, a.Status)
}

func TestStaff_HoursForTakesFirstEntry(t *testing.T) {
	s := Staff{WorkingHours: []WorkingHours{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
		{DayOfWeek: 1, StartTime: "13:00", EndTime: "18:00"},
	}}

	wh, ok := s.HoursFor(1)
	require.True(t, ok)
	assert.Equal(t, "09:00", wh.StartTime)

	_, ok = s.HoursFor(0)
	assert.False(t, ok)
}

func TestSubject_HasKnowledgeBlock(t *testing.T) {
	open := Subject{}
	assert.True(t, open.HasKnowledgeBlock("anything"))

	closed := Subject{KnowledgeBlocks: []string{"A", "B"}}
	assert.True(t, closed.HasKnowledgeBlock("B"))
	assert.False(t, closed.HasKnowledgeBlock("C"))
}
