package state

import (
	"testing"

	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/callbacktypes"
	"github.com/stretchr/testify/assert"
)

func TestManager_Dialog(t *testing.T) {
	sm := NewManager()
	const user = int64(42)

	assert.Equal(t, StateNone, sm.GetState(user))

	sm.Begin(user, StateBookingDate, map[string]interface{}{KeyServiceID: "s1", KeyStaffID: "st1"})
	assert.Equal(t, StateBookingDate, sm.GetState(user))

	serviceID, ok := sm.GetString(user, KeyServiceID)
	assert.True(t, ok)
	assert.Equal(t, "s1", serviceID)

	sm.SetData(user, KeyRating, 5)
	rating, ok := sm.GetInt(user, KeyRating)
	assert.True(t, ok)
	assert.Equal(t, 5, rating)

	_, ok = sm.GetInt(user, KeyServiceID)
	assert.False(t, ok)

	// Новый диалог не наследует старые данные
	sm.Begin(user, StateReviewRating, nil)
	_, ok = sm.GetString(user, KeyServiceID)
	assert.False(t, ok)

	sm.SetState(user, StateNone)
	assert.Equal(t, StateNone, sm.GetState(user))
	_, ok = sm.GetData(user, KeyAppointmentID)
	assert.False(t, ok)
}

func TestAdapter_SharesManager(t *testing.T) {
	sm := NewManager()
	var adapter callbacktypes.StateManager = NewAdapter(sm)

	adapter.Begin(7, callbacktypes.UserState(StateReviewRating), map[string]interface{}{KeyAppointmentID: "a1"})
	assert.Equal(t, StateReviewRating, sm.GetState(7))

	id, ok := sm.GetString(7, KeyAppointmentID)
	assert.True(t, ok)
	assert.Equal(t, "a1", id)

	adapter.ClearState(7)
	assert.Equal(t, StateNone, sm.GetState(7))
}
