package state

import (
	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/callbacktypes"
)

// Adapter даёт обработчикам кнопок доступ к тому же Manager, что и у команд.
// state импортирует callbacktypes, обратный импорт дал бы цикл.
type Adapter struct {
	sm *Manager
}

func NewAdapter(sm *Manager) *Adapter {
	return &Adapter{sm: sm}
}

func (a *Adapter) GetState(telegramID int64) callbacktypes.UserState {
	return callbacktypes.UserState(a.sm.GetState(telegramID))
}

func (a *Adapter) SetState(telegramID int64, state callbacktypes.UserState) {
	a.sm.SetState(telegramID, UserState(state))
}

func (a *Adapter) Begin(telegramID int64, state callbacktypes.UserState, data map[string]interface{}) {
	a.sm.Begin(telegramID, UserState(state), data)
}

func (a *Adapter) GetData(telegramID int64, key string) (interface{}, bool) {
	return a.sm.GetData(telegramID, key)
}

func (a *Adapter) SetData(telegramID int64, key string, value interface{}) {
	a.sm.SetData(telegramID, key, value)
}

func (a *Adapter) ClearState(telegramID int64) {
	a.sm.ClearState(telegramID)
}
