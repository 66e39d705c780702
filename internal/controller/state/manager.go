package state

import (
	"sync"
)

// Manager хранит шаг диалога и собранные данные каждого пользователя в памяти.
// После рестарта бота незавершённые диалоги теряются.
type Manager struct {
	mu     sync.RWMutex
	states map[int64]*UserData // telegramID -> UserData
}

func NewManager() *Manager {
	return &Manager{
		states: make(map[int64]*UserData),
	}
}

// GetState текущий шаг диалога, StateNone если диалога нет
func (sm *Manager) GetState(telegramID int64) UserState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if userData, exists := sm.states[telegramID]; exists {
		return userData.State
	}
	return StateNone
}

// SetState переводит диалог на шаг state, данные сохраняются.
// StateNone завершает диалог.
func (sm *Manager) SetState(telegramID int64, state UserState) {
	if state == StateNone {
		sm.ClearState(telegramID)
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.entry(telegramID).State = state
}

// GetData значение, собранное на одном из шагов
func (sm *Manager) GetData(telegramID int64, key string) (interface{}, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	userData, exists := sm.states[telegramID]
	if !exists {
		return nil, false
	}
	value, ok := userData.Data[key]
	return value, ok
}

func (sm *Manager) SetData(telegramID int64, key string, value interface{}) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.entry(telegramID).Data[key] = value
}

// ClearState завершает диалог и удаляет данные
func (sm *Manager) ClearState(telegramID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.states, telegramID)
}

func (sm *Manager) GetString(telegramID int64, key string) (string, bool) {
	value, ok := sm.GetData(telegramID, key)
	if !ok {
		return "", false
	}
	str, ok := value.(string)
	return str, ok
}

func (sm *Manager) GetInt(telegramID int64, key string) (int, bool) {
	value, ok := sm.GetData(telegramID, key)
	if !ok {
		return 0, false
	}
	n, ok := value.(int)
	return n, ok
}

// Begin начинает новый диалог: старые данные сбрасываются
func (sm *Manager) Begin(telegramID int64, state UserState, data map[string]interface{}) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	userData := &UserData{
		State: state,
		Data:  make(map[string]interface{}, len(data)),
	}
	for k, v := range data {
		userData.Data[k] = v
	}
	sm.states[telegramID] = userData
}

// entry возвращает запись пользователя, создавая пустую. Вызывать под mu.
func (sm *Manager) entry(telegramID int64) *UserData {
	userData, exists := sm.states[telegramID]
	if !exists {
		userData = &UserData{
			State: StateNone,
			Data:  make(map[string]interface{}),
		}
		sm.states[telegramID] = userData
	}
	return userData
}
