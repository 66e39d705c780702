package callbacktypes

import (
	"github.com/Freeeeeet/admin_bot/internal/service"
	"go.uber.org/zap"
)

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

// StateManager интерфейс для управления состоянием пользователей
type StateManager interface {
	ClearState(telegramID int64)
	GetState(telegramID int64) UserState
	SetState(telegramID int64, state UserState)
	Begin(telegramID int64, state UserState, data map[string]interface{})
	SetData(telegramID int64, key string, value interface{})
	GetData(telegramID int64, key string) (interface{}, bool)
}

// Handler содержит общие зависимости для всех callback handlers
type Handler struct {
	CatalogService      *service.CatalogService
	BookingService      *service.BookingService
	QuestionBankService *service.QuestionBankService
	CourseService       *service.CourseService
	StudyService        *service.StudyService
	StateManager        StateManager
	Logger              *zap.Logger

	// IsAdmin проверяет Telegram ID администратора
	IsAdmin func(telegramID int64) bool
}
