package handlers

import (
	"time"

	"github.com/Freeeeeet/admin_bot/internal/controller/state"
	"github.com/Freeeeeet/admin_bot/internal/service"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	catalogService      *service.CatalogService
	bookingService      *service.BookingService
	questionBankService *service.QuestionBankService
	courseService       *service.CourseService
	studyService        *service.StudyService
	stateManager        *state.Manager
	isAdmin             func(telegramID int64) bool
	now                 func() time.Time
	logger              *zap.Logger
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(
	catalogService *service.CatalogService,
	bookingService *service.BookingService,
	questionBankService *service.QuestionBankService,
	courseService *service.CourseService,
	studyService *service.StudyService,
	stateManager *state.Manager,
	isAdmin func(telegramID int64) bool,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		catalogService:      catalogService,
		bookingService:      bookingService,
		questionBankService: questionBankService,
		courseService:       courseService,
		studyService:        studyService,
		stateManager:        stateManager,
		isAdmin:             isAdmin,
		now:                 time.Now,
		logger:              logger,
	}
}
