package callbacks

import (
	"context"

	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/admin_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Handler обертка для callbacktypes.Handler с методами
type Handler struct {
	*callbacktypes.Handler
}

// NewHandler создаёт новый обработчик callbacks с зависимостями
func NewHandler(
	catalogService *service.CatalogService,
	bookingService *service.BookingService,
	questionBankService *service.QuestionBankService,
	courseService *service.CourseService,
	studyService *service.StudyService,
	stateManager callbacktypes.StateManager,
	isAdmin func(telegramID int64) bool,
	logger *zap.Logger,
) *Handler {
	inner := &callbacktypes.Handler{
		CatalogService:      catalogService,
		BookingService:      bookingService,
		QuestionBankService: questionBankService,
		CourseService:       courseService,
		StudyService:        studyService,
		StateManager:        stateManager,
		Logger:              logger,
		IsAdmin:             isAdmin,
	}
	return &Handler{Handler: inner}
}

// HandleCallbackQuery - главный обработчик callback queries
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}

	callback := update.CallbackQuery

	h.Logger.Info("Callback received",
		zap.String("data", callback.Data),
		zap.Int64("user_id", callback.From.ID),
	)

	Route(ctx, b, callback, h.Handler)
}
