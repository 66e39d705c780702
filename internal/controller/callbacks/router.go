package callbacks

import (
	"context"
	"strings"

	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/admin"
	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/booking"
	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/common/keyboard"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// callbackFunc сигнатура обработчика callback
type callbackFunc func(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler)

// prefixRoutes маршруты по префиксу callback data (см. keyboard для форматов)
var prefixRoutes = []struct {
	prefix  string
	handler callbackFunc
}{
	// Запись клиента
	{keyboard.BookService, booking.HandleSelectService},
	{keyboard.BookStaff, booking.HandleSelectStaff},

	// Управление записями
	{keyboard.ApptConfirm, admin.HandleConfirm},
	{keyboard.ApptComplete, admin.HandleComplete},
	{keyboard.ApptCancel, admin.HandleCancel},
	{keyboard.ApptReview, admin.HandleReview},

	// Каталог
	{keyboard.ServiceDelete, admin.HandleDeleteService},
	{keyboard.StaffDelete, admin.HandleDeleteStaff},

	// Экзамены
	{keyboard.ExamView, admin.HandleViewExam},
	{keyboard.ExamDelete, admin.HandleDeleteExam},

	// Курсы и дневник занятий
	{keyboard.CourseDelete, admin.HandleDeleteCourse},
	{keyboard.StudySubjectDelete, admin.HandleDeleteStudySubject},
}

// Route маршрутизирует callback query к соответствующему обработчику
func Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	data := callback.Data

	if data == keyboard.CancelDialog {
		common.HandleCancelDialog(ctx, b, callback, h)
		return
	}

	if handler := match(data); handler != nil {
		handler(ctx, b, callback, h)
		return
	}

	h.Logger.Warn("Unknown callback", zap.String("data", data))
	common.AnswerCallback(ctx, b, callback.ID, "❓ Неизвестное действие")
}

func match(data string) callbackFunc {
	for _, route := range prefixRoutes {
		if strings.HasPrefix(data, route.prefix) {
			return route.handler
		}
	}
	return nil
}
