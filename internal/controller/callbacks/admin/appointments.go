package admin

import (
	"context"

	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/admin_bot/internal/controller/state"
	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/Freeeeeet/admin_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type transitionFunc func(ctx context.Context, id string) (*model.Appointment, error)

// HandleConfirm pending -> confirmed
func HandleConfirm(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	transition(ctx, b, callback, h, h.BookingService.ConfirmAppointment, "✅ Запись подтверждена")
}

// HandleComplete confirmed -> completed
func HandleComplete(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	transition(ctx, b, callback, h, h.BookingService.CompleteAppointment, "✔️ Запись завершена")
}

// HandleCancel pending/confirmed -> cancelled
func HandleCancel(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	transition(ctx, b, callback, h, h.BookingService.CancelAppointment, "❌ Запись отменена")
}

func transition(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler,
	apply transitionFunc, answer string) {

	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		common.WithID(hc, func(id string) {
			appointment, err := apply(ctx, id)
			if err != nil {
				common.HandleError(hc, err, "appointment_transition")
				return
			}

			serviceName, staffName := common.AppointmentNames(ctx, h.CatalogService, *appointment)
			text, kb := common.BuildAppointmentScreen(*appointment, serviceName, staffName, false)
			if err := hc.EditMessage(text, kb); err != nil {
				h.Logger.Error("Failed to refresh appointment", zap.Error(err))
			}

			common.LogAndAnswer(hc, "Appointment status changed", answer,
				zap.String("appointment_id", appointment.ID),
				zap.String("status", string(appointment.Status)))
		})
	})
}

// HandleReview начинает ввод отзыва к завершённой записи
func HandleReview(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		common.WithID(hc, func(id string) {
			appointment, err := h.BookingService.GetAppointment(ctx, id)
			if err != nil {
				common.HandleError(hc, err, "get_appointment")
				return
			}
			if appointment.Status != model.AppointmentStatusCompleted {
				hc.AnswerAlert(common.ErrorMessage(service.ErrAppointmentNotCompleted))
				return
			}
			if _, err := h.BookingService.GetReviewByAppointment(ctx, id); err == nil {
				hc.AnswerAlert(common.ErrorMessage(service.ErrReviewExists))
				return
			}

			hc.Begin(callbacktypes.UserState(state.StateReviewRating), map[string]interface{}{
				state.KeyAppointmentID: id,
			})

			if err := hc.SendMessage("⭐ Оценка от 1 до 5:", keyboard.CancelKeyboard()); err != nil {
				h.Logger.Error("Failed to ask rating", zap.Error(err))
			}
			hc.Answer("")
		})
	})
}
