package booking

import (
	"context"
	"fmt"
	"html"

	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/admin_bot/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const staleDialogMessage = "⏳ Диалог устарел, начните заново: /book"

// DatePrompt подсказка к вводу даты записи
const DatePrompt = "📅 Введите дату в формате ГГГГ-ММ-ДД или ДД.ММ\nМожно написать «сегодня» или «завтра»"

// HandleSelectService показывает сотрудников, которые оказывают выбранную услугу
func HandleSelectService(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		common.WithID(hc, func(serviceID string) {
			svc, err := h.CatalogService.GetService(ctx, serviceID)
			if err != nil {
				common.HandleError(hc, err, "get_service")
				return
			}

			staff, err := h.CatalogService.StaffForService(ctx, serviceID)
			if err != nil {
				common.HandleError(hc, err, "staff_for_service")
				return
			}
			if len(staff) == 0 {
				hc.AnswerAlert("😔 Эту услугу сейчас никто не оказывает")
				return
			}

			hc.Begin(callbacktypes.UserState(state.StateBookingStaff), map[string]interface{}{
				state.KeyServiceID: serviceID,
			})

			text := fmt.Sprintf("💇 <b>%s</b> · %s · %s\n\nВыберите сотрудника:",
				html.EscapeString(svc.Name), formatting.FormatPrice(svc.Price), formatting.FormatDuration(svc.Duration))
			if err := hc.EditMessage(text, keyboard.StaffChoice(staff)); err != nil {
				h.Logger.Error("Failed to show staff choice", zap.Error(err))
			}
			hc.Answer("")
		})
	})
}

// HandleSelectStaff запоминает сотрудника и переходит к вводу даты
func HandleSelectStaff(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		common.WithID(hc, func(staffID string) {
			serviceID, ok := hc.GetString(state.KeyServiceID)
			if !ok || hc.State() != callbacktypes.UserState(state.StateBookingStaff) {
				hc.AnswerAlert(staleDialogMessage)
				return
			}

			member, err := h.CatalogService.GetStaff(ctx, staffID)
			if err != nil {
				common.HandleError(hc, err, "get_staff")
				return
			}
			if !member.Provides(serviceID) {
				hc.AnswerAlert("😔 Сотрудник больше не оказывает эту услугу")
				return
			}

			hc.SetData(state.KeyStaffID, staffID)
			hc.SetState(callbacktypes.UserState(state.StateBookingDate))

			text := fmt.Sprintf("👤 <b>%s</b>\nГрафик: %s\n\n%s",
				html.EscapeString(member.Name), formatting.FormatWorkingHours(member.WorkingHours), DatePrompt)
			if err := hc.EditMessage(text, keyboard.CancelKeyboard()); err != nil {
				h.Logger.Error("Failed to ask booking date", zap.Error(err))
			}
			hc.Answer("")
		})
	})
}
