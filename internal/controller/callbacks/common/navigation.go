package common

import (
	"context"

	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/callbacktypes"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleCancelDialog прерывает текущий диалог по кнопке "Отмена"
func HandleCancelDialog(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	WithContext(ctx, b, callback, h, func(hc *HandlerContext) {
		hc.ClearState()

		if err := hc.EditMessage("❌ Действие отменено", nil); err != nil {
			h.Logger.Debug("Failed to edit cancelled dialog", zap.Error(err))
		}
		hc.Answer("Отменено")
	})
}
