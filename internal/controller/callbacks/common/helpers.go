package common

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Helper functions для всех callback handlers

// AnswerCallback отвечает на callback query (без alert)
func AnswerCallback(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
}

// AnswerCallbackAlert отвечает на callback query с alert (всплывающее окно)
func AnswerCallbackAlert(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       true,
	})
}

// GetMessageFromCallback извлекает сообщение из callback query
func GetMessageFromCallback(callback *models.CallbackQuery) *models.Message {
	if callback.Message.Message != nil {
		return callback.Message.Message
	}
	return nil
}

// ParseIDFromCallback извлекает ID из callback data
// Например: "appt_confirm:5f0c..." -> "5f0c..."
func ParseIDFromCallback(data string) (string, error) {
	prefix, id, ok := strings.Cut(data, ":")
	if !ok || prefix == "" || id == "" || strings.Contains(id, ":") {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, data)
	}
	return id, nil
}

// CallbackData собирает callback data из префикса (с двоеточием) и ID
func CallbackData(prefix, id string) string {
	return prefix + id
}

// IsMessageNotModified Telegram отвечает ошибкой, если текст и клавиатура не изменились
func IsMessageNotModified(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}
