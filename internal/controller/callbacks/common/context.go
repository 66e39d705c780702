package common

import (
	"context"

	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/callbacktypes"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// HandlerContext содержит общий контекст для callback handlers
type HandlerContext struct {
	Ctx        context.Context
	Bot        *bot.Bot
	Callback   *models.CallbackQuery
	Handler    *callbacktypes.Handler
	TelegramID int64
	ChatID     int64
	MessageID  int
}

// NewHandlerContext создаёт новый HandlerContext
func NewHandlerContext(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
) *HandlerContext {
	hc := &HandlerContext{
		Ctx:        ctx,
		Bot:        b,
		Callback:   callback,
		Handler:    h,
		TelegramID: callback.From.ID,
	}

	if msg := GetMessageFromCallback(callback); msg != nil {
		hc.ChatID = msg.Chat.ID
		hc.MessageID = msg.ID
	} else {
		hc.ChatID = callback.From.ID
	}

	return hc
}

// RequireAdmin проверяет что пользователь администратор
func (hc *HandlerContext) RequireAdmin() error {
	if hc.Handler.IsAdmin == nil || !hc.Handler.IsAdmin(hc.TelegramID) {
		return ErrNotAdmin
	}
	return nil
}

// Answer отвечает на callback без alert
func (hc *HandlerContext) Answer(text string) {
	AnswerCallback(hc.Ctx, hc.Bot, hc.Callback.ID, text)
}

// AnswerAlert отвечает на callback с alert
func (hc *HandlerContext) AnswerAlert(text string) {
	AnswerCallbackAlert(hc.Ctx, hc.Bot, hc.Callback.ID, text)
}

// EditMessage редактирует сообщение с клавиатурой
func (hc *HandlerContext) EditMessage(text string, keyboard *models.InlineKeyboardMarkup) error {
	if hc.MessageID == 0 {
		return ErrNoMessage
	}

	params := &bot.EditMessageTextParams{
		ChatID:    hc.ChatID,
		MessageID: hc.MessageID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	}
	if keyboard != nil {
		params.ReplyMarkup = keyboard
	}

	_, err := hc.Bot.EditMessageText(hc.Ctx, params)
	if IsMessageNotModified(err) {
		return nil
	}
	return err
}

// SendMessage отправляет новое сообщение
func (hc *HandlerContext) SendMessage(text string, keyboard *models.InlineKeyboardMarkup) error {
	params := &bot.SendMessageParams{
		ChatID:    hc.ChatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	}
	if keyboard != nil {
		params.ReplyMarkup = keyboard
	}

	_, err := hc.Bot.SendMessage(hc.Ctx, params)
	return err
}

// Begin начинает диалог с начальными данными
func (hc *HandlerContext) Begin(state callbacktypes.UserState, data map[string]interface{}) {
	hc.Handler.StateManager.Begin(hc.TelegramID, state, data)
}

// SetState устанавливает состояние пользователя
func (hc *HandlerContext) SetState(state callbacktypes.UserState) {
	hc.Handler.StateManager.SetState(hc.TelegramID, state)
}

// State текущее состояние пользователя
func (hc *HandlerContext) State() callbacktypes.UserState {
	return hc.Handler.StateManager.GetState(hc.TelegramID)
}

// GetString получает строковые временные данные
func (hc *HandlerContext) GetString(key string) (string, bool) {
	value, ok := hc.GetData(key)
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}

// SetData сохраняет временные данные
func (hc *HandlerContext) SetData(key string, value interface{}) {
	hc.Handler.StateManager.SetData(hc.TelegramID, key, value)
}

// GetData получает временные данные
func (hc *HandlerContext) GetData(key string) (interface{}, bool) {
	return hc.Handler.StateManager.GetData(hc.TelegramID, key)
}

// ClearState очищает состояние пользователя
func (hc *HandlerContext) ClearState() {
	hc.Handler.StateManager.ClearState(hc.TelegramID)
}
