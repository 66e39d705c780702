package handlers

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/Freeeeeet/admin_bot/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const customerHelp = "Доступные команды:\n" +
	"/services - Услуги и цены\n" +
	"/staff - Сотрудники и график\n" +
	"/book - Записаться\n" +
	"/courses [поиск] - Курсы\n" +
	"/instructors - Преподаватели\n" +
	"/cancel - Отменить текущее действие\n" +
	"/help - Справка"

const adminHelp = "\n\nАдминистратору:\n" +
	"/appointments [дата] - Записи, подтверждение и отмена\n" +
	"/schedule [дата] - Расписание дня картинкой\n" +
	"/addservice - Добавить услугу\n" +
	"/addstaff - Добавить сотрудника\n" +
	"/reviews - Отзывы\n" +
	"/reply - Ответить на отзыв\n\n" +
	"Банк вопросов:\n" +
	"/subjects - Предметы\n" +
	"/addsubject - Добавить предмет\n" +
	"/questions КОД - Вопросы предмета\n" +
	"/addquestion - Добавить вопрос\n" +
	"/genexam - Сгенерировать экзамен\n" +
	"/exams - Экзамены\n\n" +
	"Курсы:\n" +
	"/addinstructor - Добавить преподавателя\n" +
	"/addcourse - Добавить курс\n" +
	"/setstudents - Число студентов курса\n\n" +
	"Дневник занятий:\n" +
	"/study [ГГГГ-ММ] - Предметы и выполнение целей\n" +
	"/addstudysubject - Добавить предмет\n" +
	"/logstudy - Записать занятие\n" +
	"/goal - Цель на месяц"

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	name := "друг"
	if update.Message.From != nil && update.Message.From.FirstName != "" {
		name = update.Message.From.FirstName
	}

	text := fmt.Sprintf("👋 Привет, %s!\n\nЗдесь можно записаться к нашим мастерам.\n\n%s",
		html.EscapeString(name), customerHelp)
	if h.userIsAdmin(update) {
		text += adminHelp
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, text)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	text := "📚 Справка по командам\n\n" + customerHelp
	if h.userIsAdmin(update) {
		text += adminHelp
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, text)
}

// HandleCancel обрабатывает команду /cancel - отмена текущего диалога
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID
	if h.stateManager.GetState(telegramID) == state.StateNone {
		h.sendMessage(ctx, b, update.Message.Chat.ID, "❌ Нет активных операций для отмены.")
		return
	}

	h.stateManager.ClearState(telegramID)
	h.sendMessage(ctx, b, update.Message.Chat.ID, "✅ Операция отменена.\n\nИспользуйте /help для просмотра доступных команд.")
}

// HandleTextMessage обрабатывает текстовые сообщения в зависимости от состояния пользователя
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil || update.Message.Text == "" {
		return
	}

	// Команды обрабатываются другими handlers
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	telegramID := update.Message.From.ID
	currentState := h.stateManager.GetState(telegramID)

	h.logger.Debug("Text message",
		zap.Int64("telegram_id", telegramID),
		zap.String("state", string(currentState)))

	switch currentState {
	case state.StateNone:
		h.sendMessage(ctx, b, update.Message.Chat.ID, "🤔 Не понял. Список команд: /help")
	case state.StateBookingStaff:
		h.sendMessage(ctx, b, update.Message.Chat.ID, "👆 Выберите сотрудника кнопкой выше или /cancel")
	case state.StateBookingDate:
		h.handleBookingDateStep(ctx, b, update)
	case state.StateBookingTime:
		h.handleBookingTimeStep(ctx, b, update)
	case state.StateBookingName:
		h.handleBookingNameStep(ctx, b, update)
	case state.StateBookingPhone:
		h.handleBookingPhoneStep(ctx, b, update)
	case state.StateReviewRating:
		h.handleReviewRatingStep(ctx, b, update)
	case state.StateReviewComment:
		h.handleReviewCommentStep(ctx, b, update)
	default:
		h.logger.Warn("Unknown state", zap.String("state", string(currentState)))
		h.stateManager.ClearState(telegramID)
	}
}
