package handlers

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Freeeeeet/admin_bot/internal/availability"
	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/admin_bot/internal/controller/state"
	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/Freeeeeet/admin_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const timePrompt = "🕐 Введите время в формате ЧЧ:ММ"

// dialogString достаёт строку из данных диалога. Если её нет, диалог сбрасывается.
func (h *Handlers) dialogString(ctx context.Context, b *bot.Bot, update *models.Update, key string) (string, bool) {
	telegramID := update.Message.From.ID
	value, ok := h.stateManager.GetString(telegramID, key)
	if !ok {
		h.logger.Error("Dialog data missing",
			zap.Int64("telegram_id", telegramID),
			zap.String("key", key))
		h.stateManager.ClearState(telegramID)
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Данные диалога потеряны. Начните заново: /book")
		return "", false
	}
	return value, true
}

// handleBookingDateStep шаг 1: дата
func (h *Handlers) handleBookingDateStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	now := h.now()
	date, err := parseDateInput(update.Message.Text, now)
	if err != nil {
		h.sendWithKeyboard(ctx, b, chatID, "❌ Не понял дату. Примеры: 2025-01-06, 06.01, завтра", keyboard.CancelKeyboard())
		return
	}
	if date < model.FormatDate(now) {
		h.sendWithKeyboard(ctx, b, chatID, "❌ Эта дата уже прошла, введите другую", keyboard.CancelKeyboard())
		return
	}

	staffID, ok := h.dialogString(ctx, b, update, state.KeyStaffID)
	if !ok {
		return
	}

	h.stateManager.SetData(telegramID, state.KeyDate, date)
	h.stateManager.SetState(telegramID, state.StateBookingTime)

	h.sendWithKeyboard(ctx, b, chatID, h.dayHint(ctx, staffID, date)+timePrompt, keyboard.CancelKeyboard())
}

// dayHint рабочие часы сотрудника и занятые интервалы на дату.
// Подсказка не заменяет проверку при создании записи.
func (h *Handlers) dayHint(ctx context.Context, staffID, date string) string {
	member, err := h.catalogService.GetStaff(ctx, staffID)
	if err != nil {
		return ""
	}
	day, err := model.ParseDate(date)
	if err != nil {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📅 %s\n", formatting.FormatDay(date))

	hours, ok := member.HoursFor(int(day.Weekday()))
	if !ok {
		sb.WriteString("⚠️ В этот день сотрудник не работает\n\n")
		return sb.String()
	}
	fmt.Fprintf(&sb, "Рабочие часы: %s-%s\n", hours.StartTime, hours.EndTime)

	appointments, err := h.bookingService.ListAppointmentsByDate(ctx, date)
	if err != nil {
		return sb.String() + "\n"
	}
	services, err := h.catalogService.ListServices(ctx)
	if err != nil {
		return sb.String() + "\n"
	}
	durations := make(map[string]int, len(services))
	for _, s := range services {
		durations[s.ID] = s.Duration
	}

	var busy []string
	for _, a := range appointments {
		if a.StaffID != staffID || !availability.ActiveStatuses[a.Status] {
			continue
		}
		start, err := model.ParseClock(a.Time)
		if err != nil {
			continue
		}
		busy = append(busy, start.String()+"-"+start.Add(durations[a.ServiceID]).String())
	}
	sort.Strings(busy)
	if len(busy) > 0 {
		fmt.Fprintf(&sb, "Занято: %s\n", strings.Join(busy, ", "))
	}

	sb.WriteString("\n")
	return sb.String()
}

// handleBookingTimeStep шаг 2: время
func (h *Handlers) handleBookingTimeStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	clock, err := normalizeClock(update.Message.Text)
	if err != nil {
		h.sendWithKeyboard(ctx, b, chatID, "❌ Время нужно в формате ЧЧ:ММ, например 14:30", keyboard.CancelKeyboard())
		return
	}

	h.stateManager.SetData(telegramID, state.KeyTime, clock)
	h.stateManager.SetState(telegramID, state.StateBookingName)
	h.sendWithKeyboard(ctx, b, chatID, "👤 Как вас зовут?", keyboard.CancelKeyboard())
}

// handleBookingNameStep шаг 3: имя клиента
func (h *Handlers) handleBookingNameStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	name := strings.TrimSpace(update.Message.Text)
	if name == "" {
		h.sendWithKeyboard(ctx, b, chatID, "❌ Имя не может быть пустым", keyboard.CancelKeyboard())
		return
	}

	h.stateManager.SetData(telegramID, state.KeyCustomerName, name)
	h.stateManager.SetState(telegramID, state.StateBookingPhone)
	h.sendWithKeyboard(ctx, b, chatID, "📞 Телефон для связи:", keyboard.CancelKeyboard())
}

// handleBookingPhoneStep шаг 4: телефон и создание записи
func (h *Handlers) handleBookingPhoneStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	input := service.AppointmentInput{CustomerPhone: strings.TrimSpace(update.Message.Text)}
	for key, target := range map[string]*string{
		state.KeyServiceID:    &input.ServiceID,
		state.KeyStaffID:      &input.StaffID,
		state.KeyDate:         &input.Date,
		state.KeyTime:         &input.Time,
		state.KeyCustomerName: &input.CustomerName,
	} {
		value, ok := h.dialogString(ctx, b, update, key)
		if !ok {
			return
		}
		*target = value
	}

	appointment, err := h.bookingService.CreateAppointment(ctx, input)
	if err != nil {
		h.handleBookingFailure(ctx, b, update, err)
		return
	}

	h.stateManager.ClearState(telegramID)
	h.logger.Info("Appointment booked via bot",
		zap.Int64("telegram_id", telegramID),
		zap.String("appointment_id", appointment.ID))

	serviceName, staffName := common.AppointmentNames(ctx, h.catalogService, *appointment)
	h.sendMessage(ctx, b, chatID, "✅ Запись создана!\n\n"+
		formatting.FormatAppointment(*appointment, serviceName, staffName)+
		"\n\nАдминистратор подтвердит запись")
}

// handleBookingFailure возвращает клиента на шаг, который можно исправить
func (h *Handlers) handleBookingFailure(ctx context.Context, b *bot.Bot, update *models.Update, err error) {
	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID
	message := common.ErrorMessage(err)

	var rejection *availability.Rejection
	var invalid *service.ValidationError
	switch {
	case errors.As(err, &rejection) && (errors.Is(err, availability.ErrOutsideWorkingHours) || errors.Is(err, availability.ErrTimeConflict)):
		h.stateManager.SetState(telegramID, state.StateBookingTime)
		h.sendWithKeyboard(ctx, b, chatID, message+"\n\n"+timePrompt, keyboard.CancelKeyboard())
	case errors.As(err, &rejection) && (errors.Is(err, availability.ErrStaffNotWorkingThatDay) || errors.Is(err, availability.ErrStaffFullyBooked)):
		h.stateManager.SetState(telegramID, state.StateBookingDate)
		h.sendWithKeyboard(ctx, b, chatID, message+"\n\nВыберите другую дату", keyboard.CancelKeyboard())
	case errors.As(err, &invalid) && invalid.Field == "customerPhone":
		h.sendWithKeyboard(ctx, b, chatID, message, keyboard.CancelKeyboard())
	default:
		h.stateManager.ClearState(telegramID)
		h.replyError(ctx, b, chatID, err, "create_appointment")
		return
	}

	h.logger.Info("Booking rejected, asking again",
		zap.Int64("telegram_id", telegramID),
		zap.Error(err))
}

// handleReviewRatingStep оценка к завершённой записи
func (h *Handlers) handleReviewRatingStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	rating, err := parseRating(update.Message.Text)
	if err != nil {
		h.sendWithKeyboard(ctx, b, chatID, "❌ Оценка - число от 1 до 5", keyboard.CancelKeyboard())
		return
	}

	h.stateManager.SetData(telegramID, state.KeyRating, rating)
	h.stateManager.SetState(telegramID, state.StateReviewComment)
	h.sendWithKeyboard(ctx, b, chatID, "💬 Комментарий к отзыву (или «-», если без комментария):", keyboard.CancelKeyboard())
}

// handleReviewCommentStep комментарий и сохранение отзыва
func (h *Handlers) handleReviewCommentStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	appointmentID, ok := h.dialogString(ctx, b, update, state.KeyAppointmentID)
	if !ok {
		return
	}
	rating, ok := h.stateManager.GetInt(telegramID, state.KeyRating)
	if !ok {
		h.stateManager.ClearState(telegramID)
		h.sendError(ctx, b, chatID, "❌ Данные диалога потеряны, начните заново")
		return
	}

	comment := strings.TrimSpace(update.Message.Text)
	if comment == "-" {
		comment = ""
	}

	h.stateManager.ClearState(telegramID)

	review, err := h.bookingService.AddReview(ctx, appointmentID, rating, comment)
	if err != nil {
		h.replyError(ctx, b, chatID, err, "add_review")
		return
	}

	h.sendMessage(ctx, b, chatID, "✅ Отзыв сохранён\n\n"+formatting.FormatReview(*review))
}
