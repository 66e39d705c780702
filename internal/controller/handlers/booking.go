package handlers

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Freeeeeet/admin_bot/internal/availability"
	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleBook обрабатывает команду /book - начало записи, выбор услуги
func (h *Handlers) HandleBook(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	chatID := update.Message.Chat.ID
	h.stateManager.ClearState(update.Message.From.ID)

	services, err := h.catalogService.ListServices(ctx)
	if err != nil {
		h.replyError(ctx, b, chatID, err, "list_services")
		return
	}
	if len(services) == 0 {
		h.sendMessage(ctx, b, chatID, "😔 Услуг пока нет")
		return
	}

	h.sendWithKeyboard(ctx, b, chatID, "💇 Выберите услугу:", keyboard.ServiceChoice(services))
}

// HandleAppointments обрабатывает команду /appointments [дата].
// Без даты показывает все незавершённые записи.
func (h *Handlers) HandleAppointments(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}
	chatID := update.Message.Chat.ID

	var (
		appointments []model.Appointment
		title        string
		err          error
	)
	if args := commandArgs(update.Message.Text); args != "" {
		date, parseErr := parseDateInput(args, h.now())
		if parseErr != nil {
			h.sendError(ctx, b, chatID, "❌ Не понял дату. Пример: /appointments 2025-01-06")
			return
		}
		appointments, err = h.bookingService.ListAppointmentsByDate(ctx, date)
		title = "📋 Записи на " + formatting.FormatDay(date)
	} else {
		appointments, err = h.activeAppointments(ctx)
		title = "📋 Активные записи"
	}
	if err != nil {
		h.replyError(ctx, b, chatID, err, "list_appointments")
		return
	}

	if len(appointments) == 0 {
		h.sendMessage(ctx, b, chatID, title+"\n\nЗаписей нет")
		return
	}

	header := fmt.Sprintf("%s: %d %s", title, len(appointments), formatting.PluralizeAppointments(len(appointments)))
	if len(appointments) > MaxListedAppointments {
		header += fmt.Sprintf("\nПоказаны первые %d", MaxListedAppointments)
		appointments = appointments[:MaxListedAppointments]
	}
	h.sendMessage(ctx, b, chatID, header)

	for _, a := range appointments {
		serviceName, staffName := common.AppointmentNames(ctx, h.catalogService, a)
		reviewed := false
		if a.Status == model.AppointmentStatusCompleted {
			_, err := h.bookingService.GetReviewByAppointment(ctx, a.ID)
			reviewed = err == nil
		}
		text, kb := common.BuildAppointmentScreen(a, serviceName, staffName, reviewed)
		h.sendWithKeyboard(ctx, b, chatID, text, kb)
	}
}

// activeAppointments записи, занимающие сотрудников, по дате и времени
func (h *Handlers) activeAppointments(ctx context.Context) ([]model.Appointment, error) {
	all, err := h.bookingService.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]model.Appointment, 0, len(all))
	for _, a := range all {
		if availability.ActiveStatuses[a.Status] {
			active = append(active, a)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		if active[i].Date != active[j].Date {
			return active[i].Date < active[j].Date
		}
		return active[i].Time < active[j].Time
	})
	return active, nil
}

// HandleSchedule обрабатывает команду /schedule [дата] - картинка расписания дня
func (h *Handlers) HandleSchedule(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}
	chatID := update.Message.Chat.ID

	now := h.now()
	date := model.FormatDate(now)
	if args := commandArgs(update.Message.Text); args != "" {
		parsed, err := parseDateInput(args, now)
		if err != nil {
			h.sendError(ctx, b, chatID, "❌ Не понял дату. Пример: /schedule завтра")
			return
		}
		date = parsed
	}
	day, err := model.ParseDate(date)
	if err != nil {
		h.replyError(ctx, b, chatID, err, "parse_date")
		return
	}

	appointments, err := h.bookingService.ListAppointmentsByDate(ctx, date)
	if err != nil {
		h.replyError(ctx, b, chatID, err, "list_appointments")
		return
	}
	staff, err := h.catalogService.ListStaff(ctx)
	if err != nil {
		h.replyError(ctx, b, chatID, err, "list_staff")
		return
	}
	services, err := h.catalogService.ListServices(ctx)
	if err != nil {
		h.replyError(ctx, b, chatID, err, "list_services")
		return
	}

	columns := make([]common.StaffColumn, 0, len(staff))
	for _, member := range staff {
		column := common.StaffColumn{Staff: member}
		for _, a := range appointments {
			if a.StaffID == member.ID {
				column.Appointments = append(column.Appointments, a)
			}
		}
		columns = append(columns, column)
	}

	imageData, err := common.GenerateDayImage(day, columns, services, now)
	if err != nil {
		h.replyError(ctx, b, chatID, err, "generate_day_image")
		return
	}

	caption := fmt.Sprintf("🗓 %s · %d %s", formatting.FormatDay(date), len(appointments),
		formatting.PluralizeAppointments(len(appointments)))
	_, err = b.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID:  chatID,
		Photo:   &models.InputFileUpload{Filename: "schedule_" + date + ".png", Data: bytes.NewReader(imageData)},
		Caption: caption,
	})
	if err != nil {
		h.logger.Error("Failed to send schedule image", zap.String("date", date), zap.Error(err))
	}
}

// HandleReviews обрабатывает команду /reviews
func (h *Handlers) HandleReviews(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}
	chatID := update.Message.Chat.ID

	reviews, err := h.bookingService.ListReviews(ctx)
	if err != nil {
		h.replyError(ctx, b, chatID, err, "list_reviews")
		return
	}
	if len(reviews) == 0 {
		h.sendMessage(ctx, b, chatID, "⭐ Отзывов пока нет")
		return
	}

	blocks := make([]string, 0, len(reviews))
	total := 0
	for _, r := range reviews {
		blocks = append(blocks, formatting.FormatReview(r))
		total += r.Rating
	}

	text := fmt.Sprintf("⭐ <b>%d %s</b>, средняя оценка %.1f\n\n%s\n\nОтветить: %s",
		len(reviews), formatting.PluralizeReviews(len(reviews)), float64(total)/float64(len(reviews)),
		strings.Join(blocks, "\n\n"), ReplyUsage)
	for _, part := range formatting.SplitMessage(text, formatting.MaxMessageLength) {
		h.sendMessage(ctx, b, chatID, part)
	}
}

// HandleReply обрабатывает команду /reply ID | текст
func (h *Handlers) HandleReply(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}
	chatID := update.Message.Chat.ID

	fields, err := splitFields(commandArgs(update.Message.Text), 2)
	if err != nil {
		h.sendUsage(ctx, b, chatID, ReplyUsage)
		return
	}

	review, err := h.bookingService.RespondToReview(ctx, fields[0], fields[1])
	if err != nil {
		h.replyError(ctx, b, chatID, err, "respond_to_review")
		return
	}

	h.sendMessage(ctx, b, chatID, "✅ Ответ сохранён\n\n"+formatting.FormatReview(*review))
}
