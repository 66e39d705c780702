package handlers

import (
	"context"
	"errors"
	"fmt"
	"html"

	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/admin_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleServices обрабатывает команду /services
func (h *Handlers) HandleServices(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	services, err := h.catalogService.ListServices(ctx)
	if err != nil {
		h.replyError(ctx, b, chatID, err, "list_services")
		return
	}

	text, kb := common.BuildServicesScreen(services, h.userIsAdmin(update))
	h.sendWithKeyboard(ctx, b, chatID, text, kb)
}

// HandleAddService обрабатывает команду /addservice Название | цена | минуты
func (h *Handlers) HandleAddService(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}
	chatID := update.Message.Chat.ID

	fields, err := splitFields(commandArgs(update.Message.Text), 3)
	if err != nil {
		h.sendUsage(ctx, b, chatID, AddServiceUsage)
		return
	}
	price, err := parsePrice(fields[1])
	if err != nil {
		h.sendError(ctx, b, chatID, "❌ Цена должна быть числом, например 1500 или 1500.50")
		return
	}
	duration, err := parseInt(fields[2])
	if err != nil {
		h.sendError(ctx, b, chatID, "❌ Длительность указывается в минутах, например 45")
		return
	}

	created, err := h.catalogService.CreateService(ctx, service.ServiceInput{
		Name:     fields[0],
		Price:    price,
		Duration: duration,
	})
	if err != nil {
		h.replyError(ctx, b, chatID, err, "create_service")
		return
	}

	h.logger.Info("Service created via bot", zap.String("service_id", created.ID), zap.Int64("admin_id", update.Message.From.ID))
	h.sendMessage(ctx, b, chatID, "✅ Услуга добавлена\n\n"+formatting.FormatService(*created))
}

// HandleStaff обрабатывает команду /staff
func (h *Handlers) HandleStaff(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

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

	text, kb := common.BuildStaffScreen(staff, services, h.userIsAdmin(update))
	h.sendWithKeyboard(ctx, b, chatID, text, kb)
}

// HandleAddStaff обрабатывает команду /addstaff Имя | лимит | график | услуги
func (h *Handlers) HandleAddStaff(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}
	chatID := update.Message.Chat.ID

	fields, err := splitFields(commandArgs(update.Message.Text), 4)
	if err != nil {
		h.sendUsage(ctx, b, chatID, AddStaffUsage)
		return
	}
	limit, err := parseInt(fields[1])
	if err != nil {
		h.sendError(ctx, b, chatID, "❌ Лимит клиентов в день должен быть числом")
		return
	}
	hours, err := parseWorkingHours(fields[2])
	if err != nil {
		h.sendError(ctx, b, chatID, "❌ Не понял график. Формат: Пн-Пт 09:00-18:00, Сб 10:00-14:00")
		return
	}

	serviceIDs := make([]string, 0)
	for _, name := range parseList(fields[3]) {
		svc, err := h.catalogService.FindServiceByName(ctx, name)
		if errors.Is(err, service.ErrServiceNotFound) {
			h.sendError(ctx, b, chatID, fmt.Sprintf("❌ Услуга «%s» не найдена. Список: /services", html.EscapeString(name)))
			return
		}
		if err != nil {
			h.replyError(ctx, b, chatID, err, "find_service")
			return
		}
		serviceIDs = append(serviceIDs, svc.ID)
	}

	created, err := h.catalogService.CreateStaff(ctx, service.StaffInput{
		Name:               fields[0],
		MaxCustomersPerDay: limit,
		WorkingHours:       hours,
		ServiceIDs:         serviceIDs,
	})
	if err != nil {
		h.replyError(ctx, b, chatID, err, "create_staff")
		return
	}

	h.logger.Info("Staff created via bot", zap.String("staff_id", created.ID), zap.Int64("admin_id", update.Message.From.ID))
	h.sendMessage(ctx, b, chatID, "✅ Сотрудник добавлен\n\n"+formatting.FormatStaff(*created, parseList(fields[3])))
}

// sendUsage подсказка по формату команды
func (h *Handlers) sendUsage(ctx context.Context, b *bot.Bot, chatID int64, usage string) {
	h.sendError(ctx, b, chatID, "❌ Неверный формат\n\n"+html.EscapeString(usage))
}
