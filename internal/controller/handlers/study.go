package handlers

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/Freeeeeet/admin_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleStudy обрабатывает команду /study [ГГГГ-ММ]
func (h *Handlers) HandleStudy(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}
	chatID := update.Message.Chat.ID

	month := commandArgs(update.Message.Text)
	if month == "" {
		month = h.now().Format(model.MonthLayout)
	}
	if _, err := model.ParseMonth(month); err != nil {
		h.sendError(ctx, b, chatID, "❌ Месяц указывается как ГГГГ-ММ, например 2025-03")
		return
	}

	text, kb, err := common.StudyScreen(ctx, h.studyService, month)
	if err != nil {
		h.replyError(ctx, b, chatID, err, "study_screen")
		return
	}
	h.sendWithKeyboard(ctx, b, chatID, text, kb)
}

// HandleAddStudySubject обрабатывает команду /addstudysubject Название
func (h *Handlers) HandleAddStudySubject(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}
	chatID := update.Message.Chat.ID

	name := commandArgs(update.Message.Text)
	if name == "" {
		h.sendUsage(ctx, b, chatID, AddStudySubjectUsage)
		return
	}

	created, err := h.studyService.CreateSubject(ctx, service.StudySubjectInput{Name: name})
	if err != nil {
		h.replyError(ctx, b, chatID, err, "create_study_subject")
		return
	}

	h.logger.Info("Study subject created via bot", zap.String("subject_id", created.ID))
	h.sendMessage(ctx, b, chatID, fmt.Sprintf("✅ Предмет «%s» добавлен в дневник", html.EscapeString(created.Name)))
}

// HandleLogStudy обрабатывает команду /logstudy предмет | дата | минуты | что изучено
func (h *Handlers) HandleLogStudy(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}
	chatID := update.Message.Chat.ID

	fields, err := splitFields(commandArgs(update.Message.Text), 4)
	if err != nil {
		h.sendUsage(ctx, b, chatID, LogStudyUsage)
		return
	}
	date, err := parseDateInput(fields[1], h.now())
	if err != nil {
		h.sendError(ctx, b, chatID, "❌ Не понял дату. Примеры: 2025-03-01, 01.03, сегодня")
		return
	}
	minutes, err := parseInt(fields[2])
	if err != nil {
		h.sendError(ctx, b, chatID, "❌ Длительность указывается в минутах, например 90")
		return
	}

	subject, ok := h.findStudySubject(ctx, b, chatID, fields[0])
	if !ok {
		return
	}

	created, err := h.studyService.CreateSession(ctx, service.StudySessionInput{
		SubjectID: subject.ID,
		Date:      date,
		Duration:  minutes,
		Content:   fields[3],
	})
	if err != nil {
		h.replyError(ctx, b, chatID, err, "create_study_session")
		return
	}

	text := "✅ Занятие записано\n\n" + formatting.FormatStudySession(*created, subject.Name)
	if progress, err := h.studyService.Progress(ctx, subject.ID, created.Month()); err == nil && progress != nil {
		text += "\n\n" + formatting.FormatGoalProgress(subject.Name, progress.Minutes, progress.Goal.TargetHours, progress.Percent)
	}
	h.sendMessage(ctx, b, chatID, text)
}

// HandleGoal обрабатывает команду /goal ГГГГ-ММ | часы | предмет
func (h *Handlers) HandleGoal(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}
	chatID := update.Message.Chat.ID

	args := commandArgs(update.Message.Text)
	// предмет необязателен: без него цель общая
	if strings.Count(args, "|") == 1 {
		args += " |"
	}
	fields, err := splitFields(args, 3)
	if err != nil {
		h.sendUsage(ctx, b, chatID, GoalUsage)
		return
	}
	hours, err := parseHours(fields[1])
	if err != nil {
		h.sendError(ctx, b, chatID, "❌ Цель указывается в часах, например 20 или 7,5")
		return
	}

	input := service.MonthlyGoalInput{Month: fields[0], TargetHours: hours}
	subjectName := "Все предметы"
	if fields[2] != "" {
		subject, ok := h.findStudySubject(ctx, b, chatID, fields[2])
		if !ok {
			return
		}
		input.SubjectID = subject.ID
		subjectName = subject.Name
	}

	created, err := h.studyService.CreateGoal(ctx, input)
	if err != nil {
		h.replyError(ctx, b, chatID, err, "create_goal")
		return
	}

	progress, err := h.studyService.Progress(ctx, created.SubjectID, created.Month)
	if err != nil || progress == nil {
		h.sendMessage(ctx, b, chatID, "✅ Цель поставлена")
		return
	}
	h.sendMessage(ctx, b, chatID, "✅ Цель поставлена\n\n"+
		formatting.FormatGoalProgress(subjectName, progress.Minutes, progress.Goal.TargetHours, progress.Percent))
}

// findStudySubject ищет предмет дневника по названию и сам отвечает, если не нашёл
func (h *Handlers) findStudySubject(ctx context.Context, b *bot.Bot, chatID int64, name string) (*model.StudySubject, bool) {
	subject, err := h.studyService.FindSubjectByName(ctx, name)
	if errors.Is(err, service.ErrStudySubjectNotFound) {
		h.sendError(ctx, b, chatID, fmt.Sprintf("❌ Предмет «%s» не найден. Список: /study", html.EscapeString(name)))
		return nil, false
	}
	if err != nil {
		h.replyError(ctx, b, chatID, err, "find_study_subject")
		return nil, false
	}
	return subject, true
}
