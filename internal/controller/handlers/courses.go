package handlers

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/admin_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleCourses обрабатывает команду /courses [поиск]
func (h *Handlers) HandleCourses(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	filter := service.CourseFilter{Search: commandArgs(update.Message.Text)}
	text, kb, err := common.CoursesScreen(ctx, h.courseService, filter, h.userIsAdmin(update))
	if err != nil {
		h.replyError(ctx, b, chatID, err, "list_courses")
		return
	}
	h.sendWithKeyboard(ctx, b, chatID, text, kb)
}

// HandleInstructors обрабатывает команду /instructors
func (h *Handlers) HandleInstructors(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	instructors, err := h.courseService.ListInstructors(ctx)
	if err != nil {
		h.replyError(ctx, b, chatID, err, "list_instructors")
		return
	}
	if len(instructors) == 0 {
		h.sendMessage(ctx, b, chatID, "🎓 Преподавателей пока нет")
		return
	}
	courses, err := h.courseService.ListCourses(ctx, service.CourseFilter{})
	if err != nil {
		h.replyError(ctx, b, chatID, err, "list_courses")
		return
	}

	counts := make(map[string]int, len(instructors))
	for _, c := range courses {
		counts[c.InstructorID]++
	}
	lines := make([]string, 0, len(instructors)+1)
	lines = append(lines, "🎓 <b>Преподаватели</b>\n")
	for _, i := range instructors {
		lines = append(lines, formatting.FormatInstructor(i, counts[i.ID]))
	}
	h.sendMessage(ctx, b, chatID, strings.Join(lines, "\n"))
}

// HandleAddInstructor обрабатывает команду /addinstructor Имя | email
func (h *Handlers) HandleAddInstructor(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}
	chatID := update.Message.Chat.ID

	fields, err := splitFields(commandArgs(update.Message.Text), 2)
	if err != nil {
		h.sendUsage(ctx, b, chatID, AddInstructorUsage)
		return
	}

	created, err := h.courseService.CreateInstructor(ctx, service.InstructorInput{Name: fields[0], Email: fields[1]})
	if err != nil {
		h.replyError(ctx, b, chatID, err, "create_instructor")
		return
	}

	h.logger.Info("Instructor created via bot", zap.String("instructor_id", created.ID), zap.Int64("admin_id", update.Message.From.ID))
	h.sendMessage(ctx, b, chatID, "✅ Преподаватель добавлен\n\n"+formatting.FormatInstructor(*created, 0))
}

// HandleAddCourse обрабатывает команду /addcourse Название | преподаватель | описание
func (h *Handlers) HandleAddCourse(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}
	chatID := update.Message.Chat.ID

	args := commandArgs(update.Message.Text)
	// описание необязательно
	if strings.Count(args, "|") == 1 {
		args += " |"
	}
	fields, err := splitFields(args, 3)
	if err != nil {
		h.sendUsage(ctx, b, chatID, AddCourseUsage)
		return
	}

	instructor, err := h.courseService.FindInstructorByName(ctx, fields[1])
	if errors.Is(err, service.ErrInstructorNotFound) {
		h.sendError(ctx, b, chatID, fmt.Sprintf("❌ Преподаватель «%s» не найден. Список: /instructors", html.EscapeString(fields[1])))
		return
	}
	if err != nil {
		h.replyError(ctx, b, chatID, err, "find_instructor")
		return
	}

	created, err := h.courseService.CreateCourse(ctx, service.CourseInput{
		Name:         fields[0],
		InstructorID: instructor.ID,
		Description:  fields[2],
	})
	if err != nil {
		h.replyError(ctx, b, chatID, err, "create_course")
		return
	}

	h.logger.Info("Course created via bot", zap.String("course_id", created.ID), zap.Int64("admin_id", update.Message.From.ID))
	h.sendMessage(ctx, b, chatID, "✅ Курс добавлен\n\n"+formatting.FormatCourse(*created, instructor.Name))
}

// HandleSetStudents обрабатывает команду /setstudents Название | число
func (h *Handlers) HandleSetStudents(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}
	chatID := update.Message.Chat.ID

	fields, err := splitFields(commandArgs(update.Message.Text), 2)
	if err != nil {
		h.sendUsage(ctx, b, chatID, SetStudentsUsage)
		return
	}
	count, err := parseInt(fields[1])
	if err != nil {
		h.sendError(ctx, b, chatID, "❌ Число студентов должно быть числом")
		return
	}

	course, err := h.courseService.FindCourseByName(ctx, fields[0])
	if err != nil {
		h.replyError(ctx, b, chatID, err, "find_course")
		return
	}
	updated, err := h.courseService.SetStudentCount(ctx, course.ID, count)
	if err != nil {
		h.replyError(ctx, b, chatID, err, "set_students")
		return
	}

	instructorName := "удалено"
	if instructor, err := h.courseService.GetInstructor(ctx, updated.InstructorID); err == nil {
		instructorName = instructor.Name
	}
	h.sendMessage(ctx, b, chatID, "✅ Число студентов обновлено\n\n"+formatting.FormatCourse(*updated, instructorName))
}
