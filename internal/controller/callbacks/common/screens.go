package common

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/Freeeeeet/admin_bot/internal/service"
	"github.com/go-telegram/bot/models"
)

const deletedLabel = "удалено"

// AppointmentNames названия услуги и сотрудника записи. Удалённые показываются как "удалено".
func AppointmentNames(ctx context.Context, catalog *service.CatalogService, a model.Appointment) (string, string) {
	serviceName, staffName := deletedLabel, deletedLabel
	if s, err := catalog.GetService(ctx, a.ServiceID); err == nil {
		serviceName = s.Name
	}
	if s, err := catalog.GetStaff(ctx, a.StaffID); err == nil {
		staffName = s.Name
	}
	return serviceName, staffName
}

// SubjectCodes ID предмета -> код, для подписей экзаменов
func SubjectCodes(ctx context.Context, bank *service.QuestionBankService) (map[string]string, error) {
	subjects, err := bank.ListSubjects(ctx)
	if err != nil {
		return nil, err
	}
	codes := make(map[string]string, len(subjects))
	for _, s := range subjects {
		codes[s.ID] = s.Code
	}
	return codes, nil
}

// BuildAppointmentScreen карточка записи с кнопками допустимых действий
func BuildAppointmentScreen(a model.Appointment, serviceName, staffName string, reviewed bool) (string, *models.InlineKeyboardMarkup) {
	return formatting.FormatAppointment(a, serviceName, staffName), keyboard.AppointmentActions(a, reviewed)
}

// BuildServicesScreen список услуг; администратору добавляются кнопки удаления
func BuildServicesScreen(services []model.Service, isAdmin bool) (string, *models.InlineKeyboardMarkup) {
	if len(services) == 0 {
		text := "💇 Услуг пока нет"
		if isAdmin {
			text += "\n\nДобавьте: /addservice Название | цена | минуты"
		}
		return text, nil
	}

	lines := make([]string, 0, len(services)+1)
	lines = append(lines, "💇 <b>Услуги</b>\n")
	kb := keyboard.NewBuilder()
	for _, s := range services {
		lines = append(lines, formatting.FormatService(s))
		if isAdmin {
			kb.Row(keyboard.DeleteButton(s.Name, keyboard.ServiceDelete, s.ID))
		}
	}
	if !isAdmin {
		lines = append(lines, "\nЗаписаться: /book")
	}

	return strings.Join(lines, "\n"), kb.BuildOrNil()
}

// BuildStaffScreen список сотрудников с услугами
func BuildStaffScreen(staff []model.Staff, services []model.Service, isAdmin bool) (string, *models.InlineKeyboardMarkup) {
	if len(staff) == 0 {
		text := "👤 Сотрудников пока нет"
		if isAdmin {
			text += "\n\nДобавьте: /addstaff Имя | лимит | Пн-Пт 09:00-18:00 | услуги через запятую"
		}
		return text, nil
	}

	names := make(map[string]string, len(services))
	for _, s := range services {
		names[s.ID] = s.Name
	}

	blocks := make([]string, 0, len(staff))
	kb := keyboard.NewBuilder()
	for _, member := range staff {
		serviceNames := make([]string, 0, len(member.ServiceIDs))
		for _, id := range member.ServiceIDs {
			if name, ok := names[id]; ok {
				serviceNames = append(serviceNames, name)
			}
		}
		blocks = append(blocks, formatting.FormatStaff(member, serviceNames))
		if isAdmin {
			kb.Row(keyboard.DeleteButton(member.Name, keyboard.StaffDelete, member.ID))
		}
	}

	return "👥 <b>Сотрудники</b>\n\n" + strings.Join(blocks, "\n\n"), kb.BuildOrNil()
}

// BuildExamsScreen список экзаменов с кнопками просмотра и удаления
func BuildExamsScreen(exams []model.Exam, subjectCodes map[string]string) (string, *models.InlineKeyboardMarkup) {
	if len(exams) == 0 {
		return "📝 Экзаменов пока нет\n\nСоздайте: /genexam КОД | Название | easy:блок:3, hard:блок:2", nil
	}

	lines := make([]string, 0, len(exams)+1)
	lines = append(lines, "📝 <b>Экзамены</b>\n")
	kb := keyboard.NewBuilder()
	for _, e := range exams {
		code := subjectCodes[e.SubjectID]
		if code == "" {
			code = deletedLabel
		}
		lines = append(lines, fmt.Sprintf("• %s (%s) · %d %s · %s",
			html.EscapeString(e.Name), html.EscapeString(code), len(e.Questions),
			formatting.PluralizeQuestions(len(e.Questions)), formatting.FormatDate(e.CreatedAt)))
		kb.Row(
			keyboard.Button("👁 "+e.Name, keyboard.ExamView+e.ID),
			keyboard.DeleteButton("", keyboard.ExamDelete, e.ID),
		)
	}

	return strings.Join(lines, "\n"), kb.BuildOrNil()
}

// CoursesScreen загружает курсы по фильтру и строит список
func CoursesScreen(ctx context.Context, courses *service.CourseService, filter service.CourseFilter, isAdmin bool) (string, *models.InlineKeyboardMarkup, error) {
	list, err := courses.ListCourses(ctx, filter)
	if err != nil {
		return "", nil, err
	}
	instructors, err := courses.ListInstructors(ctx)
	if err != nil {
		return "", nil, err
	}
	text, kb := BuildCoursesScreen(list, instructors, isAdmin)
	return text, kb, nil
}

// BuildCoursesScreen список курсов; администратору добавляются кнопки удаления
func BuildCoursesScreen(courses []model.Course, instructors []model.Instructor, isAdmin bool) (string, *models.InlineKeyboardMarkup) {
	if len(courses) == 0 {
		text := "🎓 Курсов не найдено"
		if isAdmin {
			text += "\n\nДобавьте: /addcourse Название | преподаватель | описание"
		}
		return text, nil
	}

	names := make(map[string]string, len(instructors))
	for _, i := range instructors {
		names[i.ID] = i.Name
	}

	blocks := make([]string, 0, len(courses))
	kb := keyboard.NewBuilder()
	for _, c := range courses {
		instructor, ok := names[c.InstructorID]
		if !ok {
			instructor = deletedLabel
		}
		blocks = append(blocks, formatting.FormatCourse(c, instructor))
		if isAdmin {
			kb.Row(keyboard.DeleteButton(c.Name, keyboard.CourseDelete, c.ID))
		}
	}

	return "🎓 <b>Курсы</b>\n\n" + strings.Join(blocks, "\n\n"), kb.BuildOrNil()
}

// StudyScreen загружает предметы и цели месяца и строит обзор дневника
func StudyScreen(ctx context.Context, study *service.StudyService, month string) (string, *models.InlineKeyboardMarkup, error) {
	subjects, err := study.ListSubjects(ctx)
	if err != nil {
		return "", nil, err
	}
	progress, err := study.MonthProgress(ctx, month)
	if err != nil {
		return "", nil, err
	}
	sessions, err := study.ListSessions(ctx, service.SessionFilter{Month: month})
	if err != nil {
		return "", nil, err
	}
	text, kb := BuildStudyScreen(month, subjects, progress, sessions)
	return text, kb, nil
}

// BuildStudyScreen предметы с временем за месяц, выполнение целей и кнопки удаления предметов
func BuildStudyScreen(month string, subjects []model.StudySubject, progress []service.GoalProgress, sessions []model.StudySession) (string, *models.InlineKeyboardMarkup) {
	if len(subjects) == 0 {
		return "📒 Предметов в дневнике пока нет\n\nДобавьте: /addstudysubject Название", nil
	}

	names := make(map[string]string, len(subjects))
	for _, s := range subjects {
		names[s.ID] = s.Name
	}
	minutes := make(map[string]int, len(subjects))
	for _, s := range sessions {
		minutes[s.SubjectID] += s.Duration
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📒 <b>Дневник занятий</b> · %s\n", html.EscapeString(month))

	kb := keyboard.NewBuilder()
	for _, s := range subjects {
		fmt.Fprintf(&sb, "\n📚 %s · %s", html.EscapeString(s.Name), formatting.FormatDuration(minutes[s.ID]))
		kb.Row(keyboard.DeleteButton(s.Name, keyboard.StudySubjectDelete, s.ID))
	}

	if len(progress) > 0 {
		sb.WriteString("\n\n<b>Цели</b>")
		for _, p := range progress {
			name := "Все предметы"
			if p.Goal.SubjectID != "" {
				name = names[p.Goal.SubjectID]
			}
			fmt.Fprintf(&sb, "\n%s", formatting.FormatGoalProgress(name, p.Minutes, p.Goal.TargetHours, p.Percent))
		}
	} else {
		sb.WriteString("\n\nЦелей на месяц нет. Поставьте: /goal " + html.EscapeString(month) + " | часы")
	}

	return sb.String(), kb.BuildOrNil()
}
