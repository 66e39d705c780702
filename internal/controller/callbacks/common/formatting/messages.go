package formatting

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/Freeeeeet/admin_bot/internal/availability"
	"github.com/Freeeeeet/admin_bot/internal/examgen"
	"github.com/Freeeeeet/admin_bot/internal/model"
)

// FormatRejection объясняет отказ в записи
func FormatRejection(r *availability.Rejection) string {
	switch {
	case errors.Is(r.Reason, availability.ErrStaffNotFound):
		return "❌ Сотрудник не найден"
	case errors.Is(r.Reason, availability.ErrStaffNotWorkingThatDay):
		return fmt.Sprintf("❌ Сотрудник не работает %s", FormatDay(r.Date))
	case errors.Is(r.Reason, availability.ErrOutsideWorkingHours):
		return fmt.Sprintf("❌ Время %s вне рабочих часов (%s-%s)", r.Time, r.WorkingFrom, r.WorkingTo)
	case errors.Is(r.Reason, availability.ErrStaffFullyBooked):
		return fmt.Sprintf("❌ На %s у сотрудника уже %d %s, больше записей нет",
			FormatDay(r.Date), r.Limit, PluralizeCustomers(r.Limit))
	case errors.Is(r.Reason, availability.ErrServiceNotFound):
		return "❌ Услуга не найдена"
	case errors.Is(r.Reason, availability.ErrTimeConflict):
		return fmt.Sprintf("❌ Время %s пересекается с другой записью (%s-%s)", r.Time, r.ConflictStart, r.ConflictEnd)
	default:
		return "❌ Запись невозможна"
	}
}

// FormatInsufficient объясняет, каких вопросов не хватило для экзамена
func FormatInsufficient(e *examgen.InsufficientQuestionsError) string {
	return fmt.Sprintf("❌ Недостаточно вопросов: %s, блок «%s». Нужно %d, доступно %d",
		GetDifficultyDisplay(e.Difficulty).Text, html.EscapeString(e.KnowledgeBlock), e.Requested, e.Available)
}

// FormatInvalidField объясняет некорректное поле ввода
func FormatInvalidField(field, tag string) string {
	hints := map[string]string{
		"required":   "обязательно",
		"clock":      "ожидается ЧЧ:ММ",
		"date":       "ожидается ГГГГ-ММ-ДД",
		"difficulty": "easy, medium, hard или very_hard",
		"unique":     "значения повторяются",
	}
	if hint, ok := hints[tag]; ok {
		return fmt.Sprintf("❌ Некорректное значение поля %s (%s)", field, hint)
	}
	return fmt.Sprintf("❌ Некорректное значение поля %s", field)
}

// FormatService строка услуги для списков
func FormatService(s model.Service) string {
	return fmt.Sprintf("💇 <b>%s</b> · %s · %s",
		html.EscapeString(s.Name), FormatPrice(s.Price), FormatDuration(s.Duration))
}

// FormatStaff карточка сотрудника
func FormatStaff(s model.Staff, serviceNames []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "👤 <b>%s</b>\n", html.EscapeString(s.Name))
	fmt.Fprintf(&sb, "   График: %s\n", FormatWorkingHours(s.WorkingHours))
	fmt.Fprintf(&sb, "   Не более %d %s в день\n", s.MaxCustomersPerDay, PluralizeCustomers(s.MaxCustomersPerDay))
	if len(serviceNames) > 0 {
		fmt.Fprintf(&sb, "   Услуги: %s", html.EscapeString(strings.Join(serviceNames, ", ")))
	} else {
		sb.WriteString("   Услуги: нет")
	}
	return sb.String()
}

// FormatAppointment карточка записи
func FormatAppointment(a model.Appointment, serviceName, staffName string) string {
	status := GetAppointmentStatusDisplay(a.Status)
	return fmt.Sprintf("%s <b>%s %s</b> · %s\n   %s → %s\n   %s, %s",
		status.Emoji, FormatDay(a.Date), a.Time, status.Text,
		html.EscapeString(serviceName), html.EscapeString(staffName),
		html.EscapeString(a.CustomerName), html.EscapeString(a.CustomerPhone))
}

// FormatReview карточка отзыва
func FormatReview(r model.Review) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s <code>%s</code>\n", FormatRating(r.Rating), r.ID)
	if r.Comment != "" {
		fmt.Fprintf(&sb, "   «%s»\n", html.EscapeString(r.Comment))
	}
	if r.HasResponse() {
		fmt.Fprintf(&sb, "   💬 %s", html.EscapeString(r.StaffResponse))
	} else {
		sb.WriteString("   💬 без ответа")
	}
	return sb.String()
}

// FormatSubject строка предмета для списков
func FormatSubject(s model.Subject, questionCount int) string {
	blocks := "любые блоки"
	if len(s.KnowledgeBlocks) > 0 {
		blocks = strings.Join(s.KnowledgeBlocks, ", ")
	}
	return fmt.Sprintf("📚 <b>%s</b> %s · %d кр. · %d %s\n   Блоки: %s",
		html.EscapeString(s.Code), html.EscapeString(s.Name), s.Credits,
		questionCount, PluralizeQuestions(questionCount), html.EscapeString(blocks))
}

// FormatQuestion строка вопроса
func FormatQuestion(q model.Question) string {
	code := q.Code
	if code == "" {
		code = "без кода"
	}
	return fmt.Sprintf("%s [%s] %s: %s",
		GetDifficultyDisplay(q.Difficulty).Emoji, html.EscapeString(code),
		html.EscapeString(q.KnowledgeBlock), html.EscapeString(q.Content))
}

// FormatExamStructure описывает структуру экзамена по строкам
func FormatExamStructure(structure []model.ExamStructureItem) string {
	lines := make([]string, 0, len(structure))
	for _, item := range structure {
		lines = append(lines, fmt.Sprintf("• %s, %s: %d",
			GetDifficultyDisplay(item.Difficulty).Text, html.EscapeString(item.KnowledgeBlock), item.Count))
	}
	return strings.Join(lines, "\n")
}

// FormatExam экзамен с вопросами в порядке выдачи
func FormatExam(e model.Exam, subjectCode string, questions []model.Question) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📝 <b>%s</b> (%s) · %s\n\n", html.EscapeString(e.Name),
		html.EscapeString(subjectCode), FormatDate(e.CreatedAt))
	sb.WriteString(FormatExamStructure(e.Structure))
	sb.WriteString("\n")

	for i, q := range questions {
		fmt.Fprintf(&sb, "\n%d. %s", i+1, FormatQuestion(q))
	}
	if missing := len(e.Questions) - len(questions); missing > 0 {
		fmt.Fprintf(&sb, "\n\n⚠️ Удалено из банка: %d %s", missing, PluralizeQuestions(missing))
	}
	return sb.String()
}

// MaxMessageLength лимит Telegram на длину текста сообщения
const MaxMessageLength = 4096

// SplitMessage режет длинный текст по строкам на части не длиннее limit символов.
// Строка длиннее limit режется по символам.
func SplitMessage(text string, limit int) []string {
	if limit <= 0 {
		limit = MaxMessageLength
	}

	var parts []string
	var current []rune
	flush := func() {
		if len(current) > 0 {
			parts = append(parts, string(current))
			current = current[:0]
		}
	}

	for i, line := range strings.Split(text, "\n") {
		runes := []rune(line)
		if i > 0 {
			if len(current)+1+len(runes) > limit {
				flush()
			} else {
				current = append(current, '\n')
			}
		}
		for len(runes) > limit {
			flush()
			parts = append(parts, string(runes[:limit]))
			runes = runes[limit:]
		}
		current = append(current, runes...)
	}
	flush()

	return parts
}
