package formatting

import (
	"fmt"
	"html"
	"strings"

	"github.com/Freeeeeet/admin_bot/internal/model"
)

// FormatInstructor строка преподавателя
func FormatInstructor(i model.Instructor, courseCount int) string {
	return fmt.Sprintf("🎓 <b>%s</b> · %s · курсов: %d",
		html.EscapeString(i.Name), html.EscapeString(i.Email), courseCount)
}

// FormatCourse карточка курса
func FormatCourse(c model.Course, instructorName string) string {
	status := GetCourseStatusDisplay(c.Status)
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s <b>%s</b> · %s\n", status.Emoji, html.EscapeString(c.Name), status.Text)
	fmt.Fprintf(&sb, "   Преподаватель: %s\n", html.EscapeString(instructorName))
	fmt.Fprintf(&sb, "   %d %s", c.StudentCount, PluralizeStudents(c.StudentCount))
	if c.Description != "" {
		fmt.Fprintf(&sb, "\n   %s", html.EscapeString(c.Description))
	}
	return sb.String()
}

// FormatStudySession строка занятия
func FormatStudySession(s model.StudySession, subjectName string) string {
	line := fmt.Sprintf("📖 %s · %s · %s: %s", FormatDay(s.Date), FormatDuration(s.Duration),
		html.EscapeString(subjectName), html.EscapeString(s.Content))
	if s.Note != "" {
		line += "\n   " + html.EscapeString(s.Note)
	}
	return line
}

// FormatGoalProgress строка выполнения цели с полосой из десяти делений
func FormatGoalProgress(subjectName string, minutes int, targetHours, percent float64) string {
	filled := int(percent / 10)
	if filled > 10 {
		filled = 10
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("▰", filled) + strings.Repeat("▱", 10-filled)
	return fmt.Sprintf("🎯 <b>%s</b>: %s из %s\n   %s %.0f%%",
		html.EscapeString(subjectName), FormatDuration(minutes), formatHours(targetHours), bar, percent)
}

func formatHours(hours float64) string {
	if hours == float64(int(hours)) {
		return fmt.Sprintf("%d ч", int(hours))
	}
	return strings.Replace(fmt.Sprintf("%.1f ч", hours), ".", ",", 1)
}
