package formatting

import (
	"fmt"
	"time"

	"github.com/Freeeeeet/admin_bot/internal/model"
)

// FormatDate форматирует только дату
func FormatDate(t time.Time) string {
	return t.Format("02.01.2006")
}

// FormatDay форматирует дату записи "YYYY-MM-DD" как "06.01.2025 (Пн)".
// Нераспознанная строка возвращается как есть.
func FormatDay(date string) string {
	d, err := model.ParseDate(date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s (%s)", FormatDate(d), GetWeekdayShortName(int(d.Weekday())))
}

// FormatDuration форматирует длительность в минутах
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d мин", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%d ч", hours)
	}
	return fmt.Sprintf("%d ч %d мин", hours, mins)
}

// GetWeekdayName возвращает название дня недели на русском
func GetWeekdayName(weekday int) string {
	names := []string{
		"Воскресенье",
		"Понедельник",
		"Вторник",
		"Среда",
		"Четверг",
		"Пятница",
		"Суббота",
	}
	if weekday >= 0 && weekday < len(names) {
		return names[weekday]
	}
	return "Неизвестно"
}

// GetWeekdayShortName возвращает краткое название дня недели на русском
func GetWeekdayShortName(weekday int) string {
	names := []string{"Вс", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб"}
	if weekday >= 0 && weekday < len(names) {
		return names[weekday]
	}
	return "?"
}

// FormatWorkingHours форматирует график сотрудника, начиная с понедельника
func FormatWorkingHours(hours []model.WorkingHours) string {
	if len(hours) == 0 {
		return "не задан"
	}

	result := ""
	for _, weekday := range []int{1, 2, 3, 4, 5, 6, 0} {
		for _, wh := range hours {
			if wh.DayOfWeek != weekday {
				continue
			}
			if result != "" {
				result += ", "
			}
			result += fmt.Sprintf("%s %s-%s", GetWeekdayShortName(weekday), wh.StartTime, wh.EndTime)
			break
		}
	}
	return result
}
