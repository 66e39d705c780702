package formatting

import "github.com/Freeeeeet/admin_bot/internal/model"

// StatusDisplay представляет отображение статуса
type StatusDisplay struct {
	Emoji string
	Text  string
}

func (d StatusDisplay) String() string {
	return d.Emoji + " " + d.Text
}

// GetAppointmentStatusDisplay возвращает emoji и текст для статуса записи
func GetAppointmentStatusDisplay(status model.AppointmentStatus) StatusDisplay {
	displays := map[model.AppointmentStatus]StatusDisplay{
		model.AppointmentStatusPending:   {"⏳", "Ожидает подтверждения"},
		model.AppointmentStatusConfirmed: {"✅", "Подтверждена"},
		model.AppointmentStatusCompleted: {"✔️", "Завершена"},
		model.AppointmentStatusCancelled: {"❌", "Отменена"},
	}

	if display, ok := displays[status]; ok {
		return display
	}

	return StatusDisplay{"❓", "Неизвестно"}
}

// GetDifficultyDisplay возвращает emoji и текст для уровня сложности
func GetDifficultyDisplay(difficulty model.Difficulty) StatusDisplay {
	displays := map[model.Difficulty]StatusDisplay{
		model.DifficultyEasy:     {"🟢", "Лёгкий"},
		model.DifficultyMedium:   {"🟡", "Средний"},
		model.DifficultyHard:     {"🟠", "Сложный"},
		model.DifficultyVeryHard: {"🔴", "Очень сложный"},
	}

	if display, ok := displays[difficulty]; ok {
		return display
	}

	return StatusDisplay{"❓", string(difficulty)}
}

// GetCourseStatusDisplay возвращает emoji и текст для статуса курса
func GetCourseStatusDisplay(status model.CourseStatus) StatusDisplay {
	displays := map[model.CourseStatus]StatusDisplay{
		model.CourseStatusActive:    {"🟢", "Идёт набор"},
		model.CourseStatusPaused:    {"⏸", "Приостановлен"},
		model.CourseStatusCompleted: {"🏁", "Завершён"},
	}

	if display, ok := displays[status]; ok {
		return display
	}

	return StatusDisplay{"❓", string(status)}
}

// FormatRating рисует оценку звёздами
func FormatRating(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	stars := ""
	for i := 0; i < 5; i++ {
		if i < rating {
			stars += "★"
		} else {
			stars += "☆"
		}
	}
	return stars
}
