package keyboard

import (
	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/go-telegram/bot/models"
)

// Callback data. После двоеточия идёт ID сущности
const (
	CancelDialog = "cancel_dialog"

	BookService = "book_service:" // book_service:<serviceID>
	BookStaff   = "book_staff:"   // book_staff:<staffID>, услуга берётся из диалога

	ApptConfirm  = "appt_confirm:"  // appt_confirm:<appointmentID>
	ApptComplete = "appt_complete:" // appt_complete:<appointmentID>
	ApptCancel   = "appt_cancel:"   // appt_cancel:<appointmentID>
	ApptReview   = "appt_review:"   // appt_review:<appointmentID>

	ServiceDelete = "svc_delete:"   // svc_delete:<serviceID>
	StaffDelete   = "staff_delete:" // staff_delete:<staffID>

	ExamView   = "exam_view:"   // exam_view:<examID>
	ExamDelete = "exam_delete:" // exam_delete:<examID>

	CourseDelete       = "course_delete:" // course_delete:<courseID>
	StudySubjectDelete = "study_delete:"  // study_delete:<studySubjectID>, вместе с занятиями и целями
)

// CancelButton создаёт кнопку "Отмена" для прерывания диалога
func CancelButton() models.InlineKeyboardButton {
	return Button("❌ Отмена", CancelDialog)
}

// CancelKeyboard клавиатура из одной кнопки отмены
func CancelKeyboard() *models.InlineKeyboardMarkup {
	return NewBuilder().Row(CancelButton()).Build()
}

// ServiceChoice кнопки выбора услуги для записи
func ServiceChoice(services []model.Service) *models.InlineKeyboardMarkup {
	buttons := make([]models.InlineKeyboardButton, 0, len(services))
	for _, s := range services {
		buttons = append(buttons, Button(s.Name, BookService+s.ID))
	}
	return NewBuilder().Grid(buttons, 2).Row(CancelButton()).Build()
}

// StaffChoice кнопки выбора сотрудника для записи
func StaffChoice(staff []model.Staff) *models.InlineKeyboardMarkup {
	buttons := make([]models.InlineKeyboardButton, 0, len(staff))
	for _, s := range staff {
		buttons = append(buttons, Button(s.Name, BookStaff+s.ID))
	}
	return NewBuilder().Grid(buttons, 2).Row(CancelButton()).Build()
}

// AppointmentActions кнопки допустимых переходов статуса записи.
// Для завершённой записи без отзыва добавляется кнопка отзыва.
func AppointmentActions(a model.Appointment, reviewed bool) *models.InlineKeyboardMarkup {
	var row []models.InlineKeyboardButton
	if a.Status.CanTransitionTo(model.AppointmentStatusConfirmed) {
		row = append(row, Button("✅ Подтвердить", ApptConfirm+a.ID))
	}
	if a.Status.CanTransitionTo(model.AppointmentStatusCompleted) {
		row = append(row, Button("✔️ Завершить", ApptComplete+a.ID))
	}
	if a.Status.CanTransitionTo(model.AppointmentStatusCancelled) {
		row = append(row, Button("❌ Отменить", ApptCancel+a.ID))
	}
	if a.Status == model.AppointmentStatusCompleted && !reviewed {
		row = append(row, Button("⭐ Отзыв", ApptReview+a.ID))
	}
	return NewBuilder().Row(row...).BuildOrNil()
}

// DeleteButton кнопка удаления с заданным префиксом
func DeleteButton(text, prefix, id string) models.InlineKeyboardButton {
	return Button("🗑 "+text, prefix+id)
}
