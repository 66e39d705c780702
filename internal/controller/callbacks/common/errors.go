package common

import (
	"errors"

	"github.com/Freeeeeet/admin_bot/internal/availability"
	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/admin_bot/internal/examgen"
	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/Freeeeeet/admin_bot/internal/service"
)

// Общие ошибки для обработчиков
var (
	ErrNotAdmin      = errors.New("user is not an admin")
	ErrNoMessage     = errors.New("no message in callback")
	ErrInvalidFormat = errors.New("invalid callback format")
)

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(err error) string {
	var rejection *availability.Rejection
	var insufficient *examgen.InsufficientQuestionsError
	var invalid *service.ValidationError

	switch {
	case errors.As(err, &rejection):
		return formatting.FormatRejection(rejection)
	case errors.As(err, &insufficient):
		return formatting.FormatInsufficient(insufficient)
	case errors.As(err, &invalid):
		return formatting.FormatInvalidField(invalid.Field, invalid.Tag)
	case errors.Is(err, examgen.ErrInvalidCount):
		return "❌ Количество вопросов должно быть больше нуля"
	case errors.Is(err, ErrNotAdmin):
		return "❌ Эта функция доступна только администраторам"
	case errors.Is(err, ErrNoMessage):
		return "❌ Ошибка обработки сообщения"
	case errors.Is(err, ErrInvalidFormat):
		return "❌ Неверный формат данных"
	case errors.Is(err, model.ErrInvalidTransition):
		return "❌ Нельзя перевести запись в этот статус"
	case errors.Is(err, service.ErrAppointmentNotCompleted):
		return "❌ Отзыв можно оставить только к завершённой записи"
	case errors.Is(err, service.ErrReviewExists):
		return "❌ Отзыв к этой записи уже есть"
	case errors.Is(err, service.ErrDuplicateWorkingDay):
		return "❌ День недели указан в графике дважды"
	case errors.Is(err, service.ErrInvalidWorkingHours):
		return "❌ Начало рабочего дня должно быть раньше конца"
	case errors.Is(err, service.ErrSubjectCodeTaken):
		return "❌ Предмет с таким кодом уже есть"
	case errors.Is(err, service.ErrSubjectInUse):
		return "❌ У предмета есть вопросы, сначала удалите их"
	case errors.Is(err, service.ErrUnknownKnowledgeBlock):
		return "❌ Такого блока знаний нет у предмета"
	case errors.Is(err, service.ErrCourseNameTaken):
		return "❌ Курс с таким названием уже есть"
	case errors.Is(err, service.ErrCourseHasStudents):
		return "❌ На курсе есть студенты, удалить его нельзя"
	case errors.Is(err, service.ErrInstructorInUse):
		return "❌ У преподавателя есть курсы"
	case errors.Is(err, service.ErrGoalExists):
		return "❌ Цель на этот месяц уже поставлена"
	case errors.Is(err, service.ErrServiceNotFound):
		return "❌ Услуга не найдена"
	case errors.Is(err, service.ErrStaffNotFound):
		return "❌ Сотрудник не найден"
	case errors.Is(err, service.ErrAppointmentNotFound):
		return "❌ Запись не найдена"
	case errors.Is(err, service.ErrReviewNotFound):
		return "❌ Отзыв не найден"
	case errors.Is(err, service.ErrSubjectNotFound):
		return "❌ Предмет не найден"
	case errors.Is(err, service.ErrQuestionNotFound):
		return "❌ Вопрос не найден"
	case errors.Is(err, service.ErrExamNotFound):
		return "❌ Экзамен не найден"
	case errors.Is(err, service.ErrInstructorNotFound):
		return "❌ Преподаватель не найден"
	case errors.Is(err, service.ErrCourseNotFound):
		return "❌ Курс не найден"
	case errors.Is(err, service.ErrStudySubjectNotFound):
		return "❌ Предмет дневника не найден"
	case errors.Is(err, service.ErrStudySessionNotFound):
		return "❌ Занятие не найдено"
	case errors.Is(err, service.ErrGoalNotFound):
		return "❌ Цель не найдена"
	case errors.Is(err, service.ErrInvalidInput):
		return "❌ Некорректные данные"
	default:
		return "❌ Произошла ошибка"
	}
}

// IsUserError ошибка вызвана вводом пользователя, а не сбоем
func IsUserError(err error) bool {
	return ErrorMessage(err) != ErrorMessage(nil)
}
