package handlers

// Форматы аргументов команд администратора
const (
	AddServiceUsage  = "/addservice Название | цена в рублях | длительность в минутах\nПример: /addservice Стрижка | 1500 | 45"
	AddStaffUsage    = "/addstaff Имя | клиентов в день | график | услуги через запятую\nПример: /addstaff Анна | 8 | Пн-Пт 09:00-18:00, Сб 10:00-14:00 | Стрижка, Окрашивание"
	AddSubjectUsage  = "/addsubject КОД | Название | кредиты | блоки через запятую\nПример: /addsubject MATH101 | Математика | 5 | алгебра, геометрия"
	AddQuestionUsage = "/addquestion КОД | сложность | блок | текст вопроса\nСложность: easy, medium, hard, very_hard\nПример: /addquestion MATH101 | easy | алгебра | Сколько будет 2+2?"
	GenExamUsage     = "/genexam КОД | Название | сложность:блок:количество, ...\nПример: /genexam MATH101 | Контрольная | easy:алгебра:3, hard:геометрия:2"
	QuestionsUsage   = "/questions КОД"
	ReplyUsage       = "/reply ID отзыва | текст ответа"

	AddInstructorUsage   = "/addinstructor Имя | email\nПример: /addinstructor Анна Петрова | anna@example.com"
	AddCourseUsage       = "/addcourse Название | преподаватель | описание\nПример: /addcourse Основы Go | Анна Петрова | Вводный курс"
	SetStudentsUsage     = "/setstudents Название курса | число студентов\nПример: /setstudents Основы Go | 12"
	AddStudySubjectUsage = "/addstudysubject Название\nПример: /addstudysubject Математика"
	LogStudyUsage        = "/logstudy предмет | дата | минуты | что изучено\nПример: /logstudy Математика | сегодня | 90 | Пределы"
	GoalUsage            = "/goal ГГГГ-ММ | часы | предмет (необязательно)\nПример: /goal 2025-03 | 20 | Математика"
)

// Ограничения вывода
const (
	// MaxListedAppointments записей в /appointments, каждая отдельным сообщением с кнопками
	MaxListedAppointments = 30
)
