package formatting

// pluralize выбирает форму слова для числа: one (1, 21), few (2-4, 22-24), many (остальные)
func pluralize(count int, one, few, many string) string {
	if count < 0 {
		count = -count
	}
	if count%10 == 1 && count%100 != 11 {
		return one
	}
	if count%10 >= 2 && count%10 <= 4 && (count%100 < 10 || count%100 >= 20) {
		return few
	}
	return many
}

// PluralizeAppointments возвращает правильное склонение слова "запись"
func PluralizeAppointments(count int) string {
	return pluralize(count, "запись", "записи", "записей")
}

// PluralizeQuestions возвращает правильное склонение слова "вопрос"
func PluralizeQuestions(count int) string {
	return pluralize(count, "вопрос", "вопроса", "вопросов")
}

// PluralizeReviews возвращает правильное склонение слова "отзыв"
func PluralizeReviews(count int) string {
	return pluralize(count, "отзыв", "отзыва", "отзывов")
}

// PluralizeCustomers возвращает правильное склонение слова "клиент"
func PluralizeCustomers(count int) string {
	return pluralize(count, "клиент", "клиента", "клиентов")
}

// PluralizeStudents возвращает правильное склонение слова "студент"
func PluralizeStudents(count int) string {
	return pluralize(count, "студент", "студента", "студентов")
}
