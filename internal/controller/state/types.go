package state

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

const (
	StateNone UserState = "" // Нет активного состояния

	// Запись клиента: услуга и сотрудник выбираются кнопками, дальше текстом
	StateBookingStaff UserState = "booking_staff"
	StateBookingDate  UserState = "booking_date"
	StateBookingTime  UserState = "booking_time"
	StateBookingName  UserState = "booking_name"
	StateBookingPhone UserState = "booking_phone"

	// Отзыв к завершённой записи
	StateReviewRating  UserState = "review_rating"
	StateReviewComment UserState = "review_comment"
)

// Ключи временных данных диалога
const (
	KeyServiceID     = "service_id"
	KeyStaffID       = "staff_id"
	KeyDate          = "date"
	KeyTime          = "time"
	KeyCustomerName  = "customer_name"
	KeyAppointmentID = "appointment_id"
	KeyRating        = "rating"
)

// UserData хранит временные данные пользователя во время диалога
type UserData struct {
	State UserState
	Data  map[string]interface{} // Временные данные для текущего диалога
}
