package availability

import (
	"errors"
	"fmt"
)

// Причины отказа в записи. Проверка возвращает только первую найденную.
var (
	ErrStaffNotFound          = errors.New("staff not found")
	ErrStaffNotWorkingThatDay = errors.New("staff does not work that day")
	ErrOutsideWorkingHours    = errors.New("time is outside working hours")
	ErrStaffFullyBooked       = errors.New("staff is fully booked for the day")
	ErrServiceNotFound        = errors.New("service not found")
	ErrTimeConflict           = errors.New("time conflicts with another appointment")
)

// Rejection отказ в записи с контекстом для пользовательского сообщения
type Rejection struct {
	Reason    error
	StaffID   string
	ServiceID string
	Date      string
	Time      string

	// Заполняются в зависимости от причины
	WorkingFrom   string // ErrOutsideWorkingHours
	WorkingTo     string // ErrOutsideWorkingHours
	Limit         int    // ErrStaffFullyBooked
	ConflictID    string // ErrTimeConflict
	ConflictStart string // ErrTimeConflict
	ConflictEnd   string // ErrTimeConflict
}

func (r *Rejection) Error() string {
	switch r.Reason {
	case ErrOutsideWorkingHours:
		return fmt.Sprintf("%s: %s not in %s-%s", r.Reason, r.Time, r.WorkingFrom, r.WorkingTo)
	case ErrStaffFullyBooked:
		return fmt.Sprintf("%s: limit %d on %s", r.Reason, r.Limit, r.Date)
	case ErrTimeConflict:
		return fmt.Sprintf("%s: %s %s overlaps %s-%s", r.Reason, r.Date, r.Time, r.ConflictStart, r.ConflictEnd)
	default:
		return fmt.Sprintf("%s: staff %s, %s %s", r.Reason, r.StaffID, r.Date, r.Time)
	}
}

func (r *Rejection) Unwrap() error {
	return r.Reason
}

// Code машинно-читаемый код причины
func (r *Rejection) Code() string {
	return ReasonCode(r.Reason)
}

// ReasonCode возвращает код для причины отказа
func ReasonCode(reason error) string {
	switch {
	case errors.Is(reason, ErrStaffNotFound):
		return "staff_not_found"
	case errors.Is(reason, ErrStaffNotWorkingThatDay):
		return "staff_not_working_that_day"
	case errors.Is(reason, ErrOutsideWorkingHours):
		return "outside_working_hours"
	case errors.Is(reason, ErrStaffFullyBooked):
		return "staff_fully_booked"
	case errors.Is(reason, ErrServiceNotFound):
		return "service_not_found"
	case errors.Is(reason, ErrTimeConflict):
		return "time_conflict"
	default:
		return "unknown"
	}
}
