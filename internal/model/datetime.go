package model

import (
	"fmt"
	"time"
)

// Форматы даты и времени, в которых записи хранятся в коллекциях
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Clock время суток в минутах от полуночи
type Clock int

// ParseClock разбирает строку вида "HH:mm" (24 часа, с ведущими нулями)
func ParseClock(s string) (Clock, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid time %q: want HH:mm", s)
	}

	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}

	return Clock(t.Hour()*60 + t.Minute()), nil
}

// Add сдвигает время на указанное количество минут (может перейти за полночь)
func (c Clock) Add(minutes int) Clock {
	return c + Clock(minutes)
}

// String возвращает время в формате "HH:mm"
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60%24, int(c)%60)
}

// ParseDate разбирает дату вида "YYYY-MM-DD" в UTC
func ParseDate(s string) (time.Time, error) {
	if len(s) != len(DateLayout) {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}

	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}

	return d, nil
}

// FormatDate форматирует дату для хранения
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
