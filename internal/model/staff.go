package model

// WorkingHours рабочее окно сотрудника в конкретный день недели
type WorkingHours struct {
	DayOfWeek int    `json:"dayOfWeek"` // 0 = Sunday, 6 = Saturday
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "17:00"
}

// Staff сотрудник, к которому записываются клиенты
type Staff struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	MaxCustomersPerDay int            `json:"maxCustomersPerDay"`
	WorkingHours       []WorkingHours `json:"workingHours"`
	ServiceIDs         []string       `json:"services"`
}

func (s Staff) GetID() string { return s.ID }

// HoursFor возвращает первое рабочее окно на указанный день недели.
// Записи с повторяющимся днём отсекаются при вводе, здесь берётся первая.
func (s *Staff) HoursFor(weekday int) (WorkingHours, bool) {
	for _, wh := range s.WorkingHours {
		if wh.DayOfWeek == weekday {
			return wh, true
		}
	}
	return WorkingHours{}, false
}

// Provides проверяет, оказывает ли сотрудник услугу
func (s *Staff) Provides(serviceID string) bool {
	for _, id := range s.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}
