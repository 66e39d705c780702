package model

import "time"

// MonthLayout формат месяца цели
const MonthLayout = "2006-01"

// StudySubject предмет дневника занятий
type StudySubject struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s StudySubject) GetID() string { return s.ID }

// StudySession одно занятие по предмету
type StudySession struct {
	ID        string    `json:"id"`
	SubjectID string    `json:"subjectId"`
	Date      string    `json:"date"`     // YYYY-MM-DD
	Duration  int       `json:"duration"` // в минутах
	Content   string    `json:"content"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s StudySession) GetID() string { return s.ID }

// Month месяц занятия в формате YYYY-MM
func (s StudySession) Month() string {
	if len(s.Date) < len(MonthLayout) {
		return ""
	}
	return s.Date[:len(MonthLayout)]
}

// MonthlyGoal цель на месяц в часах. Пустой SubjectID означает общую цель по всем предметам.
type MonthlyGoal struct {
	ID          string    `json:"id"`
	Month       string    `json:"month"`
	SubjectID   string    `json:"subjectId,omitempty"`
	TargetHours float64   `json:"targetHours"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (g MonthlyGoal) GetID() string { return g.ID }

// ParseMonth разбирает месяц вида "YYYY-MM"
func ParseMonth(s string) (time.Time, error) {
	return time.Parse(MonthLayout, s)
}
