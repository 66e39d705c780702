package model

// CourseStatus состояние курса
type CourseStatus string

const (
	CourseStatusActive    CourseStatus = "active"
	CourseStatusCompleted CourseStatus = "completed"
	CourseStatusPaused    CourseStatus = "paused"
)

// CourseStatuses все статусы в порядке показа
var CourseStatuses = []CourseStatus{CourseStatusActive, CourseStatusPaused, CourseStatusCompleted}

func (s CourseStatus) IsValid() bool {
	switch s {
	case CourseStatusActive, CourseStatusCompleted, CourseStatusPaused:
		return true
	}
	return false
}

// Instructor преподаватель курсов
type Instructor struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (i Instructor) GetID() string { return i.ID }

// Course учебный курс. Название уникально с учётом регистра.
type Course struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	InstructorID string       `json:"instructorId"`
	Description  string       `json:"description"`
	StudentCount int          `json:"studentCount"`
	Status       CourseStatus `json:"status"`
}

func (c Course) GetID() string { return c.ID }
