package service

import (
	"errors"
	"fmt"
)

// ErrNotFound общая причина для всех "не найдено"
var ErrNotFound = errors.New("not found")

var (
	ErrServiceNotFound     = fmt.Errorf("service %w", ErrNotFound)
	ErrStaffNotFound       = fmt.Errorf("staff %w", ErrNotFound)
	ErrAppointmentNotFound = fmt.Errorf("appointment %w", ErrNotFound)
	ErrReviewNotFound      = fmt.Errorf("review %w", ErrNotFound)
	ErrSubjectNotFound     = fmt.Errorf("subject %w", ErrNotFound)
	ErrQuestionNotFound    = fmt.Errorf("question %w", ErrNotFound)
	ErrExamNotFound        = fmt.Errorf("exam %w", ErrNotFound)

	ErrInstructorNotFound   = fmt.Errorf("instructor %w", ErrNotFound)
	ErrCourseNotFound       = fmt.Errorf("course %w", ErrNotFound)
	ErrStudySubjectNotFound = fmt.Errorf("study subject %w", ErrNotFound)
	ErrStudySessionNotFound = fmt.Errorf("study session %w", ErrNotFound)
	ErrGoalNotFound         = fmt.Errorf("monthly goal %w", ErrNotFound)
)

var (
	ErrDuplicateWorkingDay = errors.New("working hours repeat the same day of week")
	ErrInvalidWorkingHours = errors.New("working hours start must be before end")

	ErrAppointmentNotCompleted = errors.New("appointment is not completed")
	ErrReviewExists            = errors.New("appointment already has a review")

	ErrSubjectCodeTaken      = errors.New("subject code is already taken")
	ErrSubjectInUse          = errors.New("subject still has questions")
	ErrUnknownKnowledgeBlock = errors.New("knowledge block is not declared by the subject")

	ErrCourseNameTaken   = errors.New("course name is already taken")
	ErrCourseHasStudents = errors.New("course has enrolled students")
	ErrInstructorInUse   = errors.New("instructor still teaches courses")

	ErrGoalExists = errors.New("goal for this month and subject already exists")
)
