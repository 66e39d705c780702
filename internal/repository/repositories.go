package repository

import (
	"github.com/Freeeeeet/admin_bot/internal/repository/base"
	"github.com/Freeeeeet/admin_bot/internal/storage"
)

// Ключи коллекций в хранилище
const (
	ServicesKey     = "booking-services"
	StaffKey        = "booking-staff"
	AppointmentsKey = "booking-appointments"
	ReviewsKey      = "booking-reviews"
	SubjectsKey     = "subjects"
	QuestionsKey    = "questions"
	ExamsKey        = "exams"

	InstructorsKey   = "instructors"
	CoursesKey       = "courses"
	StudySubjectsKey = "study_subjects"
	StudySessionsKey = "study_sessions"
	StudyGoalsKey    = "study_goals"
)

// ErrDuplicateID запись с таким ID уже есть в коллекции
var ErrDuplicateID = base.ErrDuplicateID

// Repositories все репозитории поверх одного хранилища
type Repositories struct {
	Services     *ServiceRepository
	Staff        *StaffRepository
	Appointments *AppointmentRepository
	Reviews      *ReviewRepository
	Subjects     *SubjectRepository
	Questions    *QuestionRepository
	Exams        *ExamRepository

	Instructors   *InstructorRepository
	Courses       *CourseRepository
	StudySubjects *StudySubjectRepository
	StudySessions *StudySessionRepository
	StudyGoals    *MonthlyGoalRepository
}

// New создаёт репозитории для backend
func New(backend storage.Backend) *Repositories {
	return &Repositories{
		Services:     NewServiceRepository(backend),
		Staff:        NewStaffRepository(backend),
		Appointments: NewAppointmentRepository(backend),
		Reviews:      NewReviewRepository(backend),
		Subjects:     NewSubjectRepository(backend),
		Questions:    NewQuestionRepository(backend),
		Exams:        NewExamRepository(backend),

		Instructors:   NewInstructorRepository(backend),
		Courses:       NewCourseRepository(backend),
		StudySubjects: NewStudySubjectRepository(backend),
		StudySessions: NewStudySessionRepository(backend),
		StudyGoals:    NewMonthlyGoalRepository(backend),
	}
}
