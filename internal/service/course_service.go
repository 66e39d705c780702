package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/Freeeeeet/admin_bot/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InstructorInput struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email,max=254"`
}

// CourseInput поля курса. Status пустой при создании означает active,
// при обновлении оставляет прежний. StudentCount при создании игнорируется.
type CourseInput struct {
	Name         string             `json:"name" validate:"required,max=100"`
	InstructorID string             `json:"instructorId" validate:"required"`
	Description  string             `json:"description" validate:"max=2000"`
	Status       model.CourseStatus `json:"status" validate:"omitempty,coursestatus"`
	StudentCount *int               `json:"studentCount,omitempty" validate:"omitempty,gte=0"`
}

// CourseFilter отбор курсов: подстрока названия без учёта регистра, преподаватель, статус
type CourseFilter struct {
	Search       string
	InstructorID string
	Status       model.CourseStatus
}

func (f CourseFilter) match(c model.Course) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(f.Search)) {
		return false
	}
	if f.InstructorID != "" && c.InstructorID != f.InstructorID {
		return false
	}
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	return true
}

// CourseService курсы и преподаватели
type CourseService struct {
	instructors *repository.InstructorRepository
	courses     *repository.CourseRepository
	logger      *zap.Logger
}

func NewCourseService(
	instructors *repository.InstructorRepository,
	courses *repository.CourseRepository,
	logger *zap.Logger,
) *CourseService {
	return &CourseService{
		instructors: instructors,
		courses:     courses,
		logger:      logger,
	}
}

// ListInstructors получает всех преподавателей
func (s *CourseService) ListInstructors(ctx context.Context) ([]model.Instructor, error) {
	return s.instructors.GetAll(ctx)
}

// GetInstructor получает преподавателя по ID
func (s *CourseService) GetInstructor(ctx context.Context, id string) (*model.Instructor, error) {
	instructor, err := s.instructors.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get instructor: %w", err)
	}
	if instructor == nil {
		return nil, ErrInstructorNotFound
	}
	return instructor, nil
}

// FindInstructorByName ищет преподавателя по имени без учёта регистра
func (s *CourseService) FindInstructorByName(ctx context.Context, name string) (*model.Instructor, error) {
	found, err := s.instructors.Find(ctx, func(i model.Instructor) bool {
		return strings.EqualFold(i.Name, strings.TrimSpace(name))
	})
	if err != nil {
		return nil, fmt.Errorf("find instructor: %w", err)
	}
	if len(found) == 0 {
		return nil, ErrInstructorNotFound
	}
	return &found[0], nil
}

// CreateInstructor создаёт преподавателя
func (s *CourseService) CreateInstructor(ctx context.Context, in InstructorInput) (*model.Instructor, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	instructor := model.Instructor{
		ID:    uuid.NewString(),
		Name:  in.Name,
		Email: in.Email,
	}
	if err := s.instructors.Add(ctx, instructor); err != nil {
		return nil, fmt.Errorf("create instructor: %w", err)
	}

	s.logger.Info("Instructor created",
		zap.String("instructor_id", instructor.ID),
		zap.String("name", instructor.Name),
	)
	return &instructor, nil
}

// UpdateInstructor обновляет преподавателя
func (s *CourseService) UpdateInstructor(ctx context.Context, id string, in InstructorInput) (*model.Instructor, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	instructor, err := s.GetInstructor(ctx, id)
	if err != nil {
		return nil, err
	}
	instructor.Name = in.Name
	instructor.Email = in.Email

	if err := s.instructors.Update(ctx, *instructor); err != nil {
		return nil, fmt.Errorf("update instructor: %w", err)
	}

	s.logger.Info("Instructor updated", zap.String("instructor_id", id))
	return instructor, nil
}

// DeleteInstructor удаляет преподавателя без курсов
func (s *CourseService) DeleteInstructor(ctx context.Context, id string) error {
	if _, err := s.GetInstructor(ctx, id); err != nil {
		return err
	}

	courses, err := s.courses.GetByInstructorID(ctx, id)
	if err != nil {
		return fmt.Errorf("get courses by instructor: %w", err)
	}
	if len(courses) > 0 {
		return fmt.Errorf("%d courses: %w", len(courses), ErrInstructorInUse)
	}

	if err := s.instructors.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete instructor: %w", err)
	}

	s.logger.Info("Instructor deleted", zap.String("instructor_id", id))
	return nil
}

// ListCourses получает курсы, подходящие под фильтр, в порядке хранения
func (s *CourseService) ListCourses(ctx context.Context, filter CourseFilter) ([]model.Course, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	courses, err := s.courses.Find(ctx, filter.match)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	if courses == nil {
		courses = []model.Course{}
	}
	return courses, nil
}

// GetCourse получает курс по ID
func (s *CourseService) GetCourse(ctx context.Context, id string) (*model.Course, error) {
	course, err := s.courses.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}
	return course, nil
}

// FindCourseByName ищет курс по точному названию
func (s *CourseService) FindCourseByName(ctx context.Context, name string) (*model.Course, error) {
	course, err := s.courses.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("get course by name: %w", err)
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}
	return course, nil
}

// CreateCourse создаёт курс без студентов
func (s *CourseService) CreateCourse(ctx context.Context, in CourseInput) (*model.Course, error) {
	if err := s.checkCourse(ctx, "", &in); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = model.CourseStatusActive
	}

	course := model.Course{
		ID:           uuid.NewString(),
		Name:         in.Name,
		InstructorID: in.InstructorID,
		Description:  in.Description,
		StudentCount: 0,
		Status:       status,
	}
	if err := s.courses.Add(ctx, course); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}

	s.logger.Info("Course created",
		zap.String("course_id", course.ID),
		zap.String("name", course.Name),
		zap.String("instructor_id", course.InstructorID),
	)
	return &course, nil
}

// UpdateCourse обновляет курс. Nil StudentCount оставляет число студентов прежним.
func (s *CourseService) UpdateCourse(ctx context.Context, id string, in CourseInput) (*model.Course, error) {
	course, err := s.GetCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkCourse(ctx, id, &in); err != nil {
		return nil, err
	}

	course.Name = in.Name
	course.InstructorID = in.InstructorID
	course.Description = in.Description
	if in.Status != "" {
		course.Status = in.Status
	}
	if in.StudentCount != nil {
		course.StudentCount = *in.StudentCount
	}

	if err := s.courses.Update(ctx, *course); err != nil {
		return nil, fmt.Errorf("update course: %w", err)
	}

	s.logger.Info("Course updated",
		zap.String("course_id", id),
		zap.String("status", string(course.Status)),
		zap.Int("student_count", course.StudentCount),
	)
	return course, nil
}

// SetStudentCount меняет только число записанных студентов
func (s *CourseService) SetStudentCount(ctx context.Context, id string, count int) (*model.Course, error) {
	if count < 0 {
		return nil, &ValidationError{Field: "studentCount", Tag: "gte", Param: "0"}
	}

	course, err := s.GetCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	course.StudentCount = count

	if err := s.courses.Update(ctx, *course); err != nil {
		return nil, fmt.Errorf("update course: %w", err)
	}

	s.logger.Info("Course enrollment changed", zap.String("course_id", id), zap.Int("student_count", count))
	return course, nil
}

// DeleteCourse удаляет курс, если на нём нет студентов
func (s *CourseService) DeleteCourse(ctx context.Context, id string) error {
	course, err := s.GetCourse(ctx, id)
	if err != nil {
		return err
	}
	if course.StudentCount > 0 {
		return fmt.Errorf("%d students: %w", course.StudentCount, ErrCourseHasStudents)
	}

	if err := s.courses.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete course: %w", err)
	}

	s.logger.Info("Course deleted", zap.String("course_id", id))
	return nil
}

// checkCourse проверяет ввод, преподавателя и уникальность названия среди курсов кроме selfID
func (s *CourseService) checkCourse(ctx context.Context, selfID string, in *CourseInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if err := validateStruct(*in); err != nil {
		return err
	}

	if _, err := s.GetInstructor(ctx, in.InstructorID); err != nil {
		return err
	}

	existing, err := s.courses.GetByName(ctx, in.Name)
	if err != nil {
		return fmt.Errorf("get course by name: %w", err)
	}
	if existing != nil && existing.ID != selfID {
		return fmt.Errorf("%q: %w", in.Name, ErrCourseNameTaken)
	}
	return nil
}
