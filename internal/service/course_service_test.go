package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/Freeeeeet/admin_bot/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCourses(repos *repository.Repositories) *CourseService {
	return NewCourseService(repos.Instructors, repos.Courses, zap.NewNop())
}

func intPtr(n int) *int { return &n }

func TestCourseService_CreateCourse(t *testing.T) {
	ctx := context.Background()
	courses := newTestCourses(newTestRepos())

	instructor, err := courses.CreateInstructor(ctx, InstructorInput{Name: " Anna ", Email: "anna@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Anna", instructor.Name)

	created, err := courses.CreateCourse(ctx, CourseInput{
		Name:         "Go basics",
		InstructorID: instructor.ID,
		StudentCount: intPtr(12),
	})
	require.NoError(t, err)
	assert.Equal(t, model.CourseStatusActive, created.Status)
	assert.Zero(t, created.StudentCount, "новый курс создаётся без студентов")

	_, err = courses.CreateCourse(ctx, CourseInput{Name: "Rust", InstructorID: "missing"})
	assert.ErrorIs(t, err, ErrInstructorNotFound)

	_, err = courses.CreateCourse(ctx, CourseInput{Name: "Rust", InstructorID: instructor.ID, Status: "archived"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "status", verr.Field)
}

func TestCourseService_DuplicateName(t *testing.T) {
	ctx := context.Background()
	courses := newTestCourses(newTestRepos())

	instructor, err := courses.CreateInstructor(ctx, InstructorInput{Name: "Anna", Email: "anna@example.com"})
	require.NoError(t, err)

	goCourse, err := courses.CreateCourse(ctx, CourseInput{Name: "Go", InstructorID: instructor.ID})
	require.NoError(t, err)
	rust, err := courses.CreateCourse(ctx, CourseInput{Name: "Rust", InstructorID: instructor.ID})
	require.NoError(t, err)

	_, err = courses.CreateCourse(ctx, CourseInput{Name: " Go ", InstructorID: instructor.ID})
	assert.ErrorIs(t, err, ErrCourseNameTaken)

	_, err = courses.UpdateCourse(ctx, rust.ID, CourseInput{Name: "Go", InstructorID: instructor.ID})
	assert.ErrorIs(t, err, ErrCourseNameTaken)

	// Собственное название при обновлении не конфликтует
	updated, err := courses.UpdateCourse(ctx, goCourse.ID, CourseInput{
		Name:         "Go",
		InstructorID: instructor.ID,
		Description:  "Основы языка",
		Status:       model.CourseStatusPaused,
	})
	require.NoError(t, err)
	assert.Equal(t, model.CourseStatusPaused, updated.Status)

	// Регистр различается, это другое название
	_, err = courses.CreateCourse(ctx, CourseInput{Name: "go", InstructorID: instructor.ID})
	assert.NoError(t, err)
}

func TestCourseService_DeleteCourseWithStudents(t *testing.T) {
	ctx := context.Background()
	courses := newTestCourses(newTestRepos())

	instructor, err := courses.CreateInstructor(ctx, InstructorInput{Name: "Anna", Email: "anna@example.com"})
	require.NoError(t, err)
	course, err := courses.CreateCourse(ctx, CourseInput{Name: "Go", InstructorID: instructor.ID})
	require.NoError(t, err)

	_, err = courses.SetStudentCount(ctx, course.ID, 3)
	require.NoError(t, err)

	err = courses.DeleteCourse(ctx, course.ID)
	assert.ErrorIs(t, err, ErrCourseHasStudents)
	_, err = courses.GetCourse(ctx, course.ID)
	require.NoError(t, err, "курс со студентами остаётся")

	err = courses.DeleteInstructor(ctx, instructor.ID)
	assert.ErrorIs(t, err, ErrInstructorInUse)

	_, err = courses.UpdateCourse(ctx, course.ID, CourseInput{Name: "Go", InstructorID: instructor.ID, StudentCount: intPtr(0)})
	require.NoError(t, err)
	require.NoError(t, courses.DeleteCourse(ctx, course.ID))

	_, err = courses.GetCourse(ctx, course.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, courses.DeleteInstructor(ctx, instructor.ID))

	_, err = courses.SetStudentCount(ctx, "missing", -1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCourseService_ListCoursesFilter(t *testing.T) {
	ctx := context.Background()
	courses := newTestCourses(newTestRepos())

	anna, err := courses.CreateInstructor(ctx, InstructorInput{Name: "Anna", Email: "anna@example.com"})
	require.NoError(t, err)
	boris, err := courses.CreateInstructor(ctx, InstructorInput{Name: "Boris", Email: "boris@example.com"})
	require.NoError(t, err)

	_, err = courses.CreateCourse(ctx, CourseInput{Name: "Go basics", InstructorID: anna.ID})
	require.NoError(t, err)
	_, err = courses.CreateCourse(ctx, CourseInput{Name: "Advanced Go", InstructorID: boris.ID, Status: model.CourseStatusCompleted})
	require.NoError(t, err)
	_, err = courses.CreateCourse(ctx, CourseInput{Name: "SQL", InstructorID: boris.ID})
	require.NoError(t, err)

	tests := []struct {
		name   string
		filter CourseFilter
		want   []string
	}{
		{"all", CourseFilter{}, []string{"Go basics", "Advanced Go", "SQL"}},
		{"search ignores case", CourseFilter{Search: " GO "}, []string{"Go basics", "Advanced Go"}},
		{"instructor", CourseFilter{InstructorID: boris.ID}, []string{"Advanced Go", "SQL"}},
		{"status", CourseFilter{Status: model.CourseStatusCompleted}, []string{"Advanced Go"}},
		{"nothing", CourseFilter{Search: "python"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := courses.ListCourses(ctx, tt.filter)
			require.NoError(t, err)
			names := make([]string, 0, len(list))
			for _, c := range list {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestCourseService_InstructorValidation(t *testing.T) {
	ctx := context.Background()
	courses := newTestCourses(newTestRepos())

	_, err := courses.CreateInstructor(ctx, InstructorInput{Name: "Anna", Email: "not-an-email"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "email", verr.Field)
	assert.Equal(t, "email", verr.Tag)

	found, err := courses.CreateInstructor(ctx, InstructorInput{Name: "Anna", Email: "anna@example.com"})
	require.NoError(t, err)
	byName, err := courses.FindInstructorByName(ctx, "anna")
	require.NoError(t, err)
	assert.Equal(t, found.ID, byName.ID)
}
