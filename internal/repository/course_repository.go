package repository

import (
	"context"

	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/Freeeeeet/admin_bot/internal/repository/base"
	"github.com/Freeeeeet/admin_bot/internal/storage"
)

type InstructorRepository struct {
	*base.Collection[model.Instructor]
}

func NewInstructorRepository(backend storage.Backend) *InstructorRepository {
	return &InstructorRepository{Collection: base.NewCollection[model.Instructor](backend, InstructorsKey)}
}

type CourseRepository struct {
	*base.Collection[model.Course]
}

func NewCourseRepository(backend storage.Backend) *CourseRepository {
	return &CourseRepository{Collection: base.NewCollection[model.Course](backend, CoursesKey)}
}

// GetByName ищет курс по точному названию
func (r *CourseRepository) GetByName(ctx context.Context, name string) (*model.Course, error) {
	found, err := r.Find(ctx, func(c model.Course) bool { return c.Name == name })
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

// GetByInstructorID курсы преподавателя
func (r *CourseRepository) GetByInstructorID(ctx context.Context, instructorID string) ([]model.Course, error) {
	return r.Find(ctx, func(c model.Course) bool { return c.InstructorID == instructorID })
}
