package repository

import (
	"context"

	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/Freeeeeet/admin_bot/internal/repository/base"
	"github.com/Freeeeeet/admin_bot/internal/storage"
)

type StudySubjectRepository struct {
	*base.Collection[model.StudySubject]
}

func NewStudySubjectRepository(backend storage.Backend) *StudySubjectRepository {
	return &StudySubjectRepository{Collection: base.NewCollection[model.StudySubject](backend, StudySubjectsKey)}
}

type StudySessionRepository struct {
	*base.Collection[model.StudySession]
}

func NewStudySessionRepository(backend storage.Backend) *StudySessionRepository {
	return &StudySessionRepository{Collection: base.NewCollection[model.StudySession](backend, StudySessionsKey)}
}

// GetBySubjectID занятия по предмету
func (r *StudySessionRepository) GetBySubjectID(ctx context.Context, subjectID string) ([]model.StudySession, error) {
	return r.Find(ctx, func(s model.StudySession) bool { return s.SubjectID == subjectID })
}

// GetByMonth занятия за месяц YYYY-MM
func (r *StudySessionRepository) GetByMonth(ctx context.Context, month string) ([]model.StudySession, error) {
	return r.Find(ctx, func(s model.StudySession) bool { return s.Month() == month })
}

type MonthlyGoalRepository struct {
	*base.Collection[model.MonthlyGoal]
}

func NewMonthlyGoalRepository(backend storage.Backend) *MonthlyGoalRepository {
	return &MonthlyGoalRepository{Collection: base.NewCollection[model.MonthlyGoal](backend, StudyGoalsKey)}
}

// GetBySubjectID цели по предмету
func (r *MonthlyGoalRepository) GetBySubjectID(ctx context.Context, subjectID string) ([]model.MonthlyGoal, error) {
	return r.Find(ctx, func(g model.MonthlyGoal) bool { return g.SubjectID == subjectID })
}

// GetByMonthAndSubject цель на месяц; пустой subjectID ищет общую цель
func (r *MonthlyGoalRepository) GetByMonthAndSubject(ctx context.Context, month, subjectID string) (*model.MonthlyGoal, error) {
	found, err := r.Find(ctx, func(g model.MonthlyGoal) bool { return g.Month == month && g.SubjectID == subjectID })
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}
