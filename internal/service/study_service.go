package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/Freeeeeet/admin_bot/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StudySubjectInput struct {
	Name string `json:"name" validate:"required,max=100"`
}

type StudySessionInput struct {
	SubjectID string `json:"subjectId" validate:"required"`
	Date      string `json:"date" validate:"required,date"`
	Duration  int    `json:"duration" validate:"gt=0,lte=1440"`
	Content   string `json:"content" validate:"required,max=500"`
	Note      string `json:"note" validate:"max=1000"`
}

// MonthlyGoalInput цель на месяц. Пустой SubjectID задаёт общую цель.
type MonthlyGoalInput struct {
	Month       string  `json:"month" validate:"required,month"`
	SubjectID   string  `json:"subjectId"`
	TargetHours float64 `json:"targetHours" validate:"gt=0,lte=744"`
}

// SessionFilter отбор занятий по предмету и месяцу YYYY-MM, пустые поля не ограничивают
type SessionFilter struct {
	SubjectID string
	Month     string
}

// GoalProgress выполнение цели за месяц
type GoalProgress struct {
	Goal    model.MonthlyGoal `json:"goal"`
	Minutes int               `json:"minutes"`
	Percent float64           `json:"percent"` // 0..100
}

// StudyService дневник занятий: предметы, занятия и цели на месяц
type StudyService struct {
	subjects *repository.StudySubjectRepository
	sessions *repository.StudySessionRepository
	goals    *repository.MonthlyGoalRepository
	logger   *zap.Logger
	now      func() time.Time
}

func NewStudyService(
	subjects *repository.StudySubjectRepository,
	sessions *repository.StudySessionRepository,
	goals *repository.MonthlyGoalRepository,
	logger *zap.Logger,
) *StudyService {
	return &StudyService{
		subjects: subjects,
		sessions: sessions,
		goals:    goals,
		logger:   logger,
		now:      time.Now,
	}
}

// ListSubjects получает все предметы
func (s *StudyService) ListSubjects(ctx context.Context) ([]model.StudySubject, error) {
	return s.subjects.GetAll(ctx)
}

// GetSubject получает предмет по ID
func (s *StudyService) GetSubject(ctx context.Context, id string) (*model.StudySubject, error) {
	subject, err := s.subjects.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get study subject: %w", err)
	}
	if subject == nil {
		return nil, ErrStudySubjectNotFound
	}
	return subject, nil
}

// FindSubjectByName ищет предмет по названию без учёта регистра
func (s *StudyService) FindSubjectByName(ctx context.Context, name string) (*model.StudySubject, error) {
	found, err := s.subjects.Find(ctx, func(subject model.StudySubject) bool {
		return strings.EqualFold(subject.Name, strings.TrimSpace(name))
	})
	if err != nil {
		return nil, fmt.Errorf("find study subject: %w", err)
	}
	if len(found) == 0 {
		return nil, ErrStudySubjectNotFound
	}
	return &found[0], nil
}

// CreateSubject создаёт предмет
func (s *StudyService) CreateSubject(ctx context.Context, in StudySubjectInput) (*model.StudySubject, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	subject := model.StudySubject{
		ID:        uuid.NewString(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.subjects.Add(ctx, subject); err != nil {
		return nil, fmt.Errorf("create study subject: %w", err)
	}

	s.logger.Info("Study subject created", zap.String("subject_id", subject.ID), zap.String("name", subject.Name))
	return &subject, nil
}

// UpdateSubject переименовывает предмет
func (s *StudyService) UpdateSubject(ctx context.Context, id string, in StudySubjectInput) (*model.StudySubject, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	subject, err := s.GetSubject(ctx, id)
	if err != nil {
		return nil, err
	}
	subject.Name = in.Name
	subject.UpdatedAt = s.now().UTC()

	if err := s.subjects.Update(ctx, *subject); err != nil {
		return nil, fmt.Errorf("update study subject: %w", err)
	}

	s.logger.Info("Study subject updated", zap.String("subject_id", id))
	return subject, nil
}

// DeleteSubject удаляет предмет вместе с его занятиями и целями
func (s *StudyService) DeleteSubject(ctx context.Context, id string) error {
	if _, err := s.GetSubject(ctx, id); err != nil {
		return err
	}

	if err := s.subjects.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete study subject: %w", err)
	}

	sessions, err := s.sessions.GetBySubjectID(ctx, id)
	if err != nil {
		return fmt.Errorf("get sessions by subject: %w", err)
	}
	for _, session := range sessions {
		if err := s.sessions.Delete(ctx, session.ID); err != nil {
			return fmt.Errorf("delete session %s: %w", session.ID, err)
		}
	}

	goals, err := s.goals.GetBySubjectID(ctx, id)
	if err != nil {
		return fmt.Errorf("get goals by subject: %w", err)
	}
	for _, goal := range goals {
		if err := s.goals.Delete(ctx, goal.ID); err != nil {
			return fmt.Errorf("delete goal %s: %w", goal.ID, err)
		}
	}

	s.logger.Info("Study subject deleted",
		zap.String("subject_id", id),
		zap.Int("sessions_deleted", len(sessions)),
		zap.Int("goals_deleted", len(goals)),
	)
	return nil
}

// ListSessions занятия по фильтру, от ранних к поздним
func (s *StudyService) ListSessions(ctx context.Context, filter SessionFilter) ([]model.StudySession, error) {
	sessions, err := s.sessions.Find(ctx, func(session model.StudySession) bool {
		if filter.SubjectID != "" && session.SubjectID != filter.SubjectID {
			return false
		}
		return filter.Month == "" || session.Month() == filter.Month
	})
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	if sessions == nil {
		sessions = []model.StudySession{}
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Date < sessions[j].Date
	})
	return sessions, nil
}

// GetSession получает занятие по ID
func (s *StudyService) GetSession(ctx context.Context, id string) (*model.StudySession, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if session == nil {
		return nil, ErrStudySessionNotFound
	}
	return session, nil
}

// CreateSession записывает занятие по существующему предмету
func (s *StudyService) CreateSession(ctx context.Context, in StudySessionInput) (*model.StudySession, error) {
	if err := s.checkSession(ctx, &in); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	session := model.StudySession{
		ID:        uuid.NewString(),
		SubjectID: in.SubjectID,
		Date:      in.Date,
		Duration:  in.Duration,
		Content:   in.Content,
		Note:      in.Note,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.sessions.Add(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.logger.Info("Study session created",
		zap.String("session_id", session.ID),
		zap.String("subject_id", session.SubjectID),
		zap.String("date", session.Date),
		zap.Int("duration", session.Duration),
	)
	return &session, nil
}

// UpdateSession обновляет занятие
func (s *StudyService) UpdateSession(ctx context.Context, id string, in StudySessionInput) (*model.StudySession, error) {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkSession(ctx, &in); err != nil {
		return nil, err
	}

	session.SubjectID = in.SubjectID
	session.Date = in.Date
	session.Duration = in.Duration
	session.Content = in.Content
	session.Note = in.Note
	session.UpdatedAt = s.now().UTC()

	if err := s.sessions.Update(ctx, *session); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	s.logger.Info("Study session updated", zap.String("session_id", id))
	return session, nil
}

// DeleteSession удаляет занятие
func (s *StudyService) DeleteSession(ctx context.Context, id string) error {
	if _, err := s.GetSession(ctx, id); err != nil {
		return err
	}
	if err := s.sessions.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	s.logger.Info("Study session deleted", zap.String("session_id", id))
	return nil
}

// ListGoals цели за месяц YYYY-MM; пустой month возвращает все
func (s *StudyService) ListGoals(ctx context.Context, month string) ([]model.MonthlyGoal, error) {
	goals, err := s.goals.Find(ctx, func(g model.MonthlyGoal) bool {
		return month == "" || g.Month == month
	})
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	if goals == nil {
		goals = []model.MonthlyGoal{}
	}
	return goals, nil
}

// GetGoal получает цель по ID
func (s *StudyService) GetGoal(ctx context.Context, id string) (*model.MonthlyGoal, error) {
	goal, err := s.goals.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get goal: %w", err)
	}
	if goal == nil {
		return nil, ErrGoalNotFound
	}
	return goal, nil
}

// CreateGoal создаёт цель. На месяц допускается одна цель на предмет и одна общая.
func (s *StudyService) CreateGoal(ctx context.Context, in MonthlyGoalInput) (*model.MonthlyGoal, error) {
	if err := s.checkGoal(ctx, "", &in); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	goal := model.MonthlyGoal{
		ID:          uuid.NewString(),
		Month:       in.Month,
		SubjectID:   in.SubjectID,
		TargetHours: in.TargetHours,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.goals.Add(ctx, goal); err != nil {
		return nil, fmt.Errorf("create goal: %w", err)
	}

	s.logger.Info("Monthly goal created",
		zap.String("goal_id", goal.ID),
		zap.String("month", goal.Month),
		zap.String("subject_id", goal.SubjectID),
		zap.Float64("target_hours", goal.TargetHours),
	)
	return &goal, nil
}

// UpdateGoal обновляет цель
func (s *StudyService) UpdateGoal(ctx context.Context, id string, in MonthlyGoalInput) (*model.MonthlyGoal, error) {
	goal, err := s.GetGoal(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkGoal(ctx, id, &in); err != nil {
		return nil, err
	}

	goal.Month = in.Month
	goal.SubjectID = in.SubjectID
	goal.TargetHours = in.TargetHours
	goal.UpdatedAt = s.now().UTC()

	if err := s.goals.Update(ctx, *goal); err != nil {
		return nil, fmt.Errorf("update goal: %w", err)
	}

	s.logger.Info("Monthly goal updated", zap.String("goal_id", id))
	return goal, nil
}

// DeleteGoal удаляет цель
func (s *StudyService) DeleteGoal(ctx context.Context, id string) error {
	if _, err := s.GetGoal(ctx, id); err != nil {
		return err
	}
	if err := s.goals.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}

	s.logger.Info("Monthly goal deleted", zap.String("goal_id", id))
	return nil
}

// Progress выполнение цели месяца по предмету (пустой subjectID для общей цели).
// Без цели возвращает nil. Общая цель считает занятия по всем предметам.
func (s *StudyService) Progress(ctx context.Context, subjectID, month string) (*GoalProgress, error) {
	goal, err := s.goals.GetByMonthAndSubject(ctx, month, subjectID)
	if err != nil {
		return nil, fmt.Errorf("get goal: %w", err)
	}
	if goal == nil {
		return nil, nil
	}

	sessions, err := s.sessions.GetByMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("get sessions by month: %w", err)
	}
	progress := computeProgress(*goal, sessions)
	return &progress, nil
}

// MonthProgress выполнение всех целей месяца
func (s *StudyService) MonthProgress(ctx context.Context, month string) ([]GoalProgress, error) {
	goals, err := s.ListGoals(ctx, month)
	if err != nil {
		return nil, err
	}
	sessions, err := s.sessions.GetByMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("get sessions by month: %w", err)
	}

	result := make([]GoalProgress, 0, len(goals))
	for _, goal := range goals {
		result = append(result, computeProgress(goal, sessions))
	}
	return result, nil
}

// CurrentMonth месяц по часам сервиса
func (s *StudyService) CurrentMonth() string {
	return s.now().Format(model.MonthLayout)
}

func computeProgress(goal model.MonthlyGoal, monthSessions []model.StudySession) GoalProgress {
	minutes := 0
	for _, session := range monthSessions {
		if goal.SubjectID == "" || session.SubjectID == goal.SubjectID {
			minutes += session.Duration
		}
	}

	percent := 0.0
	if goal.TargetHours > 0 {
		percent = math.Min(100, float64(minutes)/(goal.TargetHours*60)*100)
	}
	return GoalProgress{Goal: goal, Minutes: minutes, Percent: percent}
}

func (s *StudyService) checkSession(ctx context.Context, in *StudySessionInput) error {
	in.Content = strings.TrimSpace(in.Content)
	in.Note = strings.TrimSpace(in.Note)
	if err := validateStruct(*in); err != nil {
		return err
	}
	_, err := s.GetSubject(ctx, in.SubjectID)
	return err
}

func (s *StudyService) checkGoal(ctx context.Context, selfID string, in *MonthlyGoalInput) error {
	in.SubjectID = strings.TrimSpace(in.SubjectID)
	if err := validateStruct(*in); err != nil {
		return err
	}
	if in.SubjectID != "" {
		if _, err := s.GetSubject(ctx, in.SubjectID); err != nil {
			return err
		}
	}

	existing, err := s.goals.GetByMonthAndSubject(ctx, in.Month, in.SubjectID)
	if err != nil {
		return fmt.Errorf("get goal: %w", err)
	}
	if existing != nil && existing.ID != selfID {
		return fmt.Errorf("%s: %w", in.Month, ErrGoalExists)
	}
	return nil
}
