package common

import (
	"testing"
	"time"

	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/Freeeeeet/admin_bot/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildServicesScreen(t *testing.T) {
	services := []model.Service{{ID: "s1", Name: "Стрижка", Price: 150000, Duration: 30}}

	text, kb := BuildServicesScreen(services, false)
	assert.Contains(t, text, "<b>Стрижка</b> · 1 500 ₽ · 30 мин")
	assert.Contains(t, text, "/book")
	assert.Nil(t, kb)

	_, kb = BuildServicesScreen(services, true)
	require.NotNil(t, kb)
	assert.Equal(t, "svc_delete:s1", kb.InlineKeyboard[0][0].CallbackData)

	text, kb = BuildServicesScreen(nil, true)
	assert.Contains(t, text, "/addservice")
	assert.Nil(t, kb)
}

func TestBuildStaffScreen_ResolvesServiceNames(t *testing.T) {
	services := []model.Service{{ID: "s1", Name: "Стрижка"}}
	staff := []model.Staff{{ID: "a", Name: "Анна", MaxCustomersPerDay: 5, ServiceIDs: []string{"s1", "gone"}}}

	text, kb := BuildStaffScreen(staff, services, false)
	assert.Contains(t, text, "Услуги: Стрижка")
	assert.NotContains(t, text, "gone")
	assert.Nil(t, kb)
}

func TestBuildExamsScreen(t *testing.T) {
	exams := []model.Exam{{ID: "e1", Name: "Midterm", SubjectID: "math", Questions: []string{"q1", "q2"}, CreatedAt: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)}}

	text, kb := BuildExamsScreen(exams, map[string]string{"math": "MATH101"})
	assert.Contains(t, text, "Midterm (MATH101) · 2 вопроса · 06.01.2025")
	require.NotNil(t, kb)
	assert.Equal(t, "exam_view:e1", kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "exam_delete:e1", kb.InlineKeyboard[0][1].CallbackData)
}

func TestBuildCoursesScreen(t *testing.T) {
	instructors := []model.Instructor{{ID: "i1", Name: "Анна"}}
	courses := []model.Course{
		{ID: "c1", Name: "Go", InstructorID: "i1", Status: model.CourseStatusActive},
		{ID: "c2", Name: "SQL", InstructorID: "gone", Status: model.CourseStatusCompleted},
	}

	text, kb := BuildCoursesScreen(courses, instructors, false)
	assert.Contains(t, text, "Преподаватель: Анна")
	assert.Contains(t, text, "Преподаватель: удалено")
	assert.Nil(t, kb)

	_, kb = BuildCoursesScreen(courses, instructors, true)
	require.NotNil(t, kb)
	assert.Equal(t, "course_delete:c2", kb.InlineKeyboard[1][0].CallbackData)
}

func TestBuildStudyScreen(t *testing.T) {
	subjects := []model.StudySubject{{ID: "m", Name: "Математика"}, {ID: "p", Name: "Физика"}}
	sessions := []model.StudySession{
		{SubjectID: "m", Date: "2025-03-01", Duration: 60},
		{SubjectID: "m", Date: "2025-03-02", Duration: 30},
	}
	progress := []service.GoalProgress{
		{Goal: model.MonthlyGoal{SubjectID: "m", TargetHours: 3}, Minutes: 90, Percent: 50},
		{Goal: model.MonthlyGoal{TargetHours: 10}, Minutes: 90, Percent: 15},
	}

	text, kb := BuildStudyScreen("2025-03", subjects, progress, sessions)
	assert.Contains(t, text, "📚 Математика · 1 ч 30 мин")
	assert.Contains(t, text, "📚 Физика · 0 мин")
	assert.Contains(t, text, "🎯 <b>Математика</b>: 1 ч 30 мин из 3 ч")
	assert.Contains(t, text, "🎯 <b>Все предметы</b>")
	require.NotNil(t, kb)
	assert.Equal(t, "study_delete:p", kb.InlineKeyboard[1][0].CallbackData)

	text, _ = BuildStudyScreen("2025-04", subjects, nil, nil)
	assert.Contains(t, text, "/goal 2025-04 | часы")

	text, kb = BuildStudyScreen("2025-04", nil, nil, nil)
	assert.Contains(t, text, "/addstudysubject")
	assert.Nil(t, kb)
}
