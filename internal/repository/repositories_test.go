package repository

import (
	"context"
	"testing"

	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/Freeeeeet/admin_bot/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositories_Queries(t *testing.T) {
	ctx := context.Background()
	repos := New(storage.NewMemoryBackend())

	require.NoError(t, repos.Services.Add(ctx, model.Service{ID: "s1", Name: "Haircut", Duration: 30}))
	svc, err := repos.Services.GetByName(ctx, "  haircut ")
	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.Equal(t, "s1", svc.ID)

	require.NoError(t, repos.Staff.Add(ctx, model.Staff{ID: "st1", ServiceIDs: []string{"s1"}}))
	require.NoError(t, repos.Staff.Add(ctx, model.Staff{ID: "st2"}))
	staff, err := repos.Staff.GetByServiceID(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, staff, 1)
	assert.Equal(t, "st1", staff[0].ID)

	for _, a := range []model.Appointment{
		{ID: "a1", StaffID: "st1", Date: "2025-01-06", Status: model.AppointmentStatusPending},
		{ID: "a2", StaffID: "st2", Date: "2025-01-06", Status: model.AppointmentStatusConfirmed},
		{ID: "a3", StaffID: "st1", Date: "2025-01-07", Status: model.AppointmentStatusPending},
	} {
		require.NoError(t, repos.Appointments.Add(ctx, a))
	}
	byDay, err := repos.Appointments.GetByStaffAndDate(ctx, "st1", "2025-01-06")
	require.NoError(t, err)
	require.Len(t, byDay, 1)
	assert.Equal(t, "a1", byDay[0].ID)

	pending, err := repos.Appointments.GetByStatus(ctx, model.AppointmentStatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	require.NoError(t, repos.Reviews.Add(ctx, model.Review{ID: "r1", AppointmentID: "a2", Rating: 5}))
	review, err := repos.Reviews.GetByAppointmentID(ctx, "a2")
	require.NoError(t, err)
	require.NotNil(t, review)
	none, err := repos.Reviews.GetByAppointmentID(ctx, "a1")
	require.NoError(t, err)
	assert.Nil(t, none)

	require.NoError(t, repos.Subjects.Add(ctx, model.Subject{ID: "sub1", Code: "MATH101"}))
	subject, err := repos.Subjects.GetByCode(ctx, "math101")
	require.NoError(t, err)
	require.NotNil(t, subject)
	assert.Equal(t, "sub1", subject.ID)
}

func TestRepositories_SeparateKeys(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryBackend()
	repos := New(backend)

	require.NoError(t, repos.Questions.Add(ctx, model.Question{ID: "q1", SubjectID: "sub1"}))
	require.NoError(t, repos.Exams.Add(ctx, model.Exam{ID: "e1", SubjectID: "sub1", Questions: []string{"q1"}}))

	raw, err := backend.Load(ctx, QuestionsKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"subjectId": "sub1"`)

	raw, err = backend.Load(ctx, ExamsKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"questions": [`)

	qs, err := repos.Questions.GetBySubjectID(ctx, "sub1")
	require.NoError(t, err)
	assert.Len(t, qs, 1)
}

func TestRepositories_CourseAndStudyQueries(t *testing.T) {
	ctx := context.Background()
	repos := New(storage.NewMemoryBackend())

	require.NoError(t, repos.Courses.Add(ctx, model.Course{ID: "c1", Name: "Go", InstructorID: "i1"}))
	require.NoError(t, repos.Courses.Add(ctx, model.Course{ID: "c2", Name: "Rust", InstructorID: "i2"}))

	course, err := repos.Courses.GetByName(ctx, "Go")
	require.NoError(t, err)
	require.NotNil(t, course)
	assert.Equal(t, "c1", course.ID)

	none, err := repos.Courses.GetByName(ctx, "go")
	require.NoError(t, err)
	assert.Nil(t, none, "названия курсов сравниваются с учётом регистра")

	byInstructor, err := repos.Courses.GetByInstructorID(ctx, "i2")
	require.NoError(t, err)
	require.Len(t, byInstructor, 1)
	assert.Equal(t, "c2", byInstructor[0].ID)

	require.NoError(t, repos.StudySessions.Add(ctx, model.StudySession{ID: "s1", SubjectID: "math", Date: "2025-03-02"}))
	require.NoError(t, repos.StudySessions.Add(ctx, model.StudySession{ID: "s2", SubjectID: "math", Date: "2025-04-01"}))
	march, err := repos.StudySessions.GetByMonth(ctx, "2025-03")
	require.NoError(t, err)
	require.Len(t, march, 1)
	assert.Equal(t, "s1", march[0].ID)

	require.NoError(t, repos.StudyGoals.Add(ctx, model.MonthlyGoal{ID: "g1", Month: "2025-03", TargetHours: 10}))
	require.NoError(t, repos.StudyGoals.Add(ctx, model.MonthlyGoal{ID: "g2", Month: "2025-03", SubjectID: "math", TargetHours: 4}))
	overall, err := repos.StudyGoals.GetByMonthAndSubject(ctx, "2025-03", "")
	require.NoError(t, err)
	require.NotNil(t, overall)
	assert.Equal(t, "g1", overall.ID)
}
