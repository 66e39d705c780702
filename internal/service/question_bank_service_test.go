package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/Freeeeeet/admin_bot/internal/examgen"
	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestQuestionBank(t *testing.T) *QuestionBankService {
	t.Helper()
	repos := newTestRepos()
	generator := examgen.New(rand.New(rand.NewPCG(1, 2)))
	return NewQuestionBankService(repos.Subjects, repos.Questions, repos.Exams, generator, zap.NewNop())
}

func seedSubject(t *testing.T, bank *QuestionBankService, code string, blocks ...string) *model.Subject {
	t.Helper()
	subject, err := bank.CreateSubject(context.Background(), SubjectInput{
		Code:            code,
		Name:            "Subject " + code,
		Credits:         5,
		KnowledgeBlocks: blocks,
	})
	require.NoError(t, err)
	return subject
}

func seedQuestions(t *testing.T, bank *QuestionBankService, subjectID string, difficulty model.Difficulty, block string, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		q, err := bank.CreateQuestion(context.Background(), QuestionInput{
			Code:           fmt.Sprintf("%s-%s-%d", difficulty, block, i),
			SubjectID:      subjectID,
			Content:        fmt.Sprintf("Question %d", i),
			Difficulty:     string(difficulty),
			KnowledgeBlock: block,
		})
		require.NoError(t, err)
		ids = append(ids, q.ID)
	}
	return ids
}

func TestQuestionBankService_Subjects(t *testing.T) {
	ctx := context.Background()
	bank := newTestQuestionBank(t)

	math := seedSubject(t, bank, "MATH101", "algebra", "geometry")

	_, err := bank.CreateSubject(ctx, SubjectInput{Code: " math101 ", Name: "Copy"})
	require.ErrorIs(t, err, ErrSubjectCodeTaken)

	byCode, err := bank.GetSubjectByCode(ctx, "math101")
	require.NoError(t, err)
	assert.Equal(t, math.ID, byCode.ID)

	// Свой код при обновлении не считается занятым
	updated, err := bank.UpdateSubject(ctx, math.ID, SubjectInput{
		Code:            "MATH101",
		Name:            "Mathematics",
		Credits:         6,
		KnowledgeBlocks: []string{"algebra", "geometry", "calculus"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Mathematics", updated.Name)

	physics := seedSubject(t, bank, "PHYS101")
	_, err = bank.UpdateSubject(ctx, physics.ID, SubjectInput{Code: "MATH101", Name: "Physics"})
	require.ErrorIs(t, err, ErrSubjectCodeTaken)

	_, err = bank.CreateSubject(ctx, SubjectInput{Code: "DUP", Name: "Dup", KnowledgeBlocks: []string{"a", " a"}})
	require.ErrorIs(t, err, ErrInvalidInput)

	seedQuestions(t, bank, math.ID, model.DifficultyEasy, "algebra", 1)
	require.ErrorIs(t, bank.DeleteSubject(ctx, math.ID), ErrSubjectInUse)
	require.NoError(t, bank.DeleteSubject(ctx, physics.ID))
	require.ErrorIs(t, bank.DeleteSubject(ctx, physics.ID), ErrSubjectNotFound)
}

func TestQuestionBankService_Questions(t *testing.T) {
	ctx := context.Background()
	bank := newTestQuestionBank(t)

	math := seedSubject(t, bank, "MATH101", "algebra")
	open := seedSubject(t, bank, "OPEN")

	tests := []struct {
		name  string
		input QuestionInput
		want  error
	}{
		{"unknown subject", QuestionInput{SubjectID: "nope", Content: "x", Difficulty: "easy", KnowledgeBlock: "algebra"}, ErrSubjectNotFound},
		{"undeclared block", QuestionInput{SubjectID: math.ID, Content: "x", Difficulty: "easy", KnowledgeBlock: "geometry"}, ErrUnknownKnowledgeBlock},
		{"bad difficulty", QuestionInput{SubjectID: math.ID, Content: "x", Difficulty: "extreme", KnowledgeBlock: "algebra"}, ErrInvalidInput},
		{"empty content", QuestionInput{SubjectID: math.ID, Content: "  ", Difficulty: "easy", KnowledgeBlock: "algebra"}, ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bank.CreateQuestion(ctx, tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	// Предмет без объявленных блоков принимает любой
	_, err := bank.CreateQuestion(ctx, QuestionInput{SubjectID: open.ID, Content: "x", Difficulty: "hard", KnowledgeBlock: "anything"})
	require.NoError(t, err)

	q, err := bank.CreateQuestion(ctx, QuestionInput{SubjectID: math.ID, Content: "2+2?", Difficulty: "easy", KnowledgeBlock: "algebra"})
	require.NoError(t, err)

	updated, err := bank.UpdateQuestion(ctx, q.ID, QuestionInput{SubjectID: math.ID, Content: "2+3?", Difficulty: "medium", KnowledgeBlock: "algebra"})
	require.NoError(t, err)
	assert.Equal(t, model.DifficultyMedium, updated.Difficulty)

	list, err := bank.ListQuestionsBySubject(ctx, math.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "2+3?", list[0].Content)

	require.NoError(t, bank.DeleteQuestion(ctx, q.ID))
	_, err = bank.GetQuestion(ctx, q.ID)
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestQuestionBankService_GenerateExam(t *testing.T) {
	ctx := context.Background()
	bank := newTestQuestionBank(t)

	math := seedSubject(t, bank, "MATH101", "algebra", "geometry")
	easy := seedQuestions(t, bank, math.ID, model.DifficultyEasy, "algebra", 5)
	hard := seedQuestions(t, bank, math.ID, model.DifficultyHard, "geometry", 2)

	structure := []model.ExamStructureItem{
		{Difficulty: model.DifficultyEasy, KnowledgeBlock: "algebra", Count: 3},
		{Difficulty: model.DifficultyHard, KnowledgeBlock: "geometry", Count: 2},
	}
	exam, err := bank.GenerateExam(ctx, " Midterm ", math.ID, structure)
	require.NoError(t, err)
	assert.Equal(t, "Midterm", exam.Name)
	assert.Equal(t, structure, exam.Structure)
	require.Len(t, exam.Questions, 5)
	for _, id := range exam.Questions[:3] {
		assert.Contains(t, easy, id)
	}
	assert.ElementsMatch(t, hard, exam.Questions[3:])

	questions, err := bank.ExamQuestions(ctx, exam.ID)
	require.NoError(t, err)
	require.Len(t, questions, 5)
	for i, q := range questions {
		assert.Equal(t, exam.Questions[i], q.ID)
	}

	// Удалённый вопрос пропускается, id в экзамене остаётся
	require.NoError(t, bank.DeleteQuestion(ctx, exam.Questions[0]))
	questions, err = bank.ExamQuestions(ctx, exam.ID)
	require.NoError(t, err)
	assert.Len(t, questions, 4)

	stored, err := bank.GetExam(ctx, exam.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Questions, 5)
}

func TestQuestionBankService_GenerateExamInsufficient(t *testing.T) {
	ctx := context.Background()
	bank := newTestQuestionBank(t)

	math := seedSubject(t, bank, "MATH101")
	seedQuestions(t, bank, math.ID, model.DifficultyEasy, "algebra", 2)

	_, err := bank.GenerateExam(ctx, "Final", math.ID, []model.ExamStructureItem{
		{Difficulty: model.DifficultyEasy, KnowledgeBlock: "algebra", Count: 1},
		{Difficulty: model.DifficultyEasy, KnowledgeBlock: "algebra", Count: 2},
	})
	require.ErrorIs(t, err, examgen.ErrInsufficientQuestions)

	var insufficient *examgen.InsufficientQuestionsError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, 2, insufficient.Requested)
	assert.Equal(t, 1, insufficient.Available)

	exams, err := bank.ListExams(ctx)
	require.NoError(t, err)
	assert.Empty(t, exams)
}

func TestQuestionBankService_GenerateExamInvalid(t *testing.T) {
	ctx := context.Background()
	bank := newTestQuestionBank(t)
	math := seedSubject(t, bank, "MATH101")

	_, err := bank.GenerateExam(ctx, "Exam", math.ID, nil)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = bank.GenerateExam(ctx, "Exam", math.ID, []model.ExamStructureItem{{Difficulty: "extreme", KnowledgeBlock: "a", Count: 1}})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "structure[0].difficulty", verr.Field)

	_, err = bank.GenerateExam(ctx, "Exam", math.ID, []model.ExamStructureItem{{Difficulty: model.DifficultyEasy, KnowledgeBlock: "a", Count: 0}})
	require.ErrorIs(t, err, examgen.ErrInvalidCount)

	_, err = bank.GenerateExam(ctx, "Exam", "missing", []model.ExamStructureItem{{Difficulty: model.DifficultyEasy, KnowledgeBlock: "a", Count: 1}})
	require.ErrorIs(t, err, ErrSubjectNotFound)
}

func TestQuestionBankService_DeleteExam(t *testing.T) {
	ctx := context.Background()
	bank := newTestQuestionBank(t)

	math := seedSubject(t, bank, "MATH101")
	seedQuestions(t, bank, math.ID, model.DifficultyMedium, "algebra", 1)

	exam, err := bank.GenerateExam(ctx, "Quiz", math.ID, []model.ExamStructureItem{
		{Difficulty: model.DifficultyMedium, KnowledgeBlock: "algebra", Count: 1},
	})
	require.NoError(t, err)

	require.NoError(t, bank.DeleteExam(ctx, exam.ID))
	_, err = bank.GetExam(ctx, exam.ID)
	require.ErrorIs(t, err, ErrExamNotFound)
	require.ErrorIs(t, bank.DeleteExam(ctx, exam.ID), ErrExamNotFound)
}
