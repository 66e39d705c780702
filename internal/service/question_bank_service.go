package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Freeeeeet/admin_bot/internal/examgen"
	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/Freeeeeet/admin_bot/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SubjectInput struct {
	Code            string   `json:"code" validate:"required,max=32"`
	Name            string   `json:"name" validate:"required,max=200"`
	Credits         int      `json:"credits" validate:"gte=0,lte=60"`
	KnowledgeBlocks []string `json:"knowledgeBlocks" validate:"unique,dive,required,max=100"`
}

type QuestionInput struct {
	Code           string `json:"code" validate:"max=32"`
	SubjectID      string `json:"subjectId" validate:"required"`
	Content        string `json:"content" validate:"required,max=4000"`
	Difficulty     string `json:"difficulty" validate:"required,difficulty"`
	KnowledgeBlock string `json:"knowledgeBlock" validate:"required,max=100"`
}

type examInput struct {
	Name      string                    `json:"name" validate:"required,max=200"`
	SubjectID string                    `json:"subjectId" validate:"required"`
	Structure []model.ExamStructureItem `json:"structure" validate:"min=1"`
}

// QuestionBankService предметы, вопросы и экзамены
type QuestionBankService struct {
	subjects  *repository.SubjectRepository
	questions *repository.QuestionRepository
	exams     *repository.ExamRepository
	generator *examgen.Generator
	logger    *zap.Logger
	now       func() time.Time
}

func NewQuestionBankService(
	subjects *repository.SubjectRepository,
	questions *repository.QuestionRepository,
	exams *repository.ExamRepository,
	generator *examgen.Generator,
	logger *zap.Logger,
) *QuestionBankService {
	return &QuestionBankService{
		subjects:  subjects,
		questions: questions,
		exams:     exams,
		generator: generator,
		logger:    logger,
		now:       time.Now,
	}
}

// ListSubjects получает все предметы
func (s *QuestionBankService) ListSubjects(ctx context.Context) ([]model.Subject, error) {
	return s.subjects.GetAll(ctx)
}

// GetSubject получает предмет по ID
func (s *QuestionBankService) GetSubject(ctx context.Context, id string) (*model.Subject, error) {
	subject, err := s.subjects.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get subject: %w", err)
	}
	if subject == nil {
		return nil, ErrSubjectNotFound
	}
	return subject, nil
}

// GetSubjectByCode получает предмет по коду
func (s *QuestionBankService) GetSubjectByCode(ctx context.Context, code string) (*model.Subject, error) {
	subject, err := s.subjects.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("get subject by code: %w", err)
	}
	if subject == nil {
		return nil, ErrSubjectNotFound
	}
	return subject, nil
}

// CreateSubject создаёт предмет с уникальным кодом
func (s *QuestionBankService) CreateSubject(ctx context.Context, in SubjectInput) (*model.Subject, error) {
	normalizeSubject(&in)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	if err := s.ensureCodeFree(ctx, in.Code, ""); err != nil {
		return nil, err
	}

	subject := model.Subject{
		ID:              uuid.NewString(),
		Code:            in.Code,
		Name:            in.Name,
		Credits:         in.Credits,
		KnowledgeBlocks: in.KnowledgeBlocks,
	}
	if err := s.subjects.Add(ctx, subject); err != nil {
		return nil, fmt.Errorf("create subject: %w", err)
	}

	s.logger.Info("Subject created",
		zap.String("subject_id", subject.ID),
		zap.String("code", subject.Code),
		zap.Int("knowledge_blocks", len(subject.KnowledgeBlocks)),
	)

	return &subject, nil
}

// UpdateSubject обновляет предмет
func (s *QuestionBankService) UpdateSubject(ctx context.Context, id string, in SubjectInput) (*model.Subject, error) {
	normalizeSubject(&in)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	subject, err := s.GetSubject(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureCodeFree(ctx, in.Code, id); err != nil {
		return nil, err
	}

	subject.Code = in.Code
	subject.Name = in.Name
	subject.Credits = in.Credits
	subject.KnowledgeBlocks = in.KnowledgeBlocks

	if err := s.subjects.Update(ctx, *subject); err != nil {
		return nil, fmt.Errorf("update subject: %w", err)
	}

	s.logger.Info("Subject updated", zap.String("subject_id", id))
	return subject, nil
}

// DeleteSubject удаляет предмет без вопросов
func (s *QuestionBankService) DeleteSubject(ctx context.Context, id string) error {
	if _, err := s.GetSubject(ctx, id); err != nil {
		return err
	}

	questions, err := s.questions.GetBySubjectID(ctx, id)
	if err != nil {
		return fmt.Errorf("get questions: %w", err)
	}
	if len(questions) > 0 {
		return fmt.Errorf("%d questions: %w", len(questions), ErrSubjectInUse)
	}

	if err := s.subjects.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete subject: %w", err)
	}

	s.logger.Info("Subject deleted", zap.String("subject_id", id))
	return nil
}

func (s *QuestionBankService) ensureCodeFree(ctx context.Context, code, selfID string) error {
	existing, err := s.subjects.GetByCode(ctx, code)
	if err != nil {
		return fmt.Errorf("get subject by code: %w", err)
	}
	if existing != nil && existing.ID != selfID {
		return fmt.Errorf("%s: %w", code, ErrSubjectCodeTaken)
	}
	return nil
}

func normalizeSubject(in *SubjectInput) {
	in.Code = strings.TrimSpace(in.Code)
	in.Name = strings.TrimSpace(in.Name)

	blocks := make([]string, 0, len(in.KnowledgeBlocks))
	for _, b := range in.KnowledgeBlocks {
		blocks = append(blocks, strings.TrimSpace(b))
	}
	in.KnowledgeBlocks = blocks
}

// ListQuestions получает все вопросы
func (s *QuestionBankService) ListQuestions(ctx context.Context) ([]model.Question, error) {
	return s.questions.GetAll(ctx)
}

// ListQuestionsBySubject получает вопросы предмета
func (s *QuestionBankService) ListQuestionsBySubject(ctx context.Context, subjectID string) ([]model.Question, error) {
	return s.questions.GetBySubjectID(ctx, subjectID)
}

// GetQuestion получает вопрос по ID
func (s *QuestionBankService) GetQuestion(ctx context.Context, id string) (*model.Question, error) {
	question, err := s.questions.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get question: %w", err)
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}
	return question, nil
}

// CreateQuestion добавляет вопрос в банк
func (s *QuestionBankService) CreateQuestion(ctx context.Context, in QuestionInput) (*model.Question, error) {
	if err := s.checkQuestion(ctx, &in); err != nil {
		return nil, err
	}

	question := model.Question{
		ID:             uuid.NewString(),
		Code:           in.Code,
		SubjectID:      in.SubjectID,
		Content:        in.Content,
		Difficulty:     model.Difficulty(in.Difficulty),
		KnowledgeBlock: in.KnowledgeBlock,
	}
	if err := s.questions.Add(ctx, question); err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}

	s.logger.Info("Question created",
		zap.String("question_id", question.ID),
		zap.String("subject_id", question.SubjectID),
		zap.String("difficulty", string(question.Difficulty)),
		zap.String("knowledge_block", question.KnowledgeBlock),
	)

	return &question, nil
}

// UpdateQuestion обновляет вопрос
func (s *QuestionBankService) UpdateQuestion(ctx context.Context, id string, in QuestionInput) (*model.Question, error) {
	if err := s.checkQuestion(ctx, &in); err != nil {
		return nil, err
	}

	question, err := s.GetQuestion(ctx, id)
	if err != nil {
		return nil, err
	}

	question.Code = in.Code
	question.SubjectID = in.SubjectID
	question.Content = in.Content
	question.Difficulty = model.Difficulty(in.Difficulty)
	question.KnowledgeBlock = in.KnowledgeBlock

	if err := s.questions.Update(ctx, *question); err != nil {
		return nil, fmt.Errorf("update question: %w", err)
	}

	s.logger.Info("Question updated", zap.String("question_id", id))
	return question, nil
}

// DeleteQuestion удаляет вопрос. В собранных экзаменах его id остаётся.
func (s *QuestionBankService) DeleteQuestion(ctx context.Context, id string) error {
	if _, err := s.GetQuestion(ctx, id); err != nil {
		return err
	}

	if err := s.questions.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete question: %w", err)
	}

	s.logger.Info("Question deleted", zap.String("question_id", id))
	return nil
}

func (s *QuestionBankService) checkQuestion(ctx context.Context, in *QuestionInput) error {
	in.Code = strings.TrimSpace(in.Code)
	in.Content = strings.TrimSpace(in.Content)
	in.KnowledgeBlock = strings.TrimSpace(in.KnowledgeBlock)
	if err := validateStruct(*in); err != nil {
		return err
	}

	subject, err := s.GetSubject(ctx, in.SubjectID)
	if err != nil {
		return err
	}
	if !subject.HasKnowledgeBlock(in.KnowledgeBlock) {
		return fmt.Errorf("%s in %s: %w", in.KnowledgeBlock, subject.Code, ErrUnknownKnowledgeBlock)
	}
	return nil
}

// GenerateExam собирает экзамен по структуре и сохраняет его.
// Если вопросов не хватает, возвращает *examgen.InsufficientQuestionsError и ничего не сохраняет.
func (s *QuestionBankService) GenerateExam(ctx context.Context, name, subjectID string, structure []model.ExamStructureItem) (*model.Exam, error) {
	in := examInput{
		Name:      strings.TrimSpace(name),
		SubjectID: subjectID,
		Structure: structure,
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	for i, item := range in.Structure {
		if !item.Difficulty.IsValid() {
			return nil, invalidField(fmt.Sprintf("structure[%d].difficulty", i), "difficulty")
		}
	}

	if _, err := s.GetSubject(ctx, subjectID); err != nil {
		return nil, err
	}

	pool, err := s.questions.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get questions: %w", err)
	}

	ids, err := s.generator.Generate(subjectID, in.Structure, pool)
	if err != nil {
		s.logger.Warn("Exam generation failed",
			zap.String("subject_id", subjectID),
			zap.Int("requested", model.TotalCount(in.Structure)),
			zap.Error(err),
		)
		return nil, err
	}

	exam := model.Exam{
		ID:        uuid.NewString(),
		Name:      in.Name,
		SubjectID: subjectID,
		Structure: append([]model.ExamStructureItem(nil), in.Structure...),
		Questions: ids,
		CreatedAt: s.now().UTC(),
	}
	if err := s.exams.Add(ctx, exam); err != nil {
		return nil, fmt.Errorf("create exam: %w", err)
	}

	s.logger.Info("Exam generated",
		zap.String("exam_id", exam.ID),
		zap.String("subject_id", subjectID),
		zap.Int("questions", len(ids)),
	)

	return &exam, nil
}

// ListExams получает все экзамены
func (s *QuestionBankService) ListExams(ctx context.Context) ([]model.Exam, error) {
	return s.exams.GetAll(ctx)
}

// GetExam получает экзамен по ID
func (s *QuestionBankService) GetExam(ctx context.Context, id string) (*model.Exam, error) {
	exam, err := s.exams.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get exam: %w", err)
	}
	if exam == nil {
		return nil, ErrExamNotFound
	}
	return exam, nil
}

// ExamQuestions возвращает вопросы экзамена в порядке выборки.
// Удалённые после генерации вопросы пропускаются.
func (s *QuestionBankService) ExamQuestions(ctx context.Context, examID string) ([]model.Question, error) {
	exam, err := s.GetExam(ctx, examID)
	if err != nil {
		return nil, err
	}

	all, err := s.questions.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get questions: %w", err)
	}
	byID := make(map[string]model.Question, len(all))
	for _, q := range all {
		byID[q.ID] = q
	}

	result := make([]model.Question, 0, len(exam.Questions))
	for _, id := range exam.Questions {
		if q, ok := byID[id]; ok {
			result = append(result, q)
		}
	}
	return result, nil
}

// DeleteExam удаляет экзамен
func (s *QuestionBankService) DeleteExam(ctx context.Context, id string) error {
	if _, err := s.GetExam(ctx, id); err != nil {
		return err
	}

	if err := s.exams.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete exam: %w", err)
	}

	s.logger.Info("Exam deleted", zap.String("exam_id", id))
	return nil
}
