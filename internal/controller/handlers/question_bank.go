package handlers

import (
	"context"
	"strings"

	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/Freeeeeet/admin_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleSubjects обрабатывает команду /subjects
func (h *Handlers) HandleSubjects(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}
	chatID := update.Message.Chat.ID

	subjects, err := h.questionBankService.ListSubjects(ctx)
	if err != nil {
		h.replyError(ctx, b, chatID, err, "list_subjects")
		return
	}
	if len(subjects) == 0 {
		h.sendMessage(ctx, b, chatID, "📚 Предметов пока нет\n\nДобавить: /addsubject")
		return
	}

	questions, err := h.questionBankService.ListQuestions(ctx)
	if err != nil {
		h.replyError(ctx, b, chatID, err, "list_questions")
		return
	}
	counts := make(map[string]int, len(subjects))
	for _, q := range questions {
		counts[q.SubjectID]++
	}

	lines := make([]string, 0, len(subjects))
	for _, s := range subjects {
		lines = append(lines, formatting.FormatSubject(s, counts[s.ID]))
	}
	text := "📚 <b>Предметы</b>\n\n" + strings.Join(lines, "\n\n")
	for _, part := range formatting.SplitMessage(text, formatting.MaxMessageLength) {
		h.sendMessage(ctx, b, chatID, part)
	}
}

// HandleAddSubject обрабатывает команду /addsubject КОД | Название | кредиты | блоки
func (h *Handlers) HandleAddSubject(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}
	chatID := update.Message.Chat.ID

	args := commandArgs(update.Message.Text)
	// блоки необязательны
	if strings.Count(args, "|") == 2 {
		args += " |"
	}
	fields, err := splitFields(args, 4)
	if err != nil {
		h.sendUsage(ctx, b, chatID, AddSubjectUsage)
		return
	}
	credits, err := parseInt(fields[2])
	if err != nil {
		h.sendError(ctx, b, chatID, "❌ Кредиты должны быть числом")
		return
	}

	created, err := h.questionBankService.CreateSubject(ctx, service.SubjectInput{
		Code:            fields[0],
		Name:            fields[1],
		Credits:         credits,
		KnowledgeBlocks: parseList(fields[3]),
	})
	if err != nil {
		h.replyError(ctx, b, chatID, err, "create_subject")
		return
	}

	h.logger.Info("Subject created via bot", zap.String("subject_id", created.ID), zap.String("code", created.Code))
	h.sendMessage(ctx, b, chatID, "✅ Предмет добавлен\n\n"+formatting.FormatSubject(*created, 0))
}

// HandleQuestions обрабатывает команду /questions КОД
func (h *Handlers) HandleQuestions(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}
	chatID := update.Message.Chat.ID

	code := commandArgs(update.Message.Text)
	if code == "" {
		h.sendUsage(ctx, b, chatID, QuestionsUsage)
		return
	}

	subject, err := h.questionBankService.GetSubjectByCode(ctx, code)
	if err != nil {
		h.replyError(ctx, b, chatID, err, "get_subject")
		return
	}
	questions, err := h.questionBankService.ListQuestionsBySubject(ctx, subject.ID)
	if err != nil {
		h.replyError(ctx, b, chatID, err, "list_questions")
		return
	}
	if len(questions) == 0 {
		h.sendMessage(ctx, b, chatID, formatting.FormatSubject(*subject, 0)+"\n\nДобавить вопрос: /addquestion")
		return
	}

	var sb strings.Builder
	sb.WriteString(formatting.FormatSubject(*subject, len(questions)))
	sb.WriteString("\n")
	// по уровням сложности, как в структуре экзамена
	for _, d := range model.Difficulties {
		for _, q := range questions {
			if q.Difficulty == d {
				sb.WriteString("\n" + formatting.FormatQuestion(q))
			}
		}
	}
	for _, part := range formatting.SplitMessage(sb.String(), formatting.MaxMessageLength) {
		h.sendMessage(ctx, b, chatID, part)
	}
}

// HandleAddQuestion обрабатывает команду /addquestion КОД | сложность | блок | текст
func (h *Handlers) HandleAddQuestion(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}
	chatID := update.Message.Chat.ID

	fields, err := splitFields(commandArgs(update.Message.Text), 4)
	if err != nil {
		h.sendUsage(ctx, b, chatID, AddQuestionUsage)
		return
	}

	subject, err := h.questionBankService.GetSubjectByCode(ctx, fields[0])
	if err != nil {
		h.replyError(ctx, b, chatID, err, "get_subject")
		return
	}

	created, err := h.questionBankService.CreateQuestion(ctx, service.QuestionInput{
		SubjectID:      subject.ID,
		Content:        fields[3],
		Difficulty:     string(parseDifficulty(fields[1])),
		KnowledgeBlock: fields[2],
	})
	if err != nil {
		h.replyError(ctx, b, chatID, err, "create_question")
		return
	}

	h.logger.Info("Question created via bot", zap.String("question_id", created.ID), zap.String("subject_id", subject.ID))
	h.sendMessage(ctx, b, chatID, "✅ Вопрос добавлен\n\n"+formatting.FormatQuestion(*created))
}

// HandleGenExam обрабатывает команду /genexam КОД | Название | структура
func (h *Handlers) HandleGenExam(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}
	chatID := update.Message.Chat.ID

	fields, err := splitFields(commandArgs(update.Message.Text), 3)
	if err != nil {
		h.sendUsage(ctx, b, chatID, GenExamUsage)
		return
	}
	structure, err := parseStructure(fields[2])
	if err != nil {
		h.sendUsage(ctx, b, chatID, GenExamUsage)
		return
	}

	subject, err := h.questionBankService.GetSubjectByCode(ctx, fields[0])
	if err != nil {
		h.replyError(ctx, b, chatID, err, "get_subject")
		return
	}

	exam, err := h.questionBankService.GenerateExam(ctx, fields[1], subject.ID, structure)
	if err != nil {
		h.replyError(ctx, b, chatID, err, "generate_exam")
		return
	}
	questions, err := h.questionBankService.ExamQuestions(ctx, exam.ID)
	if err != nil {
		h.replyError(ctx, b, chatID, err, "exam_questions")
		return
	}

	h.logger.Info("Exam generated via bot",
		zap.String("exam_id", exam.ID),
		zap.String("subject_id", subject.ID),
		zap.Int("questions", len(exam.Questions)))

	text := "✅ Экзамен сформирован\n\n" + formatting.FormatExam(*exam, subject.Code, questions)
	for _, part := range formatting.SplitMessage(text, formatting.MaxMessageLength) {
		h.sendMessage(ctx, b, chatID, part)
	}
}

// HandleExams обрабатывает команду /exams
func (h *Handlers) HandleExams(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireAdmin(ctx, b, update) {
		return
	}
	chatID := update.Message.Chat.ID

	exams, err := h.questionBankService.ListExams(ctx)
	if err != nil {
		h.replyError(ctx, b, chatID, err, "list_exams")
		return
	}
	codes, err := common.SubjectCodes(ctx, h.questionBankService)
	if err != nil {
		h.replyError(ctx, b, chatID, err, "list_subjects")
		return
	}

	text, kb := common.BuildExamsScreen(exams, codes)
	h.sendWithKeyboard(ctx, b, chatID, text, kb)
}
