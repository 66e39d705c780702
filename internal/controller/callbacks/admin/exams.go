package admin

import (
	"context"

	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/common/formatting"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleViewExam присылает экзамен с вопросами. Длинный текст уходит несколькими сообщениями.
func HandleViewExam(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		common.WithID(hc, func(id string) {
			exam, err := h.QuestionBankService.GetExam(ctx, id)
			if err != nil {
				common.HandleError(hc, err, "get_exam")
				return
			}
			questions, err := h.QuestionBankService.ExamQuestions(ctx, id)
			if err != nil {
				common.HandleError(hc, err, "exam_questions")
				return
			}

			code := "?"
			if subject, err := h.QuestionBankService.GetSubject(ctx, exam.SubjectID); err == nil {
				code = subject.Code
			}

			for _, part := range formatting.SplitMessage(formatting.FormatExam(*exam, code, questions), formatting.MaxMessageLength) {
				if err := hc.SendMessage(part, nil); err != nil {
					h.Logger.Error("Failed to send exam", zap.String("exam_id", id), zap.Error(err))
					break
				}
			}
			hc.Answer("")
		})
	})
}

// HandleDeleteExam удаляет экзамен и обновляет список
func HandleDeleteExam(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		common.WithID(hc, func(id string) {
			if err := h.QuestionBankService.DeleteExam(ctx, id); err != nil {
				common.HandleError(hc, err, "delete_exam")
				return
			}

			exams, err := h.QuestionBankService.ListExams(ctx)
			if err != nil {
				common.HandleError(hc, err, "list_exams")
				return
			}
			codes, err := common.SubjectCodes(ctx, h.QuestionBankService)
			if err != nil {
				common.HandleError(hc, err, "list_subjects")
				return
			}
			text, kb := common.BuildExamsScreen(exams, codes)
			if err := hc.EditMessage(text, kb); err != nil {
				h.Logger.Error("Failed to refresh exams", zap.Error(err))
			}

			common.LogAndAnswer(hc, "Exam deleted", "🗑 Экзамен удалён", zap.String("exam_id", id))
		})
	})
}
