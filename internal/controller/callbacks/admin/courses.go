package admin

import (
	"context"

	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/admin_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleDeleteCourse удаляет курс без студентов и обновляет список
func HandleDeleteCourse(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		common.WithID(hc, func(id string) {
			if err := h.CourseService.DeleteCourse(ctx, id); err != nil {
				common.HandleError(hc, err, "delete_course")
				return
			}

			text, kb, err := common.CoursesScreen(ctx, h.CourseService, service.CourseFilter{}, true)
			if err != nil {
				common.HandleError(hc, err, "list_courses")
				return
			}
			if err := hc.EditMessage(text, kb); err != nil {
				h.Logger.Error("Failed to refresh courses", zap.Error(err))
			}

			common.LogAndAnswer(hc, "Course deleted", "🗑 Курс удалён", zap.String("course_id", id))
		})
	})
}

// HandleDeleteStudySubject удаляет предмет дневника вместе с занятиями и целями
func HandleDeleteStudySubject(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		common.WithID(hc, func(id string) {
			if err := h.StudyService.DeleteSubject(ctx, id); err != nil {
				common.HandleError(hc, err, "delete_study_subject")
				return
			}

			text, kb, err := common.StudyScreen(ctx, h.StudyService, h.StudyService.CurrentMonth())
			if err != nil {
				common.HandleError(hc, err, "study_screen")
				return
			}
			if err := hc.EditMessage(text, kb); err != nil {
				h.Logger.Error("Failed to refresh study screen", zap.Error(err))
			}

			common.LogAndAnswer(hc, "Study subject deleted", "🗑 Предмет и его занятия удалены", zap.String("subject_id", id))
		})
	})
}
