package admin

import (
	"context"

	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/admin_bot/internal/controller/callbacks/common"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleDeleteService удаляет услугу и обновляет список
func HandleDeleteService(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		common.WithID(hc, func(id string) {
			if err := h.CatalogService.DeleteService(ctx, id); err != nil {
				common.HandleError(hc, err, "delete_service")
				return
			}

			services, err := h.CatalogService.ListServices(ctx)
			if err != nil {
				common.HandleError(hc, err, "list_services")
				return
			}
			text, kb := common.BuildServicesScreen(services, true)
			if err := hc.EditMessage(text, kb); err != nil {
				h.Logger.Error("Failed to refresh services", zap.Error(err))
			}

			common.LogAndAnswer(hc, "Service deleted", "🗑 Услуга удалена", zap.String("service_id", id))
		})
	})
}

// HandleDeleteStaff удаляет сотрудника и обновляет список
func HandleDeleteStaff(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithAdmin(ctx, b, callback, h, func(hc *common.HandlerContext) {
		common.WithID(hc, func(id string) {
			if err := h.CatalogService.DeleteStaff(ctx, id); err != nil {
				common.HandleError(hc, err, "delete_staff")
				return
			}

			staff, err := h.CatalogService.ListStaff(ctx)
			if err != nil {
				common.HandleError(hc, err, "list_staff")
				return
			}
			services, err := h.CatalogService.ListServices(ctx)
			if err != nil {
				common.HandleError(hc, err, "list_services")
				return
			}
			text, kb := common.BuildStaffScreen(staff, services, true)
			if err := hc.EditMessage(text, kb); err != nil {
				h.Logger.Error("Failed to refresh staff", zap.Error(err))
			}

			common.LogAndAnswer(hc, "Staff deleted", "🗑 Сотрудник удалён", zap.String("staff_id", id))
		})
	})
}
