package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Freeeeeet/admin_bot/internal/app"
	"github.com/Freeeeeet/admin_bot/internal/config"
	"github.com/Freeeeeet/admin_bot/internal/controller"
	"github.com/go-telegram/bot"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_TOKEN is required")
	}

	logger := app.NewLogger(cfg.Environment, cfg.LogLevel)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting admin bot",
		zap.String("environment", cfg.Environment),
		zap.String("storage", cfg.StorageDriver),
		zap.Int("admins", len(cfg.AdminIDs)))

	services, err := app.NewServices(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to init services", zap.Error(err))
	}
	defer services.Close()

	housekeeper := app.NewHousekeeper(services.Booking, cfg.HousekeepingInterval, logger)
	housekeeper.Start(ctx)
	defer housekeeper.Stop()

	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	botController := controller.NewBotController(b, services.Catalog, services.Booking, services.QuestionBank, services.Courses, services.Study, cfg.IsAdmin, logger)
	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Warn("Bot commands menu not set", zap.Error(err))
	}

	if err := botController.Start(ctx); err != nil {
		logger.Error("Bot stopped with error", zap.Error(err))
	}
	logger.Info("Bot stopped")
}
