package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Freeeeeet/admin_bot/internal/api"
	"github.com/Freeeeeet/admin_bot/internal/app"
	"github.com/Freeeeeet/admin_bot/internal/config"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment, cfg.LogLevel)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	services, err := app.NewServices(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to init services", zap.Error(err))
	}
	defer services.Close()

	housekeeper := app.NewHousekeeper(services.Booking, cfg.HousekeepingInterval, logger)
	housekeeper.Start(ctx)
	defer housekeeper.Stop()

	if cfg.APIToken == "" {
		logger.Warn("ADMIN_API_TOKEN is empty, API is open without authorization")
	}

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.NewServer(services.Catalog, services.Booking, services.QuestionBank, services.Courses, services.Study, cfg.APIToken, logger).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Admin API listening", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Admin API failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down admin API")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Admin API shutdown failed", zap.Error(err))
	}
	logger.Info("Admin API stopped")
}
