package app

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// StaleCanceller отменяет неподтверждённые записи на прошедшие даты
type StaleCanceller interface {
	CancelStalePending(ctx context.Context, now time.Time) (int, error)
}

// Housekeeper управляет фоновыми задачами
type Housekeeper struct {
	bookings StaleCanceller
	interval time.Duration
	logger   *zap.Logger
	now      func() time.Time

	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewHousekeeper создаёт новый планировщик
func NewHousekeeper(bookings StaleCanceller, interval time.Duration, logger *zap.Logger) *Housekeeper {
	return &Housekeeper{
		bookings: bookings,
		interval: interval,
		logger:   logger,
		now:      time.Now,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start запускает фоновые задачи
func (h *Housekeeper) Start(ctx context.Context) {
	h.logger.Info("Starting housekeeper", zap.Duration("interval", h.interval))

	go h.run(ctx)
}

// Stop останавливает фоновые задачи и ждёт завершения текущего прохода
func (h *Housekeeper) Stop() {
	h.stopOnce.Do(func() {
		h.logger.Info("Stopping housekeeper")
		close(h.stopChan)
	})
	<-h.done
}

func (h *Housekeeper) run(ctx context.Context) {
	defer close(h.done)

	// Первый запуск сразу при старте
	h.cancelStale(ctx)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			h.cancelStale(ctx)
		case <-h.stopChan:
			h.logger.Info("Housekeeper stopped")
			return
		case <-ctx.Done():
			h.logger.Info("Housekeeper cancelled")
			return
		}
	}
}

func (h *Housekeeper) cancelStale(ctx context.Context) {
	cancelled, err := h.bookings.CancelStalePending(ctx, h.now())
	if err != nil {
		h.logger.Error("Failed to cancel stale appointments", zap.Error(err))
		return
	}

	h.logger.Debug("Housekeeping pass completed", zap.Int("cancelled", cancelled))
}
