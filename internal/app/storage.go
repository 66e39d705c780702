package app

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/admin_bot/internal/config"
	"github.com/Freeeeeet/admin_bot/internal/storage"
	"go.uber.org/zap"
)

// OpenBackend открывает хранилище по STORAGE_DRIVER. Для postgres сразу применяет миграции.
func OpenBackend(ctx context.Context, cfg *config.Config, logger *zap.Logger) (storage.Backend, error) {
	switch cfg.StorageDriver {
	case storage.DriverMemory:
		logger.Warn("Using in-memory storage, data will be lost on exit")
		return storage.NewMemoryBackend(), nil

	case storage.DriverFile:
		backend, err := storage.NewFileBackend(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("open file storage: %w", err)
		}
		logger.Info("Using file storage", zap.String("dir", cfg.DataDir))
		return backend, nil

	case storage.DriverRedis:
		backend, err := storage.ConnectRedis(ctx, storage.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		})
		if err != nil {
			return nil, fmt.Errorf("open redis storage: %w", err)
		}
		logger.Info("Using redis storage",
			zap.String("addr", cfg.RedisAddr),
			zap.Int("db", cfg.RedisDB),
		)
		return backend, nil

	case storage.DriverPostgres:
		pool, err := storage.ConnectPostgres(ctx, cfg.DBDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres storage: %w", err)
		}

		migrator, err := NewMigrator(pool, logger)
		if err != nil {
			pool.Close()
			return nil, err
		}
		defer migrator.Close()

		if err := migrator.Run(ctx); err != nil {
			pool.Close()
			return nil, err
		}

		logger.Info("Using postgres storage")
		return storage.NewPostgresBackend(pool), nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
