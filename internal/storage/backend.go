// Package storage хранит коллекции как отдельные JSON-документы по ключу.
package storage

import (
	"context"
	"errors"
)

// Backend хранилище документов "ключ -> JSON"
type Backend interface {
	// Load возвращает документ по ключу или nil, nil если ключа нет
	Load(ctx context.Context, key string) ([]byte, error)
	// Save полностью заменяет документ
	Save(ctx context.Context, key string, data []byte) error
	Close() error
}

// Поддерживаемые драйверы
const (
	DriverFile     = "file"
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

var ErrEmptyKey = errors.New("storage key is empty")
