package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresBackend хранит документы в таблице collections (см. миграции в internal/app)
type PostgresBackend struct {
	pool *pgxpool.Pool
}

// ConnectPostgres открывает пул и проверяет соединение
func ConnectPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

func NewPostgresBackend(pool *pgxpool.Pool) *PostgresBackend {
	return &PostgresBackend{pool: pool}
}

// Pool возвращает пул соединений
func (p *PostgresBackend) Pool() *pgxpool.Pool {
	return p.pool
}

func (p *PostgresBackend) Load(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	query := `SELECT body FROM collections WHERE key = $1`

	var body []byte
	err := p.pool.QueryRow(ctx, query, key).Scan(&body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load collection %s: %w", key, err)
	}

	return body, nil
}

func (p *PostgresBackend) Save(ctx context.Context, key string, data []byte) error {
	if key == "" {
		return ErrEmptyKey
	}

	query := `
		INSERT INTO collections (key, body, updated_at)
		VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT (key) DO UPDATE
		SET body = EXCLUDED.body, updated_at = NOW()
	`

	if _, err := p.pool.Exec(ctx, query, key, string(data)); err != nil {
		return fmt.Errorf("save collection %s: %w", key, err)
	}

	return nil
}

func (p *PostgresBackend) Close() error {
	p.pool.Close()
	return nil
}
