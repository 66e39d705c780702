package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Freeeeeet/admin_bot/internal/storage"
	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Environment   string
	LogLevel      string
	TelegramToken string
	AdminIDs      []int64

	StorageDriver string
	DataDir       string
	DBDSN         string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	HTTPAddr             string
	APIToken             string
	HousekeepingInterval time.Duration
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	return FromEnv()
}

// FromEnv собирает конфиг из переменных окружения с дефолтами
func FromEnv() (*Config, error) {
	cfg := &Config{
		Environment:   getEnv("ENV", EnvDevelopment),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", storage.DriverFile)),
		DataDir:       getEnv("DATA_DIR", "./data"),
		DBDSN:         os.Getenv("DB_DSN"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisPrefix:   getEnv("REDIS_PREFIX", "admin_bot:"),
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		APIToken:      os.Getenv("ADMIN_API_TOKEN"),
	}

	adminIDs, err := parseIDs(os.Getenv("ADMIN_IDS"))
	if err != nil {
		return nil, fmt.Errorf("ADMIN_IDS: %w", err)
	}
	cfg.AdminIDs = adminIDs

	if raw := os.Getenv("REDIS_DB"); raw != "" {
		cfg.RedisDB, err = strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("REDIS_DB: %w", err)
		}
	}

	cfg.HousekeepingInterval = time.Hour
	if raw := os.Getenv("HOUSEKEEPING_INTERVAL"); raw != "" {
		cfg.HousekeepingInterval, err = time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("HOUSEKEEPING_INTERVAL: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные поля выбранного драйвера хранилища
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case storage.DriverFile:
		if c.DataDir == "" {
			return errors.New("DATA_DIR is required for file storage")
		}
	case storage.DriverMemory:
	case storage.DriverRedis:
		if c.RedisAddr == "" {
			return errors.New("REDIS_ADDR is required for redis storage")
		}
	case storage.DriverPostgres:
		if c.DBDSN == "" {
			return errors.New("DB_DSN is required for postgres storage")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	if c.HousekeepingInterval <= 0 {
		return errors.New("HOUSEKEEPING_INTERVAL must be positive")
	}
	return nil
}

// IsAdmin проверяет Telegram ID по списку ADMIN_IDS
func (c *Config) IsAdmin(telegramID int64) bool {
	for _, id := range c.AdminIDs {
		if id == telegramID {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
