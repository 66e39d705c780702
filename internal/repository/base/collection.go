package base

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/Freeeeeet/admin_bot/internal/storage"
)

// Entity запись коллекции с идентификатором
type Entity interface {
	GetID() string
}

var ErrDuplicateID = errors.New("entity with this id already exists")

// Collection базовый репозиторий: список записей одним JSON-документом в backend.
// Все операции читают документ целиком и записывают его обратно.
type Collection[T Entity] struct {
	mu      sync.Mutex
	backend storage.Backend
	key     string
}

// NewCollection создаёт коллекцию по ключу key
func NewCollection[T Entity](backend storage.Backend, key string) *Collection[T] {
	return &Collection[T]{backend: backend, key: key}
}

// Key возвращает ключ коллекции в хранилище
func (c *Collection[T]) Key() string {
	return c.key
}

// GetAll возвращает все записи в порядке хранения
func (c *Collection[T]) GetAll(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.load(ctx)
}

// Get возвращает запись по ID или nil если её нет
func (c *Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	items, err := c.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].GetID() == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

// Find возвращает записи, для которых match вернул true
func (c *Collection[T]) Find(ctx context.Context, match func(T) bool) ([]T, error) {
	items, err := c.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var result []T
	for _, item := range items {
		if match(item) {
			result = append(result, item)
		}
	}
	return result, nil
}

// Add добавляет запись в конец коллекции. ID задаёт вызывающий.
func (c *Collection[T]) Add(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}

	for _, existing := range items {
		if existing.GetID() == item.GetID() {
			return fmt.Errorf("add to %s: %w", c.key, ErrDuplicateID)
		}
	}

	return c.save(ctx, append(items, item))
}

// Update заменяет запись с тем же ID. Если записи нет, ничего не делает.
func (c *Collection[T]) Update(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].GetID() == item.GetID() {
			items[i] = item
			return c.save(ctx, items)
		}
	}
	return nil
}

// Delete удаляет запись по ID. Если записи нет, ничего не делает.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if item.GetID() != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return nil
	}

	return c.save(ctx, kept)
}

func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	data, err := c.backend.Load(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.key, err)
	}

	items := []T{}
	if len(bytes.TrimSpace(data)) == 0 {
		return items, nil
	}

	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.key, err)
	}
	return items, nil
}

func (c *Collection[T]) save(ctx context.Context, items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	data = append(data, '\n')

	if err := c.backend.Save(ctx, c.key, data); err != nil {
		return fmt.Errorf("save %s: %w", c.key, err)
	}
	return nil
}
