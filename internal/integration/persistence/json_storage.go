// Package persistence implements the storage and repository interfaces.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/finance-tracker/smartfinance/internal/application/adapter"
	domainerror "github.com/finance-tracker/smartfinance/internal/domain/error"
)

// DefaultTimeout bounds each backend call when no timeout is configured.
const DefaultTimeout = 2 * time.Second

// jsonStorage implements the adapter.Storage interface on top of a KeyValueStore.
type jsonStorage struct {
	store   adapter.KeyValueStore
	timeout time.Duration
}

// NewJSONStorage creates a Storage that JSON-encodes values into store.
func NewJSONStorage(store adapter.KeyValueStore, timeout time.Duration) adapter.Storage {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &jsonStorage{
		store:   store,
		timeout: timeout,
	}
}

// Get decodes the value under key into dest.
func (s *jsonStorage) Get(ctx context.Context, key string, dest any) bool {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domainerror.ErrKeyNotFound) {
			slog.Error("Failed to read stored value", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		corrupt := domainerror.NewStorageError(domainerror.ErrCodeCorruptRecord, key, "failed to decode stored value", errors.Join(domainerror.ErrCorruptRecord, err))
		slog.Error("Discarding corrupt record", "key", key, "code", corrupt.Code, "error", corrupt)
		return false
	}
	return true
}

// Set encodes value and stores it under key.
func (s *jsonStorage) Set(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		slog.Error("Failed to encode value", "key", key, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.store.Set(ctx, key, raw); err != nil {
		slog.Error("Failed to write value", "key", key, "error", err)
	}
}

// Remove deletes key.
func (s *jsonStorage) Remove(ctx context.Context, key string) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.store.Delete(ctx, key); err != nil {
		slog.Error("Failed to remove value", "key", key, "error", err)
	}
}

// ClearAll deletes every key.
func (s *jsonStorage) ClearAll(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.store.Clear(ctx); err != nil {
		slog.Error("Failed to clear storage", "error", err)
	}
}

// ListKeys lists every stored key.
func (s *jsonStorage) ListKeys(ctx context.Context) []string {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	keys, err := s.store.Keys(ctx)
	if err != nil {
		slog.Error("Failed to list keys", "error", err)
		return []string{}
	}
	return keys
}

// Has reports whether a value is stored under key.
func (s *jsonStorage) Has(ctx context.Context, key string) bool {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.store.Get(ctx, key)
	if err != nil && !errors.Is(err, domainerror.ErrKeyNotFound) {
		slog.Error("Failed to read stored value", "key", key, "error", err)
	}
	return err == nil
}
