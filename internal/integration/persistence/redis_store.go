package persistence

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/smartfinance/internal/application/adapter"
	domainerror "github.com/finance-tracker/smartfinance/internal/domain/error"
)

const redisScanCount = 100

// redisStore implements the adapter.KeyValueStore interface on Redis strings.
// Every key lives under prefix so a shared instance is never flushed.
type redisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a key-value store that namespaces keys with prefix.
func NewRedisStore(client *redis.Client, prefix string) adapter.KeyValueStore {
	return &redisStore{
		client: client,
		prefix: prefix,
	}
}

// Get retrieves the value stored under key.
func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainerror.ErrKeyNotFound
		}
		return nil, domainerror.NewStorageError(domainerror.ErrCodeStorageRead, key, "failed to read value", err)
	}
	return value, nil
}

// Set stores value under key without expiration.
func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return domainerror.NewStorageError(domainerror.ErrCodeStorageWrite, key, "failed to write value", err)
	}
	return nil
}

// Delete removes key.
func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return domainerror.NewStorageError(domainerror.ErrCodeStorageDelete, key, "failed to delete value", err)
	}
	return nil
}

// Keys lists every key under the prefix, with the prefix stripped.
func (s *redisStore) Keys(ctx context.Context) ([]string, error) {
	raw, err := s.scan(ctx)
	if err != nil {
		return nil, domainerror.NewStorageError(domainerror.ErrCodeStorageRead, "", "failed to list keys", err)
	}

	keys := make([]string, 0, len(raw))
	for _, k := range raw {
		keys = append(keys, strings.TrimPrefix(k, s.prefix))
	}
	sort.Strings(keys)
	return keys, nil
}

// Clear removes every key under the prefix.
func (s *redisStore) Clear(ctx context.Context) error {
	raw, err := s.scan(ctx)
	if err != nil {
		return domainerror.NewStorageError(domainerror.ErrCodeStorageClear, "", "failed to list keys", err)
	}
	if len(raw) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, raw...).Err(); err != nil {
		return domainerror.NewStorageError(domainerror.ErrCodeStorageClear, "", "failed to clear values", err)
	}
	return nil
}

func (s *redisStore) scan(ctx context.Context) ([]string, error) {
	var keys []string
	iter := s.client.Scan(ctx, 0, s.prefix+"*", redisScanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	return keys, iter.Err()
}
