package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/smartfinance/config"
	"github.com/finance-tracker/smartfinance/internal/integration/persistence"
)

// openRedis creates a key-value store on the Redis server at cfg.RedisURL.
// REDIS_PASSWORD and REDIS_DB override the values carried by the URL.
func openRedis(cfg *config.StorageConfig) (*Database, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if cfg.RedisPassword != "" {
		opts.Password = cfg.RedisPassword
	}
	if cfg.RedisDB != 0 {
		opts.DB = cfg.RedisDB
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	slog.Info("Redis connection established",
		"addr", opts.Addr,
		"db", opts.DB,
		"key_prefix", cfg.RedisKeyPrefix,
	)

	return &Database{
		driver:      config.StorageDriverRedis,
		store:       persistence.NewRedisStore(client, cfg.RedisKeyPrefix),
		redisClient: client,
	}, nil
}
