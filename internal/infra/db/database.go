// Package db opens the key-value storage backend selected by configuration.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finance-tracker/smartfinance/config"
	"github.com/finance-tracker/smartfinance/internal/application/adapter"
	"github.com/finance-tracker/smartfinance/internal/integration/persistence"
)

const pingTimeout = 5 * time.Second

// Database wraps the connection behind the key-value store.
// Exactly one of gormDB and redisClient is set unless the driver is memory.
type Database struct {
	driver      string
	store       adapter.KeyValueStore
	gormDB      *gorm.DB
	redisClient *redis.Client
}

// Open connects to the backend named by cfg.Driver and returns it ready for use.
func Open(cfg *config.StorageConfig) (*Database, error) {
	switch cfg.Driver {
	case config.StorageDriverSQLite:
		return openSQLite(cfg)
	case config.StorageDriverPostgres:
		return openPostgres(cfg)
	case config.StorageDriverRedis:
		return openRedis(cfg)
	case config.StorageDriverMemory:
		slog.Warn("Using in-memory storage, data will not survive a restart")
		return &Database{
			driver: config.StorageDriverMemory,
			store:  persistence.NewMemoryStore(),
		}, nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}

// newGormDatabase verifies the connection and builds the kv_entries store on it.
func newGormDatabase(driver string, gormDB *gorm.DB) (*Database, error) {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store, err := persistence.NewGormStore(gormDB)
	if err != nil {
		return nil, fmt.Errorf("failed to run auto-migration: %w", err)
	}

	return &Database{
		driver: driver,
		store:  store,
		gormDB: gormDB,
	}, nil
}

// Driver returns the configured driver name.
func (d *Database) Driver() string {
	return d.driver
}

// Store returns the raw key-value store.
func (d *Database) Store() adapter.KeyValueStore {
	return d.store
}

// HealthCheck performs a health check on the backend connection.
func (d *Database) HealthCheck() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	switch {
	case d.gormDB != nil:
		sqlDB, err := d.gormDB.DB()
		if err != nil {
			slog.Error("Failed to get sql.DB for health check", "error", err)
			return false
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.Error("Database health check failed", "error", err)
			return false
		}
	case d.redisClient != nil:
		if err := d.redisClient.Ping(ctx).Err(); err != nil {
			slog.Error("Redis health check failed", "error", err)
			return false
		}
	}

	return true
}

// Close closes the backend connection.
func (d *Database) Close() error {
	switch {
	case d.gormDB != nil:
		sqlDB, err := d.gormDB.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB for closing: %w", err)
		}
		if err := sqlDB.Close(); err != nil {
			return fmt.Errorf("failed to close database connection: %w", err)
		}
	case d.redisClient != nil:
		if err := d.redisClient.Close(); err != nil {
			return fmt.Errorf("failed to close redis connection: %w", err)
		}
	}

	slog.Info("Storage connection closed", "driver", d.driver)
	return nil
}
