package db

import (
	"fmt"
	"log/slog"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-tracker/smartfinance/config"
)

// openSQLite creates a key-value store in the sqlite file at cfg.SQLitePath.
func openSQLite(cfg *config.StorageConfig) (*Database, error) {
	gormDB, err := gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// sqlite allows one writer, and each :memory: connection is a separate database.
	sqlDB.SetMaxOpenConns(1)

	database, err := newGormDatabase(config.StorageDriverSQLite, gormDB)
	if err != nil {
		return nil, err
	}

	slog.Info("Database connection established",
		"driver", config.StorageDriverSQLite,
		"path", cfg.SQLitePath,
	)

	return database, nil
}
