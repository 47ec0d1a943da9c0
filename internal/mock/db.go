package mock

import (
	"database/sql"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDb opens a private in-memory sqlite database and migrates models into it.
func NewDb(models ...any) (*gorm.DB, error) {
	dbSQL, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}

	// A second connection would see a different in-memory database.
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if len(models) > 0 {
		if err := dbConn.AutoMigrate(models...); err != nil {
			return nil, fmt.Errorf("failed to migrate models: %w", err)
		}
	}

	return dbConn, nil
}
