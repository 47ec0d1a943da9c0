package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finance-tracker/smartfinance/internal/application/adapter"
	domainerror "github.com/finance-tracker/smartfinance/internal/domain/error"
	"github.com/finance-tracker/smartfinance/internal/integration/persistence/model"
)

// gormStore implements the adapter.KeyValueStore interface with a sql table.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a key-value store backed by the kv_entries table,
// creating the table when it does not exist.
func NewGormStore(db *gorm.DB) (adapter.KeyValueStore, error) {
	if err := db.AutoMigrate(&model.KVEntryModel{}); err != nil {
		return nil, err
	}
	return &gormStore{
		db: db,
	}, nil
}

// Get retrieves the value stored under key.
func (s *gormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry model.KVEntryModel
	result := s.db.WithContext(ctx).Where("entry_key = ?", key).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrKeyNotFound
		}
		return nil, domainerror.NewStorageError(domainerror.ErrCodeStorageRead, key, "failed to read value", result.Error)
	}
	return []byte(entry.Value), nil
}

// Set upserts the value under key.
func (s *gormStore) Set(ctx context.Context, key string, value []byte) error {
	entry := model.KVEntryModel{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now().UTC(),
	}

	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry)
	if result.Error != nil {
		return domainerror.NewStorageError(domainerror.ErrCodeStorageWrite, key, "failed to write value", result.Error)
	}
	return nil
}

// Delete removes key.
func (s *gormStore) Delete(ctx context.Context, key string) error {
	result := s.db.WithContext(ctx).Where("entry_key = ?", key).Delete(&model.KVEntryModel{})
	if result.Error != nil {
		return domainerror.NewStorageError(domainerror.ErrCodeStorageDelete, key, "failed to delete value", result.Error)
	}
	return nil
}

// Keys lists every stored key in sorted order.
func (s *gormStore) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	result := s.db.WithContext(ctx).
		Model(&model.KVEntryModel{}).
		Order("entry_key").
		Pluck("entry_key", &keys)
	if result.Error != nil {
		return nil, domainerror.NewStorageError(domainerror.ErrCodeStorageRead, "", "failed to list keys", result.Error)
	}
	return keys, nil
}

// Clear removes every row of the kv_entries table.
func (s *gormStore) Clear(ctx context.Context) error {
	result := s.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.KVEntryModel{})
	if result.Error != nil {
		return domainerror.NewStorageError(domainerror.ErrCodeStorageClear, "", "failed to clear values", result.Error)
	}
	return nil
}
