package persistence

import (
	"context"

	"github.com/finance-tracker/smartfinance/internal/application/adapter"
	"github.com/finance-tracker/smartfinance/internal/domain/entity"
	"github.com/finance-tracker/smartfinance/internal/integration/persistence/model"
)

// categoryCacheRepository implements the adapter.CategoryCacheRepository interface.
type categoryCacheRepository struct {
	storage adapter.Storage
}

// NewCategoryCacheRepository creates the cache repository stored under the
// ai_categorization_cache key.
func NewCategoryCacheRepository(storage adapter.Storage) adapter.CategoryCacheRepository {
	return &categoryCacheRepository{
		storage: storage,
	}
}

// Load returns the persisted cache, empty when missing or unreadable.
func (r *categoryCacheRepository) Load(ctx context.Context) map[string]entity.CategoryCacheEntry {
	var docs map[string]model.CategoryCacheEntryDocument
	if !r.storage.Get(ctx, adapter.KeyCategorizationCache, &docs) {
		return map[string]entity.CategoryCacheEntry{}
	}

	entries := make(map[string]entity.CategoryCacheEntry, len(docs))
	for key, doc := range docs {
		entries[key] = doc.ToEntity()
	}
	return entries
}

// Save replaces the persisted cache.
func (r *categoryCacheRepository) Save(ctx context.Context, entries map[string]entity.CategoryCacheEntry) {
	docs := make(map[string]model.CategoryCacheEntryDocument, len(entries))
	for key, entry := range entries {
		docs[key] = model.CategoryCacheEntryFromEntity(entry)
	}
	r.storage.Set(ctx, adapter.KeyCategorizationCache, docs)
}
