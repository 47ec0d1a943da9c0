package model

import (
	"time"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// CategoryCacheEntryDocument is the stored JSON form of a cache entry.
// Timestamp is in Unix milliseconds.
type CategoryCacheEntryDocument struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Timestamp  int64   `json:"timestamp"`
}

// ToEntity converts a CategoryCacheEntryDocument to a domain CategoryCacheEntry.
func (d CategoryCacheEntryDocument) ToEntity() entity.CategoryCacheEntry {
	return entity.CategoryCacheEntry{
		Category:   entity.Category(d.Category),
		Confidence: d.Confidence,
		Timestamp:  time.UnixMilli(d.Timestamp).UTC(),
	}
}

// CategoryCacheEntryFromEntity creates a CategoryCacheEntryDocument from a domain CategoryCacheEntry.
func CategoryCacheEntryFromEntity(e entity.CategoryCacheEntry) CategoryCacheEntryDocument {
	return CategoryCacheEntryDocument{
		Category:   string(e.Category),
		Confidence: e.Confidence,
		Timestamp:  e.Timestamp.UnixMilli(),
	}
}
