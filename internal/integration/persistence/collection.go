package persistence

import (
	"context"

	"github.com/finance-tracker/smartfinance/internal/application/adapter"
)

// documentCollection implements adapter.CollectionRepository by storing the
// whole collection as a JSON array of documents under one key.
type documentCollection[E any, D any] struct {
	storage    adapter.Storage
	key        string
	toEntity   func(D) E
	fromEntity func(E) D
}

func newDocumentCollection[E any, D any](
	storage adapter.Storage,
	key string,
	toEntity func(D) E,
	fromEntity func(E) D,
) *documentCollection[E, D] {
	return &documentCollection[E, D]{
		storage:    storage,
		key:        key,
		toEntity:   toEntity,
		fromEntity: fromEntity,
	}
}

// Load reads the collection, empty when missing or unreadable.
func (c *documentCollection[E, D]) Load(ctx context.Context) []E {
	var docs []D
	if !c.storage.Get(ctx, c.key, &docs) {
		return []E{}
	}

	items := make([]E, len(docs))
	for i, doc := range docs {
		items[i] = c.toEntity(doc)
	}
	return items
}

// Save replaces the stored collection.
func (c *documentCollection[E, D]) Save(ctx context.Context, items []E) {
	docs := make([]D, len(items))
	for i, item := range items {
		docs[i] = c.fromEntity(item)
	}
	c.storage.Set(ctx, c.key, docs)
}
