// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// CollectionRepository loads and saves a whole collection under one key.
// Load returns an empty collection when nothing usable is stored.
type CollectionRepository[T any] interface {
	// Load reads the full collection.
	Load(ctx context.Context) []T

	// Save replaces the full collection.
	Save(ctx context.Context, items []T)
}

// TransactionRepository persists the ledger.
type TransactionRepository = CollectionRepository[*entity.Transaction]

// BudgetRepository persists budgets.
type BudgetRepository = CollectionRepository[*entity.Budget]

// GoalRepository persists goals.
type GoalRepository = CollectionRepository[*entity.Goal]

// PortfolioRepository persists holdings and the last price refresh time.
type PortfolioRepository interface {
	CollectionRepository[*entity.PortfolioAsset]

	// LoadLastUpdated returns the last refresh timestamp, nil if never refreshed.
	LoadLastUpdated(ctx context.Context) *time.Time

	// SaveLastUpdated stores the last refresh timestamp.
	SaveLastUpdated(ctx context.Context, at time.Time)
}

// CategoryCacheRepository persists the categorization cache map.
type CategoryCacheRepository interface {
	// Load returns the cache keyed by normalized description.
	Load(ctx context.Context) map[string]entity.CategoryCacheEntry

	// Save replaces the persisted cache.
	Save(ctx context.Context, entries map[string]entity.CategoryCacheEntry)
}

// SettingsRepository persists app settings and the user profile.
type SettingsRepository interface {
	// LoadSettings returns the stored settings, false when none are stored.
	LoadSettings(ctx context.Context) (entity.AppSettings, bool)

	// SaveSettings stores settings.
	SaveSettings(ctx context.Context, settings entity.AppSettings)

	// LoadProfile returns the stored profile, nil when none is stored.
	LoadProfile(ctx context.Context) *entity.UserProfile

	// SaveProfile stores profile.
	SaveProfile(ctx context.Context, profile *entity.UserProfile)
}
