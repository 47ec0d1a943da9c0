// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// Logical storage keys. Each key holds one JSON document.
const (
	KeyTransactions         = "transactions"
	KeyBudgets              = "budgets"
	KeyGoals                = "goals"
	KeyPortfolioAssets      = "portfolio_assets"
	KeyPortfolioLastUpdated = "portfolio_last_updated"
	KeyCategorizationCache  = "ai_categorization_cache"
	KeyAppSettings          = "app_settings"
	KeyUserProfile          = "user_profile"
)

// KeyValueStore defines a raw durable backend for byte values.
type KeyValueStore interface {
	// Get returns the value stored under key, or domainerror.ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any prior value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists every stored key.
	Keys(ctx context.Context) ([]string, error)

	// Clear removes every stored key.
	Clear(ctx context.Context) error
}

// Storage defines JSON persistence that never fails with an error.
// Backend failures and corrupt records are logged and read as absent.
type Storage interface {
	// Get decodes the value under key into dest and reports whether it succeeded.
	Get(ctx context.Context, key string, dest any) bool

	// Set encodes value and stores it under key.
	Set(ctx context.Context, key string, value any)

	// Remove deletes key.
	Remove(ctx context.Context, key string)

	// ClearAll deletes every key.
	ClearAll(ctx context.Context)

	// ListKeys lists every stored key, empty on failure.
	ListKeys(ctx context.Context) []string

	// Has reports whether a value is stored under key.
	Has(ctx context.Context, key string) bool
}
