// Package settings contains the user preference and profile use cases.
package settings

import (
	"context"
	"log/slog"
	"sync"

	"github.com/finance-tracker/smartfinance/internal/application/adapter"
	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// Store owns the app settings and the optional user profile.
type Store struct {
	mu       sync.RWMutex
	repo     adapter.SettingsRepository
	clock    adapter.Clock
	settings entity.AppSettings
	profile  *entity.UserProfile
}

// NewStore creates a Store holding the default settings. Call Load before use.
func NewStore(repo adapter.SettingsRepository, clock adapter.Clock) *Store {
	return &Store{
		repo:     repo,
		clock:    clock,
		settings: entity.DefaultSettings(clock.Now()),
	}
}

// Load replaces the in-memory state with the persisted one. Missing settings
// keep the defaults.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if stored, ok := s.repo.LoadSettings(ctx); ok {
		s.settings = stored
	}
	s.profile = s.repo.LoadProfile(ctx)
	slog.Info("Settings loaded", "theme", s.settings.Theme, "has_profile", s.profile != nil)
}

// Settings returns the current settings.
func (s *Store) Settings() entity.AppSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.settings
}

// Reset restores and persists the default settings.
func (s *Store) Reset(ctx context.Context) entity.AppSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = entity.DefaultSettings(s.clock.Now())
	s.repo.SaveSettings(ctx, s.settings)

	return s.settings
}

// AIEnabled reports whether remote categorization is switched on.
func (s *Store) AIEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.settings.AI.Enabled
}

// AutoCategorizeEnabled reports whether new transactions without a category
// are categorized automatically.
func (s *Store) AutoCategorizeEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.settings.AI.AutoCategorize
}

// BudgetAlertsEnabled reports whether budget alerts should be delivered.
func (s *Store) BudgetAlertsEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.settings.Notifications.BudgetAlerts
}
