package persistence

import (
	"context"

	"github.com/finance-tracker/smartfinance/internal/application/adapter"
	"github.com/finance-tracker/smartfinance/internal/domain/entity"
	"github.com/finance-tracker/smartfinance/internal/integration/persistence/model"
)

// settingsRepository implements the adapter.SettingsRepository interface.
type settingsRepository struct {
	storage adapter.Storage
}

// NewSettingsRepository creates the settings repository stored under the
// app_settings and user_profile keys.
func NewSettingsRepository(storage adapter.Storage) adapter.SettingsRepository {
	return &settingsRepository{
		storage: storage,
	}
}

// LoadSettings returns the stored settings.
func (r *settingsRepository) LoadSettings(ctx context.Context) (entity.AppSettings, bool) {
	var doc model.SettingsDocument
	if !r.storage.Get(ctx, adapter.KeyAppSettings, &doc) {
		return entity.AppSettings{}, false
	}
	return doc.ToEntity(), true
}

// SaveSettings stores settings.
func (r *settingsRepository) SaveSettings(ctx context.Context, settings entity.AppSettings) {
	r.storage.Set(ctx, adapter.KeyAppSettings, model.SettingsFromEntity(settings))
}

// LoadProfile returns the stored profile.
func (r *settingsRepository) LoadProfile(ctx context.Context) *entity.UserProfile {
	var doc model.ProfileDocument
	if !r.storage.Get(ctx, adapter.KeyUserProfile, &doc) {
		return nil
	}
	return doc.ToEntity()
}

// SaveProfile stores profile.
func (r *settingsRepository) SaveProfile(ctx context.Context, profile *entity.UserProfile) {
	r.storage.Set(ctx, adapter.KeyUserProfile, model.ProfileFromEntity(profile))
}
