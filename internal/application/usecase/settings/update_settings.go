package settings

import (
	"context"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
	domainerror "github.com/finance-tracker/smartfinance/internal/domain/error"
)

// NotificationsPatch is a partial update of the notification toggles.
type NotificationsPatch struct {
	BudgetAlerts      *bool
	GoalMilestones    *bool
	PortfolioUpdates  *bool
	DailyReminders    *bool
	QuietHoursEnabled *bool
	QuietHoursStart   *string
	QuietHoursEnd     *string
}

// AIPatch is a partial update of the AI toggles.
type AIPatch struct {
	Enabled            *bool
	AutoCategorize     *bool
	InsightsEnabled    *bool
	PredictionsEnabled *bool
}

// UpdateSettingsInput represents a partial settings update.
type UpdateSettingsInput struct {
	Theme            *entity.ThemeMode
	Currency         *entity.CurrencyCode
	Notifications    *NotificationsPatch
	AI               *AIPatch
	BiometricEnabled *bool
	AnalyticsEnabled *bool
}

// Update merges input into the settings and persists them.
func (s *Store) Update(ctx context.Context, input UpdateSettingsInput) (entity.AppSettings, error) {
	if input.Theme != nil && !input.Theme.IsValid() {
		return entity.AppSettings{}, domainerror.NewSettingsError(
			domainerror.ErrCodeInvalidTheme,
			"theme must be 'light', 'dark', or 'system'",
			domainerror.ErrInvalidTheme,
		)
	}
	if input.Currency != nil && !input.Currency.IsValid() {
		return entity.AppSettings{}, domainerror.NewSettingsError(
			domainerror.ErrCodeInvalidCurrency,
			"currency is not supported",
			domainerror.ErrInvalidCurrency,
		)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := s.settings
	if input.Theme != nil {
		updated.Theme = *input.Theme
	}
	if input.Currency != nil {
		updated.Currency = *input.Currency
	}
	if n := input.Notifications; n != nil {
		setBool(&updated.Notifications.BudgetAlerts, n.BudgetAlerts)
		setBool(&updated.Notifications.GoalMilestones, n.GoalMilestones)
		setBool(&updated.Notifications.PortfolioUpdates, n.PortfolioUpdates)
		setBool(&updated.Notifications.DailyReminders, n.DailyReminders)
		setBool(&updated.Notifications.QuietHoursEnabled, n.QuietHoursEnabled)
		setString(&updated.Notifications.QuietHoursStart, n.QuietHoursStart)
		setString(&updated.Notifications.QuietHoursEnd, n.QuietHoursEnd)
	}
	if ai := input.AI; ai != nil {
		setBool(&updated.AI.Enabled, ai.Enabled)
		setBool(&updated.AI.AutoCategorize, ai.AutoCategorize)
		setBool(&updated.AI.InsightsEnabled, ai.InsightsEnabled)
		setBool(&updated.AI.PredictionsEnabled, ai.PredictionsEnabled)
	}
	setBool(&updated.BiometricEnabled, input.BiometricEnabled)
	setBool(&updated.AnalyticsEnabled, input.AnalyticsEnabled)
	updated.UpdatedAt = s.clock.Now()

	s.settings = updated
	s.repo.SaveSettings(ctx, s.settings)

	return s.settings, nil
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
