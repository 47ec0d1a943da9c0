package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// NotificationSettingsDocument is the stored JSON form of notification preferences.
type NotificationSettingsDocument struct {
	BudgetAlerts      bool   `json:"budgetAlerts"`
	GoalMilestones    bool   `json:"goalMilestones"`
	PortfolioUpdates  bool   `json:"portfolioUpdates"`
	DailyReminders    bool   `json:"dailyReminders"`
	QuietHoursEnabled bool   `json:"quietHoursEnabled"`
	QuietHoursStart   string `json:"quietHoursStart,omitempty"`
	QuietHoursEnd     string `json:"quietHoursEnd,omitempty"`
}

// AISettingsDocument is the stored JSON form of AI feature toggles.
type AISettingsDocument struct {
	Enabled            bool `json:"enabled"`
	AutoCategorize     bool `json:"autoCategorize"`
	InsightsEnabled    bool `json:"insightsEnabled"`
	PredictionsEnabled bool `json:"predictionsEnabled"`
}

// SettingsDocument is the stored JSON form of app settings.
type SettingsDocument struct {
	Theme            string                       `json:"theme"`
	Currency         string                       `json:"currency"`
	Notifications    NotificationSettingsDocument `json:"notifications"`
	AI               AISettingsDocument           `json:"ai"`
	BiometricEnabled bool                         `json:"biometricEnabled"`
	AnalyticsEnabled bool                         `json:"analyticsEnabled"`
	Version          string                       `json:"version"`
	CreatedAt        time.Time                    `json:"createdAt"`
	UpdatedAt        time.Time                    `json:"updatedAt"`
}

// ToEntity converts a SettingsDocument to domain AppSettings.
func (d SettingsDocument) ToEntity() entity.AppSettings {
	return entity.AppSettings{
		Theme:    entity.ThemeMode(d.Theme),
		Currency: entity.CurrencyCode(d.Currency),
		Notifications: entity.NotificationSettings{
			BudgetAlerts:      d.Notifications.BudgetAlerts,
			GoalMilestones:    d.Notifications.GoalMilestones,
			PortfolioUpdates:  d.Notifications.PortfolioUpdates,
			DailyReminders:    d.Notifications.DailyReminders,
			QuietHoursEnabled: d.Notifications.QuietHoursEnabled,
			QuietHoursStart:   d.Notifications.QuietHoursStart,
			QuietHoursEnd:     d.Notifications.QuietHoursEnd,
		},
		AI: entity.AISettings{
			Enabled:            d.AI.Enabled,
			AutoCategorize:     d.AI.AutoCategorize,
			InsightsEnabled:    d.AI.InsightsEnabled,
			PredictionsEnabled: d.AI.PredictionsEnabled,
		},
		BiometricEnabled: d.BiometricEnabled,
		AnalyticsEnabled: d.AnalyticsEnabled,
		Version:          d.Version,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

// SettingsFromEntity creates a SettingsDocument from domain AppSettings.
func SettingsFromEntity(s entity.AppSettings) SettingsDocument {
	return SettingsDocument{
		Theme:    string(s.Theme),
		Currency: string(s.Currency),
		Notifications: NotificationSettingsDocument{
			BudgetAlerts:      s.Notifications.BudgetAlerts,
			GoalMilestones:    s.Notifications.GoalMilestones,
			PortfolioUpdates:  s.Notifications.PortfolioUpdates,
			DailyReminders:    s.Notifications.DailyReminders,
			QuietHoursEnabled: s.Notifications.QuietHoursEnabled,
			QuietHoursStart:   s.Notifications.QuietHoursStart,
			QuietHoursEnd:     s.Notifications.QuietHoursEnd,
		},
		AI: AISettingsDocument{
			Enabled:            s.AI.Enabled,
			AutoCategorize:     s.AI.AutoCategorize,
			InsightsEnabled:    s.AI.InsightsEnabled,
			PredictionsEnabled: s.AI.PredictionsEnabled,
		},
		BiometricEnabled: s.BiometricEnabled,
		AnalyticsEnabled: s.AnalyticsEnabled,
		Version:          s.Version,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

// ProfileDocument is the stored JSON form of the user profile.
type ProfileDocument struct {
	Name           string           `json:"name"`
	Email          string           `json:"email,omitempty"`
	Avatar         string           `json:"avatar,omitempty"`
	MonthlyIncome  *decimal.Decimal `json:"monthlyIncome,omitempty"`
	FinancialGoals []string         `json:"financialGoals,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// ToEntity converts a ProfileDocument to a domain UserProfile.
func (d ProfileDocument) ToEntity() *entity.UserProfile {
	return &entity.UserProfile{
		Name:           d.Name,
		Email:          d.Email,
		Avatar:         d.Avatar,
		MonthlyIncome:  d.MonthlyIncome,
		FinancialGoals: d.FinancialGoals,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// ProfileFromEntity creates a ProfileDocument from a domain UserProfile.
func ProfileFromEntity(p *entity.UserProfile) ProfileDocument {
	return ProfileDocument{
		Name:           p.Name,
		Email:          p.Email,
		Avatar:         p.Avatar,
		MonthlyIncome:  p.MonthlyIncome,
		FinancialGoals: p.FinancialGoals,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
