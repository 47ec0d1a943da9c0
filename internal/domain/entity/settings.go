// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ThemeMode is the preferred color scheme.
type ThemeMode string

const (
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
	ThemeSystem ThemeMode = "system"
)

// IsValid reports whether t is a known theme.
func (t ThemeMode) IsValid() bool {
	return t == ThemeLight || t == ThemeDark || t == ThemeSystem
}

// CurrencyCode is the display currency.
type CurrencyCode string

// SupportedCurrencies lists the accepted currency codes.
var SupportedCurrencies = []CurrencyCode{"USD", "EUR", "GBP", "INR", "JPY", "AUD", "CAD"}

// IsValid reports whether c is a supported currency.
func (c CurrencyCode) IsValid() bool {
	for _, known := range SupportedCurrencies {
		if c == known {
			return true
		}
	}
	return false
}

// NotificationSettings toggles user notifications.
type NotificationSettings struct {
	BudgetAlerts      bool
	GoalMilestones    bool
	PortfolioUpdates  bool
	DailyReminders    bool
	QuietHoursEnabled bool
	QuietHoursStart   string // HH:MM
	QuietHoursEnd     string // HH:MM
}

// AISettings toggles the categorization and insight features.
type AISettings struct {
	Enabled            bool
	AutoCategorize     bool
	InsightsEnabled    bool
	PredictionsEnabled bool
}

// AppSettings holds user preferences.
type AppSettings struct {
	Theme            ThemeMode
	Currency         CurrencyCode
	Notifications    NotificationSettings
	AI               AISettings
	BiometricEnabled bool
	AnalyticsEnabled bool
	Version          string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// DefaultSettings returns the settings of a fresh install.
func DefaultSettings(now time.Time) AppSettings {
	return AppSettings{
		Theme:    ThemeSystem,
		Currency: "USD",
		Notifications: NotificationSettings{
			BudgetAlerts:     true,
			GoalMilestones:   true,
			PortfolioUpdates: true,
		},
		AI: AISettings{
			Enabled:            true,
			AutoCategorize:     true,
			InsightsEnabled:    true,
			PredictionsEnabled: true,
		},
		Version:   "1.0.0",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UserProfile holds optional personal details.
type UserProfile struct {
	Name           string
	Email          string
	Avatar         string
	MonthlyIncome  *decimal.Decimal
	FinancialGoals []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
