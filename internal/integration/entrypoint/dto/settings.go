package dto

import (
	"time"

	"github.com/finance-tracker/smartfinance/internal/application/usecase/settings"
	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// NotificationSettingsDTO carries the notification toggles.
type NotificationSettingsDTO struct {
	BudgetAlerts      bool   `json:"budget_alerts"`
	GoalMilestones    bool   `json:"goal_milestones"`
	PortfolioUpdates  bool   `json:"portfolio_updates"`
	DailyReminders    bool   `json:"daily_reminders"`
	QuietHoursEnabled bool   `json:"quiet_hours_enabled"`
	QuietHoursStart   string `json:"quiet_hours_start"`
	QuietHoursEnd     string `json:"quiet_hours_end"`
}

// AISettingsDTO carries the AI toggles.
type AISettingsDTO struct {
	Enabled            bool `json:"enabled"`
	AutoCategorize     bool `json:"auto_categorize"`
	InsightsEnabled    bool `json:"insights_enabled"`
	PredictionsEnabled bool `json:"predictions_enabled"`
}

// SettingsResponse represents the application settings.
type SettingsResponse struct {
	Theme            string                  `json:"theme"`
	Currency         string                  `json:"currency"`
	Notifications    NotificationSettingsDTO `json:"notifications"`
	AI               AISettingsDTO           `json:"ai"`
	BiometricEnabled bool                    `json:"biometric_enabled"`
	AnalyticsEnabled bool                    `json:"analytics_enabled"`
	Version          string                  `json:"version"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
}

// UpdateNotificationsRequest is a partial update of the notification toggles.
type UpdateNotificationsRequest struct {
	BudgetAlerts      *bool   `json:"budget_alerts,omitempty"`
	GoalMilestones    *bool   `json:"goal_milestones,omitempty"`
	PortfolioUpdates  *bool   `json:"portfolio_updates,omitempty"`
	DailyReminders    *bool   `json:"daily_reminders,omitempty"`
	QuietHoursEnabled *bool   `json:"quiet_hours_enabled,omitempty"`
	QuietHoursStart   *string `json:"quiet_hours_start,omitempty"`
	QuietHoursEnd     *string `json:"quiet_hours_end,omitempty"`
}

// UpdateAIRequest is a partial update of the AI toggles.
type UpdateAIRequest struct {
	Enabled            *bool `json:"enabled,omitempty"`
	AutoCategorize     *bool `json:"auto_categorize,omitempty"`
	InsightsEnabled    *bool `json:"insights_enabled,omitempty"`
	PredictionsEnabled *bool `json:"predictions_enabled,omitempty"`
}

// UpdateSettingsRequest represents the request body for a settings update.
type UpdateSettingsRequest struct {
	Theme            *string                     `json:"theme,omitempty"`
	Currency         *string                     `json:"currency,omitempty"`
	Notifications    *UpdateNotificationsRequest `json:"notifications,omitempty"`
	AI               *UpdateAIRequest            `json:"ai,omitempty"`
	BiometricEnabled *bool                       `json:"biometric_enabled,omitempty"`
	AnalyticsEnabled *bool                       `json:"analytics_enabled,omitempty"`
}

// ToInput converts the request into the settings patch.
func (r UpdateSettingsRequest) ToInput() settings.UpdateSettingsInput {
	input := settings.UpdateSettingsInput{
		Theme:            typedPtr[entity.ThemeMode](r.Theme),
		Currency:         typedPtr[entity.CurrencyCode](r.Currency),
		BiometricEnabled: r.BiometricEnabled,
		AnalyticsEnabled: r.AnalyticsEnabled,
	}
	if n := r.Notifications; n != nil {
		input.Notifications = &settings.NotificationsPatch{
			BudgetAlerts:      n.BudgetAlerts,
			GoalMilestones:    n.GoalMilestones,
			PortfolioUpdates:  n.PortfolioUpdates,
			DailyReminders:    n.DailyReminders,
			QuietHoursEnabled: n.QuietHoursEnabled,
			QuietHoursStart:   n.QuietHoursStart,
			QuietHoursEnd:     n.QuietHoursEnd,
		}
	}
	if ai := r.AI; ai != nil {
		input.AI = &settings.AIPatch{
			Enabled:            ai.Enabled,
			AutoCategorize:     ai.AutoCategorize,
			InsightsEnabled:    ai.InsightsEnabled,
			PredictionsEnabled: ai.PredictionsEnabled,
		}
	}
	return input
}

// ProfileResponse represents the user profile.
type ProfileResponse struct {
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Avatar         string    `json:"avatar,omitempty"`
	MonthlyIncome  *string   `json:"monthly_income,omitempty"`
	FinancialGoals []string  `json:"financial_goals"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UpdateProfileRequest represents the request body for a profile update.
type UpdateProfileRequest struct {
	Name           *string  `json:"name,omitempty"`
	Email          *string  `json:"email,omitempty" binding:"omitempty,email"`
	Avatar         *string  `json:"avatar,omitempty"`
	MonthlyIncome  *float64 `json:"monthly_income,omitempty"`
	FinancialGoals []string `json:"financial_goals,omitempty"`
}

// ToInput converts the request into the profile patch.
func (r UpdateProfileRequest) ToInput() settings.UpdateProfileInput {
	return settings.UpdateProfileInput{
		Name:           r.Name,
		Email:          r.Email,
		Avatar:         r.Avatar,
		MonthlyIncome:  decimalPtr(r.MonthlyIncome),
		FinancialGoals: r.FinancialGoals,
	}
}

// ToSettingsResponse converts the application settings to a response DTO.
func ToSettingsResponse(s entity.AppSettings) SettingsResponse {
	return SettingsResponse{
		Theme:    string(s.Theme),
		Currency: string(s.Currency),
		Notifications: NotificationSettingsDTO{
			BudgetAlerts:      s.Notifications.BudgetAlerts,
			GoalMilestones:    s.Notifications.GoalMilestones,
			PortfolioUpdates:  s.Notifications.PortfolioUpdates,
			DailyReminders:    s.Notifications.DailyReminders,
			QuietHoursEnabled: s.Notifications.QuietHoursEnabled,
			QuietHoursStart:   s.Notifications.QuietHoursStart,
			QuietHoursEnd:     s.Notifications.QuietHoursEnd,
		},
		AI: AISettingsDTO{
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

// ToProfileResponse converts the user profile to a response DTO.
func ToProfileResponse(p *entity.UserProfile) ProfileResponse {
	response := ProfileResponse{
		Name:           p.Name,
		Email:          p.Email,
		Avatar:         p.Avatar,
		FinancialGoals: p.FinancialGoals,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if response.FinancialGoals == nil {
		response.FinancialGoals = []string{}
	}
	if p.MonthlyIncome != nil {
		income := p.MonthlyIncome.String()
		response.MonthlyIncome = &income
	}
	return response
}
