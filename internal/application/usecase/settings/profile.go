package settings

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// UpdateProfileInput represents a partial profile update. A nil
// FinancialGoals leaves the list unchanged.
type UpdateProfileInput struct {
	Name           *string
	Email          *string
	Avatar         *string
	MonthlyIncome  *decimal.Decimal
	FinancialGoals []string
}

// Profile returns the user profile, or nil when none was saved.
func (s *Store) Profile() *entity.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneProfile(s.profile)
}

// UpdateProfile merges input into the profile, creating it when missing,
// and persists it.
func (s *Store) UpdateProfile(ctx context.Context, input UpdateProfileInput) *entity.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	profile := cloneProfile(s.profile)
	if profile == nil {
		profile = &entity.UserProfile{CreatedAt: now}
	}

	if input.Name != nil {
		profile.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		profile.Email = strings.TrimSpace(*input.Email)
	}
	if input.Avatar != nil {
		profile.Avatar = *input.Avatar
	}
	if input.MonthlyIncome != nil {
		income := *input.MonthlyIncome
		profile.MonthlyIncome = &income
	}
	if input.FinancialGoals != nil {
		profile.FinancialGoals = append([]string{}, input.FinancialGoals...)
	}
	profile.UpdatedAt = now

	s.profile = profile
	s.repo.SaveProfile(ctx, profile)

	return cloneProfile(profile)
}

func cloneProfile(p *entity.UserProfile) *entity.UserProfile {
	if p == nil {
		return nil
	}
	c := *p
	if p.MonthlyIncome != nil {
		income := *p.MonthlyIncome
		c.MonthlyIncome = &income
	}
	if p.FinancialGoals != nil {
		c.FinancialGoals = append([]string{}, p.FinancialGoals...)
	}
	return &c
}
