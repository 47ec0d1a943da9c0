package budget

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// AddBudgetInput represents the input for budget creation.
type AddBudgetInput struct {
	Name           string
	Amount         decimal.Decimal
	Category       entity.Category
	Period         entity.BudgetPeriod
	AlertThreshold *float64 // Optional, defaults to the configured threshold
}

// Add validates input, creates a budget for the current period window and
// persists the collection.
func (t *Tracker) Add(ctx context.Context, input AddBudgetInput) (*entity.Budget, error) {
	threshold := t.defaultAlertThreshold
	if input.AlertThreshold != nil {
		threshold = *input.AlertThreshold
	}

	if err := validateName(input.Name); err != nil {
		return nil, err
	}
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if err := validateCategory(input.Category); err != nil {
		return nil, err
	}
	if err := validatePeriod(input.Period); err != nil {
		return nil, err
	}
	if err := validateAlertThreshold(threshold); err != nil {
		return nil, err
	}

	now := t.clock.Now()
	start, end := periodWindow(input.Period, now)
	budget := entity.NewBudget(strings.TrimSpace(input.Name), input.Amount, input.Category, input.Period, start, end, threshold, now)

	t.mu.Lock()
	defer t.mu.Unlock()

	t.budgets = append(t.budgets, budget)
	t.persist(ctx)

	return budget.Clone(), nil
}
