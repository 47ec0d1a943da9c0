package budget

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// UpdateBudgetInput represents a partial update. Spent and Status are derived
// and cannot be patched.
type UpdateBudgetInput struct {
	Name           *string
	Amount         *decimal.Decimal
	Category       *entity.Category
	Period         *entity.BudgetPeriod // Changing the period recomputes the window
	AlertThreshold *float64
}

// Update merges input into the budget with id and persists the collection.
// It returns nil without error when no budget has that id.
func (t *Tracker) Update(ctx context.Context, id uuid.UUID, input UpdateBudgetInput) (*entity.Budget, error) {
	if err := validateUpdate(input); err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(id)
	if i < 0 {
		return nil, nil
	}

	now := t.clock.Now()
	updated := t.budgets[i].Clone()
	if input.Name != nil {
		updated.Name = strings.TrimSpace(*input.Name)
	}
	if input.Amount != nil {
		updated.Amount = *input.Amount
	}
	if input.Category != nil {
		updated.Category = *input.Category
	}
	if input.Period != nil && *input.Period != updated.Period {
		updated.Period = *input.Period
		updated.StartDate, updated.EndDate = periodWindow(updated.Period, now)
	}
	if input.AlertThreshold != nil {
		updated.AlertThreshold = *input.AlertThreshold
	}
	updated.UpdatedAt = now

	t.budgets[i] = updated
	t.persist(ctx)

	return updated.Clone(), nil
}

func validateUpdate(input UpdateBudgetInput) error {
	if input.Name != nil {
		if err := validateName(*input.Name); err != nil {
			return err
		}
	}
	if input.Amount != nil {
		if err := validateAmount(*input.Amount); err != nil {
			return err
		}
	}
	if input.Category != nil {
		if err := validateCategory(*input.Category); err != nil {
			return err
		}
	}
	if input.Period != nil {
		if err := validatePeriod(*input.Period); err != nil {
			return err
		}
	}
	if input.AlertThreshold != nil {
		return validateAlertThreshold(*input.AlertThreshold)
	}
	return nil
}
