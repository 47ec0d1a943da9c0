package budget

import (
	"github.com/google/uuid"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// Get returns the budget with id, or nil.
func (t *Tracker) Get(id uuid.UUID) *entity.Budget {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if i := t.indexOf(id); i >= 0 {
		return t.budgets[i].Clone()
	}
	return nil
}

// All returns every budget in insertion order.
func (t *Tracker) All() []*entity.Budget {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return cloneAll(t.budgets)
}

// ActiveBudgets returns the budgets whose window has not ended.
func (t *Tracker) ActiveBudgets() []*entity.Budget {
	now := t.clock.Now()

	t.mu.RLock()
	defer t.mu.RUnlock()

	active := make([]*entity.Budget, 0, len(t.budgets))
	for _, b := range t.budgets {
		if !b.EndDate.Before(now) {
			active = append(active, b.Clone())
		}
	}
	return active
}

func cloneAll(budgets []*entity.Budget) []*entity.Budget {
	out := make([]*entity.Budget, len(budgets))
	for i, b := range budgets {
		out[i] = b.Clone()
	}
	return out
}
