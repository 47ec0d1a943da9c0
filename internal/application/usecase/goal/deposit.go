package goal

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// Deposit adds amount to the goal with id and persists the collection. The
// goal is completed once the target is covered. It returns nil without error
// when no goal has that id.
func (t *Tracker) Deposit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*entity.Goal, error) {
	if err := validateDepositAmount(amount); err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(id)
	if i < 0 {
		return nil, nil
	}

	updated := t.goals[i].Clone()
	updated.CurrentAmount = updated.CurrentAmount.Add(amount)
	wasCompleted := updated.Status == entity.GoalStatusCompleted
	completeIfReached(updated)
	updated.UpdatedAt = t.clock.Now()

	t.goals[i] = updated
	t.persist(ctx)

	if !wasCompleted && updated.Status == entity.GoalStatusCompleted {
		slog.Info("Goal completed", "goal_id", updated.ID, "target_amount", updated.TargetAmount.String())
	}

	return updated.Clone(), nil
}
