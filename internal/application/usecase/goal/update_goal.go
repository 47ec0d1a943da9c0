package goal

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// UpdateGoalInput represents a partial update. CurrentAmount only changes
// through Deposit.
type UpdateGoalInput struct {
	Name          *string
	TargetAmount  *decimal.Decimal
	Deadline      *time.Time
	ClearDeadline bool // Removes the deadline, takes precedence over Deadline
	Priority      *entity.GoalPriority
	Status        *entity.GoalStatus
	Description   *string
	Emoji         *string
}

// Update merges input into the goal with id and persists the collection.
// It returns nil without error when no goal has that id.
func (t *Tracker) Update(ctx context.Context, id uuid.UUID, input UpdateGoalInput) (*entity.Goal, error) {
	if err := validateUpdate(input); err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(id)
	if i < 0 {
		return nil, nil
	}

	updated := t.goals[i].Clone()
	if input.Name != nil {
		updated.Name = strings.TrimSpace(*input.Name)
	}
	if input.TargetAmount != nil {
		updated.TargetAmount = *input.TargetAmount
	}
	switch {
	case input.ClearDeadline:
		updated.Deadline = nil
	case input.Deadline != nil:
		d := *input.Deadline
		updated.Deadline = &d
	}
	if input.Priority != nil {
		updated.Priority = *input.Priority
	}
	if input.Status != nil {
		updated.Status = *input.Status
	}
	if input.Description != nil {
		updated.Description = *input.Description
	}
	if input.Emoji != nil {
		updated.Emoji = *input.Emoji
	}
	completeIfReached(updated)
	updated.UpdatedAt = t.clock.Now()

	t.goals[i] = updated
	t.persist(ctx)

	return updated.Clone(), nil
}

func validateUpdate(input UpdateGoalInput) error {
	if input.Name != nil {
		if err := validateName(*input.Name); err != nil {
			return err
		}
	}
	if input.TargetAmount != nil {
		if err := validateTargetAmount(*input.TargetAmount); err != nil {
			return err
		}
	}
	if input.Priority != nil {
		if err := validatePriority(*input.Priority); err != nil {
			return err
		}
	}
	if input.Status != nil {
		return validateStatus(*input.Status)
	}
	return nil
}
