package goal

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// AddGoalInput represents the input for goal creation.
type AddGoalInput struct {
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount *decimal.Decimal     // Optional, defaults to 0
	Deadline      *time.Time           // Optional
	Priority      *entity.GoalPriority // Optional, defaults to medium
	Description   string
	Emoji         string
}

// Add validates input, creates an in-progress goal and persists the
// collection. A goal whose starting amount already covers the target starts
// completed.
func (t *Tracker) Add(ctx context.Context, input AddGoalInput) (*entity.Goal, error) {
	current := decimal.Zero
	if input.CurrentAmount != nil {
		current = *input.CurrentAmount
	}
	priority := entity.GoalPriorityMedium
	if input.Priority != nil {
		priority = *input.Priority
	}

	if err := validateName(input.Name); err != nil {
		return nil, err
	}
	if err := validateTargetAmount(input.TargetAmount); err != nil {
		return nil, err
	}
	if err := validateCurrentAmount(current); err != nil {
		return nil, err
	}
	if err := validatePriority(priority); err != nil {
		return nil, err
	}

	var deadline *time.Time
	if input.Deadline != nil {
		d := *input.Deadline
		deadline = &d
	}

	goal := entity.NewGoal(
		strings.TrimSpace(input.Name),
		input.TargetAmount,
		current,
		deadline,
		priority,
		input.Description,
		input.Emoji,
		t.clock.Now(),
	)
	completeIfReached(goal)

	t.mu.Lock()
	defer t.mu.Unlock()

	t.goals = append(t.goals, goal)
	t.persist(ctx)

	return goal.Clone(), nil
}
