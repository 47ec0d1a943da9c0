package goal

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

const daysPerMonth = 30

// Progress derives the progress of the goal with id at the current time, or
// nil when no goal has that id.
func (t *Tracker) Progress(id uuid.UUID) *entity.GoalProgress {
	goal := t.Get(id)
	if goal == nil {
		return nil
	}
	return progressOf(goal, t.clock.Now(), t.onTrackTolerance)
}

func progressOf(g *entity.Goal, now time.Time, tolerance float64) *entity.GoalProgress {
	percentage := entity.Percentage(g.CurrentAmount, g.TargetAmount)
	remaining := g.TargetAmount.Sub(g.CurrentAmount)

	progress := &entity.GoalProgress{
		GoalID:                g.ID,
		Percentage:            percentage,
		Remaining:             remaining,
		RequiredMonthlySaving: decimal.Zero,
		OnTrack:               true,
		IsCompleted:           g.IsReached(),
		MilestoneReached:      entity.Milestone(percentage),
	}
	if g.Deadline == nil {
		return progress
	}

	daysRemaining := daysBetween(now, *g.Deadline)
	progress.DaysRemaining = &daysRemaining
	if daysRemaining <= 0 {
		return progress
	}

	// remaining / (daysRemaining / 30)
	progress.RequiredMonthlySaving = remaining.
		Mul(decimal.NewFromInt(daysPerMonth)).
		Div(decimal.NewFromInt(int64(daysRemaining)))

	expected := 0.0
	if daysElapsed := daysBetween(g.CreatedAt, now); daysElapsed > 0 {
		expected = float64(daysElapsed) / float64(daysElapsed+daysRemaining) * 100
	}
	progress.OnTrack = percentage >= expected*tolerance

	return progress
}
