package budget

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// Progress derives the progress of the budget with id at the current time,
// or nil when no budget has that id.
func (t *Tracker) Progress(id uuid.UUID) *entity.BudgetProgress {
	budget := t.Get(id)
	if budget == nil {
		return nil
	}
	return progressOf(budget, t.clock.Now())
}

func progressOf(b *entity.Budget, now time.Time) *entity.BudgetProgress {
	daysSinceStart := daysBetween(b.StartDate, now)
	totalDays := daysBetween(b.StartDate, b.EndDate)

	dailyAverage := decimal.Zero
	if daysSinceStart > 0 {
		dailyAverage = b.Spent.Div(decimal.NewFromInt(int64(daysSinceStart)))
	}
	projected := dailyAverage.Mul(decimal.NewFromInt(int64(totalDays)))

	return &entity.BudgetProgress{
		BudgetID:       b.ID,
		Percentage:     entity.Percentage(b.Spent, b.Amount),
		Remaining:      b.Amount.Sub(b.Spent),
		DaysRemaining:  daysBetween(now, b.EndDate),
		IsOverBudget:   b.Spent.GreaterThan(b.Amount),
		ProjectedSpend: projected,
		WillExceed:     projected.GreaterThan(b.Amount),
	}
}
