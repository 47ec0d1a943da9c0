package budget

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/smartfinance/internal/application/adapter"
	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// RecomputeSpending sums every budget's expenses from the ledger, derives its
// status and persists the collection in one write. Budgets whose status
// escalated are reported to the alert sender afterwards. It returns the
// recomputed budgets.
func (t *Tracker) RecomputeSpending(ctx context.Context) []*entity.Budget {
	expense := entity.TransactionTypeExpense

	t.mu.Lock()

	now := t.clock.Now()
	var alerts []adapter.BudgetAlert
	for i, b := range t.budgets {
		category := b.Category
		start, end := b.StartDate, b.EndDate
		matched := t.transactions.Filter(entity.TransactionFilter{
			StartDate: &start,
			EndDate:   &end,
			Category:  &category,
			Type:      &expense,
		})

		spent := decimal.Zero
		for _, txn := range matched {
			spent = spent.Add(txn.Amount)
		}

		percentage := entity.Percentage(spent, b.Amount)
		status := statusFor(percentage, b.AlertThreshold)

		updated := b.Clone()
		updated.Spent = spent
		updated.Status = status
		updated.UpdatedAt = now
		t.budgets[i] = updated

		if status.Severity() > b.Status.Severity() {
			alerts = append(alerts, adapter.BudgetAlert{
				Budget:         updated.Clone(),
				PreviousStatus: b.Status,
				Percentage:     percentage,
			})
		}
	}
	t.persist(ctx)
	recomputed := cloneAll(t.budgets)

	t.mu.Unlock()

	t.notify(ctx, alerts)

	slog.Info("Budget spending recomputed", "budgets", len(recomputed), "escalations", len(alerts))

	return recomputed
}

// statusFor derives a budget status from its spent percentage.
func statusFor(percentage, alertThreshold float64) entity.BudgetStatus {
	switch {
	case percentage >= 100:
		return entity.BudgetStatusExceeded
	case percentage >= alertThreshold:
		return entity.BudgetStatusWarning
	default:
		return entity.BudgetStatusOnTrack
	}
}

func (t *Tracker) notify(ctx context.Context, alerts []adapter.BudgetAlert) {
	if t.alerts == nil {
		return
	}
	for _, alert := range alerts {
		if err := t.alerts.SendBudgetAlert(ctx, alert); err != nil {
			slog.Warn("Failed to send budget alert",
				"budget_id", alert.Budget.ID,
				"status", alert.Budget.Status,
				"error", err,
			)
		}
	}
}
