// Package budget contains the budget tracker use cases.
package budget

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/smartfinance/internal/application/adapter"
	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// DefaultAlertThreshold is the warning percentage used when none is configured.
const DefaultAlertThreshold = 80

// Tracker owns the budget collection. Spent and Status are only changed by
// RecomputeSpending, which reads the ledger through a read-only port.
type Tracker struct {
	mu                    sync.RWMutex
	repo                  adapter.BudgetRepository
	transactions          adapter.TransactionReader
	clock                 adapter.Clock
	alerts                adapter.BudgetAlertSender
	defaultAlertThreshold float64
	budgets               []*entity.Budget
}

// NewTracker creates an empty Tracker. alerts may be nil. Call Load before use.
func NewTracker(
	repo adapter.BudgetRepository,
	transactions adapter.TransactionReader,
	clock adapter.Clock,
	alerts adapter.BudgetAlertSender,
	defaultAlertThreshold float64,
) *Tracker {
	if defaultAlertThreshold <= 0 || defaultAlertThreshold > 100 {
		defaultAlertThreshold = DefaultAlertThreshold
	}
	return &Tracker{
		repo:                  repo,
		transactions:          transactions,
		clock:                 clock,
		alerts:                alerts,
		defaultAlertThreshold: defaultAlertThreshold,
		budgets:               []*entity.Budget{},
	}
}

// Load replaces the in-memory collection with the persisted one.
func (t *Tracker) Load(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.budgets = t.repo.Load(ctx)
	slog.Info("Budgets loaded", "count", len(t.budgets))
}

// persist writes the whole collection. Callers hold the write lock.
func (t *Tracker) persist(ctx context.Context) {
	t.repo.Save(ctx, t.budgets)
}

func (t *Tracker) indexOf(id uuid.UUID) int {
	for i, b := range t.budgets {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// periodWindow returns the window of a budget created at now. Every period
// starts at the beginning of the current month.
func periodWindow(period entity.BudgetPeriod, now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	switch period {
	case entity.BudgetPeriodWeekly:
		return start, start.AddDate(0, 0, 7)
	case entity.BudgetPeriodYearly:
		return start, start.AddDate(1, 0, 0)
	default:
		return start, start.AddDate(0, 1, 0).Add(-time.Millisecond)
	}
}

// daysBetween counts whole days from a to b, truncated toward zero.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
