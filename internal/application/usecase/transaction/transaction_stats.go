package transaction

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
	domainerror "github.com/finance-tracker/smartfinance/internal/domain/error"
)

// DateRange is an inclusive time window.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// CurrentMonth returns the calendar month containing now, in now's location.
func CurrentMonth(now time.Time) DateRange {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return DateRange{
		Start: start,
		End:   start.AddDate(0, 1, 0).Add(-time.Millisecond),
	}
}

// Stats aggregates the transactions inside window, or inside the current
// calendar month when window is nil.
func (l *Ledger) Stats(window *DateRange) (*entity.TransactionStats, error) {
	var r DateRange
	if window != nil {
		if window.End.Before(window.Start) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidDateRange,
				"end date must not be before start date",
				domainerror.ErrInvalidDateRange,
			)
		}
		r = *window
	} else {
		r = CurrentMonth(l.clock.Now())
	}

	transactions := l.Filter(entity.TransactionFilter{StartDate: &r.Start, EndDate: &r.End})

	stats := &entity.TransactionStats{
		TotalExpenses:     decimal.Zero,
		TotalIncome:       decimal.Zero,
		CategoryBreakdown: make(map[entity.Category]decimal.Decimal),
		StartDate:         r.Start,
		EndDate:           r.End,
	}

	expenseCount := 0
	for _, t := range transactions {
		switch t.Type {
		case entity.TransactionTypeExpense:
			expenseCount++
			stats.TotalExpenses = stats.TotalExpenses.Add(t.Amount)
			stats.CategoryBreakdown[t.Category] = stats.CategoryBreakdown[t.Category].Add(t.Amount)
		case entity.TransactionTypeIncome:
			stats.TotalIncome = stats.TotalIncome.Add(t.Amount)
		}
	}

	stats.TransactionCount = len(transactions)
	stats.NetBalance = stats.TotalIncome.Sub(stats.TotalExpenses)
	stats.AverageExpense = entity.SafeDiv(stats.TotalExpenses, decimal.NewFromInt(int64(expenseCount)))

	return stats, nil
}
