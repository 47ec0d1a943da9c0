package transaction

import (
	"sort"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// Filter returns the transactions matching filter, most recent date first.
// Transactions with equal dates keep their insertion order.
func (l *Ledger) Filter(filter entity.TransactionFilter) []*entity.Transaction {
	l.mu.RLock()
	matched := make([]*entity.Transaction, 0, len(l.transactions))
	for _, t := range l.transactions {
		if filter.Matches(t) {
			matched = append(matched, t.Clone())
		}
	}
	l.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})
	return matched
}
