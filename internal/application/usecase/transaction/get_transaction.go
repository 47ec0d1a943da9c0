package transaction

import (
	"github.com/google/uuid"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// Get returns the transaction with id, or nil.
func (l *Ledger) Get(id uuid.UUID) *entity.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if i := l.indexOf(id); i >= 0 {
		return l.transactions[i].Clone()
	}
	return nil
}

// All returns every transaction in insertion order.
func (l *Ledger) All() []*entity.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	all := make([]*entity.Transaction, len(l.transactions))
	for i, t := range l.transactions {
		all[i] = t.Clone()
	}
	return all
}
