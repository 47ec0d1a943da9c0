package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// Delete removes the transaction with id and persists the ledger.
// It reports whether a transaction was removed; an unknown id is a no-op.
func (l *Ledger) Delete(ctx context.Context, id uuid.UUID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOf(id)
	if i < 0 {
		return false
	}

	l.transactions = append(l.transactions[:i:i], l.transactions[i+1:]...)
	l.persist(ctx)
	return true
}

// Clear removes every transaction and persists the empty ledger.
func (l *Ledger) Clear(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.transactions = []*entity.Transaction{}
	l.persist(ctx)
}
