// Package transaction contains the transaction ledger use cases.
package transaction

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/finance-tracker/smartfinance/internal/application/adapter"
	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// Ledger owns the transaction collection. Every mutation is written through
// to the repository before it returns.
type Ledger struct {
	mu           sync.RWMutex
	repo         adapter.TransactionRepository
	clock        adapter.Clock
	transactions []*entity.Transaction
}

var _ adapter.TransactionReader = (*Ledger)(nil)

// NewLedger creates an empty Ledger. Call Load before use.
func NewLedger(repo adapter.TransactionRepository, clock adapter.Clock) *Ledger {
	return &Ledger{
		repo:         repo,
		clock:        clock,
		transactions: []*entity.Transaction{},
	}
}

// Load replaces the in-memory collection with the persisted one.
func (l *Ledger) Load(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.transactions = l.repo.Load(ctx)
	slog.Info("Transactions loaded", "count", len(l.transactions))
}

// persist writes the whole collection. Callers hold the write lock.
func (l *Ledger) persist(ctx context.Context) {
	l.repo.Save(ctx, l.transactions)
}

func (l *Ledger) indexOf(id uuid.UUID) int {
	for i, t := range l.transactions {
		if t.ID == id {
			return i
		}
	}
	return -1
}
