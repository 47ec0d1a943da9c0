package transaction

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// AddTransactionInput represents the input for adding a transaction.
type AddTransactionInput struct {
	Amount        decimal.Decimal
	Type          entity.TransactionType
	Category      *entity.Category // Optional, defaults to other
	Description   string
	Date          *time.Time // Optional, defaults to now
	Notes         string
	AICategorized bool
	AIConfidence  *float64
}

// Add validates input, appends a new transaction and persists the ledger.
func (l *Ledger) Add(ctx context.Context, input AddTransactionInput) (*entity.Transaction, error) {
	category := entity.CategoryOther
	if input.Category != nil {
		category = *input.Category
	}

	if err := validateType(input.Type); err != nil {
		return nil, err
	}
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if err := validateCategory(category); err != nil {
		return nil, err
	}
	if err := validateDescription(input.Description); err != nil {
		return nil, err
	}
	if err := validateNotes(input.Notes); err != nil {
		return nil, err
	}
	if err := validateConfidence(input.AIConfidence); err != nil {
		return nil, err
	}

	now := l.clock.Now()
	date := now
	if input.Date != nil {
		date = *input.Date
	}

	txn := entity.NewTransaction(input.Amount, input.Type, category, input.Description, date, input.Notes, now)
	txn.AICategorized = input.AICategorized
	if input.AIConfidence != nil {
		confidence := *input.AIConfidence
		txn.AIConfidence = &confidence
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.transactions = append(l.transactions, txn)
	l.persist(ctx)

	slog.Debug("Transaction added", "id", txn.ID, "type", txn.Type, "category", txn.Category)

	return txn.Clone(), nil
}
