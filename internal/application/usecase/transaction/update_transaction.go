package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// UpdateTransactionInput represents a partial update. Nil fields are left unchanged.
type UpdateTransactionInput struct {
	Amount        *decimal.Decimal
	Type          *entity.TransactionType
	Category      *entity.Category
	Description   *string
	Date          *time.Time
	Notes         *string
	AICategorized *bool
	AIConfidence  *float64
}

// Update merges input into the transaction with id and persists the ledger.
// It returns nil without error when no transaction has that id.
func (l *Ledger) Update(ctx context.Context, id uuid.UUID, input UpdateTransactionInput) (*entity.Transaction, error) {
	if err := validateUpdate(input); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOf(id)
	if i < 0 {
		return nil, nil
	}

	updated := l.transactions[i].Clone()
	if input.Amount != nil {
		updated.Amount = *input.Amount
	}
	if input.Type != nil {
		updated.Type = *input.Type
	}
	if input.Category != nil {
		updated.Category = *input.Category
	}
	if input.Description != nil {
		updated.Description = *input.Description
	}
	if input.Date != nil {
		updated.Date = *input.Date
	}
	if input.Notes != nil {
		updated.Notes = *input.Notes
	}
	if input.AICategorized != nil {
		updated.AICategorized = *input.AICategorized
	}
	if input.AIConfidence != nil {
		confidence := *input.AIConfidence
		updated.AIConfidence = &confidence
	}
	updated.UpdatedAt = l.clock.Now()

	l.transactions[i] = updated
	l.persist(ctx)

	return updated.Clone(), nil
}

func validateUpdate(input UpdateTransactionInput) error {
	if input.Type != nil {
		if err := validateType(*input.Type); err != nil {
			return err
		}
	}
	if input.Amount != nil {
		if err := validateAmount(*input.Amount); err != nil {
			return err
		}
	}
	if input.Category != nil {
		if err := validateCategory(*input.Category); err != nil {
			return err
		}
	}
	if input.Description != nil {
		if err := validateDescription(*input.Description); err != nil {
			return err
		}
	}
	if input.Notes != nil {
		if err := validateNotes(*input.Notes); err != nil {
			return err
		}
	}
	return validateConfidence(input.AIConfidence)
}
