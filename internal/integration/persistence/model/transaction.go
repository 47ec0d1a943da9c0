// Package model defines storage documents and database models for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// TransactionDocument is the stored JSON form of a transaction.
type TransactionDocument struct {
	ID            uuid.UUID       `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
	Notes         string          `json:"notes,omitempty"`
	AICategorized bool            `json:"aiCategorized,omitempty"`
	AIConfidence  *float64        `json:"aiConfidence,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ToEntity converts a TransactionDocument to a domain Transaction entity.
func (d TransactionDocument) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:            d.ID,
		Amount:        d.Amount,
		Type:          entity.TransactionType(d.Type),
		Category:      entity.Category(d.Category),
		Description:   d.Description,
		Date:          d.Date,
		Notes:         d.Notes,
		AICategorized: d.AICategorized,
		AIConfidence:  d.AIConfidence,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionDocument from a domain Transaction entity.
func TransactionFromEntity(t *entity.Transaction) TransactionDocument {
	return TransactionDocument{
		ID:            t.ID,
		Amount:        t.Amount,
		Type:          string(t.Type),
		Category:      string(t.Category),
		Description:   t.Description,
		Date:          t.Date,
		Notes:         t.Notes,
		AICategorized: t.AICategorized,
		AIConfidence:  t.AIConfidence,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
