package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// BudgetDocument is the stored JSON form of a budget.
type BudgetDocument struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Amount         decimal.Decimal `json:"amount"`
	Spent          decimal.Decimal `json:"spent"`
	Category       string          `json:"category"`
	Period         string          `json:"period"`
	StartDate      time.Time       `json:"startDate"`
	EndDate        time.Time       `json:"endDate"`
	Status         string          `json:"status"`
	AlertThreshold float64         `json:"alertThreshold"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ToEntity converts a BudgetDocument to a domain Budget entity.
func (d BudgetDocument) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:             d.ID,
		Name:           d.Name,
		Amount:         d.Amount,
		Spent:          d.Spent,
		Category:       entity.Category(d.Category),
		Period:         entity.BudgetPeriod(d.Period),
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		Status:         entity.BudgetStatus(d.Status),
		AlertThreshold: d.AlertThreshold,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// BudgetFromEntity creates a BudgetDocument from a domain Budget entity.
func BudgetFromEntity(b *entity.Budget) BudgetDocument {
	return BudgetDocument{
		ID:             b.ID,
		Name:           b.Name,
		Amount:         b.Amount,
		Spent:          b.Spent,
		Category:       string(b.Category),
		Period:         string(b.Period),
		StartDate:      b.StartDate,
		EndDate:        b.EndDate,
		Status:         string(b.Status),
		AlertThreshold: b.AlertThreshold,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
