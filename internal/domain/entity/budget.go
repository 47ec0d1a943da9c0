// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod represents the period type for a budget.
type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// IsValid reports whether p is a known period.
func (p BudgetPeriod) IsValid() bool {
	return p == BudgetPeriodWeekly || p == BudgetPeriodMonthly || p == BudgetPeriodYearly
}

// BudgetStatus is derived from the spent percentage.
type BudgetStatus string

const (
	BudgetStatusOnTrack  BudgetStatus = "on-track"
	BudgetStatusWarning  BudgetStatus = "warning"
	BudgetStatusExceeded BudgetStatus = "exceeded"
)

// Severity orders statuses so escalations can be detected.
func (s BudgetStatus) Severity() int {
	switch s {
	case BudgetStatusWarning:
		return 1
	case BudgetStatusExceeded:
		return 2
	default:
		return 0
	}
}

// Budget represents a spending limit for one category over a period window.
// Spent and Status are derived and only change through a recompute pass.
type Budget struct {
	ID             uuid.UUID
	Name           string
	Amount         decimal.Decimal
	Spent          decimal.Decimal
	Category       Category
	Period         BudgetPeriod
	StartDate      time.Time
	EndDate        time.Time
	Status         BudgetStatus
	AlertThreshold float64 // Percentage, e.g. 80
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewBudget creates a new Budget entity with nothing spent yet.
func NewBudget(
	name string,
	amount decimal.Decimal,
	category Category,
	period BudgetPeriod,
	startDate, endDate time.Time,
	alertThreshold float64,
	now time.Time,
) *Budget {
	return &Budget{
		ID:             uuid.New(),
		Name:           name,
		Amount:         amount,
		Spent:          decimal.Zero,
		Category:       category,
		Period:         period,
		StartDate:      startDate,
		EndDate:        endDate,
		Status:         BudgetStatusOnTrack,
		AlertThreshold: alertThreshold,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Clone returns a copy of b.
func (b *Budget) Clone() *Budget {
	c := *b
	return &c
}

// BudgetProgress is the derived view of a budget at a point in time.
type BudgetProgress struct {
	BudgetID       uuid.UUID
	Percentage     float64
	Remaining      decimal.Decimal
	DaysRemaining  int
	IsOverBudget   bool
	ProjectedSpend decimal.Decimal
	WillExceed     bool
}
