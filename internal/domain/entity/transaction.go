// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValid reports whether t is expense or income.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// Transaction represents a financial transaction owned by the ledger.
type Transaction struct {
	ID            uuid.UUID
	Amount        decimal.Decimal // Always non-negative, the sign lives in Type
	Type          TransactionType
	Category      Category
	Description   string
	Date          time.Time
	Notes         string
	AICategorized bool
	AIConfidence  *float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewTransaction creates a new Transaction entity stamped with now.
func NewTransaction(
	amount decimal.Decimal,
	transactionType TransactionType,
	category Category,
	description string,
	date time.Time,
	notes string,
	now time.Time,
) *Transaction {
	return &Transaction{
		ID:          uuid.New(),
		Amount:      amount,
		Type:        transactionType,
		Category:    category,
		Description: description,
		Date:        date,
		Notes:       notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Clone returns a copy that shares no pointers with t.
func (t *Transaction) Clone() *Transaction {
	c := *t
	if t.AIConfidence != nil {
		v := *t.AIConfidence
		c.AIConfidence = &v
	}
	return &c
}

// TransactionStats aggregates the ledger over a date window.
type TransactionStats struct {
	TotalExpenses     decimal.Decimal
	TotalIncome       decimal.Decimal
	NetBalance        decimal.Decimal
	TransactionCount  int
	AverageExpense    decimal.Decimal
	CategoryBreakdown map[Category]decimal.Decimal // Expenses only
	StartDate         time.Time
	EndDate           time.Time
}

// TransactionFilter is an AND-combination of optional predicates. Date and
// amount bounds are inclusive and apply independently.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  *Category
	Type      *TransactionType
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	Search    string // Case-insensitive match on description, notes and category
}

// Matches reports whether t satisfies every predicate set on f.
func (f TransactionFilter) Matches(t *Transaction) bool {
	if f.StartDate != nil && t.Date.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && t.Date.After(*f.EndDate) {
		return false
	}
	if f.Category != nil && t.Category != *f.Category {
		return false
	}
	if f.Type != nil && t.Type != *f.Type {
		return false
	}
	if f.MinAmount != nil && t.Amount.LessThan(*f.MinAmount) {
		return false
	}
	if f.MaxAmount != nil && t.Amount.GreaterThan(*f.MaxAmount) {
		return false
	}

	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Description), term) ||
		strings.Contains(strings.ToLower(t.Notes), term) ||
		strings.Contains(string(t.Category), term)
}
