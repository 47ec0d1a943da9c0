// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// BudgetAlert describes a budget whose status escalated during a recompute.
type BudgetAlert struct {
	Budget         *entity.Budget
	PreviousStatus entity.BudgetStatus
	Percentage     float64
}

// BudgetAlertSender defines the interface for notifying about budget escalations.
type BudgetAlertSender interface {
	// SendBudgetAlert delivers one alert.
	SendBudgetAlert(ctx context.Context, alert BudgetAlert) error
}
