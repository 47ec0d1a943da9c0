package persistence

import (
	"github.com/finance-tracker/smartfinance/internal/application/adapter"
	"github.com/finance-tracker/smartfinance/internal/integration/persistence/model"
)

// NewBudgetRepository creates the budget repository stored under the budgets key.
func NewBudgetRepository(storage adapter.Storage) adapter.BudgetRepository {
	return newDocumentCollection(
		storage,
		adapter.KeyBudgets,
		model.BudgetDocument.ToEntity,
		model.BudgetFromEntity,
	)
}
