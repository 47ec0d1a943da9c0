package persistence

import (
	"github.com/finance-tracker/smartfinance/internal/application/adapter"
	"github.com/finance-tracker/smartfinance/internal/integration/persistence/model"
)

// NewGoalRepository creates the goal repository stored under the goals key.
func NewGoalRepository(storage adapter.Storage) adapter.GoalRepository {
	return newDocumentCollection(
		storage,
		adapter.KeyGoals,
		model.GoalDocument.ToEntity,
		model.GoalFromEntity,
	)
}
