package persistence

import (
	"github.com/finance-tracker/smartfinance/internal/application/adapter"
	"github.com/finance-tracker/smartfinance/internal/integration/persistence/model"
)

// NewTransactionRepository creates the ledger repository stored under the transactions key.
func NewTransactionRepository(storage adapter.Storage) adapter.TransactionRepository {
	return newDocumentCollection(
		storage,
		adapter.KeyTransactions,
		model.TransactionDocument.ToEntity,
		model.TransactionFromEntity,
	)
}
