// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// TransactionReader is the read-only view of the ledger used by other trackers.
type TransactionReader interface {
	// Filter returns the transactions matching filter, most recent first.
	Filter(filter entity.TransactionFilter) []*entity.Transaction
}
