// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// Classification is the answer of a categorizer for one description.
type Classification struct {
	Category   entity.Category
	Confidence float64
}

// Categorizer defines the interface for transaction categorization services.
type Categorizer interface {
	// Classify returns the category for description. Failures are returned as
	// errors that domainerror.ClassifyCategorizationError understands.
	Classify(ctx context.Context, description string) (*Classification, error)

	// Name identifies the categorizer in logs.
	Name() string
}
