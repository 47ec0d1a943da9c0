// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// PriceFeed defines the interface for market price lookups.
type PriceFeed interface {
	// FetchPrice returns the current price for symbol.
	FetchPrice(ctx context.Context, symbol string, assetType entity.AssetType) (*entity.PriceQuote, error)
}
