package portfolio

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// AddAssetInput represents the input for adding a holding.
type AddAssetInput struct {
	Symbol        string
	Name          string
	Type          entity.AssetType
	Quantity      decimal.Decimal
	PurchasePrice decimal.Decimal
}

// Add validates input, creates a holding valued at its purchase price and
// persists the collection.
func (t *Tracker) Add(ctx context.Context, input AddAssetInput) (*entity.PortfolioAsset, error) {
	if err := validateSymbol(input.Symbol); err != nil {
		return nil, err
	}
	if err := validateName(input.Name); err != nil {
		return nil, err
	}
	if err := validateType(input.Type); err != nil {
		return nil, err
	}
	if err := validateQuantity(input.Quantity); err != nil {
		return nil, err
	}
	if err := validatePrice(input.PurchasePrice); err != nil {
		return nil, err
	}

	asset := entity.NewPortfolioAsset(
		normalizeSymbol(input.Symbol),
		strings.TrimSpace(input.Name),
		input.Type,
		input.Quantity,
		input.PurchasePrice,
		t.clock.Now(),
	)

	t.mu.Lock()
	defer t.mu.Unlock()

	t.assets = append(t.assets, asset)
	t.persist(ctx)

	return asset.Clone(), nil
}
