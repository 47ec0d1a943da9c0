package portfolio

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// UpdatePrice revalues the asset with id at price and persists the
// collection. It returns nil without error when no asset has that id.
func (t *Tracker) UpdatePrice(ctx context.Context, id uuid.UUID, price decimal.Decimal) (*entity.PortfolioAsset, error) {
	if err := validatePrice(price); err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(id)
	if i < 0 {
		return nil, nil
	}

	now := t.clock.Now()
	updated := t.assets[i].Clone()
	updated.Reprice(price)
	updated.LastUpdated = now
	updated.UpdatedAt = now

	t.assets[i] = updated
	t.persist(ctx)

	return updated.Clone(), nil
}
