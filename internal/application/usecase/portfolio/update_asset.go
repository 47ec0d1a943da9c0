package portfolio

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// UpdateAssetInput represents a partial update. Quantity and purchase price
// are fixed at creation; prices change through UpdatePrice.
type UpdateAssetInput struct {
	Symbol *string
	Name   *string
	Type   *entity.AssetType
}

// Update merges input into the asset with id and persists the collection.
// It returns nil without error when no asset has that id.
func (t *Tracker) Update(ctx context.Context, id uuid.UUID, input UpdateAssetInput) (*entity.PortfolioAsset, error) {
	if input.Symbol != nil {
		if err := validateSymbol(*input.Symbol); err != nil {
			return nil, err
		}
	}
	if input.Name != nil {
		if err := validateName(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Type != nil {
		if err := validateType(*input.Type); err != nil {
			return nil, err
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(id)
	if i < 0 {
		return nil, nil
	}

	updated := t.assets[i].Clone()
	if input.Symbol != nil {
		updated.Symbol = normalizeSymbol(*input.Symbol)
	}
	if input.Name != nil {
		updated.Name = strings.TrimSpace(*input.Name)
	}
	if input.Type != nil {
		updated.Type = *input.Type
	}
	updated.UpdatedAt = t.clock.Now()

	t.assets[i] = updated
	t.persist(ctx)

	return updated.Clone(), nil
}
