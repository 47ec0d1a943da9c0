package persistence

import (
	"context"
	"time"

	"github.com/finance-tracker/smartfinance/internal/application/adapter"
	"github.com/finance-tracker/smartfinance/internal/domain/entity"
	"github.com/finance-tracker/smartfinance/internal/integration/persistence/model"
)

// portfolioRepository implements the adapter.PortfolioRepository interface.
type portfolioRepository struct {
	*documentCollection[*entity.PortfolioAsset, model.PortfolioAssetDocument]
	storage adapter.Storage
}

// NewPortfolioRepository creates the portfolio repository stored under the
// portfolio_assets and portfolio_last_updated keys.
func NewPortfolioRepository(storage adapter.Storage) adapter.PortfolioRepository {
	return &portfolioRepository{
		documentCollection: newDocumentCollection(
			storage,
			adapter.KeyPortfolioAssets,
			model.PortfolioAssetDocument.ToEntity,
			model.PortfolioAssetFromEntity,
		),
		storage: storage,
	}
}

// LoadLastUpdated returns the last refresh timestamp.
func (r *portfolioRepository) LoadLastUpdated(ctx context.Context) *time.Time {
	var at time.Time
	if !r.storage.Get(ctx, adapter.KeyPortfolioLastUpdated, &at) {
		return nil
	}
	return &at
}

// SaveLastUpdated stores the last refresh timestamp.
func (r *portfolioRepository) SaveLastUpdated(ctx context.Context, at time.Time) {
	r.storage.Set(ctx, adapter.KeyPortfolioLastUpdated, at)
}
