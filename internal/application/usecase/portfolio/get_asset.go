package portfolio

import (
	"github.com/google/uuid"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// Get returns the asset with id, or nil.
func (t *Tracker) Get(id uuid.UUID) *entity.PortfolioAsset {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if i := t.indexOf(id); i >= 0 {
		return t.assets[i].Clone()
	}
	return nil
}

// All returns every asset in insertion order.
func (t *Tracker) All() []*entity.PortfolioAsset {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]*entity.PortfolioAsset, len(t.assets))
	for i, a := range t.assets {
		out[i] = a.Clone()
	}
	return out
}
