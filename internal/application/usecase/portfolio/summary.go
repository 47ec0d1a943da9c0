package portfolio

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// Summary aggregates every holding. LastUpdated is the last price refresh,
// or now when prices were never refreshed.
func (t *Tracker) Summary() *entity.PortfolioSummary {
	t.mu.RLock()
	defer t.mu.RUnlock()

	totalValue := decimal.Zero
	totalCost := decimal.Zero
	for _, a := range t.assets {
		totalValue = totalValue.Add(a.TotalValue)
		totalCost = totalCost.Add(a.CostBasis)
	}
	gainLoss := totalValue.Sub(totalCost)

	lastUpdated := t.clock.Now()
	if t.lastUpdated != nil {
		lastUpdated = *t.lastUpdated
	}

	return &entity.PortfolioSummary{
		TotalValue:              totalValue,
		TotalCostBasis:          totalCost,
		TotalGainLoss:           gainLoss,
		TotalGainLossPercentage: entity.Percentage(gainLoss, totalCost),
		AssetCount:              len(t.assets),
		LastUpdated:             lastUpdated,
	}
}
