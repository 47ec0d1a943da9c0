// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetType classifies a holding.
type AssetType string

const (
	AssetTypeCrypto AssetType = "crypto"
	AssetTypeStock  AssetType = "stock"
	AssetTypeOther  AssetType = "other"
)

// IsValid reports whether t is a known asset type.
func (t AssetType) IsValid() bool {
	return t == AssetTypeCrypto || t == AssetTypeStock || t == AssetTypeOther
}

// PortfolioAsset represents a holding. CostBasis is fixed at creation, the
// value fields follow CurrentPrice.
type PortfolioAsset struct {
	ID                 uuid.UUID
	Symbol             string
	Name               string
	Type               AssetType
	Quantity           decimal.Decimal
	PurchasePrice      decimal.Decimal
	CurrentPrice       decimal.Decimal
	TotalValue         decimal.Decimal
	CostBasis          decimal.Decimal
	GainLoss           decimal.Decimal
	GainLossPercentage float64
	LastUpdated        time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewPortfolioAsset creates a holding valued at its purchase price.
func NewPortfolioAsset(
	symbol, name string,
	assetType AssetType,
	quantity, purchasePrice decimal.Decimal,
	now time.Time,
) *PortfolioAsset {
	costBasis := quantity.Mul(purchasePrice)

	return &PortfolioAsset{
		ID:            uuid.New(),
		Symbol:        symbol,
		Name:          name,
		Type:          assetType,
		Quantity:      quantity,
		PurchasePrice: purchasePrice,
		CurrentPrice:  purchasePrice,
		TotalValue:    costBasis,
		CostBasis:     costBasis,
		GainLoss:      decimal.Zero,
		LastUpdated:   now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Reprice revalues the asset at price and recomputes gain/loss.
func (a *PortfolioAsset) Reprice(price decimal.Decimal) {
	a.CurrentPrice = price
	a.TotalValue = a.Quantity.Mul(price)
	a.GainLoss = a.TotalValue.Sub(a.CostBasis)
	a.GainLossPercentage = Percentage(a.GainLoss, a.CostBasis)
}

// Clone returns a copy of a.
func (a *PortfolioAsset) Clone() *PortfolioAsset {
	c := *a
	return &c
}

// PortfolioSummary aggregates every holding.
type PortfolioSummary struct {
	TotalValue              decimal.Decimal
	TotalCostBasis          decimal.Decimal
	TotalGainLoss           decimal.Decimal
	TotalGainLossPercentage float64
	AssetCount              int
	LastUpdated             time.Time
}

// PriceQuote is a price returned by a price feed.
type PriceQuote struct {
	Symbol    string
	Price     decimal.Decimal
	FetchedAt time.Time
}
