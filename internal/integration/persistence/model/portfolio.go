package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// PortfolioAssetDocument is the stored JSON form of a holding.
type PortfolioAssetDocument struct {
	ID                 uuid.UUID       `json:"id"`
	Symbol             string          `json:"symbol"`
	Name               string          `json:"name"`
	Type               string          `json:"type"`
	Quantity           decimal.Decimal `json:"quantity"`
	PurchasePrice      decimal.Decimal `json:"purchasePrice"`
	CurrentPrice       decimal.Decimal `json:"currentPrice"`
	TotalValue         decimal.Decimal `json:"totalValue"`
	CostBasis          decimal.Decimal `json:"costBasis"`
	GainLoss           decimal.Decimal `json:"gainLoss"`
	GainLossPercentage float64         `json:"gainLossPercentage"`
	LastUpdated        time.Time       `json:"lastUpdated"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// ToEntity converts a PortfolioAssetDocument to a domain PortfolioAsset entity.
func (d PortfolioAssetDocument) ToEntity() *entity.PortfolioAsset {
	return &entity.PortfolioAsset{
		ID:                 d.ID,
		Symbol:             d.Symbol,
		Name:               d.Name,
		Type:               entity.AssetType(d.Type),
		Quantity:           d.Quantity,
		PurchasePrice:      d.PurchasePrice,
		CurrentPrice:       d.CurrentPrice,
		TotalValue:         d.TotalValue,
		CostBasis:          d.CostBasis,
		GainLoss:           d.GainLoss,
		GainLossPercentage: d.GainLossPercentage,
		LastUpdated:        d.LastUpdated,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

// PortfolioAssetFromEntity creates a PortfolioAssetDocument from a domain PortfolioAsset entity.
func PortfolioAssetFromEntity(a *entity.PortfolioAsset) PortfolioAssetDocument {
	return PortfolioAssetDocument{
		ID:                 a.ID,
		Symbol:             a.Symbol,
		Name:               a.Name,
		Type:               string(a.Type),
		Quantity:           a.Quantity,
		PurchasePrice:      a.PurchasePrice,
		CurrentPrice:       a.CurrentPrice,
		TotalValue:         a.TotalValue,
		CostBasis:          a.CostBasis,
		GainLoss:           a.GainLoss,
		GainLossPercentage: a.GainLossPercentage,
		LastUpdated:        a.LastUpdated,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}
