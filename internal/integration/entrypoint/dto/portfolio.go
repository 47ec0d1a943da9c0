package dto

import (
	"time"

	"github.com/finance-tracker/smartfinance/internal/application/usecase/portfolio"
	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// CreateAssetRequest represents the request body for adding a holding.
type CreateAssetRequest struct {
	Symbol        string   `json:"symbol" binding:"required"`
	Name          string   `json:"name" binding:"required"`
	Type          string   `json:"type" binding:"required"`
	Quantity      *float64 `json:"quantity" binding:"required"`
	PurchasePrice *float64 `json:"purchase_price" binding:"required"`
}

// ToInput converts the request into the tracker input.
func (r CreateAssetRequest) ToInput() portfolio.AddAssetInput {
	return portfolio.AddAssetInput{
		Symbol:        r.Symbol,
		Name:          r.Name,
		Type:          entity.AssetType(r.Type),
		Quantity:      decimalOrZero(r.Quantity),
		PurchasePrice: decimalOrZero(r.PurchasePrice),
	}
}

// UpdateAssetRequest represents the request body for updating a holding.
type UpdateAssetRequest struct {
	Symbol *string `json:"symbol,omitempty"`
	Name   *string `json:"name,omitempty"`
	Type   *string `json:"type,omitempty"`
}

// ToInput converts the request into the tracker patch.
func (r UpdateAssetRequest) ToInput() portfolio.UpdateAssetInput {
	return portfolio.UpdateAssetInput{
		Symbol: r.Symbol,
		Name:   r.Name,
		Type:   typedPtr[entity.AssetType](r.Type),
	}
}

// UpdatePriceRequest represents the request body for a manual price update.
type UpdatePriceRequest struct {
	Price *float64 `json:"price" binding:"required"`
}

// AssetResponse represents a single holding in API responses.
type AssetResponse struct {
	ID                 string    `json:"id"`
	Symbol             string    `json:"symbol"`
	Name               string    `json:"name"`
	Type               string    `json:"type"`
	Quantity           string    `json:"quantity"`
	PurchasePrice      string    `json:"purchase_price"`
	CurrentPrice       string    `json:"current_price"`
	TotalValue         string    `json:"total_value"`
	CostBasis          string    `json:"cost_basis"`
	GainLoss           string    `json:"gain_loss"`
	GainLossPercentage float64   `json:"gain_loss_percentage"`
	LastUpdated        time.Time `json:"last_updated"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// AssetListResponse represents the response for listing holdings.
type AssetListResponse struct {
	Assets []AssetResponse `json:"assets"`
}

// PortfolioSummaryResponse represents the aggregate portfolio figures.
type PortfolioSummaryResponse struct {
	TotalValue              string    `json:"total_value"`
	TotalCostBasis          string    `json:"total_cost_basis"`
	TotalGainLoss           string    `json:"total_gain_loss"`
	TotalGainLossPercentage float64   `json:"total_gain_loss_percentage"`
	AssetCount              int       `json:"asset_count"`
	LastUpdated             time.Time `json:"last_updated"`
}

// RefreshPricesResponse reports the outcome of a market price refresh.
type RefreshPricesResponse struct {
	Updated int      `json:"updated"`
	Errors  []string `json:"errors,omitempty"`
}

// ToAssetResponse converts a domain PortfolioAsset entity to an AssetResponse DTO.
func ToAssetResponse(a *entity.PortfolioAsset) AssetResponse {
	return AssetResponse{
		ID:                 a.ID.String(),
		Symbol:             a.Symbol,
		Name:               a.Name,
		Type:               string(a.Type),
		Quantity:           a.Quantity.String(),
		PurchasePrice:      a.PurchasePrice.String(),
		CurrentPrice:       a.CurrentPrice.String(),
		TotalValue:         a.TotalValue.String(),
		CostBasis:          a.CostBasis.String(),
		GainLoss:           a.GainLoss.String(),
		GainLossPercentage: a.GainLossPercentage,
		LastUpdated:        a.LastUpdated,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

// ToAssetListResponse converts holdings to an AssetListResponse DTO.
func ToAssetListResponse(assets []*entity.PortfolioAsset) AssetListResponse {
	items := make([]AssetResponse, len(assets))
	for i, a := range assets {
		items[i] = ToAssetResponse(a)
	}
	return AssetListResponse{Assets: items}
}

// ToPortfolioSummaryResponse converts a portfolio summary to a response DTO.
func ToPortfolioSummaryResponse(s *entity.PortfolioSummary) PortfolioSummaryResponse {
	return PortfolioSummaryResponse{
		TotalValue:              s.TotalValue.String(),
		TotalCostBasis:          s.TotalCostBasis.String(),
		TotalGainLoss:           s.TotalGainLoss.String(),
		TotalGainLossPercentage: s.TotalGainLossPercentage,
		AssetCount:              s.AssetCount,
		LastUpdated:             s.LastUpdated,
	}
}
