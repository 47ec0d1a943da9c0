package portfolio

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
	domainerror "github.com/finance-tracker/smartfinance/internal/domain/error"
)

func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

func validateSymbol(symbol string) error {
	if normalizeSymbol(symbol) == "" {
		return domainerror.NewPortfolioError(
			domainerror.ErrCodeInvalidAssetSymbol,
			"symbol is required",
			domainerror.ErrInvalidAssetSymbol,
		)
	}
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return domainerror.NewPortfolioError(
			domainerror.ErrCodeInvalidAssetName,
			"name is required",
			domainerror.ErrInvalidAssetName,
		)
	}
	return nil
}

func validateType(assetType entity.AssetType) error {
	if !assetType.IsValid() {
		return domainerror.NewPortfolioError(
			domainerror.ErrCodeInvalidAssetType,
			"type must be 'crypto', 'stock', or 'other'",
			domainerror.ErrInvalidAssetType,
		)
	}
	return nil
}

func validateQuantity(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return domainerror.NewPortfolioError(
			domainerror.ErrCodeInvalidQuantity,
			"quantity must be greater than zero",
			domainerror.ErrInvalidQuantity,
		)
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return domainerror.NewPortfolioError(
			domainerror.ErrCodeInvalidPrice,
			"price cannot be negative",
			domainerror.ErrInvalidPrice,
		)
	}
	return nil
}
