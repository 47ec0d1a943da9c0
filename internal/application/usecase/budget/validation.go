package budget

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
	domainerror "github.com/finance-tracker/smartfinance/internal/domain/error"
)

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetName,
			"name is required",
			domainerror.ErrInvalidBudgetName,
		)
	}
	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidBudgetAmount,
		)
	}
	return nil
}

func validateCategory(category entity.Category) error {
	if !category.IsValid() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetCategory,
			"category is not supported",
			domainerror.ErrInvalidBudgetCategory,
		)
	}
	return nil
}

func validatePeriod(period entity.BudgetPeriod) error {
	if !period.IsValid() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"period must be 'weekly', 'monthly', or 'yearly'",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}
	return nil
}

func validateAlertThreshold(threshold float64) error {
	if threshold <= 0 || threshold > 100 {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidAlertThreshold,
			"alert threshold must be greater than 0 and at most 100",
			domainerror.ErrInvalidAlertThreshold,
		)
	}
	return nil
}
