package goal

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
	domainerror "github.com/finance-tracker/smartfinance/internal/domain/error"
)

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalName,
			"name is required",
			domainerror.ErrInvalidGoalName,
		)
	}
	return nil
}

func validateTargetAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}
	return nil
}

func validateCurrentAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidCurrentAmount,
			"current amount cannot be negative",
			domainerror.ErrInvalidCurrentAmount,
		)
	}
	return nil
}

func validateDepositAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidDepositAmount,
			"deposit amount must be greater than zero",
			domainerror.ErrInvalidDepositAmount,
		)
	}
	return nil
}

func validatePriority(priority entity.GoalPriority) error {
	if !priority.IsValid() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalPriority,
			"priority must be 'low', 'medium', or 'high'",
			domainerror.ErrInvalidGoalPriority,
		)
	}
	return nil
}

func validateStatus(status entity.GoalStatus) error {
	if !status.IsValid() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalStatus,
			"status must be 'in-progress', 'completed', or 'paused'",
			domainerror.ErrInvalidGoalStatus,
		)
	}
	return nil
}
