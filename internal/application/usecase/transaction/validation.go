package transaction

import (
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
	domainerror "github.com/finance-tracker/smartfinance/internal/domain/error"
)

const (
	maxDescriptionLength = 255
	maxNotesLength       = 1000
)

func validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must not be negative",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	return nil
}

func validateType(t entity.TransactionType) error {
	if !t.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	return nil
}

func validateCategory(c entity.Category) error {
	if !c.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionCategory,
			"category is not supported",
			domainerror.ErrInvalidTransactionCategory,
		)
	}
	return nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			"description must be at most 255 characters",
			domainerror.ErrDescriptionTooLong,
		)
	}
	return nil
}

func validateNotes(notes string) error {
	if utf8.RuneCountInString(notes) > maxNotesLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNotesTooLong,
			"notes must be at most 1000 characters",
			domainerror.ErrNotesTooLong,
		)
	}
	return nil
}

func validateConfidence(confidence *float64) error {
	if confidence != nil && (*confidence < 0 || *confidence > 1) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidConfidence,
			"ai confidence must be between 0 and 1",
			domainerror.ErrInvalidConfidence,
		)
	}
	return nil
}
