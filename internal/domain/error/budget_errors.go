// Package error defines domain-specific errors for the SmartFinance application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrInvalidBudgetName is returned when a budget has no name.
	ErrInvalidBudgetName = errors.New("invalid budget name")

	// ErrInvalidBudgetAmount is returned when the budget amount is zero or negative.
	ErrInvalidBudgetAmount = errors.New("invalid budget amount")

	// ErrInvalidBudgetCategory is returned when the budget category is unknown.
	ErrInvalidBudgetCategory = errors.New("invalid budget category")

	// ErrInvalidBudgetPeriod is returned when the budget period is invalid.
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")

	// ErrInvalidAlertThreshold is returned when the alert threshold is outside (0, 100].
	ErrInvalidAlertThreshold = errors.New("invalid alert threshold")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetName     BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidBudgetAmount   BudgetErrorCode = "BGT-010002"
	ErrCodeInvalidBudgetCategory BudgetErrorCode = "BGT-010003"
	ErrCodeInvalidBudgetPeriod   BudgetErrorCode = "BGT-010004"
	ErrCodeInvalidAlertThreshold BudgetErrorCode = "BGT-010005"
	ErrCodeMissingBudgetFields   BudgetErrorCode = "BGT-010006"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
