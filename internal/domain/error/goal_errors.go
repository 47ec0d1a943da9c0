// Package error defines domain-specific errors for the SmartFinance application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrInvalidGoalName is returned when a goal has no name.
	ErrInvalidGoalName = errors.New("invalid goal name")

	// ErrInvalidTargetAmount is returned when the target amount is zero or negative.
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrInvalidCurrentAmount is returned when the starting amount is negative.
	ErrInvalidCurrentAmount = errors.New("invalid current amount")

	// ErrInvalidDepositAmount is returned when a deposit is zero or negative.
	ErrInvalidDepositAmount = errors.New("invalid deposit amount")

	// ErrInvalidGoalPriority is returned when the goal priority is invalid.
	ErrInvalidGoalPriority = errors.New("invalid goal priority")

	// ErrInvalidGoalStatus is returned when the goal status is invalid.
	ErrInvalidGoalStatus = errors.New("invalid goal status")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidGoalName      GoalErrorCode = "GOL-010001"
	ErrCodeInvalidTargetAmount  GoalErrorCode = "GOL-010002"
	ErrCodeInvalidCurrentAmount GoalErrorCode = "GOL-010003"
	ErrCodeInvalidDepositAmount GoalErrorCode = "GOL-010004"
	ErrCodeInvalidGoalPriority  GoalErrorCode = "GOL-010005"
	ErrCodeInvalidGoalStatus    GoalErrorCode = "GOL-010006"
	ErrCodeMissingGoalFields    GoalErrorCode = "GOL-010007"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
