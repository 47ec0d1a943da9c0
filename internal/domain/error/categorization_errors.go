// Package error defines domain-specific errors for the SmartFinance application.
package error

import (
	"context"
	"errors"
	"strings"
)

// Categorization errors.
var (
	// ErrEmptyDescription is returned when there is nothing to categorize.
	ErrEmptyDescription = errors.New("description is empty")

	// ErrCategorizerNotConfigured is returned when a remote categorizer has no credentials.
	ErrCategorizerNotConfigured = errors.New("categorizer not configured")

	// ErrUnknownCategory is returned when a categorizer answers with a category outside the enum.
	ErrUnknownCategory = errors.New("unknown category in response")

	// ErrInvalidRules is returned when a keyword rules file cannot be used.
	ErrInvalidRules = errors.New("invalid categorization rules")
)

// CategorizationErrorCode defines error codes for categorization failures.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategorizationErrorCode string

const (
	// Input errors (01XXXX)
	ErrCodeEmptyDescription CategorizationErrorCode = "CAT-010001"
	ErrCodeInvalidRules     CategorizationErrorCode = "CAT-010002"

	// Provider errors (02XXXX)
	ErrCodeAIServiceUnavailable CategorizationErrorCode = "CAT-020001"
	ErrCodeAIRateLimited        CategorizationErrorCode = "CAT-020002"
	ErrCodeAIAuthError          CategorizationErrorCode = "CAT-020003"
	ErrCodeAITimeout            CategorizationErrorCode = "CAT-020004"
	ErrCodeAIParseError         CategorizationErrorCode = "CAT-020005"
	ErrCodeAINotConfigured      CategorizationErrorCode = "CAT-020006"
	ErrCodeAIUnknownError       CategorizationErrorCode = "CAT-020007"
)

// categorizationMessages contains the user-facing message for each code.
var categorizationMessages = map[CategorizationErrorCode]string{
	ErrCodeEmptyDescription:     "description must not be empty",
	ErrCodeInvalidRules:         "categorization rules are invalid",
	ErrCodeAIServiceUnavailable: "categorization service is temporarily unavailable",
	ErrCodeAIRateLimited:        "categorization service rate limit reached",
	ErrCodeAIAuthError:          "categorization service rejected the credentials",
	ErrCodeAITimeout:            "categorization service timed out",
	ErrCodeAIParseError:         "categorization service returned an unreadable answer",
	ErrCodeAINotConfigured:      "categorization service is not configured",
	ErrCodeAIUnknownError:       "categorization failed unexpectedly",
}

// CategorizationError is the typed failure result of a categorizer.
type CategorizationError struct {
	Code      CategorizationErrorCode
	Message   string
	Retryable bool
	Err       error
}

// Error implements the error interface.
func (e *CategorizationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategorizationError) Unwrap() error {
	return e.Err
}

// NewCategorizationError creates a new CategorizationError with the default message for code.
func NewCategorizationError(code CategorizationErrorCode, retryable bool, err error) *CategorizationError {
	return &CategorizationError{
		Code:      code,
		Message:   categorizationMessages[code],
		Retryable: retryable,
		Err:       err,
	}
}

// ClassifyCategorizationError converts a provider error into a CategorizationError
// with the matching code and retryable flag. Typed errors pass through untouched.
func ClassifyCategorizationError(err error) *CategorizationError {
	if err == nil {
		return nil
	}

	var typed *CategorizationError
	if errors.As(err, &typed) {
		return typed
	}

	if errors.Is(err, ErrCategorizerNotConfigured) {
		return NewCategorizationError(ErrCodeAINotConfigured, false, err)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return NewCategorizationError(ErrCodeAITimeout, true, err)
	}

	errStr := strings.ToLower(err.Error())

	switch {
	case containsAny(errStr, "rate limit", "quota", "429", "resource exhausted"):
		return NewCategorizationError(ErrCodeAIRateLimited, true, err)
	case containsAny(errStr, "401", "403", "invalid api key", "unauthorized", "authentication"):
		return NewCategorizationError(ErrCodeAIAuthError, false, err)
	case containsAny(errStr, "connection", "network", "dial", "timeout", "unavailable", "503"):
		return NewCategorizationError(ErrCodeAIServiceUnavailable, true, err)
	case errors.Is(err, ErrUnknownCategory) || containsAny(errStr, "parse", "json", "unmarshal", "decode"):
		return NewCategorizationError(ErrCodeAIParseError, true, err)
	default:
		return NewCategorizationError(ErrCodeAIUnknownError, true, err)
	}
}

func containsAny(s string, patterns ...string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
