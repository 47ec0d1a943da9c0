// Package error defines domain-specific errors for the SmartFinance application.
package error

import "errors"

// Price feed errors.
var (
	// ErrPriceFeedNotConfigured is returned when the feed has no API key.
	ErrPriceFeedNotConfigured = errors.New("price feed not configured")

	// ErrPriceUnavailable is returned when the feed has no usable price for a symbol.
	ErrPriceUnavailable = errors.New("price unavailable")
)

// PriceFeedErrorCode defines error codes for price feed failures.
// Format: PRC-XXYYYY where XX is category and YYYY is specific error.
type PriceFeedErrorCode string

const (
	ErrCodePriceFeedNotConfigured PriceFeedErrorCode = "PRC-010001"
	ErrCodePriceUnavailable       PriceFeedErrorCode = "PRC-010002"
	ErrCodePriceFeedRequestFailed PriceFeedErrorCode = "PRC-020001"
)

// PriceFeedError is the typed failure result of a price lookup.
type PriceFeedError struct {
	Code      PriceFeedErrorCode
	Symbol    string
	Message   string
	Retryable bool
	Err       error
}

// Error implements the error interface.
func (e *PriceFeedError) Error() string {
	msg := e.Message
	if e.Symbol != "" {
		msg = e.Symbol + ": " + msg
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *PriceFeedError) Unwrap() error {
	return e.Err
}

// NewPriceFeedError creates a new PriceFeedError for symbol.
func NewPriceFeedError(code PriceFeedErrorCode, symbol, message string, retryable bool, err error) *PriceFeedError {
	return &PriceFeedError{
		Code:      code,
		Symbol:    symbol,
		Message:   message,
		Retryable: retryable,
		Err:       err,
	}
}
