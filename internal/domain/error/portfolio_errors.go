// Package error defines domain-specific errors for the SmartFinance application.
package error

import "errors"

// Portfolio domain errors.
var (
	// ErrInvalidAssetSymbol is returned when an asset has no symbol.
	ErrInvalidAssetSymbol = errors.New("invalid asset symbol")

	// ErrInvalidAssetName is returned when an asset has no name.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidAssetType is returned when the asset type is invalid.
	ErrInvalidAssetType = errors.New("invalid asset type")

	// ErrInvalidQuantity is returned when the quantity is zero or negative.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrInvalidPrice is returned when a price is negative.
	ErrInvalidPrice = errors.New("invalid price")
)

// PortfolioErrorCode defines error codes for portfolio errors.
// Format: PRT-XXYYYY where XX is category and YYYY is specific error.
type PortfolioErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAssetSymbol PortfolioErrorCode = "PRT-010001"
	ErrCodeInvalidAssetName   PortfolioErrorCode = "PRT-010002"
	ErrCodeInvalidAssetType   PortfolioErrorCode = "PRT-010003"
	ErrCodeInvalidQuantity    PortfolioErrorCode = "PRT-010004"
	ErrCodeInvalidPrice       PortfolioErrorCode = "PRT-010005"
	ErrCodeMissingAssetFields PortfolioErrorCode = "PRT-010006"
)

// PortfolioError represents a portfolio error with code and message.
type PortfolioError struct {
	Code    PortfolioErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PortfolioError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PortfolioError) Unwrap() error {
	return e.Err
}

// NewPortfolioError creates a new PortfolioError with the given code and message.
func NewPortfolioError(code PortfolioErrorCode, message string, err error) *PortfolioError {
	return &PortfolioError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
