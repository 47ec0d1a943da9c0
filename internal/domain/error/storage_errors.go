// Package error defines domain-specific errors for the SmartFinance application.
package error

import "errors"

// Storage errors. They are produced by key-value backends and absorbed at the
// persistence boundary.
var (
	// ErrKeyNotFound is returned by a backend when no value is stored under a key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrStorageUnavailable is returned when a backend cannot be reached.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrCorruptRecord is returned when a stored value cannot be decoded.
	ErrCorruptRecord = errors.New("corrupt record")
)

// StorageErrorCode defines error codes for storage errors.
// Format: STO-XXYYYY where XX is category and YYYY is specific error.
type StorageErrorCode string

const (
	// Read errors (01XXXX)
	ErrCodeStorageRead   StorageErrorCode = "STO-010001"
	ErrCodeCorruptRecord StorageErrorCode = "STO-010002"

	// Write errors (02XXXX)
	ErrCodeStorageWrite  StorageErrorCode = "STO-020001"
	ErrCodeStorageDelete StorageErrorCode = "STO-020002"
	ErrCodeStorageClear  StorageErrorCode = "STO-020003"
)

// StorageError represents a storage error with code, key and message.
type StorageError struct {
	Code    StorageErrorCode
	Key     string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	msg := e.Message
	if e.Key != "" {
		msg += " (key " + e.Key + ")"
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a new StorageError for key.
func NewStorageError(code StorageErrorCode, key, message string, err error) *StorageError {
	return &StorageError{
		Code:    code,
		Key:     key,
		Message: message,
		Err:     err,
	}
}
