package error

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestClassifyCategorizationError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode CategorizationErrorCode
		expectRetry  bool
	}{
		// Timeout/cancellation errors
		{
			name:         "context deadline exceeded",
			err:          context.DeadlineExceeded,
			expectedCode: ErrCodeAITimeout,
			expectRetry:  true,
		},
		{
			name:         "wrapped context canceled",
			err:          fmt.Errorf("generate content: %w", context.Canceled),
			expectedCode: ErrCodeAITimeout,
			expectRetry:  true,
		},
		// Rate limiting errors
		{
			name:         "rate limit error",
			err:          errors.New("rate limit exceeded"),
			expectedCode: ErrCodeAIRateLimited,
			expectRetry:  true,
		},
		{
			name:         "429 status code error",
			err:          errors.New("HTTP 429: too many requests"),
			expectedCode: ErrCodeAIRateLimited,
			expectRetry:  true,
		},
		{
			name:         "resource exhausted error",
			err:          errors.New("googleapi: Error 429: Resource Exhausted"),
			expectedCode: ErrCodeAIRateLimited,
			expectRetry:  true,
		},
		// Authentication errors
		{
			name:         "401 unauthorized",
			err:          errors.New("401 unauthorized"),
			expectedCode: ErrCodeAIAuthError,
			expectRetry:  false,
		},
		{
			name:         "invalid api key",
			err:          errors.New("Invalid API key provided"),
			expectedCode: ErrCodeAIAuthError,
			expectRetry:  false,
		},
		// Network errors
		{
			name:         "dial error",
			err:          errors.New("dial tcp: lookup api.openai.com: no such host"),
			expectedCode: ErrCodeAIServiceUnavailable,
			expectRetry:  true,
		},
		{
			name:         "503 error",
			err:          errors.New("503 service unavailable"),
			expectedCode: ErrCodeAIServiceUnavailable,
			expectRetry:  true,
		},
		// Parse errors
		{
			name:         "json error",
			err:          errors.New("invalid json in response"),
			expectedCode: ErrCodeAIParseError,
			expectRetry:  true,
		},
		{
			name:         "unknown category",
			err:          fmt.Errorf("%w: snacks", ErrUnknownCategory),
			expectedCode: ErrCodeAIParseError,
			expectRetry:  true,
		},
		// Configuration errors
		{
			name:         "not configured",
			err:          ErrCategorizerNotConfigured,
			expectedCode: ErrCodeAINotConfigured,
			expectRetry:  false,
		},
		// Unknown errors
		{
			name:         "unknown error",
			err:          errors.New("something went wrong"),
			expectedCode: ErrCodeAIUnknownError,
			expectRetry:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ClassifyCategorizationError(tt.err)

			if result.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, result.Code)
			}
			if result.Retryable != tt.expectRetry {
				t.Errorf("expected retryable=%v, got %v", tt.expectRetry, result.Retryable)
			}
			if !errors.Is(result, tt.err) {
				t.Errorf("expected classified error to wrap the original")
			}
		})
	}
}

func TestClassifyCategorizationError_Nil(t *testing.T) {
	if got := ClassifyCategorizationError(nil); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestClassifyCategorizationError_PassesTypedErrorThrough(t *testing.T) {
	typed := NewCategorizationError(ErrCodeEmptyDescription, false, ErrEmptyDescription)
	wrapped := fmt.Errorf("categorize: %w", typed)

	got := ClassifyCategorizationError(wrapped)
	if got != typed {
		t.Errorf("expected the typed error to be returned unchanged, got %v", got)
	}
}

func TestStorageError_Error(t *testing.T) {
	err := NewStorageError(ErrCodeStorageWrite, "transactions", "failed to write value", errors.New("disk full"))

	want := "failed to write value (key transactions): disk full"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
	if err.Unwrap() == nil {
		t.Error("expected wrapped error")
	}
}
