package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
	domainerror "github.com/finance-tracker/smartfinance/internal/domain/error"
)

func chatCompletion(content string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1706933106,
		"model":   "gpt-3.5-turbo",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": "stop",
		}},
	}
}

func newOpenAIServer(t *testing.T, status int, body any) (*httptest.Server, *map[string]any) {
	t.Helper()
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("unexpected authorization %q", r.Header.Get("Authorization"))
		}
		_ = json.NewDecoder(r.Body).Decode(&received)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)
	return server, &received
}

func TestOpenAICategorizer_Classify(t *testing.T) {
	server, received := newOpenAIServer(t, http.StatusOK, chatCompletion(`{"category": "dining", "confidence": 0.91}`))

	c, err := NewOpenAICategorizer("test-key", "", server.URL+"/v1")
	if err != nil {
		t.Fatalf("NewOpenAICategorizer() error = %v", err)
	}

	got, err := c.Classify(context.Background(), "Starbucks Coffee")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if got.Category != entity.CategoryDining || got.Confidence != 0.91 {
		t.Errorf("unexpected classification %+v", got)
	}
	if (*received)["model"] != DefaultOpenAIModel {
		t.Errorf("expected default model, got %v", (*received)["model"])
	}
	if (*received)["max_tokens"] != float64(200) {
		t.Errorf("expected max_tokens 200, got %v", (*received)["max_tokens"])
	}
}

func TestOpenAICategorizer_MapsHTTPFailures(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		wantCode      domainerror.CategorizationErrorCode
		wantRetryable bool
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, wantCode: domainerror.ErrCodeAIRateLimited, wantRetryable: true},
		{name: "bad key", status: http.StatusUnauthorized, wantCode: domainerror.ErrCodeAIAuthError, wantRetryable: false},
		{name: "outage", status: http.StatusServiceUnavailable, wantCode: domainerror.ErrCodeAIServiceUnavailable, wantRetryable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := map[string]any{"error": map[string]any{"message": "failure", "type": "error"}}
			server, _ := newOpenAIServer(t, tt.status, body)
			c, _ := NewOpenAICategorizer("test-key", "gpt-4o-mini", server.URL+"/v1")

			_, err := c.Classify(context.Background(), "Anything")

			var catErr *domainerror.CategorizationError
			if !errors.As(err, &catErr) {
				t.Fatalf("expected *CategorizationError, got %v", err)
			}
			if catErr.Code != tt.wantCode || catErr.Retryable != tt.wantRetryable {
				t.Errorf("got %s (retryable %v), want %s (retryable %v)", catErr.Code, catErr.Retryable, tt.wantCode, tt.wantRetryable)
			}
		})
	}
}

func TestOpenAICategorizer_NotConfigured(t *testing.T) {
	_, err := NewOpenAICategorizer("", "", "")
	if !errors.Is(err, domainerror.ErrCategorizerNotConfigured) {
		t.Errorf("expected ErrCategorizerNotConfigured, got %v", err)
	}
}
