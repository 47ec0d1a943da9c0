package adapters

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
	domainerror "github.com/finance-tracker/smartfinance/internal/domain/error"
)

func TestParseClassification(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		wantCategory   entity.Category
		wantConfidence float64
		wantErr        bool
	}{
		{name: "plain", text: `{"category": "dining", "confidence": 0.88}`, wantCategory: entity.CategoryDining, wantConfidence: 0.88},
		{name: "fenced", text: "```json\n{\"category\": \"Travel\", \"confidence\": 0.5}\n```", wantCategory: entity.CategoryTravel, wantConfidence: 0.5},
		{name: "clamped", text: `{"category": "bills", "confidence": 3}`, wantCategory: entity.CategoryBills, wantConfidence: 1},
		{name: "unknown category", text: `{"category": "pets", "confidence": 0.9}`, wantErr: true},
		{name: "not json", text: "dining", wantErr: true},
		{name: "empty", text: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseClassification(tt.text)
			if tt.wantErr {
				var catErr *domainerror.CategorizationError
				if !errors.As(err, &catErr) || catErr.Code != domainerror.ErrCodeAIParseError {
					t.Errorf("expected CAT-020005, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseClassification() error = %v", err)
			}
			if got.Category != tt.wantCategory || got.Confidence != tt.wantConfidence {
				t.Errorf("got %s/%v, want %s/%v", got.Category, got.Confidence, tt.wantCategory, tt.wantConfidence)
			}
		})
	}
}

func TestClassificationPromptListsEveryCategory(t *testing.T) {
	prompt := classificationPrompt("Starbucks Coffee")

	if !strings.Contains(prompt, `"Starbucks Coffee"`) {
		t.Errorf("expected description in prompt, got %q", prompt)
	}
	for _, c := range entity.AllCategories {
		if !strings.Contains(prompt, string(c)) {
			t.Errorf("expected category %s in prompt", c)
		}
	}
}

func TestGeminiCategorizer_NotConfigured(t *testing.T) {
	c := NewGeminiCategorizer("", "")

	if c.IsAvailable() {
		t.Error("expected categorizer without key to be unavailable")
	}
	_, err := c.Classify(context.Background(), "Starbucks")

	var catErr *domainerror.CategorizationError
	if !errors.As(err, &catErr) || catErr.Code != domainerror.ErrCodeAINotConfigured || catErr.Retryable {
		t.Errorf("expected non-retryable CAT-020006, got %v", err)
	}
	if c.modelName != DefaultGeminiModel {
		t.Errorf("expected default model, got %s", c.modelName)
	}
}
