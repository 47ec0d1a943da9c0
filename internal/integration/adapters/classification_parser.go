package adapters

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/finance-tracker/smartfinance/internal/application/adapter"
	"github.com/finance-tracker/smartfinance/internal/domain/entity"
	domainerror "github.com/finance-tracker/smartfinance/internal/domain/error"
)

// classificationPrompt asks a model for a single JSON classification.
func classificationPrompt(description string) string {
	categories := make([]string, len(entity.AllCategories))
	for i, c := range entity.AllCategories {
		categories[i] = string(c)
	}

	return fmt.Sprintf(`Categorize this transaction: %q.
Categories: %s.
Return JSON format: {"category": "category_name", "confidence": 0.95}`,
		description, strings.Join(categories, ", "))
}

const classificationSystemPrompt = "You are a financial assistant that categorizes transactions. Return ONLY valid JSON with no additional text."

// classificationAnswer is the JSON a model is asked to return.
type classificationAnswer struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// parseClassification reads a model answer, tolerating markdown code fences.
func parseClassification(text string) (*adapter.Classification, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	if text == "" {
		return nil, domainerror.NewCategorizationError(domainerror.ErrCodeAIParseError, true, fmt.Errorf("empty response"))
	}

	var answer classificationAnswer
	if err := json.Unmarshal([]byte(text), &answer); err != nil {
		return nil, domainerror.NewCategorizationError(domainerror.ErrCodeAIParseError, true, fmt.Errorf("failed to parse JSON response: %w", err))
	}

	category, ok := entity.ParseCategory(answer.Category)
	if !ok {
		return nil, domainerror.NewCategorizationError(domainerror.ErrCodeAIParseError, true,
			fmt.Errorf("%w: %q", domainerror.ErrUnknownCategory, answer.Category))
	}

	confidence := answer.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	return &adapter.Classification{Category: category, Confidence: confidence}, nil
}
