package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/finance-tracker/smartfinance/internal/application/adapter"
	domainerror "github.com/finance-tracker/smartfinance/internal/domain/error"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-1.5-flash"

// GeminiCategorizer implements adapter.Categorizer using Google Gemini.
type GeminiCategorizer struct {
	apiKey    string
	modelName string
}

var _ adapter.Categorizer = (*GeminiCategorizer)(nil)

// NewGeminiCategorizer creates a new Gemini categorizer instance.
func NewGeminiCategorizer(apiKey, modelName string) *GeminiCategorizer {
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	return &GeminiCategorizer{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiCategorizer) IsAvailable() bool {
	return s.apiKey != ""
}

// Name identifies the categorizer in logs.
func (s *GeminiCategorizer) Name() string {
	return "gemini"
}

// Classify asks Gemini for the category of description.
func (s *GeminiCategorizer) Classify(ctx context.Context, description string) (*adapter.Classification, error) {
	if !s.IsAvailable() {
		return nil, domainerror.NewCategorizationError(
			domainerror.ErrCodeAINotConfigured,
			false,
			domainerror.ErrCategorizerNotConfigured,
		)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)

	// JSON output keeps the answer parseable
	model.SetTemperature(0.3)
	model.SetMaxOutputTokens(200)
	model.ResponseMIMEType = "application/json"
	model.SystemInstruction = genai.NewUserContent(genai.Text(classificationSystemPrompt))

	resp, err := model.GenerateContent(ctx, genai.Text(classificationPrompt(description)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	return parseClassification(responseText(resp))
}

// responseText returns the first text part of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}
