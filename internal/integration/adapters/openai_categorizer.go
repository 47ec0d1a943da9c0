package adapters

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"github.com/finance-tracker/smartfinance/internal/application/adapter"
	domainerror "github.com/finance-tracker/smartfinance/internal/domain/error"
)

// DefaultOpenAIModel is used when no model is configured.
const DefaultOpenAIModel = openai.GPT3Dot5Turbo

// OpenAICategorizer implements adapter.Categorizer using the OpenAI chat API.
type OpenAICategorizer struct {
	client    *openai.Client
	modelName string
}

var _ adapter.Categorizer = (*OpenAICategorizer)(nil)

// NewOpenAICategorizer creates a categorizer. An empty baseURL uses the
// public OpenAI endpoint.
func NewOpenAICategorizer(apiKey, modelName, baseURL string) (*OpenAICategorizer, error) {
	if apiKey == "" {
		return nil, domainerror.NewCategorizationError(
			domainerror.ErrCodeAINotConfigured,
			false,
			domainerror.ErrCategorizerNotConfigured,
		)
	}
	if modelName == "" {
		modelName = DefaultOpenAIModel
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &OpenAICategorizer{
		client:    openai.NewClientWithConfig(cfg),
		modelName: modelName,
	}, nil
}

// Name identifies the categorizer in logs.
func (s *OpenAICategorizer) Name() string {
	return "openai"
}

// Classify asks the chat model for the category of description.
func (s *OpenAICategorizer) Classify(ctx context.Context, description string) (*adapter.Classification, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.modelName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: classificationSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: classificationPrompt(description)},
		},
		Temperature: 0.3,
		MaxTokens:   200,
	})
	if err != nil {
		return nil, mapOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, domainerror.NewCategorizationError(domainerror.ErrCodeAIParseError, true, fmt.Errorf("no choices in response"))
	}

	return parseClassification(resp.Choices[0].Message.Content)
}

// mapOpenAIError converts HTTP failures of the client into typed errors.
func mapOpenAIError(err error) error {
	status := 0

	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	switch {
	case status == http.StatusTooManyRequests:
		return domainerror.NewCategorizationError(domainerror.ErrCodeAIRateLimited, true, err)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return domainerror.NewCategorizationError(domainerror.ErrCodeAIAuthError, false, err)
	case status >= http.StatusInternalServerError:
		return domainerror.NewCategorizationError(domainerror.ErrCodeAIServiceUnavailable, true, err)
	default:
		return domainerror.ClassifyCategorizationError(err)
	}
}
