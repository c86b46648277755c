package utils

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"wander/internal/models/response_models"
)

// OpenAIPlannerClient is the alternate planning backend, selected with
// PLANNER_PROVIDER=openai. It has no model chain; OpenAI quota errors are
// terminal for the request.
type OpenAIPlannerClient struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

func NewOpenAIPlannerClient(apiKey string, logger *zap.Logger) (*OpenAIPlannerClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY is not set", ErrMissingAPIKey)
	}
	return &OpenAIPlannerClient{
		client: openai.NewClient(apiKey),
		model:  openai.GPT4oMini,
		logger: logger,
	}, nil
}

func (c *OpenAIPlannerClient) GeneratePlan(ctx context.Context, prompt string) (*response_models.TripPlanResponse, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.1,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a travel planning engine. Respond with a single JSON object only.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		c.logger.Warn("openai completion failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrAllModelsExhausted, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices returned", ErrAllModelsExhausted)
	}
	return ParseTripPlan(resp.Choices[0].Message.Content)
}

// NewPlannerClient picks the backend from PLANNER_PROVIDER. Gemini is the
// default; anything unrecognized is rejected early rather than at request
// time.
func NewPlannerClient(provider, geminiKey, openaiKey string, logger *zap.Logger) (PlannerClientInterface, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "", "gemini":
		return NewGeminiPlannerClient(geminiKey, logger)
	case "openai":
		return NewOpenAIPlannerClient(openaiKey, logger)
	default:
		return nil, fmt.Errorf("unsupported planner provider: %s", provider)
	}
}
