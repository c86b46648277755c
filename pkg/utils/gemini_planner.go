package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"wander/internal/models/response_models"
)

// PlannerClientInterface produces a structured trip plan from an assembled
// prompt. Implementations hide which external generative service answers.
type PlannerClientInterface interface {
	GeneratePlan(ctx context.Context, prompt string) (*response_models.TripPlanResponse, error)
}

// Priority-ordered model chain. Earlier entries are cheaper/faster; later
// ones are the fallback when quota runs out on the free tier.
var defaultModelChain = []string{
	"gemini-2.0-flash",
	"gemini-2.0-flash-lite",
	"gemini-1.5-flash",
	"gemini-1.5-pro",
}

const (
	maxAttemptsPerModel = 3
	baseBackoff         = 1 * time.Second
	maxBackoff          = 5 * time.Second
)

type failureClass int

const (
	failureOther failureClass = iota
	failureTransient
	failureQuota
)

// classifyModelError buckets a generation failure per the retry policy:
// transient (503-class) errors are retried on the same model, quota errors
// advance to the next model without burning retries, everything else also
// advances.
func classifyModelError(err error) failureClass {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case 429:
			return failureQuota
		case 500, 503:
			return failureTransient
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "quota"), strings.Contains(msg, "rate limit"),
		strings.Contains(msg, "resource_exhausted"):
		return failureQuota
	case strings.Contains(msg, "unavailable"), strings.Contains(msg, "overloaded"),
		strings.Contains(msg, "503"):
		return failureTransient
	}
	return failureOther
}

type generateFunc func(ctx context.Context, model, prompt string) (string, error)

type GeminiPlannerClient struct {
	client     *genai.Client
	modelChain []string
	logger     *zap.Logger

	// Indirections for the attempt loop so tests can drive the sequencing
	// without a network or a wall clock.
	generate generateFunc
	sleep    func(ctx context.Context, d time.Duration) error
}

func NewGeminiPlannerClient(apiKey string, logger *zap.Logger) (*GeminiPlannerClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY is not set", ErrMissingAPIKey)
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c := &GeminiPlannerClient{
		client:     client,
		modelChain: defaultModelChain,
		logger:     logger,
		sleep:      sleepContext,
	}
	c.generate = c.callModel
	return c, nil
}

// GeneratePlan walks the model chain: up to 3 attempts per model, exponential
// backoff on transient failures, immediate advance on quota errors, first
// success wins. One outbound call per attempt; only the last error survives
// for diagnostics.
func (c *GeminiPlannerClient) GeneratePlan(ctx context.Context, prompt string) (*response_models.TripPlanResponse, error) {
	var lastErr error

	for _, model := range c.modelChain {
		backoff := baseBackoff

		for attempt := 1; attempt <= maxAttemptsPerModel; attempt++ {
			raw, err := c.generate(ctx, model, prompt)
			if err == nil {
				plan, perr := ParseTripPlan(raw)
				if perr != nil {
					return nil, perr
				}
				return plan, nil
			}

			lastErr = err

			class := classifyModelError(err)
			if class != failureTransient || attempt == maxAttemptsPerModel {
				c.logger.Warn("model failed, advancing to next",
					zap.String("model", model),
					zap.Int("attempt", attempt),
					zap.Bool("quota", class == failureQuota),
					zap.Error(err))
				break
			}

			c.logger.Warn("model temporarily unavailable, retrying",
				zap.String("model", model),
				zap.Int("attempt", attempt),
				zap.Duration("backoff", backoff),
				zap.Error(err))

			if serr := c.sleep(ctx, backoff); serr != nil {
				return nil, serr
			}
			backoff *= 2
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrAllModelsExhausted, lastErr)
}

func (c *GeminiPlannerClient) callModel(ctx context.Context, model, prompt string) (string, error) {
	m := c.client.GenerativeModel(model)
	m.ResponseMIMEType = "application/json"
	m.ResponseSchema = tripPlanSchema()
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated by %s", model)
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

func (c *GeminiPlannerClient) Close() error {
	return c.client.Close()
}

// tripPlanSchema is the structured-output contract sent with every request.
func tripPlanSchema() *genai.Schema {
	str := func() *genai.Schema { return &genai.Schema{Type: genai.TypeString} }

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"trip_summary": str(),
			"budget_status": {
				Type:        genai.TypeString,
				Description: "OK, WARNING, or CRITICAL based on budget feasibility",
				Enum:        []string{"OK", "WARNING", "CRITICAL"},
			},
			"ml_comparison": str(),
			"transport_options": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"type":           str(),
						"name":           str(),
						"cost":           str(),
						"duration":       str(),
						"comfort_rating": str(),
					},
					Required: []string{"type", "name", "cost", "duration", "comfort_rating"},
				},
			},
			"cost_breakdown": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"transport":  str(),
					"stay":       str(),
					"food":       str(),
					"activities": str(),
				},
				Required: []string{"transport", "stay", "food", "activities"},
			},
			"itinerary": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"time":            str(),
						"activity":        str(),
						"cost":            str(),
						"cost_saving_tip": str(),
					},
					Required: []string{"time", "activity", "cost_saving_tip"},
				},
			},
			"local_pro_tip": str(),
		},
		Required: []string{
			"trip_summary", "budget_status", "ml_comparison",
			"cost_breakdown", "itinerary", "local_pro_tip",
		},
	}
}

// ParseTripPlan treats the model output as untrusted: strip any markdown
// wrapping, parse, then check the fields the schema marks required.
func ParseTripPlan(raw string) (*response_models.TripPlanResponse, error) {
	cleaned := cleanJSONResponse(raw)

	var plan response_models.TripPlanResponse
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPlan, err)
	}

	switch {
	case plan.TripSummary == "":
		return nil, fmt.Errorf("%w: missing trip_summary", ErrMalformedPlan)
	case !plan.BudgetStatus.Valid():
		return nil, fmt.Errorf("%w: bad budget_status %q", ErrMalformedPlan, plan.BudgetStatus)
	case plan.CostBreakdown.Transport == "" || plan.CostBreakdown.Stay == "" ||
		plan.CostBreakdown.Food == "" || plan.CostBreakdown.Activities == "":
		return nil, fmt.Errorf("%w: incomplete cost_breakdown", ErrMalformedPlan)
	case len(plan.Itinerary) == 0:
		return nil, fmt.Errorf("%w: empty itinerary", ErrMalformedPlan)
	}

	return &plan, nil
}

// cleanJSONResponse removes markdown code fences and anything outside the
// outermost JSON object.
func cleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start != -1 && end > start {
		response = response[start : end+1]
	}
	return strings.TrimSpace(response)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
