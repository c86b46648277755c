package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
	"wander/pkg/utils"
)

type PlannerServiceInterface interface {
	GeneratePlan(ctx context.Context, req request_models.PlanRequest) (*response_models.PlanResult, error)
}

type plannerService struct {
	client    utils.PlannerClientInterface
	estimator EstimatorServiceInterface
	places    PlacesServiceInterface
	logger    *zap.Logger
}

func NewPlannerService(
	client utils.PlannerClientInterface,
	estimator EstimatorServiceInterface,
	places PlacesServiceInterface,
	logger *zap.Logger,
) PlannerServiceInterface {
	return &plannerService{
		client:    client,
		estimator: estimator,
		places:    places,
		logger:    logger,
	}
}

// GeneratePlan anchors the request with the local cost prediction, assembles
// the prompt, and delegates generation to the configured backend. The
// predicted base cost rides along in the result so callers can show how the
// model's verdict compares to it.
func (s *plannerService) GeneratePlan(ctx context.Context, req request_models.PlanRequest) (*response_models.PlanResult, error) {
	if strings.TrimSpace(req.Destination) == "" ||
		strings.TrimSpace(req.Duration) == "" || req.Budget < 1 {
		return nil, fmt.Errorf("%w: destination, duration and a positive budget are required", utils.ErrInvalidInput)
	}

	baseCost := s.estimator.EstimateBaseCost(req.Destination, req.Duration)

	prompt := s.buildPrompt(ctx, req, baseCost)

	s.logger.Info("generating trip plan",
		zap.String("destination", req.Destination),
		zap.String("duration", req.Duration),
		zap.Int("budget", req.Budget),
		zap.Int("predicted_base_cost", baseCost))

	plan, err := s.client.GeneratePlan(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return &response_models.PlanResult{
		EstimatedBaseCost: baseCost,
		Plan:              plan,
	}, nil
}

func (s *plannerService) buildPrompt(ctx context.Context, req request_models.PlanRequest, baseCost int) string {
	var b strings.Builder

	b.WriteString(`You are the "Wander Intelligence Engine," a hyper-efficient travel coordinator.` + "\n\n")

	query := fmt.Sprintf("%s for %s with %d INR budget.", req.Destination, req.Duration, req.Budget)
	if strings.TrimSpace(req.From) != "" {
		query = fmt.Sprintf("%s to %s for %s with %d INR budget.", req.From, req.Destination, req.Duration, req.Budget)
	}

	fmt.Fprintf(&b, "[USER_QUERY]: %s\n", query)
	fmt.Fprintf(&b, "[PREDICTED_BASE_COST]: %d INR\n\n", baseCost)

	b.WriteString("OPERATIONAL CONSTRAINTS:\n")
	b.WriteString("- Focus on the most cost-effective local transit (State buses, Sleeper/General trains, shared autos).\n")
	b.WriteString("- If the user's budget in the query is 20% lower than the [PREDICTED_BASE_COST], budget_status MUST be \"CRITICAL\" (BUDGET_ALARM).\n")
	b.WriteString("- Prioritize Frugal Engineering: finding the maximum experience for the minimum cost.\n")
	b.WriteString("- Provide specific hacks for saving money on stays (hostels, guesthouses) and local food.\n")

	if t := strings.TrimSpace(req.TransportType); t != "" && !strings.EqualFold(t, "any") {
		fmt.Fprintf(&b, "- The user prefers to travel by %s. Build transport_options and the itinerary around that mode.\n", t)
	}

	if a := req.Allocation; a != nil {
		b.WriteString("\nBUDGET ALLOCATION (echo these amounts exactly in cost_breakdown):\n")
		writeAllocationLine(&b, "transport", a.Transport)
		writeAllocationLine(&b, "stay", a.Stay)
		writeAllocationLine(&b, "food", a.Food)
		writeAllocationLine(&b, "activities", a.Activities)
	}

	if req.IncludePlaces {
		s.writePlacesSection(ctx, &b, req.Destination)
	}

	return b.String()
}

func writeAllocationLine(b *strings.Builder, category string, amount *int) {
	if amount == nil {
		return
	}
	fmt.Fprintf(b, "- %s: %d INR\n", category, *amount)
}

// writePlacesSection enriches the prompt with real venues near the
// destination. Lookups degrade silently; the prompt simply omits whatever
// could not be fetched.
func (s *plannerService) writePlacesSection(ctx context.Context, b *strings.Builder, destination string) {
	sections := []struct {
		heading   string
		placeType string
	}{
		{"STAY OPTIONS NEARBY", "lodging"},
		{"ATTRACTIONS NEARBY", "tourist_attraction"},
		{"FOOD OPTIONS NEARBY", "restaurant"},
	}

	for _, section := range sections {
		places := s.places.FetchNearby(ctx, destination, section.placeType)
		if len(places) == 0 {
			continue
		}

		fmt.Fprintf(b, "\n%s (prefer these real venues when relevant):\n", section.heading)
		for _, p := range places {
			if p.Rating > 0 {
				fmt.Fprintf(b, "- %s (rating %.1f, %d reviews)\n", p.Name, p.Rating, p.UserRatingsTotal)
			} else {
				fmt.Fprintf(b, "- %s\n", p.Name)
			}
		}
	}
}
