package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"go.uber.org/zap"
)

// PlaceSummary is one nearby lodging, attraction, or restaurant used to
// ground the planner's recommendations in real venues.
type PlaceSummary struct {
	Name             string   `json:"name"`
	Rating           float64  `json:"rating,omitempty"`
	PriceLevel       int      `json:"price_level,omitempty"`
	UserRatingsTotal int      `json:"user_ratings_total,omitempty"`
	Types            []string `json:"types,omitempty"`
}

type PlacesServiceInterface interface {
	// FetchNearby returns up to 10 places of the given type around the
	// destination. Failures degrade to an empty list, never an error, so
	// planning proceeds without venue grounding.
	FetchNearby(ctx context.Context, destination string, placeType string) []PlaceSummary
}

type googlePlacesService struct {
	httpClient *http.Client
	apiKey     string
	logger     *zap.Logger
}

func NewPlacesService(logger *zap.Logger) PlacesServiceInterface {
	return &googlePlacesService{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiKey:     os.Getenv("GOOGLE_MAPS_API_KEY"),
		logger:     logger,
	}
}

const maxPlacesPerType = 10

type textSearchResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Name             string   `json:"name"`
		Rating           float64  `json:"rating"`
		PriceLevel       int      `json:"price_level"`
		UserRatingsTotal int      `json:"user_ratings_total"`
		Types            []string `json:"types"`
	} `json:"results"`
}

func (s *googlePlacesService) FetchNearby(ctx context.Context, destination string, placeType string) []PlaceSummary {
	if s.apiKey == "" {
		return nil
	}

	q := url.Values{}
	q.Set("query", fmt.Sprintf("%s in %s", placeType, destination))
	q.Set("type", placeType)
	q.Set("key", s.apiKey)

	endpoint := "https://maps.googleapis.com/maps/api/place/textsearch/json?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Warn("places lookup failed",
			zap.String("destination", destination),
			zap.String("type", placeType),
			zap.Error(err))
		return nil
	}
	defer resp.Body.Close()

	var body textSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil
	}
	if body.Status != "OK" {
		s.logger.Warn("places lookup returned no results",
			zap.String("destination", destination),
			zap.String("type", placeType),
			zap.String("status", body.Status))
		return nil
	}

	places := make([]PlaceSummary, 0, maxPlacesPerType)
	for _, r := range body.Results {
		if len(places) == maxPlacesPerType {
			break
		}
		places = append(places, PlaceSummary{
			Name:             r.Name,
			Rating:           r.Rating,
			PriceLevel:       r.PriceLevel,
			UserRatingsTotal: r.UserRatingsTotal,
			Types:            r.Types,
		})
	}
	return places
}
