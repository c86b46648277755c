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

	mem "wander/pkg/memcache"
)

type DistanceServiceInterface interface {
	// Lookup resolves road distance and travel time between two free-text
	// locations. Returns (0, 0, err) when the lookup cannot be served.
	Lookup(ctx context.Context, from, to string) (distanceKm float64, durationMinutes float64, err error)
}

type googleDistanceService struct {
	httpClient *http.Client
	apiKey     string
	cache      mem.PairCache
	cacheTTL   time.Duration
	logger     *zap.Logger
}

func NewDistanceService(cache mem.PairCache, logger *zap.Logger) DistanceServiceInterface {
	return &googleDistanceService{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiKey:     os.Getenv("GOOGLE_MAPS_API_KEY"),
		cache:      cache,
		cacheTTL:   24 * time.Hour,
		logger:     logger,
	}
}

type distanceMatrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value int `json:"value"` // meters
			} `json:"distance"`
			Duration struct {
				Value int `json:"value"` // seconds
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

func (s *googleDistanceService) Lookup(ctx context.Context, from, to string) (float64, float64, error) {
	if s.apiKey == "" {
		return 0, 0, fmt.Errorf("GOOGLE_MAPS_API_KEY is empty")
	}

	if cached, ok := s.cache.Get(from, to); ok {
		return cached.DistanceKm, cached.DurationMinutes, nil
	}

	q := url.Values{}
	q.Set("origins", from)
	q.Set("destinations", to)
	q.Set("units", "metric")
	q.Set("key", s.apiKey)

	endpoint := "https://maps.googleapis.com/maps/api/distancematrix/json?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, 0, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("distance matrix returned HTTP %d", resp.StatusCode)
	}

	var body distanceMatrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, 0, err
	}

	if body.Status != "OK" || len(body.Rows) == 0 || len(body.Rows[0].Elements) == 0 {
		return 0, 0, fmt.Errorf("distance matrix status %q", body.Status)
	}
	element := body.Rows[0].Elements[0]
	if element.Status != "OK" {
		return 0, 0, fmt.Errorf("no route between %q and %q (%s)", from, to, element.Status)
	}

	distanceKm := float64(element.Distance.Value) / 1000.0
	durationMinutes := float64(element.Duration.Value) / 60.0

	s.cache.Set(from, to, mem.PairResult{
		DistanceKm:      distanceKm,
		DurationMinutes: durationMinutes,
	}, s.cacheTTL)

	return distanceKm, durationMinutes, nil
}
