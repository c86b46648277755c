package services

import (
	"context"
	"math"
	"sort"

	"go.uber.org/zap"

	"wander/internal/models/response_models"
)

type RideServiceInterface interface {
	ComparePrices(ctx context.Context, from, to string) (*response_models.RideComparison, error)
}

type rideProvider struct {
	service    string
	vehicle    string
	baseFare   float64
	pricePerKm float64
	timePerKm  float64
	rating     float64
	discount   float64
	benefits   []string
}

// Realistic Indian cab pricing (2024).
var rideProviders = []rideProvider{
	{
		service: "Uber", vehicle: "UberGo",
		baseFare: 50, pricePerKm: 12, timePerKm: 2, rating: 4.7, discount: 15,
		benefits: []string{"WiFi available", "Professional driver", "Real-time tracking"},
	},
	{
		service: "Ola", vehicle: "Ola Prime",
		baseFare: 45, pricePerKm: 10, timePerKm: 2, rating: 4.5, discount: 20,
		benefits: []string{"AC available", "Safety features", "Quick pickup"},
	},
	{
		service: "Fastrack", vehicle: "Economy",
		baseFare: 40, pricePerKm: 8, timePerKm: 2.5, rating: 4.3, discount: 10,
		benefits: []string{"Budget-friendly", "Local drivers", "No surge pricing"},
	},
	{
		service: "Rapido", vehicle: "Bike Taxi",
		baseFare: 20, pricePerKm: 6, timePerKm: 1.5, rating: 4.6, discount: 25,
		benefits: []string{"Fastest option", "Cheapest ride", "Easy booking"},
	},
}

const (
	fallbackDistanceKm      = 15.0
	fallbackDurationMinutes = 25.0
	minimumRideMinutes      = 5
)

type rideService struct {
	distance DistanceServiceInterface
	logger   *zap.Logger
}

func NewRideService(distance DistanceServiceInterface, logger *zap.Logger) RideServiceInterface {
	return &rideService{
		distance: distance,
		logger:   logger,
	}
}

// ComparePrices quotes every provider over the real road distance between
// the two points, or over the fallback distance when the lookup fails.
// A failed lookup never fails the comparison.
func (s *rideService) ComparePrices(ctx context.Context, from, to string) (*response_models.RideComparison, error) {
	distanceKm, durationMinutes, err := s.distance.Lookup(ctx, from, to)
	usedFallback := false
	if err != nil || distanceKm <= 0 {
		s.logger.Warn("distance lookup failed, using fallback distance",
			zap.String("from", from),
			zap.String("to", to),
			zap.Error(err))
		distanceKm = fallbackDistanceKm
		durationMinutes = fallbackDurationMinutes
		usedFallback = true
	}

	rides := quoteAllProviders(distanceKm)

	return &response_models.RideComparison{
		DistanceKm:      math.Round(distanceKm*10) / 10,
		DurationMinutes: math.Round(durationMinutes),
		UsedFallback:    usedFallback,
		Rides:           rides,
	}, nil
}

func quoteAllProviders(distanceKm float64) []response_models.RidePrice {
	rides := make([]response_models.RidePrice, 0, len(rideProviders))

	for _, p := range rideProviders {
		baseCost := p.baseFare + distanceKm*p.pricePerKm
		finalPrice := baseCost * (1 - p.discount/100)

		estimatedMinutes := int(math.Ceil(distanceKm * p.timePerKm))
		if estimatedMinutes < minimumRideMinutes {
			estimatedMinutes = minimumRideMinutes
		}

		rides = append(rides, response_models.RidePrice{
			Service:            p.service,
			Vehicle:            p.vehicle,
			BaseFare:           int(p.baseFare),
			PricePerKm:         int(p.pricePerKm),
			DistanceKm:         math.Round(distanceKm*10) / 10,
			BasePrice:          int(math.Round(baseCost)),
			DiscountPercentage: int(p.discount),
			FinalPrice:         int(math.Round(finalPrice)),
			EstimatedMinutes:   estimatedMinutes,
			Rating:             p.rating,
			Benefits:           p.benefits,
		})
	}

	// Cheapest first.
	sort.SliceStable(rides, func(i, j int) bool {
		return rides[i].FinalPrice < rides[j].FinalPrice
	})

	return rides
}
