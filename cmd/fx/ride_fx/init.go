package ride_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"wander/internal/services"
)

var Module = fx.Provide(provideRideService)

func provideRideService(distance services.DistanceServiceInterface, logger *zap.Logger) services.RideServiceInterface {
	return services.NewRideService(distance, logger)
}
