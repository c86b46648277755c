package distance_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"wander/internal/services"
	mem "wander/pkg/memcache"
)

var Module = fx.Provide(provideDistanceService)

func provideDistanceService(logger *zap.Logger) services.DistanceServiceInterface {
	return services.NewDistanceService(mem.NewPairCache(), logger)
}
