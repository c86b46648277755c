package places_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"wander/internal/services"
)

var Module = fx.Provide(providePlacesService)

func providePlacesService(logger *zap.Logger) services.PlacesServiceInterface {
	return services.NewPlacesService(logger)
}
