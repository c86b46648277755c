package controllers_fx

import (
	"go.uber.org/fx"

	"wander/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPlanController),
	fx.Provide(controllers.NewRidesController),
	fx.Provide(controllers.NewTripsController),
	fx.Provide(controllers.NewAccountController))
