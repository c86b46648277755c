package planner_fx

import (
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"wander/internal/services"
	"wander/pkg/utils"
)

var Module = fx.Provide(
	providePlannerClient,
	provideEstimatorService,
	providePlannerService)

func providePlannerClient(logger *zap.Logger) (utils.PlannerClientInterface, error) {
	return utils.NewPlannerClient(
		os.Getenv("PLANNER_PROVIDER"),
		os.Getenv("GEMINI_API_KEY"),
		os.Getenv("OPENAI_API_KEY"),
		logger,
	)
}

func provideEstimatorService() services.EstimatorServiceInterface {
	return services.NewEstimatorService()
}

func providePlannerService(
	client utils.PlannerClientInterface,
	estimator services.EstimatorServiceInterface,
	places services.PlacesServiceInterface,
	logger *zap.Logger,
) services.PlannerServiceInterface {
	return services.NewPlannerService(client, estimator, places, logger)
}
