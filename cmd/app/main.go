package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"wander/cmd/fx/account_fx"
	"wander/cmd/fx/controllers_fx"
	"wander/cmd/fx/db_fx"
	"wander/cmd/fx/distance_fx"
	"wander/cmd/fx/logger_fx"
	"wander/cmd/fx/places_fx"
	"wander/cmd/fx/planner_fx"
	"wander/cmd/fx/ride_fx"
	"wander/cmd/fx/vault_fx"
	"wander/internal/api/controllers"
	"wander/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}

	app := fx.New(
		logger_fx.Module,
		db_fx.Module,
		vault_fx.Module,
		planner_fx.Module,
		distance_fx.Module,
		ride_fx.Module,
		places_fx.Module,
		account_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			go func() {
				logger.Info("starting HTTP server", zap.String("port", port))
				if err := engine.Run(":" + port); err != nil {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	planController *controllers.PlanController,
	ridesController *controllers.RidesController,
	tripsController *controllers.TripsController,
	accountController *controllers.AccountController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, planController, ridesController, tripsController, accountController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	planController *controllers.PlanController,
	ridesController *controllers.RidesController,
	tripsController *controllers.TripsController,
	accountController *controllers.AccountController) {

	v1 := r.Group("/api/v1")

	v1.POST("/plan", planController.GeneratePlan)
	v1.POST("/rides/compare", ridesController.ComparePrices)

	trips := v1.Group("/trips")
	trips.GET("", tripsController.ListTrips)
	trips.POST("", tripsController.SaveTrip)
	trips.DELETE("/:id", tripsController.DeleteTrip)

	auth := v1.Group("/auth")
	auth.POST("/signup", accountController.SignUp)
	auth.POST("/login", accountController.Login)
	auth.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)
}
