package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
	"wander/internal/services"
	"wander/pkg/utils"
)

// SaveTripRequest pairs the original query with the plan it produced. It
// lives here rather than in request_models because it references both model
// packages.
type SaveTripRequest struct {
	Query request_models.PlanRequest       `json:"query" binding:"required"`
	Plan  response_models.TripPlanResponse `json:"plan" binding:"required"`
}

type TripsController struct {
	vaultService services.TripVaultServiceInterface
}

func NewTripsController(vaultService services.TripVaultServiceInterface) *TripsController {
	return &TripsController{
		vaultService: vaultService,
	}
}

// SaveTrip godoc
// @Summary Save a trip
// @Description Store a generated plan in the encrypted trip vault
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body SaveTripRequest true "Query and generated plan"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /trips [post]
func (t *TripsController) SaveTrip(c *gin.Context) {
	var req SaveTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.vaultService.SaveTrip(c.Request.Context(), req.Query, req.Plan)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip saved successfully")
}

// ListTrips godoc
// @Summary List saved trips
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /trips [get]
func (t *TripsController) ListTrips(c *gin.Context) {
	trips, err := t.vaultService.ListTrips(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips retrieved successfully")
}

// DeleteTrip godoc
// @Summary Delete a saved trip
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{id} [delete]
func (t *TripsController) DeleteTrip(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip id is required")
		return
	}

	remaining, err := t.vaultService.DeleteTrip(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, remaining, "Trip deleted successfully")
}
