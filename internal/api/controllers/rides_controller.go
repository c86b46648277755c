package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wander/internal/models/request_models"
	"wander/internal/services"
	"wander/pkg/utils"
)

type RidesController struct {
	rideService services.RideServiceInterface
}

func NewRidesController(rideService services.RideServiceInterface) *RidesController {
	return &RidesController{
		rideService: rideService,
	}
}

// ComparePrices godoc
// @Summary Compare ride prices
// @Description Quote every supported provider between two locations, cheapest first
// @Tags Rides
// @Accept json
// @Produce json
// @Param request body request_models.RideCompareRequest true "Pickup and drop locations"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /rides/compare [post]
func (r *RidesController) ComparePrices(c *gin.Context) {
	var req request_models.RideCompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	comparison, err := r.rideService.ComparePrices(c.Request.Context(), req.From, req.To)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comparison, "Ride prices compared successfully")
}
