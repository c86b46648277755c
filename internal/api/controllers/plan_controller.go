package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wander/internal/models/request_models"
	"wander/internal/services"
	"wander/pkg/utils"
)

type PlanController struct {
	plannerService services.PlannerServiceInterface
}

func NewPlanController(plannerService services.PlannerServiceInterface) *PlanController {
	return &PlanController{
		plannerService: plannerService,
	}
}

// GeneratePlan godoc
// @Summary Generate a trip plan
// @Description Produce a budget-aware trip plan for the given destination and duration
// @Tags Planning
// @Accept json
// @Produce json
// @Param request body request_models.PlanRequest true "Trip parameters"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /plan [post]
func (p *PlanController) GeneratePlan(c *gin.Context) {
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := p.plannerService.GeneratePlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{
		"predicted_base_cost": result.EstimatedBaseCost,
		"plan":                result.Plan,
	}, "Plan generated successfully")
}
