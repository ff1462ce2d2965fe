package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecotrack/internal/models/request_models"
	"ecotrack/internal/services"
	"ecotrack/pkg/utils"
)

type EnergyController struct {
	energyService services.EnergyService
}

func NewEnergyController(energyService services.EnergyService) *EnergyController {
	return &EnergyController{
		energyService: energyService,
	}
}

// GetMonthlySummary godoc
// @Summary Get 30-day usage, cost, and change vs the previous 30 days
// @Tags Energy
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /energy/summary [get]
func (ec *EnergyController) GetMonthlySummary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	summary, err := ec.energyService.MonthlySummary(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Energy summary fetched successfully")
}

// GetDailyTrend godoc
// @Summary Get the trailing week of day-bucketed kWh usage
// @Tags Energy
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /energy/trend [get]
func (ec *EnergyController) GetDailyTrend(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	trend, err := ec.energyService.DailyTrend(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trend, "Daily trend fetched successfully")
}

// GetApplianceBreakdown godoc
// @Summary Get per-appliance usage shares for the trailing 30 days
// @Tags Energy
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /energy/appliances [get]
func (ec *EnergyController) GetApplianceBreakdown(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	breakdown, err := ec.energyService.ApplianceBreakdown(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, breakdown, "Appliance breakdown fetched successfully")
}

// AddUsage godoc
// @Summary Record an energy usage entry
// @Tags Energy
// @Accept json
// @Produce json
// @Param request body request_models.AddEnergyUsageRequest true "Usage payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /energy/usage [post]
func (ec *EnergyController) AddUsage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.AddEnergyUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ec.energyService.AddUsage(c.Request.Context(), userID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Energy usage recorded successfully")
}
