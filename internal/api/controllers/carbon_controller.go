package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecotrack/internal/models/request_models"
	"ecotrack/internal/services"
	"ecotrack/pkg/utils"
)

type CarbonController struct {
	carbonService services.CarbonService
}

func NewCarbonController(carbonService services.CarbonService) *CarbonController {
	return &CarbonController{
		carbonService: carbonService,
	}
}

// GetSummary godoc
// @Summary Get today/week/month carbon totals and the daily target
// @Tags Carbon
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /carbon/summary [get]
func (cc *CarbonController) GetSummary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	summary, err := cc.carbonService.Summary(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Carbon summary fetched successfully")
}

// GetWeeklyTrend godoc
// @Summary Get the trailing week of day-bucketed carbon totals
// @Tags Carbon
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /carbon/trend [get]
func (cc *CarbonController) GetWeeklyTrend(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	trend, err := cc.carbonService.WeeklyTrend(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trend, "Weekly trend fetched successfully")
}

// GetCategoryBreakdown godoc
// @Summary Get the 30-day percentage breakdown across the four categories
// @Tags Carbon
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /carbon/breakdown [get]
func (cc *CarbonController) GetCategoryBreakdown(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	breakdown, err := cc.carbonService.CategoryBreakdown(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, breakdown, "Category breakdown fetched successfully")
}

// GetDashboard godoc
// @Summary Get summary, trend, and breakdown in one concurrent join
// @Tags Carbon
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /carbon/dashboard [get]
func (cc *CarbonController) GetDashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dashboard, err := cc.carbonService.Dashboard(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dashboard, "Dashboard fetched successfully")
}

// AddEntry godoc
// @Summary Record a carbon entry
// @Tags Carbon
// @Accept json
// @Produce json
// @Param request body request_models.AddCarbonEntryRequest true "Carbon entry payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /carbon/entries [post]
func (cc *CarbonController) AddEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.AddCarbonEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := cc.carbonService.AddEntry(c.Request.Context(), userID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Carbon entry recorded successfully")
}
