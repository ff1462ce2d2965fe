package controllers

import (
	"github.com/gin-gonic/gin"

	"ecotrack/internal/services"
	"ecotrack/pkg/utils"
)

type AlertController struct {
	alertService services.AlertService
}

func NewAlertController(alertService services.AlertService) *AlertController {
	return &AlertController{
		alertService: alertService,
	}
}

// ListAlerts godoc
// @Summary List alerts newest-first with the unread count
// @Tags Alerts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /alerts [get]
func (ac *AlertController) ListAlerts(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	alerts, err := ac.alertService.List(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, alerts, "Alerts fetched successfully")
}

// MarkRead godoc
// @Summary Mark one alert as read
// @Tags Alerts
// @Produce json
// @Param id path string true "Alert id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /alerts/{id}/read [patch]
func (ac *AlertController) MarkRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := ac.alertService.MarkRead(c.Request.Context(), userID, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Alert marked as read")
}
