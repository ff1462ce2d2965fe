package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecotrack/internal/models/request_models"
	"ecotrack/internal/services"
	"ecotrack/pkg/utils"
)

type ActivityController struct {
	activityService services.ActivityService
}

func NewActivityController(activityService services.ActivityService) *ActivityController {
	return &ActivityController{
		activityService: activityService,
	}
}

// ListTrips godoc
// @Summary List the ten most recent trips
// @Tags Activity
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /activity/trips [get]
func (ac *ActivityController) ListTrips(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	trips, err := ac.activityService.RecentTrips(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// ListMeals godoc
// @Summary List the ten most recent meals
// @Tags Activity
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /activity/meals [get]
func (ac *ActivityController) ListMeals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	meals, err := ac.activityService.RecentMeals(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, meals, "Meals fetched successfully")
}

// ListWasteActions godoc
// @Summary List the ten most recent waste actions
// @Tags Activity
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /activity/waste [get]
func (ac *ActivityController) ListWasteActions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	actions, err := ac.activityService.RecentWasteActions(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, actions, "Waste actions fetched successfully")
}

// AddTrip godoc
// @Summary Record a trip
// @Tags Activity
// @Accept json
// @Produce json
// @Param request body request_models.AddTripRequest true "Trip payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /activity/trips [post]
func (ac *ActivityController) AddTrip(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.AddTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ac.activityService.AddTrip(c.Request.Context(), userID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip recorded successfully")
}

// AddMeal godoc
// @Summary Record a meal
// @Tags Activity
// @Accept json
// @Produce json
// @Param request body request_models.AddMealRequest true "Meal payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /activity/meals [post]
func (ac *ActivityController) AddMeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.AddMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ac.activityService.AddMeal(c.Request.Context(), userID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Meal recorded successfully")
}

// AddWasteAction godoc
// @Summary Record a waste action and credit its points
// @Tags Activity
// @Accept json
// @Produce json
// @Param request body request_models.AddWasteActionRequest true "Waste action payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /activity/waste [post]
func (ac *ActivityController) AddWasteAction(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.AddWasteActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ac.activityService.AddWasteAction(c.Request.Context(), userID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Waste action recorded successfully")
}
