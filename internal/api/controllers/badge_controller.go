package controllers

import (
	"github.com/gin-gonic/gin"

	"ecotrack/internal/services"
	"ecotrack/pkg/utils"
)

type BadgeController struct {
	badgeService services.BadgeService
}

func NewBadgeController(badgeService services.BadgeService) *BadgeController {
	return &BadgeController{
		badgeService: badgeService,
	}
}

// ListBadges godoc
// @Summary List every catalog badge with the user's earned status
// @Tags Badges
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /badges [get]
func (bc *BadgeController) ListBadges(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	badges, err := bc.badgeService.UserBadges(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, badges, "Badges fetched successfully")
}
