package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ecotrack/internal/services"
	"ecotrack/pkg/utils"
)

type LeaderboardController struct {
	leaderboardService services.LeaderboardService
}

func NewLeaderboardController(leaderboardService services.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{
		leaderboardService: leaderboardService,
	}
}

// GetStandings godoc
// @Summary Get the top accounts ranked by eco points
// @Tags Leaderboard
// @Produce json
// @Param limit query int false "Number of entries (1-100, default 10)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /leaderboard [get]
func (lc *LeaderboardController) GetStandings(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "10")
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit")
		return
	}

	standings, svcErr := lc.leaderboardService.Standings(c.Request.Context(), limit)
	if svcErr != nil {
		utils.HandleServiceError(c, svcErr)
		return
	}

	utils.RespondSuccess(c, standings, "Leaderboard fetched successfully")
}
