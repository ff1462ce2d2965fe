package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ecotrack/pkg/utils"
)

// currentUserID reads the authenticated user id set by the JWT middleware.
// The aggregation layer trusts this id; it does not re-authenticate.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Missing or invalid user identity")
		return uuid.Nil, false
	}
	return id, true
}
