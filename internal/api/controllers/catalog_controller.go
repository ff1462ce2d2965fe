package controllers

import (
	"github.com/gin-gonic/gin"

	"ecotrack/internal/services"
	"ecotrack/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogService
}

func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// ListShopProducts godoc
// @Summary List shop products, newest first
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /shop/products [get]
func (cc *CatalogController) ListShopProducts(c *gin.Context) {
	products, err := cc.catalogService.ShopProducts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, products, "Shop products fetched successfully")
}

// ListCommunityGroups godoc
// @Summary List community groups by member count
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /community/groups [get]
func (cc *CatalogController) ListCommunityGroups(c *gin.Context) {
	groups, err := cc.catalogService.CommunityGroups(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, groups, "Community groups fetched successfully")
}

// ListChallenges godoc
// @Summary List challenges by end date
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /community/challenges [get]
func (cc *CatalogController) ListChallenges(c *gin.Context) {
	challenges, err := cc.catalogService.Challenges(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, challenges, "Challenges fetched successfully")
}

// ListUserChallenges godoc
// @Summary List the user's joined challenges with progress
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /community/challenges/mine [get]
func (cc *CatalogController) ListUserChallenges(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	challenges, err := cc.catalogService.UserChallenges(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, challenges, "User challenges fetched successfully")
}
