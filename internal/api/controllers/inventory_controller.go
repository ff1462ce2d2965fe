package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecotrack/internal/models/request_models"
	"ecotrack/internal/services"
	"ecotrack/pkg/utils"
)

type InventoryController struct {
	inventoryService services.InventoryService
}

func NewInventoryController(inventoryService services.InventoryService) *InventoryController {
	return &InventoryController{
		inventoryService: inventoryService,
	}
}

// ListItems godoc
// @Summary List inventory items with expiry annotations
// @Tags Inventory
// @Produce json
// @Param category query string false "Category filter (All = no filter)"
// @Param search   query string false "Case-insensitive name substring"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /inventory [get]
func (ic *InventoryController) ListItems(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	category := c.DefaultQuery("category", "All")
	search := c.Query("search")

	items, err := ic.inventoryService.List(c.Request.Context(), userID, category, search)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Inventory fetched successfully")
}

// GetExpiryNotice godoc
// @Summary Get the aggregated expiring-soon notice
// @Tags Inventory
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /inventory/expiring [get]
func (ic *InventoryController) GetExpiryNotice(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	notice, err := ic.inventoryService.ExpiryNotice(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, notice, "Expiry notice fetched successfully")
}

// AddItem godoc
// @Summary Add an inventory item
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body request_models.AddInventoryItemRequest true "Item payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /inventory [post]
func (ic *InventoryController) AddItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.AddInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ic.inventoryService.AddItem(c.Request.Context(), userID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Inventory item added successfully")
}

// DeleteItem godoc
// @Summary Delete an inventory item
// @Tags Inventory
// @Produce json
// @Param id path string true "Item id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /inventory/{id} [delete]
func (ic *InventoryController) DeleteItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := ic.inventoryService.DeleteItem(c.Request.Context(), userID, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Inventory item deleted successfully")
}
