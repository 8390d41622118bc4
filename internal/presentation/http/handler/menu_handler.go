package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/kasirpos/internal/application/service"
	"github.com/sangkips/kasirpos/internal/presentation/http/dto/request"
	"github.com/sangkips/kasirpos/internal/presentation/http/dto/response"
)

// MenuHandler handles catalog HTTP requests
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// List returns the full catalog
// @Summary List menu items
// @Tags menu
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /menu [get]
func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.menuService.ListItems(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu retrieved", gin.H{
		"items": items,
		"count": len(items),
	})
}

// Create adds a new item to the catalog
// @Summary Create menu item
// @Tags menu
// @Accept json
// @Produce json
// @Param request body request.CreateMenuItemRequest true "Item data"
// @Success 201 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /menu [post]
func (h *MenuHandler) Create(c *gin.Context) {
	var req request.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.menuService.AddItem(c.Request.Context(), &service.AddItemInput{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		ImageRef: req.ImageRef,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Menu item created", item)
}

// SetAvailability toggles whether an item can be sold
// @Summary Set item availability
// @Tags menu
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body request.SetAvailabilityRequest true "Availability"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /menu/{id}/availability [patch]
func (h *MenuHandler) SetAvailability(c *gin.Context) {
	var req request.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.menuService.SetAvailability(c.Request.Context(), c.Param("id"), *req.Available); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Availability updated", nil)
}
