package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/kasirpos/internal/application/service"
	"github.com/sangkips/kasirpos/internal/domain/entity"
	"github.com/sangkips/kasirpos/internal/presentation/http/dto/request"
	"github.com/sangkips/kasirpos/internal/presentation/http/dto/response"
)

// CartHandler handles cart HTTP requests
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func cartPayload(cart *entity.Cart) gin.H {
	return gin.H{
		"lines":      cart.Lines,
		"item_count": cart.ItemCount(),
		"totals":     cart.Totals(),
	}
}

// Get returns the operator's cart
// @Summary Get cart
// @Tags cart
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	cart, err := h.cartService.Get(c.Request.Context(), GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart retrieved", cartPayload(cart))
}

// AddItem adds one unit of an item, merging into an existing line
// @Summary Add item to cart
// @Tags cart
// @Accept json
// @Produce json
// @Param request body request.AddToCartRequest true "Item reference"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req request.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cart, err := h.cartService.AddItem(c.Request.Context(), GetUserID(c), req.ItemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added", cartPayload(cart))
}

// SetQuantity sets the absolute quantity of a line; zero removes it
// @Summary Set line quantity
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body request.SetQuantityRequest true "Quantity"
// @Success 200 {object} response.APIResponse
// @Router /cart/items/{id} [put]
func (h *CartHandler) SetQuantity(c *gin.Context) {
	var req request.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cart, err := h.cartService.SetQuantity(c.Request.Context(), GetUserID(c), c.Param("id"), *req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quantity updated", cartPayload(cart))
}

// RemoveItem drops a line from the cart
// @Summary Remove cart line
// @Tags cart
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} response.APIResponse
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cart, err := h.cartService.RemoveItem(c.Request.Context(), GetUserID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item removed", cartPayload(cart))
}

// Clear empties the cart
// @Summary Clear cart
// @Tags cart
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	h.cartService.Clear(c.Request.Context(), GetUserID(c))
	response.OK(c, "Cart cleared", nil)
}
