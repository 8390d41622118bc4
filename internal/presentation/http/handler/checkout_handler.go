package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/kasirpos/internal/application/service"
	"github.com/sangkips/kasirpos/internal/domain/enum"
	"github.com/sangkips/kasirpos/internal/presentation/http/dto/request"
	"github.com/sangkips/kasirpos/internal/presentation/http/dto/response"
	"github.com/sangkips/kasirpos/pkg/apperror"
)

// CheckoutHandler handles payment flow HTTP requests
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Start opens a checkout over the current cart
// @Summary Start checkout
// @Tags checkout
// @Produce json
// @Success 200 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /checkout [post]
func (h *CheckoutHandler) Start(c *gin.Context) {
	status, err := h.checkoutService.Start(c.Request.Context(), GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Checkout started", status)
}

// Status reports the open checkout
// @Summary Checkout status
// @Tags checkout
// @Produce json
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /checkout [get]
func (h *CheckoutHandler) Status(c *gin.Context) {
	status, err := h.checkoutService.Status(c.Request.Context(), GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Checkout status", status)
}

// SelectMethod picks the payment method
// @Summary Select payment method
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body request.SelectMethodRequest true "Payment method"
// @Success 200 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /checkout/method [put]
func (h *CheckoutHandler) SelectMethod(c *gin.Context) {
	var req request.SelectMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	method, err := enum.ParsePaymentMethod(req.Method)
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid payment method: "+req.Method))
		return
	}

	status, err := h.checkoutService.SelectMethod(c.Request.Context(), GetUserID(c), method)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment method selected", status)
}

// SetTendered records the cash handed over
// @Summary Set tendered amount
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body request.SetTenderedRequest true "Tendered amount"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /checkout/tender [put]
func (h *CheckoutHandler) SetTendered(c *gin.Context) {
	var req request.SetTenderedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	status, err := h.checkoutService.SetTendered(c.Request.Context(), GetUserID(c), *req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tendered amount set", status)
}

// Confirm finalizes the payment and records the sale
// @Summary Confirm checkout
// @Tags checkout
// @Produce json
// @Success 201 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /checkout/confirm [post]
func (h *CheckoutHandler) Confirm(c *gin.Context) {
	tx, err := h.checkoutService.Confirm(c.Request.Context(), GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment completed", gin.H{
		"transaction": tx,
	})
}

// Cancel abandons the open checkout, leaving the cart intact
// @Summary Cancel checkout
// @Tags checkout
// @Produce json
// @Success 200 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /checkout [delete]
func (h *CheckoutHandler) Cancel(c *gin.Context) {
	if err := h.checkoutService.Cancel(c.Request.Context(), GetUserID(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Checkout cancelled", nil)
}
