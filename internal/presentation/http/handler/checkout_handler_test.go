package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkips/kasirpos/internal/application/service"
	"github.com/sangkips/kasirpos/internal/domain/entity"
	infra "github.com/sangkips/kasirpos/internal/infrastructure/repository"
)

func newCheckoutRouter(t *testing.T) (*gin.Engine, *service.CartService, *service.CheckoutService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	menuRepo := infra.NewMemoryMenuRepository([]entity.MenuItem{
		{ID: "1", Name: "Nasi Goreng", Price: 25000, Available: true},
	})
	carts := service.NewCartService(menuRepo)
	checkout := service.NewCheckoutService(carts, infra.NewMemoryLedgerRepository(), 0)

	router := gin.New()
	router.Use(func(c *gin.Context) { c.Set("user_id", "op-1") })
	h := NewCheckoutHandler(checkout)
	router.PUT("/checkout/method", h.SelectMethod)
	return router, carts, checkout
}

func TestCheckoutHandler_SelectMethod_UnknownMethodIsBadRequest(t *testing.T) {
	router, _, _ := newCheckoutRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/checkout/method", strings.NewReader(`{"method":"bitcoin"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid payment method")
}

func TestCheckoutHandler_SelectMethod_KnownMethod(t *testing.T) {
	router, carts, checkout := newCheckoutRouter(t)

	ctx := context.Background()
	_, err := carts.AddItem(ctx, "op-1", "1")
	require.NoError(t, err)
	_, err = checkout.Start(ctx, "op-1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/checkout/method", strings.NewReader(`{"method":"qris"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
