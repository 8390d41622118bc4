package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/kasirpos/internal/config"
	domainRepo "github.com/sangkips/kasirpos/internal/domain/repository"
	"github.com/sangkips/kasirpos/internal/presentation/http/handler"
	"github.com/sangkips/kasirpos/internal/presentation/http/middleware"
	"github.com/sangkips/kasirpos/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Menu     *handler.MenuHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
	Sales    *handler.SalesHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-operator rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/social/:provider", h.Auth.SocialLogin)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Session routes
	protected.GET("/auth/verify", h.Auth.Verify)
	protected.POST("/auth/logout", h.Auth.Logout)

	registerMenuRoutes(protected, h)
	registerCartRoutes(protected, h)
	registerCheckoutRoutes(protected, h, deps)
	registerSalesRoutes(protected, h)
}

func registerMenuRoutes(protected *gin.RouterGroup, h *Handlers) {
	menu := protected.Group("/menu")
	{
		menu.GET("", h.Menu.List)
		// Catalog changes are an admin concern
		menu.POST("", middleware.RequireAdmin(), h.Menu.Create)
		menu.PATCH("/:id/availability", middleware.RequireAdmin(), h.Menu.SetAvailability)
	}
}

func registerCartRoutes(protected *gin.RouterGroup, h *Handlers) {
	cart := protected.Group("/cart")
	{
		cart.GET("", h.Cart.Get)
		cart.DELETE("", h.Cart.Clear)
		cart.POST("/items", h.Cart.AddItem)
		cart.PUT("/items/:id", h.Cart.SetQuantity)
		cart.DELETE("/items/:id", h.Cart.RemoveItem)
	}
}

func registerCheckoutRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	checkout := protected.Group("/checkout")
	{
		checkout.POST("", h.Checkout.Start)
		checkout.GET("", h.Checkout.Status)
		checkout.DELETE("", h.Checkout.Cancel)
		checkout.PUT("/method", h.Checkout.SelectMethod)
		checkout.PUT("/tender", h.Checkout.SetTendered)
		// Confirmation uses idempotency middleware to prevent duplicate sales
		checkout.POST("/confirm", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Checkout.Confirm)
	}
}

func registerSalesRoutes(protected *gin.RouterGroup, h *Handlers) {
	sales := protected.Group("/sales")
	sales.Use(middleware.RequireAdmin())
	{
		sales.GET("", h.Sales.List)
		sales.GET("/summary", h.Sales.Summary)
		sales.GET("/export", h.Sales.Export)
		sales.GET("/:id", h.Sales.Get)
		sales.GET("/:id/receipt", h.Sales.Receipt)
		sales.POST("/:id/print", h.Sales.Print)
	}
}
