package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/kasirpos/internal/application/service"
	"github.com/sangkips/kasirpos/internal/config"
	"github.com/sangkips/kasirpos/internal/domain/repository"
	"github.com/sangkips/kasirpos/internal/infrastructure/database"
	infra "github.com/sangkips/kasirpos/internal/infrastructure/repository"
	"github.com/sangkips/kasirpos/internal/presentation/http/handler"
	"github.com/sangkips/kasirpos/internal/presentation/http/routes"
	"github.com/sangkips/kasirpos/pkg/oauth"
	"github.com/sangkips/kasirpos/pkg/receipt"
	"github.com/sangkips/kasirpos/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the local cache (sessions and idempotency keys)
	db, err := database.NewSQLiteDB(&cfg.Cache)
	if err != nil {
		log.Fatalf("Failed to open local cache: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Initialize repositories
	menuRepo := infra.NewMemoryMenuRepository(infra.SeedMenu())
	ledgerRepo := infra.NewMemoryLedgerRepository()
	sessionRepo := infra.NewSessionRepository(db)
	idempotencyRepo := infra.NewIdempotencyRepository(db)

	// Select the user directory backend
	var directory repository.UserDirectory
	switch cfg.Auth.Backend {
	case "http":
		directory = infra.NewHTTPDirectory(cfg.Auth.RemoteURL)
	default:
		directory, err = infra.NewMemoryDirectory(infra.DefaultUsers())
		if err != nil {
			log.Fatalf("Failed to build user directory: %v", err)
		}
	}

	// Social login verifiers
	socials := oauth.NewRegistry(
		oauth.NewGoogleVerifier(),
		oauth.NewFacebookVerifier(),
		oauth.NewTwitterVerifier(),
	)

	// Initialize services
	resolver := service.NewRoleResolver(&cfg.Auth)
	authService := service.NewAuthService(directory, sessionRepo, jwtManager, resolver, socials)
	menuService := service.NewMenuService(menuRepo)
	cartService := service.NewCartService(menuRepo)
	checkoutService := service.NewCheckoutService(cartService, ledgerRepo, cfg.Checkout.ProcessingDelay)

	// Initialize thermal printer
	thermalPrinter, err := receipt.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = receipt.NewNullPrinter()
	}
	salesService := service.NewSalesService(ledgerRepo, &cfg.Store, thermalPrinter, cfg.Printer.Width)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Menu:     handler.NewMenuHandler(menuService),
		Cart:     handler.NewCartHandler(cartService),
		Checkout: handler.NewCheckoutHandler(checkoutService),
		Sales:    handler.NewSalesHandler(salesService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
