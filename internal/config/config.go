package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	JWT       JWTConfig
	Auth      AuthConfig
	Checkout  CheckoutConfig
	Cache     CacheConfig
	Store     StoreConfig
	Printer   PrinterConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

// AuthConfig controls the identity backend and the role mapping. The
// backend is either "memory" (fixed directory) or "http" (remote auth
// API at RemoteURL).
type AuthConfig struct {
	Backend     string
	RemoteURL   string
	AdminEmail  string
	StaffEmails []string
	DefaultRole string
}

// CheckoutConfig controls the payment flow. ProcessingDelay is the
// simulated settlement latency applied between confirm and completion.
type CheckoutConfig struct {
	ProcessingDelay time.Duration
}

// CacheConfig locates the local sqlite cache, the only durable store.
type CacheConfig struct {
	Path string
}

// StoreConfig is stamped on receipts and exports.
type StoreConfig struct {
	Name    string
	Address string
	Phone   string
}

type PrinterConfig struct {
	Type    string // "usb", "network", or "none"
	USBPath string
	Address string
	Width   int // characters per line: 32 for 58mm, 48 for 80mm
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "kasirpos")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 168)
	viper.SetDefault("AUTH_BACKEND", "memory")
	viper.SetDefault("AUTH_REMOTE_URL", "")
	viper.SetDefault("AUTH_ADMIN_EMAIL", "admin@foodkasir.com")
	viper.SetDefault("AUTH_STAFF_EMAILS", []string{"staff@foodkasir.com", "staff1@foodkasir.com"})
	viper.SetDefault("AUTH_DEFAULT_ROLE", "user")
	viper.SetDefault("CHECKOUT_PROCESSING_DELAY_MS", 1500)
	viper.SetDefault("CACHE_PATH", "./kasirpos.db")
	viper.SetDefault("STORE_NAME", "FoodKasir")
	viper.SetDefault("STORE_ADDRESS", "")
	viper.SetDefault("STORE_PHONE", "")
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "/dev/usb/lp0")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("PRINTER_WIDTH", 32)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
			Expiry: time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
		},
		Auth: AuthConfig{
			Backend:     viper.GetString("AUTH_BACKEND"),
			RemoteURL:   viper.GetString("AUTH_REMOTE_URL"),
			AdminEmail:  viper.GetString("AUTH_ADMIN_EMAIL"),
			StaffEmails: viper.GetStringSlice("AUTH_STAFF_EMAILS"),
			DefaultRole: viper.GetString("AUTH_DEFAULT_ROLE"),
		},
		Checkout: CheckoutConfig{
			ProcessingDelay: time.Duration(viper.GetInt("CHECKOUT_PROCESSING_DELAY_MS")) * time.Millisecond,
		},
		Cache: CacheConfig{
			Path: viper.GetString("CACHE_PATH"),
		},
		Store: StoreConfig{
			Name:    viper.GetString("STORE_NAME"),
			Address: viper.GetString("STORE_ADDRESS"),
			Phone:   viper.GetString("STORE_PHONE"),
		},
		Printer: PrinterConfig{
			Type:    viper.GetString("PRINTER_TYPE"),
			USBPath: viper.GetString("PRINTER_USB_PATH"),
			Address: viper.GetString("PRINTER_ADDRESS"),
			Width:   viper.GetInt("PRINTER_WIDTH"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}
