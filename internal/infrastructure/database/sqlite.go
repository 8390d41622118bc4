package database

import (
	"fmt"
	"log"

	"github.com/sangkips/kasirpos/internal/config"
	"github.com/sangkips/kasirpos/internal/domain/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens the local cache database. This is the only durable
// store the application keeps: session token+profile pairs and
// idempotency keys. Everything else (menu, cart, ledger) lives in
// memory for the lifetime of the process.
func NewSQLiteDB(cfg *config.CacheConfig) (*gorm.DB, error) {
	logLevel := logger.Warn

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open local cache database: %w", err)
	}

	log.Printf("Local cache database ready at %s", cfg.Path)
	return db, nil
}

// AutoMigrate runs GORM auto-migration for the cached entities
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.SessionRecord{},
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
