package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"dailydiet/internal/config"
	"dailydiet/internal/models"
)

// Open connects to the relational store selected by the configuration.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DatabaseClient {
	case config.ClientSQLite:
		dialector = sqlite.Open(cfg.DatabaseURL)
	case config.ClientPostgres:
		dialector = postgres.Open(cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unsupported database client: %s", cfg.DatabaseClient)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return gdb, nil
}

// Migrate creates or updates the users and meals tables.
// AutoMigrate will create tables, missing foreign keys, constraints, columns
// and indexes.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&models.User{}, &models.Meal{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
