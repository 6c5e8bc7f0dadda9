// Package postgres provides PostgreSQL database setup and configuration
package postgres

import (
	"fmt"

	"github.com/forkful/v2/internal/infrastructure/config"
	gormModels "github.com/forkful/v2/internal/infrastructure/persistence/gorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupDatabase creates and configures the PostgreSQL database connection
func SetupDatabase(cfg *config.Config, logLevel logger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(
			&gormModels.RecipeModel{},
			&gormModels.GroceryListModel{},
			&gormModels.CookbookModel{},
		); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	return db, nil
}
