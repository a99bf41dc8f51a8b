package database

import (
	"fmt"
	"log"

	"github.com/Pearlman11/RentReady/internal/model"
	"github.com/Pearlman11/RentReady/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB initializes the database connection with configuration and runs migrations
func InitDB(appConfig *config.Config) (*gorm.DB, error) {
	// Configure Postgres options
	pgConfig := postgres.Config{
		DSN:                  appConfig.DB.GetDSN(),
		PreferSimpleProtocol: true, // Disables implicit prepared statement usage
	}

	// Open connection
	db, err := gorm.Open(postgres.New(pgConfig), &gorm.Config{
		Logger: logger.Default.LogMode(appConfig.DB.LogLevel),
	})
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		return nil, err
	}

	// Get generic database object SQL
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Failed to get database object: %v", err)
		return nil, err
	}

	// Set connection pool settings from config
	sqlDB.SetMaxIdleConns(appConfig.DB.MaxIdleConns)
	sqlDB.SetMaxOpenConns(appConfig.DB.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(appConfig.DB.ConnMaxLifetime)

	// Run migrations
	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate runs schema migrations for all entities
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Property{},
		&model.Tenant{},
		&model.Lease{},
		&model.Payment{},
	)
	if err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}
	return nil
}
