package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"portfolioledger/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection
func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to get database instance:", err)
	}

	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	DB = db

	// Auto migrate all models
	if err := AutoMigrateModels(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
}

// AutoMigrateModels migrates every ledger model on the given handle. Shared
// by InitDB and the test helpers.
func AutoMigrateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Portfolio{},
		&models.PortfolioManager{},
		&models.AssetAllocation{},
		&models.TransactionRecord{},
		&models.Strategy{},
		&models.Investment{},
		&models.YieldClaim{},
		&models.PlatformConfig{},
		&models.LedgerEvent{},
		&models.CustodyTransfer{},
		&models.PortfolioSnapshot{},
	)
}
