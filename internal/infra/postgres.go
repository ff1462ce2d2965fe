package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ecotrack/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := connectionPool.AutoMigrate(
		&db_models.Account{},
		&db_models.CarbonEntry{},
		&db_models.EnergyUsageEntry{},
		&db_models.InventoryItem{},
		&db_models.Trip{},
		&db_models.Meal{},
		&db_models.WasteAction{},
		&db_models.Badge{},
		&db_models.UserBadge{},
		&db_models.Alert{},
		&db_models.ShopProduct{},
		&db_models.CommunityGroup{},
		&db_models.Challenge{},
		&db_models.UserChallenge{},
	); err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
