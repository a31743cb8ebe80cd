package db

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupTestDB creates an in-memory SQLite database for testing
func SetupTestDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), newGormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	// every pooled connection to :memory: would be a separate database
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get test database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(Models()...); err != nil {
		return nil, fmt.Errorf("failed to migrate test database: %w", err)
	}

	return db, nil
}

// CleanupTestDB cleans up the test database
func CleanupTestDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Failed to get DB instance: %v", err)
		return
	}
	sqlDB.Close()
}

// TruncateAllTables removes all data from tables
func TruncateAllTables(db *gorm.DB) error {
	tables := []string{"favorites", "reviews", "orders", "menu_items", "restaurants", "users"}
	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			return err
		}
	}
	return nil
}
