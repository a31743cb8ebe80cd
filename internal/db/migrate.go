package db

import (
	"errors"

	"github.com/ikkim/dinehub-backend/internal/app/model"
	"github.com/ikkim/dinehub-backend/pkg/logger"
	"github.com/ikkim/dinehub-backend/pkg/util"
	"gorm.io/gorm"
)

// Models lists every persisted type in dependency order.
func Models() []interface{} {
	return []interface{}{
		&model.User{},
		&model.Restaurant{},
		&model.MenuItem{},
		&model.Order{},
		&model.Review{},
		&model.Favorite{},
	}
}

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := Models()
	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// SeedAdmin creates the bootstrap administrator when no user with email
// exists yet. Empty credentials skip seeding.
func SeedAdmin(db *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		logger.Info("Admin credentials not configured, skipping admin seed")
		return nil
	}

	var existing model.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		logger.Info("Admin already seeded, skipping...", map[string]interface{}{
			"user_id": existing.ID,
		})
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return err
	}

	admin := model.User{
		Email:        email,
		PasswordHash: hash,
		Name:         "Administrator",
		Role:         model.RoleAdmin,
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		logger.Error("Failed to seed admin", err)
		return err
	}

	logger.Info("Admin seeded successfully", map[string]interface{}{
		"user_id": admin.ID,
		"email":   admin.Email,
	})
	return nil
}
