package repository

import (
	"github.com/ikkim/dinehub-backend/internal/app/model"
	"github.com/ikkim/dinehub-backend/pkg/logger"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindByPhone(phone string) (*model.User, error)
	FindAll(skip, limit int) ([]model.User, error)
	Update(user *model.User) error
	Delete(id uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	logger.Debug("Creating user in database", map[string]interface{}{
		"email": user.Email,
	})

	if err := r.db.Create(user).Error; err != nil {
		logger.Error("Failed to create user in database", err, map[string]interface{}{
			"email": user.Email,
		})
		return err
	}

	logger.Debug("User created in database", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return nil
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	logger.Debug("Finding user by ID in database", map[string]interface{}{
		"user_id": id,
	})

	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		logger.Debug("User lookup by ID failed", map[string]interface{}{
			"user_id": id,
			"error":   err.Error(),
		})
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	logger.Debug("Finding user by email in database", map[string]interface{}{
		"email": email,
	})

	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		logger.Debug("User lookup by email failed", map[string]interface{}{
			"email": email,
			"error": err.Error(),
		})
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindByPhone(phone string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("phone = ?", phone).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll(skip, limit int) ([]model.User, error) {
	logger.Debug("Listing users in database", map[string]interface{}{
		"skip":  skip,
		"limit": limit,
	})

	var users []model.User
	if err := r.db.Order("id ASC").Offset(skip).Limit(limit).Find(&users).Error; err != nil {
		logger.Error("Failed to list users in database", err)
		return nil, err
	}

	logger.Debug("Users listed in database", map[string]interface{}{
		"count": len(users),
	})
	return users, nil
}

func (r *userRepository) Update(user *model.User) error {
	logger.Debug("Updating user in database", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
	})

	if err := r.db.Save(user).Error; err != nil {
		logger.Error("Failed to update user in database", err, map[string]interface{}{
			"user_id": user.ID,
			"email":   user.Email,
		})
		return err
	}

	logger.Debug("User updated in database", map[string]interface{}{
		"user_id": user.ID,
	})
	return nil
}

// Delete hard-deletes the user together with their favorites, reviews and
// orders. Returns gorm.ErrRecordNotFound when no user matched.
func (r *userRepository) Delete(id uint) error {
	logger.Debug("Deleting user from database", map[string]interface{}{
		"user_id": id,
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&model.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Order{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.User{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to delete user from database", err, map[string]interface{}{
			"user_id": id,
		})
		return err
	}

	logger.Debug("User deleted from database", map[string]interface{}{
		"user_id": id,
	})
	return nil
}
