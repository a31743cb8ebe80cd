package service

import (
	"errors"
	"strings"

	"github.com/ikkim/dinehub-backend/internal/app/model"
	"github.com/ikkim/dinehub-backend/internal/app/repository"
	apperrors "github.com/ikkim/dinehub-backend/internal/errors"
	"github.com/ikkim/dinehub-backend/pkg/logger"
	"gorm.io/gorm"
)

// UpdateUserInput carries a partial update. Nil fields are left unchanged.
// IsActive and Role are honoured only on the admin path.
type UpdateUserInput struct {
	Name     *string
	Phone    *string
	IsActive *bool
	Role     *model.UserRole
}

type UserService interface {
	GetUser(id uint) (*model.User, error)
	UpdateProfile(userID uint, input UpdateUserInput) (*model.User, error)
	ListUsers(skip, limit int) ([]model.User, error)
	AdminUpdateUser(id uint, input UpdateUserInput) (*model.User, error)
	DeleteUser(id uint) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUser(id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound.Withf("User with ID %d not found", id)
		}
		logger.Error("Failed to fetch user", err, map[string]interface{}{
			"user_id": id,
		})
		return nil, apperrors.FromDB(err, "user")
	}
	return user, nil
}

func (s *userService) UpdateProfile(userID uint, input UpdateUserInput) (*model.User, error) {
	input.IsActive = nil
	input.Role = nil
	return s.update(userID, input)
}

func (s *userService) ListUsers(skip, limit int) ([]model.User, error) {
	if err := validatePage(skip, limit); err != nil {
		return nil, err
	}
	users, err := s.userRepo.FindAll(skip, limit)
	if err != nil {
		return nil, apperrors.FromDB(err, "users")
	}
	return users, nil
}

func (s *userService) AdminUpdateUser(id uint, input UpdateUserInput) (*model.User, error) {
	if input.Role != nil && !input.Role.Valid() {
		return nil, apperrors.Validation("role", "Role must be one of: customer, admin")
	}
	return s.update(id, input)
}

func (s *userService) update(id uint, input UpdateUserInput) (*model.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperrors.Validation("name", "Name cannot be empty")
		}
		user.Name = name
	}
	if input.Phone != nil {
		phone := normalizePhone(input.Phone)
		if phone != nil {
			if err := ensurePhoneFree(s.userRepo, *phone, user.ID); err != nil {
				return nil, err
			}
		}
		user.Phone = phone
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.Role != nil {
		user.Role = *input.Role
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.FromDB(err, "update user phone")
	}

	logger.Info("User updated", map[string]interface{}{
		"user_id":   user.ID,
		"role":      user.Role,
		"is_active": user.IsActive,
	})
	return user, nil
}

// DeleteUser hard-deletes the user with their orders, reviews and favorites.
func (s *userService) DeleteUser(id uint) error {
	if err := s.userRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound.Withf("User with ID %d not found", id)
		}
		return apperrors.FromDB(err, "delete user")
	}

	logger.Info("User deleted", map[string]interface{}{
		"user_id": id,
	})
	return nil
}
