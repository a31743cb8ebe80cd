package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ikkim/dinehub-backend/config"
	"github.com/ikkim/dinehub-backend/internal/app/model"
	"github.com/ikkim/dinehub-backend/internal/app/repository"
	apperrors "github.com/ikkim/dinehub-backend/internal/errors"
	"github.com/ikkim/dinehub-backend/pkg/logger"
	"github.com/ikkim/dinehub-backend/pkg/util"
	"gorm.io/gorm"
)

// Identity is the authenticated caller, resolved from a bearer token and
// the live user record.
type Identity struct {
	UserID uint
	Email  string
	Role   model.UserRole
}

func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role.IsAdmin()
}

// TokenRevoker blacklists access tokens on logout. Implemented by
// pkg/redis.TokenBlacklist.
type TokenRevoker interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    *string
}

type AuthService interface {
	Register(input RegisterInput) (*model.User, error)
	Login(email, password string) (*model.User, *util.Token, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*Identity, error)
	RequireAdmin(identity *Identity) (*Identity, error)
}

type authService struct {
	userRepo repository.UserRepository
	jwt      config.JWTConfig
	revoker  TokenRevoker
}

// NewAuthService wires the auth service. revoker may be nil, in which case
// logout only acknowledges and tokens stay valid until they expire.
func NewAuthService(userRepo repository.UserRepository, jwtConfig config.JWTConfig, revoker TokenRevoker) AuthService {
	return &authService{
		userRepo: userRepo,
		jwt:      jwtConfig,
		revoker:  revoker,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(input RegisterInput) (*model.User, error) {
	email := normalizeEmail(input.Email)

	logger.Info("Attempting user registration", map[string]interface{}{
		"email": email,
	})

	if email == "" || !strings.Contains(email, "@") {
		return nil, apperrors.Validation("email", "A valid email address is required")
	}
	if err := util.ValidatePassword(input.Password); err != nil {
		return nil, passwordPolicyError(err)
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.Validation("name", "Name is required")
	}

	existing, err := s.userRepo.FindByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing user", err, map[string]interface{}{
			"email": email,
		})
		return nil, apperrors.FromDB(err, "user")
	}
	if existing != nil {
		logger.Warn("Registration failed: email already exists", map[string]interface{}{
			"email": email,
		})
		return nil, ErrEmailAlreadyExists
	}

	phone := normalizePhone(input.Phone)
	if phone != nil {
		if err := ensurePhoneFree(s.userRepo, *phone, 0); err != nil {
			return nil, err
		}
	}

	hashedPassword, err := util.HashPassword(input.Password)
	if err != nil {
		logger.Error("Failed to hash password", err, map[string]interface{}{
			"email": email,
		})
		return nil, passwordPolicyError(err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hashedPassword,
		Name:         strings.TrimSpace(input.Name),
		Phone:        phone,
		Role:         model.RoleCustomer,
		IsActive:     true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, apperrors.FromDB(err, "create user email")
	}

	logger.Info("User registered successfully", map[string]interface{}{
		"user_id": user.ID,
		"email":   email,
		"role":    user.Role,
	})
	return user, nil
}

// ensurePhoneFree fails with ErrPhoneAlreadyExists when phone belongs to a
// user other than selfID.
func ensurePhoneFree(userRepo repository.UserRepository, phone string, selfID uint) error {
	owner, err := userRepo.FindByPhone(phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return apperrors.FromDB(err, "user")
	}
	if owner.ID != selfID {
		logger.Warn("Phone number already in use", map[string]interface{}{
			"owner_id": owner.ID,
		})
		return ErrPhoneAlreadyExists
	}
	return nil
}

func (s *authService) Login(email, password string) (*model.User, *util.Token, error) {
	email = normalizeEmail(email)

	logger.Info("Login attempt", map[string]interface{}{
		"email": email,
	})

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Login failed: user not found", map[string]interface{}{
				"email": email,
			})
			return nil, nil, ErrInvalidCredentials
		}
		logger.Error("Failed to find user", err, map[string]interface{}{
			"email": email,
		})
		return nil, nil, apperrors.FromDB(err, "user")
	}

	if !util.VerifyPassword(user.PasswordHash, password) {
		logger.Warn("Login failed: invalid password", map[string]interface{}{
			"email":   email,
			"user_id": user.ID,
		})
		return nil, nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		logger.Warn("Login failed: inactive user", map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, nil, ErrInactiveUser
	}

	token, err := util.GenerateToken(user.ID, user.Email, string(user.Role), s.jwt.Secret, s.jwt.AccessTokenExpiry)
	if err != nil {
		logger.Error("Failed to generate token", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, nil, apperrors.New(apperrors.KindInternal, apperrors.InternalServerError, "Failed to issue token").Wrap(err)
	}

	logger.Info("User logged in successfully", map[string]interface{}{
		"user_id": user.ID,
		"email":   email,
		"role":    user.Role,
	})
	return user, token, nil
}

// Logout revokes token for the rest of its lifetime.
func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := util.ValidateToken(token, s.jwt.Secret)
	if err != nil {
		return tokenError(err)
	}

	if s.revoker == nil {
		logger.Debug("Token revocation disabled, logout acknowledged", map[string]interface{}{
			"user_id": claims.UserID,
		})
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.revoker.Revoke(ctx, token, ttl); err != nil {
		logger.Error("Failed to revoke token", err, map[string]interface{}{
			"user_id": claims.UserID,
		})
		return apperrors.New(apperrors.KindInternal, apperrors.InternalServerError, "Failed to log out").Wrap(err)
	}

	logger.Info("User logged out", map[string]interface{}{
		"user_id": claims.UserID,
	})
	return nil
}

// Authenticate verifies token and resolves it to the live user. The role
// comes from the stored user, so demotions take effect immediately.
func (s *authService) Authenticate(ctx context.Context, token string) (*Identity, error) {
	claims, err := util.ValidateToken(token, s.jwt.Secret)
	if err != nil {
		return nil, tokenError(err)
	}
	if !model.UserRole(claims.Role).Valid() {
		logger.Warn("Token carries unknown role", map[string]interface{}{
			"user_id": claims.UserID,
			"role":    claims.Role,
		})
		return nil, ErrInvalidToken
	}

	if s.revoker != nil {
		revoked, err := s.revoker.IsRevoked(ctx, token)
		if err != nil {
			return nil, apperrors.New(apperrors.KindInternal, apperrors.InternalServerError, "Failed to verify token").Wrap(err)
		}
		if revoked {
			return nil, ErrRevokedToken
		}
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Token refers to missing user", map[string]interface{}{
				"user_id": claims.UserID,
			})
			return nil, ErrTokenUserNotFound
		}
		return nil, apperrors.FromDB(err, "user")
	}
	if user.Email != claims.Email() {
		return nil, ErrInvalidToken
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	return &Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}, nil
}

func (s *authService) RequireAdmin(identity *Identity) (*Identity, error) {
	if identity == nil {
		return nil, ErrInvalidToken
	}
	switch identity.Role {
	case model.RoleAdmin:
		return identity, nil
	case model.RoleCustomer:
		return nil, ErrAdminRequired
	default:
		return nil, ErrAdminRequired
	}
}

func tokenError(err error) error {
	if errors.Is(err, util.ErrExpiredToken) {
		return ErrExpiredToken
	}
	return ErrInvalidToken.Wrap(err)
}

func normalizePhone(phone *string) *string {
	if phone == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*phone)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func passwordPolicyError(err error) error {
	switch {
	case errors.Is(err, util.ErrPasswordTooShort):
		return apperrors.Validation("password", fmt.Sprintf("Password must be at least %d characters", util.MinPasswordLength))
	case errors.Is(err, util.ErrPasswordTooLong):
		return apperrors.Validation("password", fmt.Sprintf("Password must be at most %d bytes", util.MaxPasswordBytes))
	}
	return apperrors.Validation("password", "Password cannot be used")
}
