package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/dinehub-backend/internal/app/service"
	apperrors "github.com/ikkim/dinehub-backend/internal/errors"
	"github.com/ikkim/dinehub-backend/internal/middleware"
)

type AuthController struct {
	authService service.AuthService
	userService service.UserService
}

func NewAuthController(authService service.AuthService, userService service.UserService) *AuthController {
	return &AuthController{
		authService: authService,
		userService: userService,
	}
}

type RegisterRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	Name     string  `json:"name" binding:"required"`
	Phone    *string `json:"phone"`
}

// LoginRequest accepts JSON or an OAuth2 password form (username=email).
type LoginRequest struct {
	Email    string `json:"email" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

// Register handles user registration
// POST /api/v1/users/register
func (ctrl *AuthController) Register(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid registration request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.RespondWithValidationError(c, err)
		return
	}

	user, err := ctrl.authService.Register(service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
	})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login handles user login
// POST /api/v1/users/login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		log.Warn("Invalid login request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.RespondWithValidationError(c, err)
		return
	}

	user, token, err := ctrl.authService.Login(req.Email, req.Password)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token.AccessToken,
		"token_type":   token.TokenType,
		"expires_at":   token.ExpiresAt,
		"user":         user,
	})
}

// Logout revokes the caller's token
// POST /api/v1/users/logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	if err := ctrl.authService.Logout(c.Request.Context(), middleware.GetToken(c)); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// GetMe returns the current user
// GET /api/v1/users/me
func (ctrl *AuthController) GetMe(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	user, err := ctrl.userService.GetUser(identity.UserID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateMe updates the current user's profile
// PUT /api/v1/users/me
func (ctrl *AuthController) UpdateMe(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, err)
		return
	}

	user, err := ctrl.userService.UpdateProfile(identity.UserID, service.UpdateUserInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	middleware.GetLoggerFromContext(c).Info("Profile updated", map[string]interface{}{
		"user_id": identity.UserID,
	})
	c.JSON(http.StatusOK, user)
}
