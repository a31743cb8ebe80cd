package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/dinehub-backend/internal/app/model"
	"github.com/ikkim/dinehub-backend/internal/app/service"
	"github.com/ikkim/dinehub-backend/internal/errors"
)

// Context keys for user information
const (
	UserIDKey    = "user_id"
	UserEmailKey = "user_email"
	UserRoleKey  = "user_role"
	IdentityKey  = "identity"
	TokenKey     = "access_token"
)

type AuthMiddleware struct {
	authService service.AuthService
}

func NewAuthMiddleware(authService service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// Authenticate resolves the bearer token to a live identity (required).
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Warn("Missing authorization header", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.Unauthorized(c, "Not authenticated")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			log.Warn("Invalid authorization header format", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.Respond(c, service.ErrInvalidToken.Withf("Authorization header must be 'Bearer <token>'"))
			c.Abort()
			return
		}
		token := parts[1]

		identity, err := m.authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			log.Warn("Token validation failed", map[string]interface{}{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			errors.Respond(c, err)
			c.Abort()
			return
		}

		c.Set(UserIDKey, identity.UserID)
		c.Set(UserEmailKey, identity.Email)
		c.Set(UserRoleKey, identity.Role)
		c.Set(IdentityKey, identity)
		c.Set(TokenKey, token)

		log.Debug("User authenticated successfully", map[string]interface{}{
			"user_id": identity.UserID,
			"role":    identity.Role,
		})

		c.Next()
	}
}

// RequireAdmin must run after Authenticate.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		identity, _ := GetIdentity(c)
		if _, err := m.authService.RequireAdmin(identity); err != nil {
			fields := map[string]interface{}{
				"path": c.Request.URL.Path,
			}
			if identity != nil {
				fields["user_id"] = identity.UserID
				fields["user_role"] = identity.Role
			}
			log.Warn("Insufficient permissions", fields)
			errors.Respond(c, err)
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetUserID extracts user ID from context
func GetUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	return userID.(uint), true
}

// GetUserRole extracts user role from context
func GetUserRole(c *gin.Context) (model.UserRole, bool) {
	role, exists := c.Get(UserRoleKey)
	if !exists {
		return "", false
	}
	return role.(model.UserRole), true
}

func GetIdentity(c *gin.Context) (*service.Identity, bool) {
	identity, exists := c.Get(IdentityKey)
	if !exists {
		return nil, false
	}
	return identity.(*service.Identity), true
}

// GetToken returns the raw bearer token of an authenticated request.
func GetToken(c *gin.Context) string {
	return c.GetString(TokenKey)
}
