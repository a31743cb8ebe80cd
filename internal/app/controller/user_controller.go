package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/dinehub-backend/internal/app/model"
	"github.com/ikkim/dinehub-backend/internal/app/service"
	apperrors "github.com/ikkim/dinehub-backend/internal/errors"
	"github.com/ikkim/dinehub-backend/internal/middleware"
)

// UserController serves the admin user endpoints.
type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

type AdminUpdateUserRequest struct {
	Name     *string         `json:"name"`
	Phone    *string         `json:"phone"`
	IsActive *bool           `json:"is_active"`
	Role     *model.UserRole `json:"role"`
}

// ListUsers
// GET /api/v1/users
func (ctrl *UserController) ListUsers(c *gin.Context) {
	skip, limit, ok := pageQuery(c)
	if !ok {
		return
	}

	users, err := ctrl.userService.ListUsers(skip, limit)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GET /api/v1/users/:id
func (ctrl *UserController) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := ctrl.userService.GetUser(id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// PUT /api/v1/users/:id
func (ctrl *UserController) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, err)
		return
	}

	user, err := ctrl.userService.AdminUpdateUser(id, service.UpdateUserInput{
		Name:     req.Name,
		Phone:    req.Phone,
		IsActive: req.IsActive,
		Role:     req.Role,
	})
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DELETE /api/v1/users/:id
func (ctrl *UserController) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.userService.DeleteUser(id); err != nil {
		apperrors.Respond(c, err)
		return
	}

	adminID, _ := middleware.GetUserID(c)
	middleware.GetLoggerFromContext(c).Info("User deleted by admin", map[string]interface{}{
		"user_id":  id,
		"admin_id": adminID,
	})
	c.Status(http.StatusNoContent)
}
