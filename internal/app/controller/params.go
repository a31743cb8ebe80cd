package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/dinehub-backend/internal/app/service"
	apperrors "github.com/ikkim/dinehub-backend/internal/errors"
	"github.com/ikkim/dinehub-backend/internal/middleware"
)

// parseIDParam reads a positive numeric path parameter, responding 400 when
// it is malformed.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		middleware.GetLoggerFromContext(c).Warn("Invalid ID parameter", map[string]interface{}{
			"param": name,
			"value": raw,
		})
		apperrors.Respond(c, apperrors.New(apperrors.KindValidation, apperrors.ValidationInvalidID, "Invalid "+name).
			WithDetails(map[string]interface{}{"field": name}))
		return 0, false
	}
	return uint(id), true
}

// pageQuery reads skip/limit. Range checks happen in the services.
func pageQuery(c *gin.Context) (skip, limit int, ok bool) {
	skip, ok = intQuery(c, "skip", 0)
	if !ok {
		return 0, 0, false
	}
	limit, ok = intQuery(c, "limit", service.DefaultPageLimit)
	if !ok {
		return 0, 0, false
	}
	return skip, limit, true
}

func intQuery(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		apperrors.Respond(c, apperrors.Validation(name, name+" must be an integer"))
		return 0, false
	}
	return v, true
}

func boolQuery(c *gin.Context, name string) (*bool, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		apperrors.Respond(c, apperrors.Validation(name, name+" must be true or false"))
		return nil, false
	}
	return &v, true
}

func floatQuery(c *gin.Context, name string) (*float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		apperrors.Respond(c, apperrors.Validation(name, name+" must be a number"))
		return nil, false
	}
	return &v, true
}

// currentIdentity returns the caller set by AuthMiddleware.Authenticate.
func currentIdentity(c *gin.Context) (*service.Identity, bool) {
	identity, ok := middleware.GetIdentity(c)
	if !ok || identity == nil {
		apperrors.Unauthorized(c, "Not authenticated")
		return nil, false
	}
	return identity, true
}
