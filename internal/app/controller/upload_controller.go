package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/dinehub-backend/internal/app/service"
	apperrors "github.com/ikkim/dinehub-backend/internal/errors"
	"github.com/ikkim/dinehub-backend/internal/middleware"
)

type UploadController struct {
	uploadService service.UploadService
}

func NewUploadController(uploadService service.UploadService) *UploadController {
	return &UploadController{
		uploadService: uploadService,
	}
}

type GeneratePresignedURLRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
	Folder      string `json:"folder"` // restaurants (default) or menu
}

// GeneratePresignedURL generates a presigned URL for uploading an image to S3
// POST /api/v1/uploads/presigned-url
func (ctrl *UploadController) GeneratePresignedURL(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req GeneratePresignedURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid presigned URL request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.RespondWithValidationError(c, err)
		return
	}

	upload, err := ctrl.uploadService.PresignImage(c.Request.Context(), req.Filename, req.ContentType, req.Folder)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, upload)
}
