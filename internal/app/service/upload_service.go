package service

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ikkim/dinehub-backend/internal/storage"
	"github.com/ikkim/dinehub-backend/pkg/logger"
)

// ImagePresigner issues presigned PUT URLs. *storage.S3Storage implements it.
type ImagePresigner interface {
	PresignUpload(ctx context.Context, folder, filename, contentType string) (*storage.PresignedUpload, error)
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var uploadFolders = map[string]bool{
	"restaurants": true,
	"menu":        true,
}

type UploadService interface {
	PresignImage(ctx context.Context, filename, contentType, folder string) (*storage.PresignedUpload, error)
}

type uploadService struct {
	presigner ImagePresigner
}

// NewUploadService accepts a nil presigner; every call then fails with
// ErrUploadUnavailable.
func NewUploadService(presigner ImagePresigner) UploadService {
	return &uploadService{presigner: presigner}
}

func (s *uploadService) PresignImage(ctx context.Context, filename, contentType, folder string) (*storage.PresignedUpload, error) {
	if s.presigner == nil {
		return nil, ErrUploadUnavailable
	}

	contentType = strings.ToLower(strings.TrimSpace(contentType))
	if !allowedImageTypes[contentType] {
		return nil, ErrInvalidFileType.Withf("Content type %q is not allowed. Allowed: jpeg, png, gif, webp", contentType).
			WithDetails(map[string]interface{}{"field": "content_type"})
	}
	if ext := strings.ToLower(filepath.Ext(filename)); !allowedImageExts[ext] {
		return nil, ErrInvalidFileType.Withf("File extension %q is not allowed", ext).
			WithDetails(map[string]interface{}{"field": "filename"})
	}

	if folder == "" {
		folder = "restaurants"
	}
	if !uploadFolders[folder] {
		return nil, ErrInvalidFolder.Withf("Folder %q is not allowed. Allowed: restaurants, menu", folder).
			WithDetails(map[string]interface{}{"field": "folder"})
	}

	upload, err := s.presigner.PresignUpload(ctx, folder, filename, contentType)
	if err != nil {
		logger.Error("Failed to presign upload", err, map[string]interface{}{
			"folder":       folder,
			"content_type": contentType,
		})
		return nil, ErrPresignFailed.Wrap(err)
	}

	logger.Info("Presigned upload URL issued", map[string]interface{}{
		"key": upload.Key,
	})
	return upload, nil
}
