package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/ikkim/dinehub-backend/config"
)

const presignExpiry = 15 * time.Minute

type S3Storage struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

type PresignedUpload struct {
	UploadURL string    `json:"upload_url"`
	FileURL   string    `json:"file_url"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewS3Storage builds the client from static credentials when both keys are
// set, otherwise from the default AWS credential chain.
func NewS3Storage(ctx context.Context, cfg config.S3Config) (*S3Storage, error) {
	var awsCfg aws.Config

	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		awsCfg = aws.Config{
			Region:      cfg.Region,
			Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		}
	} else {
		loaded, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		awsCfg = loaded
	}

	return &S3Storage{
		client:  s3.NewFromConfig(awsCfg),
		bucket:  cfg.Bucket,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}, nil
}

// PresignUpload returns a presigned PUT URL for a new object under folder.
// The key is random; only the extension of filename is kept.
func (s *S3Storage) PresignUpload(ctx context.Context, folder, filename, contentType string) (*PresignedUpload, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	key := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), ext)

	presignClient := s3.NewPresignClient(s.client)
	req, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return nil, fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return &PresignedUpload{
		UploadURL: req.URL,
		FileURL:   s.fileURL(key),
		Key:       key,
		ExpiresAt: time.Now().Add(presignExpiry),
	}, nil
}

func (s *S3Storage) fileURL(key string) string {
	if s.baseURL != "" {
		return fmt.Sprintf("%s/%s", s.baseURL, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.client.Options().Region, key)
}
