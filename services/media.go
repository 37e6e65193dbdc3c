package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lekzzicon/portfolio-backend/config"
	"github.com/lekzzicon/portfolio-backend/errs"
)

const (
	imageFolder  = "portfolio-projects"
	resumeFolder = "portfolio-resume"

	// resumeKey is fixed and overwritable so repeated uploads replace the
	// same underlying object deterministically.
	resumeKey = resumeFolder + "/resume.pdf"
)

// UploadResult is what the media host hands back: a stable public URL and the
// opaque key needed to delete the object later.
type UploadResult struct {
	URL string
	Key string
}

// MediaStore abstracts the external media host. Handlers depend on this
// interface so tests can stub it and assert on call counts.
type MediaStore interface {
	UploadImage(ctx context.Context, data []byte, contentType string) (*UploadResult, error)
	UploadResume(ctx context.Context, data []byte) (*UploadResult, error)
	Delete(ctx context.Context, key string) error
}

// S3MediaStore stores binary assets in any S3-compatible bucket (AWS S3,
// MinIO, Cloudflare R2, ...).
type S3MediaStore struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
	logger        zerolog.Logger
}

var _ MediaStore = (*S3MediaStore)(nil)

// NewS3MediaStore builds a media store from environment configuration.
// Missing credentials are reported eagerly as a configuration error so the
// caller can decide whether to run without upload support.
func NewS3MediaStore(cfg map[string]string) (*S3MediaStore, error) {
	bucket := config.GetString(cfg, "S3_BUCKET", "")
	accessKey := config.GetString(cfg, "S3_ACCESS_KEY", "")
	secretKey := config.GetString(cfg, "S3_SECRET_KEY", "")
	if bucket == "" || accessKey == "" || secretKey == "" {
		return nil, errs.NewConfigurationError("media store credentials (S3_BUCKET, S3_ACCESS_KEY, S3_SECRET_KEY)")
	}

	endpoint := config.GetString(cfg, "S3_ENDPOINT", "")
	region := config.GetString(cfg, "S3_REGION", "us-east-1")

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKey,
			secretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = config.GetBool(cfg, "S3_USE_PATH_STYLE", false)
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	publicBaseURL := config.GetString(cfg, "S3_PUBLIC_BASE_URL", "")
	if publicBaseURL == "" {
		if endpoint != "" {
			publicBaseURL = fmt.Sprintf("%s/%s", strings.TrimSuffix(endpoint, "/"), bucket)
		} else {
			publicBaseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
		}
	}

	return &S3MediaStore{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
		logger:        log.With().Str("serviceName", "s3MediaStore").Logger(),
	}, nil
}

// UploadImage stores a project image under a fresh key and returns its public URL.
func (s *S3MediaStore) UploadImage(ctx context.Context, data []byte, contentType string) (*UploadResult, error) {
	key := fmt.Sprintf("%s/%s%s", imageFolder, uuid.New().String(), extensionFor(contentType))
	return s.put(ctx, key, data, contentType)
}

// UploadResume stores the resume PDF at the fixed overwritable key.
func (s *S3MediaStore) UploadResume(ctx context.Context, data []byte) (*UploadResult, error) {
	return s.put(ctx, resumeKey, data, "application/pdf")
}

func (s *S3MediaStore) put(ctx context.Context, key string, data []byte, contentType string) (*UploadResult, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload object %q: %w", key, err)
	}

	s.logger.Info().Str("key", key).Int("size", len(data)).Msg("Uploaded media object")

	return &UploadResult{
		URL: fmt.Sprintf("%s/%s", s.publicBaseURL, key),
		Key: key,
	}, nil
}

// Delete removes an object by its key.
func (s *S3MediaStore) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %q: %w", key, err)
	}
	s.logger.Info().Str("key", key).Msg("Deleted media object")
	return nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
