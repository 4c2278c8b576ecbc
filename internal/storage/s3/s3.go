package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/devarran/photoshare/backend/internal/apperrors"
	"github.com/devarran/photoshare/backend/internal/storage"
	"github.com/google/uuid"
)

// Config options for the S3 uploader
type Config struct {
	Region          string // AWS region
	Bucket          string // S3 bucket name
	AccessKeyID     string // AWS access key ID
	SecretAccessKey string // AWS secret access key
	Endpoint        string // Optional custom endpoint for S3-compatible services
	PublicBaseURL   string // Optional base URL for served objects; defaults to the bucket's virtual-hosted URL
	UsePathStyle    bool   // Use path-style addressing (needed for MinIO)
}

// Uploader stores image bytes in an S3 bucket and returns the public URL and
// object key as the durable reference.
type Uploader struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewUploader creates a new S3-backed uploader
func NewUploader(config Config) (*Uploader, error) {
	if config.Bucket == "" {
		return nil, errors.New("bucket name is required")
	}
	if config.Region == "" {
		config.Region = "us-east-1"
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(config.Region),
	}
	if config.AccessKeyID != "" && config.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				config.AccessKeyID,
				config.SecretAccessKey,
				"",
			),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if config.Endpoint != "" {
			o.BaseEndpoint = aws.String(config.Endpoint)
		}
		if config.UsePathStyle {
			o.UsePathStyle = true
		}
	})

	baseURL := strings.TrimSuffix(config.PublicBaseURL, "/")
	if baseURL == "" {
		if config.Endpoint != "" {
			baseURL = fmt.Sprintf("%s/%s", strings.TrimSuffix(config.Endpoint, "/"), config.Bucket)
		} else {
			baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", config.Bucket, config.Region)
		}
	}

	return &Uploader{
		client:  client,
		bucket:  config.Bucket,
		baseURL: baseURL,
	}, nil
}

// Upload writes the bytes to a fresh object key and returns its reference.
// Failures are not retried; the caller receives them as upload errors.
func (u *Uploader) Upload(ctx context.Context, r io.Reader, contentType string) (storage.ObjectRef, error) {
	objectName := uuid.NewString() + extensionFor(contentType)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(objectName),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return storage.ObjectRef{}, apperrors.UploadFailed(err)
	}

	return storage.ObjectRef{
		URL:        u.baseURL + "/" + objectName,
		ObjectName: objectName,
	}, nil
}

// extensionFor picks a file extension for the object key from the content
// type; unknown types get no extension.
func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	}
	exts, err := mime.ExtensionsByType(contentType)
	if err != nil || len(exts) == 0 {
		return ""
	}
	return exts[0]
}
