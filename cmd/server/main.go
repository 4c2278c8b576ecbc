package main

import (
	"log"

	"github.com/devarran/photoshare/backend/internal/apperrors"
	"github.com/devarran/photoshare/backend/internal/router"
	"github.com/devarran/photoshare/backend/internal/storage"
	"github.com/devarran/photoshare/backend/internal/storage/s3"
	"github.com/devarran/photoshare/backend/pkg/config"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		// Incomplete configuration is not fatal: the affected operations
		// report it as a structured error instead.
		log.Printf("Configuration incomplete: %v", err)
	}

	// Initialize the shared MongoDB client; connectivity is verified lazily
	// by the repositories on first use.
	mgClient, err := config.InitMongo(cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to initialize MongoDB client: %v", err)
	}
	defer config.CloseMongo(mgClient)

	// Initialize the object-storage uploader
	uploader := newUploader(cfg)

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, mgClient, uploader, cfg)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

// newUploader builds the S3 uploader, or a stand-in that surfaces the
// configuration error on upload attempts when the S3 settings are incomplete.
func newUploader(cfg *config.Config) storage.Uploader {
	if cfg.S3Bucket == "" {
		log.Println("S3_BUCKET is not set; photo uploads will be rejected.")
		return storage.MisconfiguredUploader{Err: apperrors.ConfigurationMissing("S3_BUCKET")}
	}

	uploader, err := s3.NewUploader(s3.Config{
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Endpoint:        cfg.S3Endpoint,
		PublicBaseURL:   cfg.S3PublicBaseURL,
		UsePathStyle:    cfg.S3UsePathStyle,
	})
	if err != nil {
		log.Printf("Failed to initialize S3 uploader: %v; photo uploads will be rejected.", err)
		return storage.MisconfiguredUploader{Err: apperrors.UploadFailed(err)}
	}
	return uploader
}
