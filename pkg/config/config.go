package config

import (
	"log"
	"os"

	"github.com/devarran/photoshare/backend/internal/apperrors"
	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	Env  string

	MongoURI           string
	MongoDB            string
	PhotosCollection   string
	CommentsCollection string
	RatingsCollection  string

	UploadKey string

	S3Region          string
	S3Bucket          string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Endpoint        string
	S3PublicBaseURL   string
	S3UsePathStyle    bool
}

// Load reads the configuration from the environment once at process start.
// The returned struct is shared read-only across all requests.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		MongoURI:           getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:            getEnv("MONGO_DB", "photoshare"),
		PhotosCollection:   getEnv("PHOTOS_COLLECTION", "photos"),
		CommentsCollection: getEnv("COMMENTS_COLLECTION", "comments"),
		RatingsCollection:  getEnv("RATINGS_COLLECTION", "ratings"),
		UploadKey:          getEnv("UPLOAD_KEY", ""),
		S3Region:           getEnv("S3_REGION", "us-east-1"),
		S3Bucket:           getEnv("S3_BUCKET", ""),
		S3AccessKeyID:      getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey:  getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Endpoint:         getEnv("S3_ENDPOINT", ""),
		S3PublicBaseURL:    getEnv("S3_PUBLIC_BASE_URL", ""),
		S3UsePathStyle:     getEnv("S3_USE_PATH_STYLE", "") == "true",
	}
}

// Validate reports the first missing required element by name. A failed
// validation is not fatal: the server still starts and surfaces the error on
// the operations that need the missing piece.
func (c *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"MONGO_URI", c.MongoURI},
		{"MONGO_DB", c.MongoDB},
		{"PHOTOS_COLLECTION", c.PhotosCollection},
		{"COMMENTS_COLLECTION", c.CommentsCollection},
		{"RATINGS_COLLECTION", c.RatingsCollection},
		{"UPLOAD_KEY", c.UploadKey},
		{"S3_BUCKET", c.S3Bucket},
	}
	for _, r := range required {
		if r.value == "" {
			return apperrors.ConfigurationMissing(r.name)
		}
	}
	if (c.S3AccessKeyID == "") != (c.S3SecretAccessKey == "") {
		return apperrors.ConfigurationMissing("S3 credentials")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
