package router

import (
	"log"

	"github.com/devarran/photoshare/backend/internal/handlers"
	"github.com/devarran/photoshare/backend/internal/middleware"
	"github.com/devarran/photoshare/backend/internal/repositories"
	"github.com/devarran/photoshare/backend/internal/services"
	"github.com/devarran/photoshare/backend/internal/storage"
	"github.com/devarran/photoshare/backend/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, mgClient *mongo.Client, uploader storage.Uploader, cfg *config.Config) {
	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	store := repositories.NewStore(
		mgClient.Database(cfg.MongoDB),
		cfg.PhotosCollection,
		cfg.CommentsCollection,
		cfg.RatingsCollection,
	)
	photoRepo := repositories.NewMongoPhotoRepository(store)
	commentRepo := repositories.NewMongoCommentRepository(store)
	ratingRepo := repositories.NewMongoRatingRepository(store)

	service := services.NewEngagementService(photoRepo, commentRepo, ratingRepo)

	api := e.Group("/api/v1")
	uploadGuard := middleware.UploadKeyMiddleware(cfg.UploadKey)

	// Photo routes
	photoHandler := handlers.NewPhotoHandler(service, uploader)
	photoHandler.RegisterPhotoRoutes(api, uploadGuard)
	log.Println("Photo routes configured.")

	// Comment routes
	commentHandler := handlers.NewCommentHandler(service)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	// Rating routes
	ratingHandler := handlers.NewRatingHandler(service)
	ratingHandler.RegisterRatingRoutes(api)
	log.Println("Rating routes configured.")

	log.Println("All routes configured.")
}
