package handlers

import (
	"net/http"

	"github.com/devarran/photoshare/backend/internal/models"
	"github.com/devarran/photoshare/backend/internal/services"
	"github.com/devarran/photoshare/backend/internal/storage"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// PhotoHandler handles HTTP requests related to photos
type PhotoHandler struct {
	service  *services.EngagementService
	uploader storage.Uploader
}

// NewPhotoHandler creates a new PhotoHandler
func NewPhotoHandler(service *services.EngagementService, uploader storage.Uploader) *PhotoHandler {
	return &PhotoHandler{
		service:  service,
		uploader: uploader,
	}
}

// RegisterPhotoRoutes registers photo-related routes. The create route is
// guarded by the upload-key middleware.
func (h *PhotoHandler) RegisterPhotoRoutes(g *echo.Group, uploadGuard echo.MiddlewareFunc) {
	g.GET("/photos", h.ListPhotos)
	g.POST("/photos", h.CreatePhoto, uploadGuard)
}

// ListPhotos returns all photos, newest first
func (h *PhotoHandler) ListPhotos(c echo.Context) error {
	photos, err := h.service.ListPhotos(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, photos)
}

// CreatePhoto uploads the image part to object storage, then persists the
// photo metadata with the resulting reference.
func (h *PhotoHandler) CreatePhoto(c echo.Context) error {
	var req models.CreatePhotoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing image file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Could not read image file")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	ref, err := h.uploader.Upload(c.Request().Context(), file, contentType)
	if err != nil {
		return respondError(c, err)
	}

	photo, err := h.service.CreatePhoto(c.Request().Context(), ref, req.Title, req.Caption, req.Location, req.People)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, photo)
}
