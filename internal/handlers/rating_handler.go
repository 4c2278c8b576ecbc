package handlers

import (
	"net/http"

	"github.com/devarran/photoshare/backend/internal/models"
	"github.com/devarran/photoshare/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// RatingHandler handles HTTP requests related to ratings
type RatingHandler struct {
	service *services.EngagementService
}

// NewRatingHandler creates a new RatingHandler
func NewRatingHandler(service *services.EngagementService) *RatingHandler {
	return &RatingHandler{service: service}
}

// RegisterRatingRoutes registers rating-related routes
func (h *RatingHandler) RegisterRatingRoutes(g *echo.Group) {
	g.PUT("/photos/:id/rating", h.UpsertRating)
	g.GET("/photos/:id/rating", h.GetRatingSummary)
}

// UpsertRating stores an author's rating for a photo and responds with the
// recomputed aggregate. Out-of-range values are rejected by the service
// before any write.
func (h *RatingHandler) UpsertRating(c echo.Context) error {
	photoID := c.Param("id")

	var req models.UpsertRatingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	result, err := h.service.UpsertRating(c.Request().Context(), photoID, req.Author, req.Value)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// GetRatingSummary returns the aggregate rating view for a photo
func (h *RatingHandler) GetRatingSummary(c echo.Context) error {
	photoID := c.Param("id")

	summary, err := h.service.GetRatingSummary(c.Request().Context(), photoID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}
