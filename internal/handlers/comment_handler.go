package handlers

import (
	"net/http"

	"github.com/devarran/photoshare/backend/internal/models"
	"github.com/devarran/photoshare/backend/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	service *services.EngagementService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(service *services.EngagementService) *CommentHandler {
	return &CommentHandler{service: service}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.GET("/photos/:id/comments", h.ListComments)
	g.POST("/photos/:id/comments", h.AddComment)
}

// ListComments returns a photo's comments, newest first. The photo id is not
// checked for existence: an unknown id yields an empty list.
func (h *CommentHandler) ListComments(c echo.Context) error {
	photoID := c.Param("id")

	comments, err := h.service.ListComments(c.Request().Context(), photoID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, comments)
}

// AddComment adds a comment to a photo
func (h *CommentHandler) AddComment(c echo.Context) error {
	photoID := c.Param("id")

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.service.AddComment(c.Request().Context(), photoID, req.Author, req.Text)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, comment)
}
