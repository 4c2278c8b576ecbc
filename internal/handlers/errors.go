package handlers

import (
	"net/http"

	"github.com/devarran/photoshare/backend/internal/apperrors"
	"github.com/labstack/echo/v4"
)

// respondError maps a classified error to an HTTP status and a structured
// JSON body carrying the message and the error kind.
func respondError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	kind := apperrors.KindOf(err)
	switch kind {
	case apperrors.KindInvalidInput:
		status = http.StatusBadRequest
	case apperrors.KindNotFound:
		status = http.StatusNotFound
	case apperrors.KindConflict:
		status = http.StatusConflict
	case apperrors.KindConfigurationMissing, apperrors.KindStoreUnreachable:
		status = http.StatusServiceUnavailable
	case apperrors.KindUploadFailed:
		status = http.StatusBadGateway
	}

	return c.JSON(status, map[string]string{
		"error": err.Error(),
		"kind":  kind.String(),
	})
}
