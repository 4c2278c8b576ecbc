package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// UploadKeyMiddleware guards upload routes with the shared secret. The key is
// compared in constant time against the X-Upload-Key header.
func UploadKeyMiddleware(uploadKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if uploadKey == "" {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "UPLOAD_KEY is not configured")
			}

			provided := c.Request().Header.Get("X-Upload-Key")
			if provided == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing X-Upload-Key header")
			}
			if subtle.ConstantTimeCompare([]byte(provided), []byte(uploadKey)) != 1 {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid upload key")
			}
			return next(c)
		}
	}
}
