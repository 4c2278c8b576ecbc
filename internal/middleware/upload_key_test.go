package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devarran/photoshare/backend/internal/middleware"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invoke(t *testing.T, uploadKey, header string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if header != "" {
		req.Header.Set("X-Upload-Key", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}
	return rec, middleware.UploadKeyMiddleware(uploadKey)(next)(c)
}

func TestUploadKeyMiddleware_ValidKey(t *testing.T) {
	rec, err := invoke(t, "secret", "secret")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestUploadKeyMiddleware_InvalidKey(t *testing.T) {
	_, err := invoke(t, "secret", "wrong")
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestUploadKeyMiddleware_MissingHeader(t *testing.T) {
	_, err := invoke(t, "secret", "")
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

// An unset key never lets a request through; it reports the configuration
// problem instead.
func TestUploadKeyMiddleware_UnconfiguredKey(t *testing.T) {
	_, err := invoke(t, "", "anything")
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.Code)
}
