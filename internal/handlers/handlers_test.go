package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/devarran/photoshare/backend/internal/handlers"
	"github.com/devarran/photoshare/backend/internal/models"
	repomemory "github.com/devarran/photoshare/backend/internal/repositories/memory"
	"github.com/devarran/photoshare/backend/internal/services"
	storagememory "github.com/devarran/photoshare/backend/internal/storage/memory"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *services.EngagementService {
	return services.NewEngagementService(
		repomemory.NewPhotoRepository(),
		repomemory.NewCommentRepository(),
		repomemory.NewRatingRepository(),
	)
}

func TestUpsertRatingHandler(t *testing.T) {
	e := echo.New()
	h := handlers.NewRatingHandler(newTestService())

	body := `{"author":"Alice","value":4}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	require.NoError(t, h.UpsertRating(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var result models.RatingResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "p1", result.PhotoID)
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, 4.0, result.Average)
}

func TestUpsertRatingHandler_OutOfRange(t *testing.T) {
	e := echo.New()
	h := handlers.NewRatingHandler(newTestService())

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"author":"Alice","value":9}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	require.NoError(t, h.UpsertRating(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errBody map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.Equal(t, "invalid_input", errBody["kind"])
}

func TestGetRatingSummaryHandler_NoRatings(t *testing.T) {
	e := echo.New()
	h := handlers.NewRatingHandler(newTestService())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	require.NoError(t, h.GetRatingSummary(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var summary models.RatingSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 0, summary.Count)
	assert.Equal(t, 0.0, summary.Average)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}, summary.Distribution)
}

func TestAddCommentHandler(t *testing.T) {
	e := echo.New()
	h := handlers.NewCommentHandler(newTestService())

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"author":"","text":"hello"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	require.NoError(t, h.AddComment(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var comment models.Comment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comment))
	assert.Equal(t, "anonymous", comment.Author)
	assert.Equal(t, "hello", comment.Text)
}

func TestAddCommentHandler_BlankText(t *testing.T) {
	e := echo.New()
	h := handlers.NewCommentHandler(newTestService())

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"author":"Bob","text":"   "}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	require.NoError(t, h.AddComment(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePhotoHandler(t *testing.T) {
	e := echo.New()
	service := newTestService()
	uploader := storagememory.NewUploader()
	h := handlers.NewPhotoHandler(service, uploader)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", "sunset.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("not-really-a-jpeg"))
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("title", "Sunset"))
	require.NoError(t, writer.WriteField("caption", "over the bay"))
	require.NoError(t, writer.WriteField("location", "Lisbon"))
	require.NoError(t, writer.WriteField("people", "Alice, Bob ,, Carol"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.CreatePhoto(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var photo models.Photo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &photo))
	assert.Equal(t, "Sunset", photo.Title)
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, photo.People)
	assert.NotEmpty(t, photo.ImageURL)

	stored, ok := uploader.Object(photo.ObjectName)
	require.True(t, ok)
	assert.Equal(t, []byte("not-really-a-jpeg"), stored)
}

func TestCreatePhotoHandler_MissingImage(t *testing.T) {
	e := echo.New()
	h := handlers.NewPhotoHandler(newTestService(), storagememory.NewUploader())

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("title", "Sunset"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreatePhoto(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
