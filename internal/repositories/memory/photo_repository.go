package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/devarran/photoshare/backend/internal/apperrors"
	"github.com/devarran/photoshare/backend/internal/models"
)

// PhotoRepository is an in-memory implementation of the PhotoRepository
// interface, used in tests and local development.
type PhotoRepository struct {
	mu     sync.RWMutex
	photos []models.Photo
}

// NewPhotoRepository creates a new in-memory photo repository
func NewPhotoRepository() *PhotoRepository {
	return &PhotoRepository{}
}

// ListPhotos returns all photos sorted by creation time descending. Insertion
// order is preserved for equal timestamps.
func (r *PhotoRepository) ListPhotos(ctx context.Context) ([]models.Photo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Photo, len(r.photos))
	copy(result, r.photos)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// CreatePhoto adds a new photo, rejecting duplicate ids.
func (r *PhotoRepository) CreatePhoto(ctx context.Context, photo *models.Photo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.photos {
		if p.ID == photo.ID {
			return apperrors.Conflict("photo id already exists", nil)
		}
	}
	r.photos = append(r.photos, *photo)
	return nil
}
