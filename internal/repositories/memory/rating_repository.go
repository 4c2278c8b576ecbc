package memory

import (
	"context"
	"sync"

	"github.com/devarran/photoshare/backend/internal/models"
)

// RatingRepository is an in-memory implementation of the RatingRepository
// interface, used in tests and local development. Keying the map by document
// id gives the same replace-on-upsert semantics as the document store.
type RatingRepository struct {
	mu      sync.RWMutex
	ratings map[string]models.Rating
}

// NewRatingRepository creates a new in-memory rating repository
func NewRatingRepository() *RatingRepository {
	return &RatingRepository{ratings: make(map[string]models.Rating)}
}

// UpsertRating writes the rating keyed by its deterministic id, replacing any
// prior rating with the same id.
func (r *RatingRepository) UpsertRating(ctx context.Context, rating *models.Rating) (*models.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ratings[rating.ID] = *rating
	return rating, nil
}

// ListRatingValues returns the raw rating values for a photo.
func (r *RatingRepository) ListRatingValues(ctx context.Context, photoID string) ([]float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	values := []float64{}
	for _, rating := range r.ratings {
		if rating.PhotoID == photoID {
			values = append(values, float64(rating.Value))
		}
	}
	return values, nil
}
