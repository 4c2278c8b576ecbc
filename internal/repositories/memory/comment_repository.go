package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/devarran/photoshare/backend/internal/apperrors"
	"github.com/devarran/photoshare/backend/internal/models"
)

// CommentRepository is an in-memory implementation of the CommentRepository
// interface, used in tests and local development.
type CommentRepository struct {
	mu       sync.RWMutex
	comments []models.Comment
}

// NewCommentRepository creates a new in-memory comment repository
func NewCommentRepository() *CommentRepository {
	return &CommentRepository{}
}

// ListComments returns a photo's comments sorted by creation time descending.
func (r *CommentRepository) ListComments(ctx context.Context, photoID string) ([]models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []models.Comment{}
	for _, c := range r.comments {
		if c.PhotoID == photoID {
			result = append(result, c)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// AddComment adds a new comment, rejecting duplicate ids.
func (r *CommentRepository) AddComment(ctx context.Context, comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.comments {
		if c.ID == comment.ID {
			return apperrors.Conflict("comment id already exists", nil)
		}
	}
	r.comments = append(r.comments, *comment)
	return nil
}
