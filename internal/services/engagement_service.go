package services

import (
	"context"
	"time"

	"github.com/devarran/photoshare/backend/internal/apperrors"
	"github.com/devarran/photoshare/backend/internal/models"
	"github.com/devarran/photoshare/backend/internal/ratings"
	"github.com/devarran/photoshare/backend/internal/repositories"
	"github.com/devarran/photoshare/backend/internal/storage"
	"github.com/devarran/photoshare/backend/internal/validation"
	"github.com/google/uuid"
)

// EngagementService validates and normalizes inputs and composes the
// repositories and the rating aggregate into the public photo, comment and
// rating operations. It holds no per-request state: every operation is a
// single request/response transaction against the store.
type EngagementService struct {
	photoRepo   repositories.PhotoRepository
	commentRepo repositories.CommentRepository
	ratingRepo  repositories.RatingRepository
	now         func() time.Time
}

// NewEngagementService creates a new EngagementService
func NewEngagementService(photoRepo repositories.PhotoRepository, commentRepo repositories.CommentRepository, ratingRepo repositories.RatingRepository) *EngagementService {
	return &EngagementService{
		photoRepo:   photoRepo,
		commentRepo: commentRepo,
		ratingRepo:  ratingRepo,
		now:         time.Now,
	}
}

// ListPhotos returns every photo, newest first.
func (s *EngagementService) ListPhotos(ctx context.Context) ([]models.Photo, error) {
	return s.photoRepo.ListPhotos(ctx)
}

// CreatePhoto assembles and persists the metadata document for an already
// uploaded image. The object reference is received from the upload
// collaborator, never produced here.
func (s *EngagementService) CreatePhoto(ctx context.Context, ref storage.ObjectRef, title, caption, location, peopleCsv string) (*models.Photo, error) {
	if ref.URL == "" || ref.ObjectName == "" {
		return nil, apperrors.InvalidInput("photo requires an uploaded image reference")
	}
	input := validation.ValidatePhoto(title, caption, location, peopleCsv)

	photo := &models.Photo{
		ID:         uuid.NewString(),
		ImageURL:   ref.URL,
		ObjectName: ref.ObjectName,
		Title:      input.Title,
		Caption:    input.Caption,
		Location:   input.Location,
		People:     input.People,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.photoRepo.CreatePhoto(ctx, photo); err != nil {
		return nil, err
	}
	return photo, nil
}

// ListComments returns a photo's comments, newest first. The photo id is not
// checked for existence; an unknown id yields an empty list.
func (s *EngagementService) ListComments(ctx context.Context, photoID string) ([]models.Comment, error) {
	return s.commentRepo.ListComments(ctx, photoID)
}

// AddComment normalizes the author, rejects blank bodies and persists the
// comment.
func (s *EngagementService) AddComment(ctx context.Context, photoID, author, text string) (*models.Comment, error) {
	input, err := validation.ValidateComment(author, text)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ID:        uuid.NewString(),
		PhotoID:   photoID,
		Author:    input.Author,
		Text:      input.Text,
		CreatedAt: s.now().UTC(),
	}
	if err := s.commentRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// UpsertRating stores an author's rating for a photo, replacing any earlier
// rating by the same author, and returns the freshly recomputed aggregate.
func (s *EngagementService) UpsertRating(ctx context.Context, photoID, author string, value int) (*models.RatingResult, error) {
	input, err := validation.ValidateRating(author, value)
	if err != nil {
		return nil, err
	}

	rating := &models.Rating{
		ID:        validation.RatingDocID(photoID, input.Author),
		PhotoID:   photoID,
		Author:    input.Author,
		Value:     input.Value,
		CreatedAt: s.now().UTC(),
	}
	if _, err := s.ratingRepo.UpsertRating(ctx, rating); err != nil {
		return nil, err
	}

	values, err := s.ratingRepo.ListRatingValues(ctx, photoID)
	if err != nil {
		return nil, err
	}
	summary := ratings.Aggregate(values)
	return &models.RatingResult{
		PhotoID: photoID,
		Average: summary.Average,
		Count:   summary.Count,
	}, nil
}

// GetRatingSummary returns the aggregate rating view for a photo. A photo
// with no ratings yields count 0, average 0 and all five buckets at 0.
func (s *EngagementService) GetRatingSummary(ctx context.Context, photoID string) (*models.RatingSummary, error) {
	values, err := s.ratingRepo.ListRatingValues(ctx, photoID)
	if err != nil {
		return nil, err
	}
	summary := ratings.Aggregate(values)
	return &models.RatingSummary{
		PhotoID:      photoID,
		Average:      summary.Average,
		Count:        summary.Count,
		Distribution: summary.Distribution,
	}, nil
}
