package validation

import (
	"fmt"

	"github.com/devarran/photoshare/backend/internal/apperrors"
)

// RatingInput is a validated, normalized rating payload.
type RatingInput struct {
	Author string
	Value  int
}

// ValidateRating normalizes the author name and rejects values outside 1..5.
func ValidateRating(author string, value int) (RatingInput, error) {
	if value < 1 || value > 5 {
		return RatingInput{}, apperrors.InvalidInput(fmt.Sprintf("rating value must be between 1 and 5, got %d", value))
	}
	return RatingInput{
		Author: NormalizeAuthor(author),
		Value:  value,
	}, nil
}

// RatingDocID derives the deterministic document id that enforces the
// one-rating-per-author invariant: upserting by this id replaces any prior
// rating by the same author for the same photo.
func RatingDocID(photoID, normalizedAuthor string) string {
	return photoID + "_" + normalizedAuthor
}
