package validation_test

import (
	"testing"

	"github.com/devarran/photoshare/backend/internal/apperrors"
	"github.com/devarran/photoshare/backend/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRating(t *testing.T) {
	input, err := validation.ValidateRating(" Alice ", 3)
	require.NoError(t, err)
	assert.Equal(t, "Alice", input.Author)
	assert.Equal(t, 3, input.Value)
}

func TestValidateRating_RejectsOutOfRange(t *testing.T) {
	for _, value := range []int{0, -1, 6, 100} {
		_, err := validation.ValidateRating("Alice", value)
		require.Error(t, err, "value %d", value)
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidInput))
	}
}

func TestRatingDocID(t *testing.T) {
	id := validation.RatingDocID("photo-1", "Alice")
	assert.Equal(t, "photo-1_Alice", id)

	// Same photo and normalized author always derive the same id; that is
	// what turns the upsert into a one-rating-per-author guarantee.
	assert.Equal(t, id, validation.RatingDocID("photo-1", validation.NormalizeAuthor(" Alice ")))
	assert.NotEqual(t, id, validation.RatingDocID("photo-1", "alice"))
	assert.NotEqual(t, id, validation.RatingDocID("photo-2", "Alice"))
}
