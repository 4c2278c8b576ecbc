package repositories

import (
	"context"

	"github.com/devarran/photoshare/backend/internal/apperrors"
	"github.com/devarran/photoshare/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RatingRepository defines the interface for rating data operations
type RatingRepository interface {
	UpsertRating(ctx context.Context, rating *models.Rating) (*models.Rating, error)
	ListRatingValues(ctx context.Context, photoID string) ([]float64, error)
}

// MongoRatingRepository implements RatingRepository for MongoDB
type MongoRatingRepository struct {
	store *Store
}

// NewMongoRatingRepository creates a new MongoRatingRepository
func NewMongoRatingRepository(store *Store) *MongoRatingRepository {
	return &MongoRatingRepository{store: store}
}

// UpsertRating writes the rating keyed by its deterministic id, replacing any
// prior rating by the same author for the same photo, and returns the stored
// document. Concurrent writes for the same id resolve last-write-wins at the
// store; no additional locking is layered on top.
func (r *MongoRatingRepository) UpsertRating(ctx context.Context, rating *models.Rating) (*models.Rating, error) {
	coll, err := r.store.collection(ctx, r.store.ratings)
	if err != nil {
		return nil, err
	}

	replaceOptions := options.Replace().SetUpsert(true)
	if _, err := coll.ReplaceOne(ctx, bson.M{"_id": rating.ID}, rating, replaceOptions); err != nil {
		return nil, apperrors.StoreUnreachable("ratings collection", err)
	}
	return rating, nil
}

// ListRatingValues retrieves the raw rating values for a photo, used only as
// aggregation input. Values are decoded as doubles so documents edited
// outside the validated write path still aggregate.
func (r *MongoRatingRepository) ListRatingValues(ctx context.Context, photoID string) ([]float64, error) {
	coll, err := r.store.collection(ctx, r.store.ratings)
	if err != nil {
		return nil, err
	}

	findOptions := options.Find().SetProjection(bson.M{"value": 1})
	cursor, err := coll.Find(ctx, bson.M{"photo_id": photoID}, findOptions)
	if err != nil {
		return nil, apperrors.StoreUnreachable("ratings collection", err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		Value float64 `bson:"value"`
	}
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, apperrors.StoreUnreachable("ratings collection", err)
	}

	values := make([]float64, 0, len(docs))
	for _, doc := range docs {
		values = append(values, doc.Value)
	}
	return values, nil
}
