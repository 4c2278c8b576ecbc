package repositories

import (
	"context"

	"github.com/devarran/photoshare/backend/internal/apperrors"
	"github.com/devarran/photoshare/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PhotoRepository defines the interface for photo metadata operations
type PhotoRepository interface {
	ListPhotos(ctx context.Context) ([]models.Photo, error)
	CreatePhoto(ctx context.Context, photo *models.Photo) error
}

// MongoPhotoRepository implements PhotoRepository for MongoDB
type MongoPhotoRepository struct {
	store *Store
}

// NewMongoPhotoRepository creates a new MongoPhotoRepository
func NewMongoPhotoRepository(store *Store) *MongoPhotoRepository {
	return &MongoPhotoRepository{store: store}
}

// ListPhotos retrieves every photo, newest first. No pagination: the full
// collection is returned by contract.
func (r *MongoPhotoRepository) ListPhotos(ctx context.Context) ([]models.Photo, error) {
	coll, err := r.store.collection(ctx, r.store.photos)
	if err != nil {
		return nil, err
	}

	// Secondary _id sort keeps the order deterministic for equal timestamps.
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := coll.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, apperrors.StoreUnreachable("photos collection", err)
	}
	defer cursor.Close(ctx)

	photos := []models.Photo{}
	if err = cursor.All(ctx, &photos); err != nil {
		return nil, apperrors.StoreUnreachable("photos collection", err)
	}
	return photos, nil
}

// CreatePhoto persists a fully-populated photo document. The id is assigned
// by the caller; a duplicate id is reported as a conflict.
func (r *MongoPhotoRepository) CreatePhoto(ctx context.Context, photo *models.Photo) error {
	coll, err := r.store.collection(ctx, r.store.photos)
	if err != nil {
		return err
	}

	if _, err := coll.InsertOne(ctx, photo); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.Conflict("photo id already exists", err)
		}
		return apperrors.StoreUnreachable("photos collection", err)
	}
	return nil
}
