package repositories

import (
	"context"

	"github.com/devarran/photoshare/backend/internal/apperrors"
	"github.com/devarran/photoshare/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	ListComments(ctx context.Context, photoID string) ([]models.Comment, error)
	AddComment(ctx context.Context, comment *models.Comment) error
}

// MongoCommentRepository implements CommentRepository for MongoDB
type MongoCommentRepository struct {
	store *Store
}

// NewMongoCommentRepository creates a new MongoCommentRepository
func NewMongoCommentRepository(store *Store) *MongoCommentRepository {
	return &MongoCommentRepository{store: store}
}

// ListComments retrieves all comments for a photo, newest first.
func (r *MongoCommentRepository) ListComments(ctx context.Context, photoID string) ([]models.Comment, error) {
	coll, err := r.store.collection(ctx, r.store.comments)
	if err != nil {
		return nil, err
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := coll.Find(ctx, bson.M{"photo_id": photoID}, findOptions)
	if err != nil {
		return nil, apperrors.StoreUnreachable("comments collection", err)
	}
	defer cursor.Close(ctx)

	comments := []models.Comment{}
	if err = cursor.All(ctx, &comments); err != nil {
		return nil, apperrors.StoreUnreachable("comments collection", err)
	}
	return comments, nil
}

// AddComment persists a fully-populated comment document.
func (r *MongoCommentRepository) AddComment(ctx context.Context, comment *models.Comment) error {
	coll, err := r.store.collection(ctx, r.store.comments)
	if err != nil {
		return err
	}

	if _, err := coll.InsertOne(ctx, comment); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.Conflict("comment id already exists", err)
		}
		return apperrors.StoreUnreachable("comments collection", err)
	}
	return nil
}
