package repositories

import (
	"context"
	"sync"

	"github.com/devarran/photoshare/backend/internal/apperrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Store bundles the shared MongoDB handle with the configured collection
// names. It verifies connectivity and collection existence lazily on the
// first operation: a broken configuration surfaces as a typed error on the
// request that hit it instead of crashing the process at startup. A
// successful check is cached; failures are retried on the next request.
type Store struct {
	db       *mongo.Database
	photos   string
	comments string
	ratings  string

	mu       sync.Mutex
	verified bool
}

// NewStore creates a Store over an already-connected database handle.
func NewStore(db *mongo.Database, photos, comments, ratings string) *Store {
	return &Store{
		db:       db,
		photos:   photos,
		comments: comments,
		ratings:  ratings,
	}
}

// verify pings the deployment and confirms each configured collection exists.
// The error names the exact element that is missing or unreachable.
func (s *Store) verify(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.verified {
		return nil
	}

	if err := s.db.Client().Ping(ctx, readpref.Primary()); err != nil {
		return apperrors.StoreUnreachable("database", err)
	}

	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return apperrors.StoreUnreachable("database", err)
	}
	existing := make(map[string]bool, len(names))
	for _, name := range names {
		existing[name] = true
	}

	for _, c := range []struct {
		element string
		name    string
	}{
		{"photos collection", s.photos},
		{"comments collection", s.comments},
		{"ratings collection", s.ratings},
	} {
		if !existing[c.name] {
			return apperrors.CollectionMissing(c.element, c.name)
		}
	}

	s.verified = true
	return nil
}

// collection returns the named collection after the store has been verified.
func (s *Store) collection(ctx context.Context, name string) (*mongo.Collection, error) {
	if err := s.verify(ctx); err != nil {
		return nil, err
	}
	return s.db.Collection(name), nil
}
