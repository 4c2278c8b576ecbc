package memory

import (
	"context"
	"io"
	"sync"

	"github.com/devarran/photoshare/backend/internal/storage"
	"github.com/google/uuid"
)

// Uploader is an in-memory implementation of the storage.Uploader interface,
// used in tests and local development.
type Uploader struct {
	mu      sync.Mutex
	objects map[string][]byte
}

// NewUploader creates a new in-memory uploader
func NewUploader() *Uploader {
	return &Uploader{objects: make(map[string][]byte)}
}

// Upload stores the bytes under a fresh object name.
func (u *Uploader) Upload(ctx context.Context, r io.Reader, contentType string) (storage.ObjectRef, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return storage.ObjectRef{}, err
	}

	objectName := uuid.NewString()

	u.mu.Lock()
	defer u.mu.Unlock()
	u.objects[objectName] = data

	return storage.ObjectRef{
		URL:        "memory://" + objectName,
		ObjectName: objectName,
	}, nil
}

// Object returns the stored bytes for an object name.
func (u *Uploader) Object(objectName string) ([]byte, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	data, ok := u.objects[objectName]
	return data, ok
}
