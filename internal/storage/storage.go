package storage

import (
	"context"
	"io"
)

// ObjectRef is the durable reference returned by an object-storage backend
// after a successful upload. Only the reference is persisted with the photo
// metadata; the bytes never pass through the metadata store.
type ObjectRef struct {
	URL        string `json:"url"`
	ObjectName string `json:"object_name"`
}

// Uploader stores raw image bytes and returns a durable reference to them.
type Uploader interface {
	Upload(ctx context.Context, r io.Reader, contentType string) (ObjectRef, error)
}

// MisconfiguredUploader stands in for a backend whose configuration is
// incomplete. The server still starts; every upload attempt surfaces the
// configuration error instead.
type MisconfiguredUploader struct {
	Err error
}

func (m MisconfiguredUploader) Upload(ctx context.Context, r io.Reader, contentType string) (ObjectRef, error) {
	return ObjectRef{}, m.Err
}
