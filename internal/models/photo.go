package models

import (
	"time"
)

// Photo represents an uploaded photo's metadata stored in the photos collection.
// The id doubles as the collection's partition key and is immutable once written.
type Photo struct {
	ID         string    `json:"id" bson:"_id"`
	ImageURL   string    `json:"image_url" bson:"image_url"`
	ObjectName string    `json:"object_name" bson:"object_name"`
	Title      string    `json:"title" bson:"title"`
	Caption    string    `json:"caption" bson:"caption"`
	Location   string    `json:"location" bson:"location"`
	People     []string  `json:"people" bson:"people"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

// CreatePhotoRequest defines the multipart form fields accepted when uploading
// a new photo. The image itself arrives as the "image" file part.
type CreatePhotoRequest struct {
	Title    string `json:"title" form:"title" validate:"max=200"`
	Caption  string `json:"caption" form:"caption" validate:"max=1000"`
	Location string `json:"location" form:"location" validate:"max=200"`
	People   string `json:"people" form:"people" validate:"max=500"`
}
