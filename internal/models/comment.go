package models

import (
	"time"
)

// Comment represents a comment on a photo, stored in the comments collection
// and partitioned by the owning photo's id.
type Comment struct {
	ID        string    `json:"id" bson:"_id"`
	PhotoID   string    `json:"photo_id" bson:"photo_id"`
	Author    string    `json:"author" bson:"author"`
	Text      string    `json:"text" bson:"text"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// CreateCommentRequest defines the request body for adding a comment.
type CreateCommentRequest struct {
	Author string `json:"author" validate:"max=200"`
	Text   string `json:"text" validate:"required,max=2000"`
}
