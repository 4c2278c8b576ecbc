package models

import (
	"time"
)

// Rating represents a single author's star rating for a photo. The document id
// is derived from (photo id, normalized author), so writing through an upsert
// keeps at most one rating per author per photo. Partitioned by photo id.
type Rating struct {
	ID        string    `json:"id" bson:"_id"`
	PhotoID   string    `json:"photo_id" bson:"photo_id"`
	Author    string    `json:"author" bson:"author"`
	Value     int       `json:"value" bson:"value"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// UpsertRatingRequest defines the request body for submitting a rating.
type UpsertRatingRequest struct {
	Author string `json:"author" validate:"max=200"`
	Value  int    `json:"value" validate:"required,min=1,max=5"`
}

// RatingSummary is the aggregate view of a photo's ratings. Distribution maps
// each star bucket 1..5 to its count; all five buckets are always present.
type RatingSummary struct {
	PhotoID      string      `json:"photo_id"`
	Average      float64     `json:"average"`
	Count        int         `json:"count"`
	Distribution map[int]int `json:"distribution"`
}

// RatingResult is the response to an upsert: the freshly recomputed aggregate
// without the per-bucket distribution.
type RatingResult struct {
	PhotoID string  `json:"photo_id"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}
