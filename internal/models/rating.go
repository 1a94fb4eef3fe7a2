package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rating is a single user's rating for a movie. At most one document exists
// per (movieId, userId) pair, enforced by a unique compound index.
type Rating struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MovieID   primitive.ObjectID `bson:"movieId" json:"movieId"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Value     float64            `bson:"value" json:"value" example:"4"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (Rating) CollectionName() string {
	return "ratings"
}
