package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Genre struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name" example:"Drama"`
	Slug        string             `bson:"slug" json:"slug" example:"drama"`
	Description string             `bson:"description" json:"description"`
	Icon        string             `bson:"icon" json:"icon"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Collection is the rendered "genre collection" card: a genre together with
// the big poster of its representative movie.
type Collection struct {
	ID    primitive.ObjectID `json:"id"`
	Title string             `json:"title"`
	Slug  string             `json:"slug"`
	Image string             `json:"image"`
}

func (Genre) CollectionName() string {
	return "genres"
}
