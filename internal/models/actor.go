package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Actor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name" example:"Edward Norton"`
	Slug      string             `bson:"slug" json:"slug" example:"edward-norton"`
	Photo     string             `bson:"photo" json:"photo"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ActorListItem is an actor with the derived number of movies referencing it.
type ActorListItem struct {
	Actor       `bson:",inline"`
	CountMovies int64 `bson:"countMovies" json:"countMovies" example:"12"`
}

func (Actor) CollectionName() string {
	return "actors"
}
