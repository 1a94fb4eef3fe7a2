package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultRating is assigned to a movie until the first user rating arrives.
const DefaultRating = 4.0

// Parameters holds the descriptive facts shown on a movie page.
type Parameters struct {
	Year     int    `bson:"year" json:"year" example:"1999"`
	Duration int    `bson:"duration" json:"duration" example:"139"`
	Country  string `bson:"country" json:"country" example:"USA"`
}

// Movie is the stored document. Genre and actor references are kept as ids
// and expanded at query time.
type Movie struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title          string               `bson:"title" json:"title" example:"Fight Club"`
	Slug           string               `bson:"slug" json:"slug" example:"fight-club"`
	Poster         string               `bson:"poster" json:"poster"`
	BigPoster      string               `bson:"bigPoster" json:"bigPoster"`
	VideoURL       string               `bson:"videoUrl" json:"videoUrl"`
	Parameters     Parameters           `bson:"parameters" json:"parameters"`
	Rating         float64              `bson:"rating" json:"rating" example:"4.0"`
	CountOpened    int64                `bson:"countOpened" json:"countOpened" example:"0"`
	GenreIDs       []primitive.ObjectID `bson:"genres" json:"genres"`
	ActorIDs       []primitive.ObjectID `bson:"actors" json:"actors"`
	IsSendTelegram bool                 `bson:"isSendTelegram" json:"isSendTelegram"`
	CreatedAt      time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// MovieDetails is the read model produced by the $lookup pipelines: the same
// document with genre and actor references expanded into full sub-documents.
type MovieDetails struct {
	ID             primitive.ObjectID `bson:"_id" json:"id"`
	Title          string             `bson:"title" json:"title"`
	Slug           string             `bson:"slug" json:"slug"`
	Poster         string             `bson:"poster" json:"poster"`
	BigPoster      string             `bson:"bigPoster" json:"bigPoster"`
	VideoURL       string             `bson:"videoUrl" json:"videoUrl"`
	Parameters     Parameters         `bson:"parameters" json:"parameters"`
	Rating         float64            `bson:"rating" json:"rating"`
	CountOpened    int64              `bson:"countOpened" json:"countOpened"`
	Genres         []Genre            `bson:"genres" json:"genres"`
	Actors         []Actor            `bson:"actors" json:"actors"`
	IsSendTelegram bool               `bson:"isSendTelegram" json:"isSendTelegram"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (Movie) CollectionName() string {
	return "movies"
}
