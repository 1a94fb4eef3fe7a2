package services

import (
	"cinema-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Validated input accepted by the update operations. Handlers convert the
// wire DTOs into these before calling a service.

type ActorInput struct {
	Name  string
	Slug  string
	Photo string
}

type GenreInput struct {
	Name        string
	Slug        string
	Description string
	Icon        string
}

type MovieInput struct {
	Title      string
	Slug       string
	Poster     string
	BigPoster  string
	VideoURL   string
	Parameters models.Parameters
	GenreIDs   []primitive.ObjectID
	ActorIDs   []primitive.ObjectID
}
