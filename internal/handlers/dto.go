package handlers

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ActorDto struct {
	Name  string `json:"name" validate:"required"`
	Slug  string `json:"slug" validate:"required"`
	Photo string `json:"photo"`
}

type GenreDto struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type ParametersDto struct {
	Year     int    `json:"year" validate:"gte=0"`
	Duration int    `json:"duration" validate:"gte=0"`
	Country  string `json:"country"`
}

type UpdateMovieDto struct {
	Title      string        `json:"title" validate:"required"`
	Slug       string        `json:"slug" validate:"required"`
	Poster     string        `json:"poster"`
	BigPoster  string        `json:"bigPoster"`
	VideoURL   string        `json:"videoUrl"`
	Parameters ParametersDto `json:"parameters"`
	Genres     []string      `json:"genres" validate:"dive,mongodb"`
	Actors     []string      `json:"actors" validate:"dive,mongodb"`
}

type ByGenresDto struct {
	GenreIDs []string `json:"genreIds" validate:"required,min=1,dive,mongodb"`
}

type SetRatingDto struct {
	MovieID string  `json:"movieId" validate:"required,mongodb"`
	Value   float64 `json:"value" validate:"required,gte=1,lte=5"`
}

type AuthDto struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type RefreshTokenDto struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

func toObjectIDs(hexIDs []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexIDs))
	for _, hexID := range hexIDs {
		id, err := primitive.ObjectIDFromHex(hexID)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
