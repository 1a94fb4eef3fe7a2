package services

import (
	"context"
	"errors"

	"cinema-backend/internal/models"
	"cinema-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GenreService interface {
	GetAll(ctx context.Context, searchTerm string) ([]models.Genre, error)
	GetCollections(ctx context.Context) ([]models.Collection, error)
	BySlug(ctx context.Context, slug string) (*models.Genre, error)
	ByID(ctx context.Context, id primitive.ObjectID) (*models.Genre, error)
	Create(ctx context.Context) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, input GenreInput) (*models.Genre, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Genre, error)
}

type genreService struct {
	repo      repository.GenreRepository
	movieRepo repository.MovieRepository
	logger    *logrus.Logger
}

func NewGenreService(repo repository.GenreRepository, movieRepo repository.MovieRepository, logger *logrus.Logger) GenreService {
	return &genreService{
		repo:      repo,
		movieRepo: movieRepo,
		logger:    logger,
	}
}

func (s *genreService) GetAll(ctx context.Context, searchTerm string) ([]models.Genre, error) {
	return s.repo.FindAll(ctx, searchTerm)
}

// GetCollections derives the genre collection cards: each genre paired with
// the big poster of its most recently created movie. Genres without movies
// are left out entirely.
func (s *genreService) GetCollections(ctx context.Context) ([]models.Collection, error) {
	genres, err := s.repo.FindAll(ctx, "")
	if err != nil {
		return nil, err
	}

	collections := make([]models.Collection, 0, len(genres))
	for _, genre := range genres {
		movie, err := s.movieRepo.FindNewestByGenre(ctx, genre.ID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, err
		}

		collections = append(collections, models.Collection{
			ID:    genre.ID,
			Title: genre.Name,
			Slug:  genre.Slug,
			Image: movie.BigPoster,
		})
	}
	return collections, nil
}

func (s *genreService) BySlug(ctx context.Context, slug string) (*models.Genre, error) {
	return s.repo.FindBySlug(ctx, slug)
}

func (s *genreService) ByID(ctx context.Context, id primitive.ObjectID) (*models.Genre, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *genreService) Create(ctx context.Context) (primitive.ObjectID, error) {
	id, err := s.repo.Create(ctx)
	if err != nil {
		return primitive.NilObjectID, err
	}

	s.logger.WithField("id", id.Hex()).Info("Genre placeholder created")
	return id, nil
}

func (s *genreService) Update(ctx context.Context, id primitive.ObjectID, input GenreInput) (*models.Genre, error) {
	return s.repo.Update(ctx, id, bson.M{
		"name":        input.Name,
		"slug":        input.Slug,
		"description": input.Description,
		"icon":        input.Icon,
	})
}

func (s *genreService) Delete(ctx context.Context, id primitive.ObjectID) (*models.Genre, error) {
	return s.repo.Delete(ctx, id)
}
