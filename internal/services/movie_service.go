package services

import (
	"context"
	"strings"

	"cinema-backend/internal/models"
	"cinema-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notifier publishes a movie announcement to an external chat destination.
// Delivery is best-effort: failures are logged, never propagated.
type Notifier interface {
	Notify(ctx context.Context, movie *models.Movie) error
}

type MovieService interface {
	GetAll(ctx context.Context, searchTerm string) ([]models.MovieDetails, error)
	BySlug(ctx context.Context, slug string) (*models.MovieDetails, error)
	ByID(ctx context.Context, id primitive.ObjectID) (*models.Movie, error)
	ByActor(ctx context.Context, actorID primitive.ObjectID) (*models.Movie, error)
	ByGenres(ctx context.Context, genreIDs []primitive.ObjectID) ([]models.Movie, error)
	GetMostPopular(ctx context.Context) ([]models.MovieDetails, error)
	IncrementCountOpened(ctx context.Context, slug string) (*models.Movie, error)
	Create(ctx context.Context) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, input MovieInput) (*models.Movie, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Movie, error)
}

type movieService struct {
	repo         repository.MovieRepository
	notifier     Notifier
	logger       *logrus.Logger
	minioService *MinIOService
	bucketName   string
}

func NewMovieService(repo repository.MovieRepository, notifier Notifier, logger *logrus.Logger) MovieService {
	return &movieService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *movieService) SetMinIOService(minioSvc *MinIOService, bucketName string) {
	s.minioService = minioSvc
	s.bucketName = bucketName
}

func (s *movieService) GetAll(ctx context.Context, searchTerm string) ([]models.MovieDetails, error) {
	return s.repo.FindAll(ctx, searchTerm)
}

func (s *movieService) BySlug(ctx context.Context, slug string) (*models.MovieDetails, error) {
	return s.repo.FindBySlug(ctx, slug)
}

func (s *movieService) ByID(ctx context.Context, id primitive.ObjectID) (*models.Movie, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *movieService) ByActor(ctx context.Context, actorID primitive.ObjectID) (*models.Movie, error) {
	return s.repo.FindByActor(ctx, actorID)
}

func (s *movieService) ByGenres(ctx context.Context, genreIDs []primitive.ObjectID) ([]models.Movie, error) {
	return s.repo.FindByGenres(ctx, genreIDs)
}

func (s *movieService) GetMostPopular(ctx context.Context) ([]models.MovieDetails, error) {
	return s.repo.FindMostPopular(ctx)
}

// IncrementCountOpened bumps the view counter with a single atomic $inc, so
// concurrent opens never lose an increment.
func (s *movieService) IncrementCountOpened(ctx context.Context, slug string) (*models.Movie, error) {
	return s.repo.IncrementCountOpened(ctx, slug)
}

// Create inserts a blank placeholder and returns its id; the admin UI edits
// the record through Update afterwards.
func (s *movieService) Create(ctx context.Context) (primitive.ObjectID, error) {
	id, err := s.repo.Create(ctx)
	if err != nil {
		return primitive.NilObjectID, err
	}

	s.logger.WithField("id", id.Hex()).Info("Movie placeholder created")
	return id, nil
}

// Update replaces the editable fields of the movie. The first update of a
// movie that has not been announced yet also fires the chat notification and
// marks the stored flag, so the announcement happens at most once per movie
// no matter what the patch carries.
func (s *movieService) Update(ctx context.Context, id primitive.ObjectID, input MovieInput) (*models.Movie, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{
		"title":      input.Title,
		"slug":       input.Slug,
		"poster":     input.Poster,
		"bigPoster":  input.BigPoster,
		"videoUrl":   input.VideoURL,
		"parameters": input.Parameters,
		"genres":     input.GenreIDs,
		"actors":     input.ActorIDs,
	}

	if !existing.IsSendTelegram {
		announced := *existing
		announced.Title = input.Title
		announced.Slug = input.Slug
		announced.BigPoster = input.BigPoster

		if err := s.notifier.Notify(ctx, &announced); err != nil {
			s.logger.WithError(err).WithField("id", id.Hex()).Warn("Failed to send movie notification")
		}
		set["isSendTelegram"] = true
	}

	return s.repo.Update(ctx, id, set)
}

func (s *movieService) Delete(ctx context.Context, id primitive.ObjectID) (*models.Movie, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.removeStoredImage(deleted.Poster)
	s.removeStoredImage(deleted.BigPoster)

	return deleted, nil
}

// removeStoredImage deletes a poster from object storage when the URL points
// into our bucket. Best-effort; external URLs are left alone.
func (s *movieService) removeStoredImage(url string) {
	if s.minioService == nil || url == "" {
		return
	}
	if !strings.Contains(url, "http") || !strings.Contains(url, s.bucketName) {
		return
	}

	parts := strings.Split(url, "/")
	filename := parts[len(parts)-1]
	if idx := strings.Index(filename, "?"); idx != -1 {
		filename = filename[:idx]
	}

	if err := s.minioService.DeleteFile(filename); err != nil {
		s.logger.WithError(err).Warn("Failed to delete poster from MinIO")
	}
}
