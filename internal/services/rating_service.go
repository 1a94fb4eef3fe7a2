package services

import (
	"context"
	"math"

	"cinema-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RatingService interface {
	SetRating(ctx context.Context, userID, movieID primitive.ObjectID, value float64) (float64, error)
	GetByUser(ctx context.Context, userID, movieID primitive.ObjectID) (float64, error)
}

type ratingService struct {
	repo      repository.RatingRepository
	movieRepo repository.MovieRepository
	logger    *logrus.Logger
}

func NewRatingService(repo repository.RatingRepository, movieRepo repository.MovieRepository, logger *logrus.Logger) RatingService {
	return &ratingService{
		repo:      repo,
		movieRepo: movieRepo,
		logger:    logger,
	}
}

// SetRating upserts the user's rating entry, recomputes the movie's average
// across all entries and persists it. The recompute step reads all entries
// and writes the mean back, so two concurrent raters can briefly race; the
// last writer wins and the next rating converges the average again.
func (s *ratingService) SetRating(ctx context.Context, userID, movieID primitive.ObjectID, value float64) (float64, error) {
	if _, err := s.movieRepo.FindByID(ctx, movieID); err != nil {
		return 0, err
	}

	if err := s.repo.Upsert(ctx, movieID, userID, value); err != nil {
		return 0, err
	}

	average, err := s.repo.AverageForMovie(ctx, movieID)
	if err != nil {
		return 0, err
	}
	average = roundToOneDecimal(average)

	if err := s.movieRepo.UpdateRating(ctx, movieID, average); err != nil {
		return 0, err
	}

	s.logger.WithFields(logrus.Fields{
		"movieId": movieID.Hex(),
		"userId":  userID.Hex(),
		"average": average,
	}).Info("Movie rating updated")

	return average, nil
}

func (s *ratingService) GetByUser(ctx context.Context, userID, movieID primitive.ObjectID) (float64, error) {
	return s.repo.FindValue(ctx, movieID, userID)
}

func roundToOneDecimal(value float64) float64 {
	return math.Round(value*10) / 10
}
