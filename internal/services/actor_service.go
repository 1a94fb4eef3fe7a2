package services

import (
	"context"

	"cinema-backend/internal/models"
	"cinema-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ActorService interface {
	GetAll(ctx context.Context, searchTerm string) ([]models.ActorListItem, error)
	BySlug(ctx context.Context, slug string) (*models.Actor, error)
	ByID(ctx context.Context, id primitive.ObjectID) (*models.Actor, error)
	Create(ctx context.Context) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, input ActorInput) (*models.Actor, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Actor, error)
}

type actorService struct {
	repo   repository.ActorRepository
	logger *logrus.Logger
}

func NewActorService(repo repository.ActorRepository, logger *logrus.Logger) ActorService {
	return &actorService{
		repo:   repo,
		logger: logger,
	}
}

func (s *actorService) GetAll(ctx context.Context, searchTerm string) ([]models.ActorListItem, error) {
	return s.repo.FindAll(ctx, searchTerm)
}

func (s *actorService) BySlug(ctx context.Context, slug string) (*models.Actor, error) {
	return s.repo.FindBySlug(ctx, slug)
}

func (s *actorService) ByID(ctx context.Context, id primitive.ObjectID) (*models.Actor, error) {
	return s.repo.FindByID(ctx, id)
}

// Create inserts a blank placeholder and returns its id; the admin UI edits
// the record through Update afterwards.
func (s *actorService) Create(ctx context.Context) (primitive.ObjectID, error) {
	id, err := s.repo.Create(ctx)
	if err != nil {
		return primitive.NilObjectID, err
	}

	s.logger.WithField("id", id.Hex()).Info("Actor placeholder created")
	return id, nil
}

func (s *actorService) Update(ctx context.Context, id primitive.ObjectID, input ActorInput) (*models.Actor, error) {
	return s.repo.Update(ctx, id, bson.M{
		"name":  input.Name,
		"slug":  input.Slug,
		"photo": input.Photo,
	})
}

func (s *actorService) Delete(ctx context.Context, id primitive.ObjectID) (*models.Actor, error) {
	return s.repo.Delete(ctx, id)
}
