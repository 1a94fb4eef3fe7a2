package repository

import (
	"context"
	"errors"
	"time"

	"cinema-backend/internal/database"
	"cinema-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ActorRepository interface {
	Create(ctx context.Context) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Actor, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Actor, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Actor, error)
	FindBySlug(ctx context.Context, slug string) (*models.Actor, error)
	FindAll(ctx context.Context, searchTerm string) ([]models.ActorListItem, error)
}

type actorRepository struct {
	collection *mongo.Collection
	movies     *mongo.Collection
	timeout    time.Duration
}

func NewActorRepository(db *database.Database) ActorRepository {
	return &actorRepository{
		collection: db.Collection(models.Actor{}.CollectionName()),
		movies:     db.Collection(models.Movie{}.CollectionName()),
		timeout:    db.GetQueryTimeout(),
	}
}

func (r *actorRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *actorRepository) Create(ctx context.Context) (primitive.ObjectID, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	now := time.Now().UTC()
	actor := models.Actor{
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := r.collection.InsertOne(ctx, actor)
	if err != nil {
		return primitive.NilObjectID, translateWriteError(err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *actorRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Actor, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	set["updatedAt"] = time.Now().UTC()

	var actor models.Actor
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&actor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, translateWriteError(err)
	}
	return &actor, nil
}

func (r *actorRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Actor, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var actor models.Actor
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&actor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &actor, nil
}

func (r *actorRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Actor, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var actor models.Actor
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&actor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &actor, nil
}

func (r *actorRepository) FindBySlug(ctx context.Context, slug string) (*models.Actor, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var actor models.Actor
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&actor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &actor, nil
}

// FindAll joins each actor against the movie collection to derive countMovies,
// then drops the joined documents from the projection.
func (r *actorRepository) FindAll(ctx context.Context, searchTerm string) ([]models.ActorListItem, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: searchFilter(searchTerm, "name", "slug")}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         r.movies.Name(),
			"localField":   "_id",
			"foreignField": "actors",
			"as":           "movies",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"countMovies": bson.M{"$size": "$movies"},
		}}},
		bson.D{{Key: "$project", Value: bson.M{"movies": 0}}},
		bson.D{{Key: "$sort", Value: sortByNewest()}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	actors := make([]models.ActorListItem, 0)
	if err := cursor.All(ctx, &actors); err != nil {
		return nil, err
	}
	return actors, nil
}
