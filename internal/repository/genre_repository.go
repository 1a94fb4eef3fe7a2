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

type GenreRepository interface {
	Create(ctx context.Context) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Genre, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Genre, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Genre, error)
	FindBySlug(ctx context.Context, slug string) (*models.Genre, error)
	FindAll(ctx context.Context, searchTerm string) ([]models.Genre, error)
}

type genreRepository struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func NewGenreRepository(db *database.Database) GenreRepository {
	return &genreRepository{
		collection: db.Collection(models.Genre{}.CollectionName()),
		timeout:    db.GetQueryTimeout(),
	}
}

func (r *genreRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *genreRepository) Create(ctx context.Context) (primitive.ObjectID, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	now := time.Now().UTC()
	genre := models.Genre{
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := r.collection.InsertOne(ctx, genre)
	if err != nil {
		return primitive.NilObjectID, translateWriteError(err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *genreRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Genre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	set["updatedAt"] = time.Now().UTC()

	var genre models.Genre
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&genre)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, translateWriteError(err)
	}
	return &genre, nil
}

func (r *genreRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Genre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var genre models.Genre
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&genre)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &genre, nil
}

func (r *genreRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Genre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var genre models.Genre
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&genre)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &genre, nil
}

func (r *genreRepository) FindBySlug(ctx context.Context, slug string) (*models.Genre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var genre models.Genre
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&genre)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &genre, nil
}

func (r *genreRepository) FindAll(ctx context.Context, searchTerm string) ([]models.Genre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	filter := searchFilter(searchTerm, "name", "slug", "description")

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(sortByNewest()))
	if err != nil {
		return nil, err
	}

	genres := make([]models.Genre, 0)
	if err := cursor.All(ctx, &genres); err != nil {
		return nil, err
	}
	return genres, nil
}
