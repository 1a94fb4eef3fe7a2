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

type MovieRepository interface {
	// CRUD operations
	Create(ctx context.Context) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Movie, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Movie, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Movie, error)
	FindAll(ctx context.Context, searchTerm string) ([]models.MovieDetails, error)
	FindBySlug(ctx context.Context, slug string) (*models.MovieDetails, error)

	// Catalog queries
	FindByGenres(ctx context.Context, genreIDs []primitive.ObjectID) ([]models.Movie, error)
	FindByActor(ctx context.Context, actorID primitive.ObjectID) (*models.Movie, error)
	FindMostPopular(ctx context.Context) ([]models.MovieDetails, error)
	FindNewestByGenre(ctx context.Context, genreID primitive.ObjectID) (*models.Movie, error)

	// Atomic field updates
	IncrementCountOpened(ctx context.Context, slug string) (*models.Movie, error)
	UpdateRating(ctx context.Context, id primitive.ObjectID, rating float64) error
}

type movieRepository struct {
	collection *mongo.Collection
	genres     *mongo.Collection
	actors     *mongo.Collection
	timeout    time.Duration
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{
		collection: db.Collection(models.Movie{}.CollectionName()),
		genres:     db.Collection(models.Genre{}.CollectionName()),
		actors:     db.Collection(models.Actor{}.CollectionName()),
		timeout:    db.GetQueryTimeout(),
	}
}

func (r *movieRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// lookupStages expands the genre and actor id references into full
// sub-documents.
func (r *movieRepository) lookupStages() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         r.genres.Name(),
			"localField":   "genres",
			"foreignField": "_id",
			"as":           "genres",
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         r.actors.Name(),
			"localField":   "actors",
			"foreignField": "_id",
			"as":           "actors",
		}}},
	}
}

func (r *movieRepository) Create(ctx context.Context) (primitive.ObjectID, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	now := time.Now().UTC()
	movie := models.Movie{
		Rating:    models.DefaultRating,
		GenreIDs:  []primitive.ObjectID{},
		ActorIDs:  []primitive.ObjectID{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := r.collection.InsertOne(ctx, movie)
	if err != nil {
		return primitive.NilObjectID, translateWriteError(err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *movieRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	set["updatedAt"] = time.Now().UTC()

	var movie models.Movie
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&movie)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, translateWriteError(err)
	}
	return &movie, nil
}

func (r *movieRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&movie)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&movie)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context, searchTerm string) ([]models.MovieDetails, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: searchFilter(searchTerm, "title", "slug")}},
	}
	pipeline = append(pipeline, r.lookupStages()...)
	pipeline = append(pipeline, bson.D{{Key: "$sort", Value: sortByNewest()}})

	return r.aggregateDetails(ctx, pipeline)
}

func (r *movieRepository) FindBySlug(ctx context.Context, slug string) (*models.MovieDetails, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"slug": slug}}},
		bson.D{{Key: "$limit", Value: 1}},
	}
	pipeline = append(pipeline, r.lookupStages()...)

	movies, err := r.aggregateDetails(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, ErrNotFound
	}
	return &movies[0], nil
}

func (r *movieRepository) FindByGenres(ctx context.Context, genreIDs []primitive.ObjectID) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	cursor, err := r.collection.Find(ctx,
		bson.M{"genres": bson.M{"$in": genreIDs}},
		options.Find().SetSort(sortByNewest()),
	)
	if err != nil {
		return nil, err
	}

	movies := make([]models.Movie, 0)
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *movieRepository) FindByActor(ctx context.Context, actorID primitive.ObjectID) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.collection.FindOne(ctx, bson.M{"actors": actorID}).Decode(&movie)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FindMostPopular(ctx context.Context) ([]models.MovieDetails, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"countOpened": bson.M{"$gt": 0}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "countOpened", Value: -1}}}},
	}
	pipeline = append(pipeline, r.lookupStages()...)

	return r.aggregateDetails(ctx, pipeline)
}

// FindNewestByGenre returns the most recently created movie referencing the
// genre, or ErrNotFound when the genre has no movies.
func (r *movieRepository) FindNewestByGenre(ctx context.Context, genreID primitive.ObjectID) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.collection.FindOne(ctx,
		bson.M{"genres": genreID},
		options.FindOne().SetSort(sortByNewest()),
	).Decode(&movie)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) IncrementCountOpened(ctx context.Context, slug string) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"slug": slug},
		bson.M{"$inc": bson.M{"countOpened": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&movie)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) UpdateRating(ctx context.Context, id primitive.ObjectID, rating float64) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"rating":    rating,
		"updatedAt": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *movieRepository) aggregateDetails(ctx context.Context, pipeline mongo.Pipeline) ([]models.MovieDetails, error) {
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	movies := make([]models.MovieDetails, 0)
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}
