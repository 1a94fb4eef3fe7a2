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

type RatingRepository interface {
	Upsert(ctx context.Context, movieID, userID primitive.ObjectID, value float64) error
	AverageForMovie(ctx context.Context, movieID primitive.ObjectID) (float64, error)
	FindValue(ctx context.Context, movieID, userID primitive.ObjectID) (float64, error)
}

type ratingRepository struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func NewRatingRepository(db *database.Database) RatingRepository {
	return &ratingRepository{
		collection: db.Collection(models.Rating{}.CollectionName()),
		timeout:    db.GetQueryTimeout(),
	}
}

func (r *ratingRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// Upsert stores the user's rating for the movie, overwriting any previous
// value. The unique (movieId, userId) index guarantees a single document per
// pair even under concurrent writers.
func (r *ratingRepository) Upsert(ctx context.Context, movieID, userID primitive.ObjectID, value float64) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	now := time.Now().UTC()
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"movieId": movieID, "userId": userID},
		bson.M{
			"$set":         bson.M{"value": value, "updatedAt": now},
			"$setOnInsert": bson.M{"createdAt": now},
		},
		options.Update().SetUpsert(true),
	)
	return translateWriteError(err)
}

// AverageForMovie computes the arithmetic mean of all rating entries for the
// movie. A movie with no entries yields the default rating.
func (r *ratingRepository) AverageForMovie(ctx context.Context, movieID primitive.ObjectID) (float64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"movieId": movieID}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"average": bson.M{"$avg": "$value"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}

	var results []struct {
		Average float64 `bson:"average"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return models.DefaultRating, nil
	}
	return results[0].Average, nil
}

// FindValue returns the user's stored rating for the movie, or 0 when the
// user has not rated it.
func (r *ratingRepository) FindValue(ctx context.Context, movieID, userID primitive.ObjectID) (float64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rating models.Rating
	err := r.collection.FindOne(ctx, bson.M{"movieId": movieID, "userId": userID}).Decode(&rating)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, nil
		}
		return 0, err
	}
	return rating.Value, nil
}
