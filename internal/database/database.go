package database

import (
	"context"
	"fmt"
	"time"

	"cinema-backend/internal/config"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Database struct {
	client *mongo.Client
	db     *mongo.Database
	config config.MongoConfig
}

func Connect(cfg config.MongoConfig) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout))
	if err != nil {
		logrus.WithError(err).Error("Failed to connect to MongoDB")
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logrus.WithError(err).Error("Failed to ping MongoDB")
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logrus.Info("MongoDB connection established successfully")

	database := &Database{
		client: client,
		db:     client.Database(cfg.Database),
		config: cfg,
	}

	if err := database.ensureIndexes(ctx); err != nil {
		logrus.WithError(err).Error("Failed to create indexes")
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	return database, nil
}

func (d *Database) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

func (d *Database) GetQueryTimeout() time.Duration {
	return d.config.QueryTimeout
}

func (d *Database) HealthCheck() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return d.client.Ping(ctx, readpref.Primary())
}

func (d *Database) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return d.client.Disconnect(ctx)
}

func (d *Database) ensureIndexes(ctx context.Context) error {
	logrus.Info("Ensuring MongoDB indexes...")

	// Slug uniqueness is enforced only on non-empty slugs: the admin create
	// flow inserts blank placeholder documents that are populated later.
	uniqueSlug := mongo.IndexModel{
		Keys: bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"slug": bson.M{"$gt": ""}}),
	}

	indexes := map[string][]mongo.IndexModel{
		"movies": {
			uniqueSlug,
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "genres", Value: 1}}},
			{Keys: bson.D{{Key: "actors", Value: 1}}},
			{Keys: bson.D{{Key: "countOpened", Value: -1}}},
		},
		"actors": {
			uniqueSlug,
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
		"genres": {
			uniqueSlug,
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
		"ratings": {
			{Keys: bson.D{{Key: "movieId", Value: 1}, {Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		"users": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}

	for collection, models := range indexes {
		if _, err := d.db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("collection %s: %w", collection, err)
		}
	}

	logrus.Info("MongoDB indexes ensured successfully")
	return nil
}
