package persistence

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// EnsureIndexes creates the indexes the service relies on. The unique index on
// users.email is load-bearing: it closes the window between the registration
// pre-check and the insert, so a concurrent duplicate registration fails at the
// store instead of creating a second identity.
func EnsureIndexes(ctx context.Context, db *Mongo, logger *zap.Logger) error {
	specs := []struct {
		collection string
		model      mongo.IndexModel
	}{
		{CollectionUsers, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{CollectionUsers, mongo.IndexModel{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{CollectionTrips, mongo.IndexModel{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{CollectionBookings, mongo.IndexModel{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{CollectionBookings, mongo.IndexModel{
			Keys: bson.D{{Key: "user_id", Value: 1}},
		}},
		{CollectionContacts, mongo.IndexModel{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
	}

	for _, spec := range specs {
		if _, err := db.Collection(spec.collection).Indexes().CreateOne(ctx, spec.model); err != nil {
			return fmt.Errorf("create index on %s: %w", spec.collection, err)
		}
	}

	logger.Info("indexes ensured", zap.Int("count", len(specs)))
	return nil
}
