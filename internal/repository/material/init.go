package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates the secondary indexes used by catalog lookups.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection) error {
	const op = "repository.EnsureIndexes"

	models := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetName("name_1"),
		},
		{
			Keys:    bson.D{{Key: "technology", Value: 1}},
			Options: options.Index().SetName("technology_1"),
		},
	}

	if _, err := coll.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
