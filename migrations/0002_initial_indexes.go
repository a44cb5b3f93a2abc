package migrations

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func init() {
	AddMigration(2, "initial_indexes", upInitialIndexes, downInitialIndexes)
}

type indexToCreate struct {
	collection string
	name       string
	model      mongo.IndexModel
}

var indexesToCreate = []indexToCreate{
	{
		collection: "members",
		name:       "members_email_unique",
		model: mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("members_email_unique").SetUnique(true),
		},
	},
	{
		collection: "news",
		name:       "news_date_desc",
		model: mongo.IndexModel{
			Keys:    bson.D{{Key: "date", Value: -1}},
			Options: options.Index().SetName("news_date_desc"),
		},
	},
	{
		collection: "committee",
		name:       "committee_order",
		model: mongo.IndexModel{
			Keys:    bson.D{{Key: "orderIndex", Value: 1}},
			Options: options.Index().SetName("committee_order"),
		},
	},
	{
		collection: "adhoc_committee",
		name:       "adhoc_committee_order",
		model: mongo.IndexModel{
			Keys:    bson.D{{Key: "orderIndex", Value: 1}},
			Options: options.Index().SetName("adhoc_committee_order"),
		},
	},
	{
		collection: "iftar_registrations",
		name:       "registrations_created_desc",
		model: mongo.IndexModel{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("registrations_created_desc"),
		},
	},
	{
		collection: "donations",
		name:       "donations_session_unique",
		model: mongo.IndexModel{
			Keys:    bson.D{{Key: "sessionId", Value: 1}},
			Options: options.Index().SetName("donations_session_unique").SetUnique(true),
		},
	},
}

func upInitialIndexes(ctx context.Context, database *mongo.Database) error {
	for _, idx := range indexesToCreate {
		if _, err := database.Collection(idx.collection).Indexes().CreateOne(ctx, idx.model); err != nil {
			return fmt.Errorf("failed to create index %s on %s: %w", idx.name, idx.collection, err)
		}
	}
	return nil
}

func downInitialIndexes(ctx context.Context, database *mongo.Database) error {
	for _, idx := range indexesToCreate {
		if _, err := database.Collection(idx.collection).Indexes().DropOne(ctx, idx.name); err != nil {
			return fmt.Errorf("failed to drop index %s on %s: %w", idx.name, idx.collection, err)
		}
	}
	return nil
}
