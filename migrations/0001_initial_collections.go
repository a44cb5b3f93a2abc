package migrations

import (
	"context"
	"fmt"
	"slices"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func init() {
	AddMigration(1, "initial_collections", upInitialCollections, downInitialCollections)
}

var collectionsToCreate = []string{
	"members",
	"news",
	"committee",
	"adhoc_committee",
	"iftar_registrations",
	"settings",
	"donations",
	"objects",
	"migrations",
}

var collectionsValidators = map[string]bson.M{
	"members":             membersCollectionValidator,
	"iftar_registrations": registrationsCollectionValidator,
}

var membersCollectionValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"_id", "email", "password", "role"},
		"properties": bson.M{
			"email": bson.M{
				"bsonType":    "string",
				"description": "must be a string and is required",
			},
			"password": bson.M{
				"bsonType":    "string",
				"description": "must be a string and is required",
			},
			"role": bson.M{
				"enum":        []string{"member", "admin"},
				"description": "must be one of the defined member roles",
			},
		},
	},
}

var registrationsCollectionValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"name", "phone", "status"},
		"properties": bson.M{
			"status": bson.M{
				"enum":        []string{"pending", "accepted", "rejected"},
				"description": "must be one of the defined workflow states",
			},
			"paymentMethod": bson.M{
				"enum":        []string{"bkash", "nagad", "cash", ""},
				"description": "must be one of the accepted payment channels",
			},
		},
	},
}

func upInitialCollections(ctx context.Context, database *mongo.Database) error {
	currentCollections, err := database.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}
	for _, name := range collectionsToCreate {
		if slices.Contains(currentCollections, name) {
			// keep the validator of existing collections up to date
			if validator, ok := collectionsValidators[name]; ok {
				err := database.RunCommand(ctx, bson.D{
					{Key: "collMod", Value: name},
					{Key: "validator", Value: validator},
				}).Err()
				if err != nil {
					return fmt.Errorf("failed to update validator of %s: %w", name, err)
				}
			}
			continue
		}
		opts := options.CreateCollection()
		if validator, ok := collectionsValidators[name]; ok {
			opts = opts.SetValidator(validator).SetValidationLevel("strict").SetValidationAction("error")
		}
		if err := database.CreateCollection(ctx, name, opts); err != nil {
			return fmt.Errorf("failed to create collection %s: %w", name, err)
		}
	}
	return nil
}

func downInitialCollections(ctx context.Context, database *mongo.Database) error {
	for _, name := range collectionsToCreate {
		if name == "migrations" {
			continue
		}
		if err := database.Collection(name).Drop(ctx); err != nil {
			return fmt.Errorf("failed to drop collection %s: %w", name, err)
		}
	}
	return nil
}
