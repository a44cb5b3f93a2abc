// Package db provides the MongoDB storage layer for the society backend. It
// holds the members, news, committee, ad-hoc committee, iftar registrations,
// donations, site settings and uploaded objects collections.
package db

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.vocdoni.io/dvote/log"
)

const defaultTimeout = 10 * time.Second

// MongoStorage uses an external MongoDB service for storing the site content.
type MongoStorage struct {
	DBClient *mongo.Client
	database string
	keysLock sync.RWMutex

	members        *mongo.Collection
	news           *mongo.Collection
	committee      *mongo.Collection
	adhocCommittee *mongo.Collection
	registrations  *mongo.Collection
	settings       *mongo.Collection
	donations      *mongo.Collection
	objects        *mongo.Collection
	migrations     *mongo.Collection
}

// New connects to the MongoDB server, pings it and runs the pending schema
// migrations. If the SOCIETY_MONGO_RESET_DB environment variable is set, the
// database is dropped and recreated from scratch.
func New(url, database string) (*MongoStorage, error) {
	ms := &MongoStorage{}
	if url == "" {
		return nil, fmt.Errorf("mongo URL is not defined")
	}
	if database == "" {
		return nil, fmt.Errorf("mongo database is not defined")
	}
	log.Infow("connecting to mongodb", "url", url, "database", database)
	// preparing connection
	opts := options.Client()
	opts.ApplyURI(url)
	opts.SetMaxConnecting(200)
	timeout := time.Second * 10
	opts.ConnectTimeout = &timeout
	// create a new client with the connection options
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to mongodb: %w", err)
	}
	// check if the connection is successful
	ctx, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("cannot connect to mongodb: %w", err)
	}
	ms.DBClient = client
	ms.database = database
	ms.initCollections()
	// if the reset flag is enabled drop the database and recreate it from the
	// migrations, else just apply the pending migrations
	if reset := os.Getenv("SOCIETY_MONGO_RESET_DB"); reset != "" {
		if err := ms.Reset(); err != nil {
			return nil, err
		}
	} else if err := ms.RunMigrationsUp(); err != nil {
		return nil, err
	}
	return ms, nil
}

// Close disconnects the client from the MongoDB server.
func (ms *MongoStorage) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := ms.DBClient.Disconnect(ctx); err != nil {
		log.Warn(err)
	}
}

// Reset drops the whole database and recreates the collections and indexes
// from the migration registry.
func (ms *MongoStorage) Reset() error {
	log.Infof("resetting database")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := ms.DBClient.Database(ms.database).Drop(ctx); err != nil {
		return err
	}
	return ms.RunMigrationsUp()
}

// initCollections sets the collection handles. The collections themselves are
// created by the migrations.
func (ms *MongoStorage) initCollections() {
	database := ms.DBClient.Database(ms.database)
	ms.members = database.Collection("members")
	ms.news = database.Collection("news")
	ms.committee = database.Collection("committee")
	ms.adhocCommittee = database.Collection("adhoc_committee")
	ms.registrations = database.Collection("iftar_registrations")
	ms.settings = database.Collection("settings")
	ms.donations = database.Collection("donations")
	ms.objects = database.Collection("objects")
	ms.migrations = database.Collection("migrations")
}
