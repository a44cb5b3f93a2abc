package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewsItems returns every news item, newest first.
func (ms *MongoStorage) NewsItems() ([]NewsItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := ms.news.Find(ctx, emptyFilter, sortedFindOptions("date", false))
	if err != nil {
		return nil, err
	}
	items := []NewsItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// NewsItem returns the news item with the given ID, or ErrNotFound.
func (ms *MongoStorage) NewsItem(id primitive.ObjectID) (*NewsItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result := ms.news.FindOne(ctx, bson.M{"_id": id})
	item := &NewsItem{}
	if err := result.Decode(item); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

// SetNewsItem creates or fully overwrites a news item. New items without a
// date get the current time.
func (ms *MongoStorage) SetNewsItem(item *NewsItem) (primitive.ObjectID, error) {
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if item.Date.IsZero() {
		item.Date = time.Now()
	}
	if item.ID.IsZero() {
		result, err := ms.news.InsertOne(ctx, item)
		if err != nil {
			return primitive.NilObjectID, err
		}
		item.ID = result.InsertedID.(primitive.ObjectID)
		return item.ID, nil
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := ms.news.ReplaceOne(ctx, bson.M{"_id": item.ID}, item, opts); err != nil {
		return primitive.NilObjectID, err
	}
	return item.ID, nil
}

// DelNewsItem deletes the news item with the given ID, or returns ErrNotFound.
func (ms *MongoStorage) DelNewsItem(id primitive.ObjectID) error {
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := ms.news.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
