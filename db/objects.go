package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Object returns the stored binary object with the given ID, or ErrNotFound.
func (ms *MongoStorage) Object(id string) (*Object, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result := ms.objects.FindOne(ctx, bson.M{"_id": id})
	object := &Object{}
	if err := result.Decode(object); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return object, nil
}

// SetObject stores a binary object under the given ID, overwriting any
// previous object with the same ID.
func (ms *MongoStorage) SetObject(id, contentType, uploadedBy string, data []byte) error {
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	object := &Object{
		ID:          id,
		Data:        data,
		ContentType: contentType,
		UploadedBy:  uploadedBy,
		CreatedAt:   time.Now(),
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := ms.objects.ReplaceOne(ctx, bson.M{"_id": id}, object, opts); err != nil {
		return err
	}
	return nil
}
