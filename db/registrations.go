package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateRegistration stores a new iftar event registration. The workflow
// state is always forced to pending regardless of what the caller set, and
// the payment method must be one of the accepted channels when provided.
func (ms *MongoStorage) CreateRegistration(registration *EventRegistration) (primitive.ObjectID, error) {
	if registration.PaymentMethod != "" && !IsValidPaymentMethod(registration.PaymentMethod) {
		return primitive.NilObjectID, ErrInvalidData
	}
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	registration.ID = primitive.NewObjectID()
	registration.Status = RegistrationPending
	registration.CreatedAt = time.Now()
	if _, err := ms.registrations.InsertOne(ctx, registration); err != nil {
		return primitive.NilObjectID, err
	}
	return registration.ID, nil
}

// Registrations returns every event registration, newest first.
func (ms *MongoStorage) Registrations() ([]EventRegistration, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := ms.registrations.Find(ctx, emptyFilter, sortedFindOptions("createdAt", false))
	if err != nil {
		return nil, err
	}
	registrations := []EventRegistration{}
	if err := cursor.All(ctx, &registrations); err != nil {
		return nil, err
	}
	return registrations, nil
}

// Registration returns the event registration with the given ID, or
// ErrNotFound.
func (ms *MongoStorage) Registration(id primitive.ObjectID) (*EventRegistration, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result := ms.registrations.FindOne(ctx, bson.M{"_id": id})
	registration := &EventRegistration{}
	if err := result.Decode(registration); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return registration, nil
}

// SetRegistrationStatus performs a status-only update on the registration
// with the given ID. The rest of the document is never touched.
func (ms *MongoStorage) SetRegistrationStatus(id primitive.ObjectID, status RegistrationStatus) error {
	if !IsValidRegistrationStatus(status) {
		return ErrInvalidData
	}
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := ms.registrations.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DelRegistration deletes the event registration with the given ID, or
// returns ErrNotFound.
func (ms *MongoStorage) DelRegistration(id primitive.ObjectID) error {
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := ms.registrations.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
