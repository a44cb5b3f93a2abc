package db

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SetDonation records a completed donation. The session ID is unique, so a
// webhook retry for an already recorded session returns ErrAlreadyExists.
func (ms *MongoStorage) SetDonation(donation *Donation) (primitive.ObjectID, error) {
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	donation.ID = primitive.NewObjectID()
	if donation.CreatedAt.IsZero() {
		donation.CreatedAt = time.Now()
	}
	if _, err := ms.donations.InsertOne(ctx, donation); err != nil {
		if strings.Contains(err.Error(), "duplicate key error") {
			return primitive.NilObjectID, ErrAlreadyExists
		}
		return primitive.NilObjectID, err
	}
	return donation.ID, nil
}

// Donations returns every recorded donation, newest first.
func (ms *MongoStorage) Donations() ([]Donation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := ms.donations.Find(ctx, emptyFilter, sortedFindOptions("createdAt", false))
	if err != nil {
		return nil, err
	}
	donations := []Donation{}
	if err := cursor.All(ctx, &donations); err != nil {
		return nil, err
	}
	return donations, nil
}
