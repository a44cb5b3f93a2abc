package db

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// nextMemberID internal method returns the next available member ID. If an
// error occurs, it returns the error. This method must be called with the
// keysLock held.
func (ms *MongoStorage) nextMemberID(ctx context.Context) (uint64, error) {
	var member Member
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: -1}})
	if err := ms.members.FindOne(ctx, bson.M{}, opts).Decode(&member); err != nil {
		if err == mongo.ErrNoDocuments {
			return 1, nil
		}
		return 0, err
	}
	return member.ID + 1, nil
}

// Member returns the member with the given ID, or ErrNotFound.
func (ms *MongoStorage) Member(id uint64) (*Member, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result := ms.members.FindOne(ctx, bson.M{"_id": id})
	member := &Member{}
	if err := result.Decode(member); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return member, nil
}

// MemberByEmail returns the member with the given email, or ErrNotFound.
func (ms *MongoStorage) MemberByEmail(email string) (*Member, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result := ms.members.FindOne(ctx, bson.M{"email": email})
	member := &Member{}
	if err := result.Decode(member); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return member, nil
}

// Members returns every member, newest first.
func (ms *MongoStorage) Members() ([]Member, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := ms.members.Find(ctx, emptyFilter, sortedFindOptions("createdAt", false))
	if err != nil {
		return nil, err
	}
	members := []Member{}
	if err := cursor.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// SetMember creates or updates the member in the database. New members get a
// sequential ID, a creation timestamp and the regular role unless one is
// provided. A duplicate email returns ErrAlreadyExists.
func (ms *MongoStorage) SetMember(member *Member) (uint64, error) {
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	nextID, err := ms.nextMemberID(ctx)
	if err != nil {
		return 0, err
	}
	if member.ID > 0 {
		if member.ID >= nextID {
			return 0, ErrInvalidData
		}
		updateDoc, err := dynamicUpdateDocument(member, nil)
		if err != nil {
			return 0, err
		}
		result, err := ms.members.UpdateOne(ctx, bson.M{"_id": member.ID}, updateDoc)
		if err != nil {
			return 0, err
		}
		if result.MatchedCount == 0 {
			return 0, ErrNotFound
		}
		return member.ID, nil
	}
	member.ID = nextID
	if member.Role == "" {
		member.Role = RegularRole
	}
	if member.CreatedAt.IsZero() {
		member.CreatedAt = time.Now()
	}
	if _, err := ms.members.InsertOne(ctx, member); err != nil {
		if strings.Contains(err.Error(), "duplicate key error") {
			return 0, ErrAlreadyExists
		}
		return 0, err
	}
	return member.ID, nil
}

// SetMemberRole performs a role-only update on the member with the given ID.
func (ms *MongoStorage) SetMemberRole(id uint64, role MemberRole) error {
	if !IsValidMemberRole(role) {
		return ErrInvalidData
	}
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := ms.members.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DelMember deletes the member with the given ID, or returns ErrNotFound.
func (ms *MongoStorage) DelMember(id uint64) error {
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := ms.members.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
