package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.vocdoni.io/dvote/log"
)

// CommitteeMembers returns the managing committee ordered by ascending order
// index.
func (ms *MongoStorage) CommitteeMembers() ([]CommitteeMember, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := ms.committee.Find(ctx, emptyFilter, sortedFindOptions("orderIndex", true))
	if err != nil {
		return nil, err
	}
	members := []CommitteeMember{}
	if err := cursor.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// CommitteeMember returns the committee member with the given ID, or
// ErrNotFound.
func (ms *MongoStorage) CommitteeMember(id primitive.ObjectID) (*CommitteeMember, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result := ms.committee.FindOne(ctx, bson.M{"_id": id})
	member := &CommitteeMember{}
	if err := result.Decode(member); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return member, nil
}

// SetCommitteeMember creates or fully overwrites a committee member.
func (ms *MongoStorage) SetCommitteeMember(member *CommitteeMember) (primitive.ObjectID, error) {
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if member.ID.IsZero() {
		result, err := ms.committee.InsertOne(ctx, member)
		if err != nil {
			return primitive.NilObjectID, err
		}
		member.ID = result.InsertedID.(primitive.ObjectID)
		return member.ID, nil
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := ms.committee.ReplaceOne(ctx, bson.M{"_id": member.ID}, member, opts); err != nil {
		return primitive.NilObjectID, err
	}
	return member.ID, nil
}

// DelCommitteeMember deletes the committee member with the given ID, or
// returns ErrNotFound.
func (ms *MongoStorage) DelCommitteeMember(id primitive.ObjectID) error {
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := ms.committee.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AdhocCommitteeMembers returns the ad-hoc committee ordered by ascending
// order index.
func (ms *MongoStorage) AdhocCommitteeMembers() ([]AdhocCommitteeMember, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := ms.adhocCommittee.Find(ctx, emptyFilter, sortedFindOptions("orderIndex", true))
	if err != nil {
		return nil, err
	}
	members := []AdhocCommitteeMember{}
	if err := cursor.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// AdhocCommitteeMember returns the ad-hoc committee member with the given ID,
// or ErrNotFound.
func (ms *MongoStorage) AdhocCommitteeMember(id primitive.ObjectID) (*AdhocCommitteeMember, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result := ms.adhocCommittee.FindOne(ctx, bson.M{"_id": id})
	member := &AdhocCommitteeMember{}
	if err := result.Decode(member); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return member, nil
}

// SetAdhocCommitteeMember creates or fully overwrites an ad-hoc committee
// member.
func (ms *MongoStorage) SetAdhocCommitteeMember(member *AdhocCommitteeMember) (primitive.ObjectID, error) {
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if member.ID.IsZero() {
		result, err := ms.adhocCommittee.InsertOne(ctx, member)
		if err != nil {
			return primitive.NilObjectID, err
		}
		member.ID = result.InsertedID.(primitive.ObjectID)
		return member.ID, nil
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := ms.adhocCommittee.ReplaceOne(ctx, bson.M{"_id": member.ID}, member, opts); err != nil {
		return primitive.NilObjectID, err
	}
	return member.ID, nil
}

// DelAdhocCommitteeMember deletes the ad-hoc committee member with the given
// ID, or returns ErrNotFound.
func (ms *MongoStorage) DelAdhocCommitteeMember(id primitive.ObjectID) error {
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := ms.adhocCommittee.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// MigrateCommitteeToAdhoc moves every managing committee member into the
// ad-hoc committee and empties the managing committee. Each source document is
// first tagged with the ID its copy will get, then the copy is upserted by
// that ID, so the operation can be re-run after a partial failure without
// creating duplicates. It returns the number of members now present in the
// ad-hoc committee because of this run.
func (ms *MongoStorage) MigrateCommitteeToAdhoc() (int, error) {
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := ms.committee.Find(ctx, emptyFilter, sortedFindOptions("orderIndex", true))
	if err != nil {
		return 0, err
	}
	members := []CommitteeMember{}
	if err := cursor.All(ctx, &members); err != nil {
		return 0, err
	}

	migrated := 0
	for i := range members {
		member := &members[i]
		if member.MigratedTo.IsZero() {
			member.MigratedTo = primitive.NewObjectID()
			update := bson.M{"$set": bson.M{"migratedTo": member.MigratedTo}}
			if _, err := ms.committee.UpdateOne(ctx, bson.M{"_id": member.ID}, update); err != nil {
				return migrated, err
			}
		}
		adhoc := &AdhocCommitteeMember{
			ID:          member.MigratedTo,
			Name:        member.Name,
			Designation: member.Designation,
			ImageURL:    member.ImageURL,
			OrderIndex:  member.OrderIndex,
		}
		opts := options.Replace().SetUpsert(true)
		if _, err := ms.adhocCommittee.ReplaceOne(ctx, bson.M{"_id": adhoc.ID}, adhoc, opts); err != nil {
			return migrated, err
		}
		migrated++
	}

	result, err := ms.committee.DeleteMany(ctx, bson.M{"migratedTo": bson.M{"$exists": true}})
	if err != nil {
		return migrated, err
	}
	log.Infow("committee migrated to ad-hoc committee", "migrated", migrated, "removed", result.DeletedCount)
	return migrated, nil
}
