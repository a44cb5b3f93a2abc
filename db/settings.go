package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.vocdoni.io/dvote/log"
)

// SiteSettings returns the settings singleton. If the document does not exist
// yet it is created with the default values first, so the first read on an
// empty database already returns a complete document.
func (ms *MongoStorage) SiteSettings() (*SiteSettings, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	settings := &SiteSettings{}
	err := ms.settings.FindOne(ctx, bson.M{"_id": SiteSettingsID}).Decode(settings)
	if err == nil {
		return settings, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}
	if err := ms.bootstrapSiteSettings(ctx); err != nil {
		return nil, err
	}
	if err := ms.settings.FindOne(ctx, bson.M{"_id": SiteSettingsID}).Decode(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// bootstrapSiteSettings writes the default settings document unless another
// writer got there first. The $setOnInsert upsert makes the bootstrap safe to
// race.
func (ms *MongoStorage) bootstrapSiteSettings(ctx context.Context) error {
	defaults := DefaultSiteSettings()
	doc, err := bson.Marshal(defaults)
	if err != nil {
		return err
	}
	var onInsert bson.M
	if err := bson.Unmarshal(doc, &onInsert); err != nil {
		return err
	}
	opts := options.Update().SetUpsert(true)
	result, err := ms.settings.UpdateOne(ctx, bson.M{"_id": SiteSettingsID}, bson.M{"$setOnInsert": onInsert}, opts)
	if err != nil {
		return err
	}
	if result.UpsertedCount > 0 {
		log.Infow("site settings bootstrapped with defaults")
	}
	return nil
}

// SetSiteSettings applies a patch-style save: only the non-zero fields of the
// given document are written, the stored version counter is bumped by one,
// and fields the caller left empty keep their stored value. When the caller
// provides an expected version it must match the stored one, otherwise
// ErrConflict is returned and nothing is written.
func (ms *MongoStorage) SetSiteSettings(settings *SiteSettings, expectedVersion int) error {
	ms.keysLock.Lock()
	defer ms.keysLock.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	// make sure the singleton exists before patching it
	if err := ms.bootstrapSiteSettings(ctx); err != nil {
		return err
	}
	settings.ID = SiteSettingsID
	updateDoc, err := dynamicUpdateDocument(settings, nil)
	if err != nil {
		return err
	}
	// the version counter is managed here, never by the caller
	setDoc := updateDoc["$set"].(bson.M)
	delete(setDoc, "version")
	update := bson.M{"$inc": bson.M{"version": 1}}
	if len(setDoc) > 0 {
		update["$set"] = setDoc
	}
	filter := bson.M{"_id": SiteSettingsID}
	if expectedVersion > 0 {
		filter["version"] = expectedVersion
	}
	result, err := ms.settings.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrConflict
	}
	return nil
}
