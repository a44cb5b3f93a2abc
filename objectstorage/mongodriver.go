package objectstorage

import (
	"context"
	"errors"
	"fmt"

	"github.com/bishnupur-union/society-backend/db"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoUnauthorizedCode is the server error code for "Unauthorized".
const mongoUnauthorizedCode = 13

// mongoDriver stores objects as documents in the objects collection.
type mongoDriver struct {
	db *db.MongoStorage
}

func (md *mongoDriver) getObject(_ context.Context, objectID string) (*db.Object, error) {
	object, err := md.db.Object(objectID)
	if err != nil {
		if err == db.ErrNotFound {
			return nil, ErrorObjectNotFound
		}
		if isMongoPermissionError(err) {
			return nil, fmt.Errorf("%w: %v", ErrorStoragePermission, err)
		}
		return nil, fmt.Errorf("error retrieving object: %w", err)
	}
	return object, nil
}

func (md *mongoDriver) putObject(_ context.Context, object *db.Object) error {
	if err := md.db.SetObject(object.ID, object.ContentType, object.UploadedBy, object.Data); err != nil {
		if isMongoPermissionError(err) {
			return fmt.Errorf("%w: %v", ErrorStoragePermission, err)
		}
		return err
	}
	return nil
}

// isMongoPermissionError reports whether the error is the server refusing the
// command because the connecting user lacks the required role.
func isMongoPermissionError(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == mongoUnauthorizedCode
	}
	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		for _, we := range writeErr.WriteErrors {
			if we.Code == mongoUnauthorizedCode {
				return true
			}
		}
	}
	return false
}
