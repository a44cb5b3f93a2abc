// Package objectstorage provides the storage client for uploaded images. It
// supports a MongoDB-backed driver and an S3-backed driver behind the same
// interface, with an LRU cache in front of both.
package objectstorage

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bishnupur-union/society-backend/db"
	lru "github.com/hashicorp/golang-lru/v2"
)

var (
	// ErrorObjectNotFound is returned when the requested object is not found in storage.
	ErrorObjectNotFound = fmt.Errorf("object not found")
	// ErrorInvalidObjectID is returned when the provided object ID is invalid or empty.
	ErrorInvalidObjectID = fmt.Errorf("invalid object ID")
	// ErrorFileTypeNotSupported is returned when the file type is not in the supported types list.
	ErrorFileTypeNotSupported = fmt.Errorf("file type not supported")
	// ErrorStoragePermission is returned when the storage backend rejects the
	// operation because the credentials or the bucket policy do not allow it.
	ErrorStoragePermission = fmt.Errorf("storage permission denied")
)

// IsPermissionError reports whether the error comes from the storage backend
// rejecting the operation for lack of permissions, so the HTTP layer can point
// the operator at the storage credentials instead of a generic failure.
func IsPermissionError(err error) bool {
	return errors.Is(err, ErrorStoragePermission)
}

// ObjectFileType represents the MIME type of a stored object file.
type ObjectFileType string

const (
	// FileTypeJPEG represents the JPEG image MIME type.
	FileTypeJPEG ObjectFileType = "image/jpeg"
	// FileTypePNG represents the PNG image MIME type.
	FileTypePNG ObjectFileType = "image/png"
	// FileTypeJPG represents the JPG image MIME type.
	FileTypeJPG ObjectFileType = "image/jpg"
)

// DefaultSupportedFileTypes is a map of file types that are supported by default.
var DefaultSupportedFileTypes = map[ObjectFileType]bool{
	FileTypeJPEG: true,
	FileTypePNG:  true,
	FileTypeJPG:  true,
}

// driver is the backend that actually stores and retrieves objects.
type driver interface {
	getObject(ctx context.Context, objectID string) (*db.Object, error)
	putObject(ctx context.Context, object *db.Object) error
}

// Config holds the configuration for the object storage client. The MongoDB
// storage is always required; if an S3 configuration is provided the objects
// are stored in the S3 bucket instead of the database.
type Config struct {
	DB             *db.MongoStorage
	S3             *S3Config
	SupportedTypes []ObjectFileType
	ServerURL      string
}

// Client provides functionality for storing and retrieving objects. It keeps
// an LRU cache of recently served objects in front of the storage driver.
type Client struct {
	driver         driver
	supportedTypes map[ObjectFileType]bool
	cache          *lru.Cache[string, db.Object]
	ServerURL      string
}

// New initializes a new object storage client with the provided
// configuration. It selects the S3 driver when an S3 configuration is given
// and falls back to the database driver otherwise.
func New(conf *Config) (*Client, error) {
	if conf == nil {
		return nil, fmt.Errorf("invalid object storage configuration")
	}
	supportedTypes := DefaultSupportedFileTypes
	for _, t := range conf.SupportedTypes {
		supportedTypes[t] = true
	}
	cache, err := lru.New[string, db.Object](256)
	if err != nil {
		return nil, fmt.Errorf("cannot create cache: %w", err)
	}
	var d driver
	if conf.S3 != nil {
		if d, err = newS3Driver(conf.S3); err != nil {
			return nil, fmt.Errorf("cannot create s3 driver: %w", err)
		}
	} else {
		if conf.DB == nil {
			return nil, fmt.Errorf("invalid object storage configuration")
		}
		d = &mongoDriver{db: conf.DB}
	}
	return &Client{
		driver:         d,
		supportedTypes: supportedTypes,
		cache:          cache,
		ServerURL:      conf.ServerURL,
	}, nil
}

// Get retrieves an object from storage by its ID. It first checks the cache,
// and if not found, retrieves it from the storage driver. Returns the object
// or an error if not found or invalid.
func (osc *Client) Get(objectID string) (*db.Object, error) {
	if objectID == "" {
		return nil, ErrorInvalidObjectID
	}
	if object, ok := osc.cache.Get(objectID); ok {
		return &object, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	object, err := osc.driver.getObject(ctx, objectID)
	if err != nil {
		return nil, err
	}
	osc.cache.Add(objectID, *object)
	return object, nil
}

// Put uploads an image associated to a user (free-form string). It calculates
// the objectID from the data and uses that as filename, so uploading the same
// bytes twice stores a single object. It returns the name of the stored
// object, composed of the objectID and the file extension.
func (osc *Client) Put(data io.Reader, size int64, user string) (string, error) {
	buff := make([]byte, size)
	if _, err := io.ReadFull(data, buff); err != nil {
		return "", fmt.Errorf("cannot read file: %v", err)
	}
	// detect the content type so we don't allow files other than images
	filetype := http.DetectContentType(buff)
	fileExtension := strings.Split(filetype, "/")[1]
	if !osc.supportedTypes[ObjectFileType(filetype)] {
		return "", ErrorFileTypeNotSupported
	}
	objectID := calculateObjectID(buff)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	object := &db.Object{
		ID:          objectID,
		Data:        buff,
		ContentType: filetype,
		UploadedBy:  user,
		CreatedAt:   time.Now(),
	}
	if err := osc.driver.putObject(ctx, object); err != nil {
		return "", fmt.Errorf("cannot set object: %w", err)
	}
	return fmt.Sprintf("%s.%s", objectID, fileExtension), nil
}

// calculateObjectID calculates the objectID from the given data. The objectID
// is the hex encoding of the first 12 bytes of the md5 hash of the data.
func calculateObjectID(data []byte) string {
	hash := md5.Sum(data)
	return hex.EncodeToString(hash[:12])
}
