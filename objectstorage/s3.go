package objectstorage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/bishnupur-union/society-backend/db"
)

// S3Config holds the credentials and bucket used by the S3 driver. Endpoint
// is optional and allows pointing the driver to an S3-compatible service
// such as MinIO.
type S3Config struct {
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
}

// s3Driver stores objects in an S3 bucket. The object metadata keeps the
// uploader so the provenance of a file survives the round trip.
type s3Driver struct {
	client   *s3.Client
	uploader *manager.Uploader
	bucket   string
}

func newS3Driver(conf *S3Config) (*s3Driver, error) {
	if conf.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(conf.Region),
	}
	if conf.AccessKey != "" && conf.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(conf.AccessKey, conf.SecretKey, "")))
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot load aws configuration: %w", err)
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if conf.Endpoint != "" {
			o.BaseEndpoint = aws.String(conf.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &s3Driver{
		client:   client,
		uploader: manager.NewUploader(client),
		bucket:   conf.Bucket,
	}, nil
}

func (sd *s3Driver) getObject(ctx context.Context, objectID string) (*db.Object, error) {
	output, err := sd.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(sd.bucket),
		Key:    aws.String(objectID),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, ErrorObjectNotFound
		}
		return nil, fmt.Errorf("error retrieving object: %w", wrapS3Error(err))
	}
	defer func() {
		_ = output.Body.Close()
	}()
	data, err := io.ReadAll(output.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading object: %w", err)
	}
	object := &db.Object{
		ID:   objectID,
		Data: data,
	}
	if output.ContentType != nil {
		object.ContentType = *output.ContentType
	}
	if output.LastModified != nil {
		object.CreatedAt = *output.LastModified
	}
	object.UploadedBy = output.Metadata["uploaded-by"]
	return object, nil
}

func (sd *s3Driver) putObject(ctx context.Context, object *db.Object) error {
	_, err := sd.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(sd.bucket),
		Key:         aws.String(object.ID),
		Body:        bytes.NewReader(object.Data),
		ContentType: aws.String(object.ContentType),
		Metadata:    map[string]string{"uploaded-by": object.UploadedBy},
	})
	if err != nil {
		return wrapS3Error(err)
	}
	return nil
}

// wrapS3Error tags API errors caused by bad credentials or a restrictive
// bucket policy with ErrorStoragePermission. Other errors pass through.
func wrapS3Error(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
			return fmt.Errorf("%w: %s", ErrorStoragePermission, apiErr.ErrorMessage())
		}
	}
	return err
}
