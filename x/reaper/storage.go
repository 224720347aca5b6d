package reaper

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/pkg/errors"

	"github.com/dangolbeeker/streamhive/core"
)

type s3Storage struct {
	client *s3.S3
}

// NewS3Storage creates the blob store client used for prerecorded video
// cleanup. Endpoint is optional and supports S3-compatible stores.
func NewS3Storage(config core.Config) core.BlobStorage {
	cfg := aws.NewConfig().WithRegion(config.Storage.Region)
	if config.Storage.Endpoint != "" {
		cfg = cfg.WithEndpoint(config.Storage.Endpoint).WithS3ForcePathStyle(true)
	}
	if config.Storage.AccessKey != "" {
		cfg = cfg.WithCredentials(credentials.NewStaticCredentials(config.Storage.AccessKey, config.Storage.SecretKey, ""))
	}

	sess := session.Must(session.NewSession(cfg))
	return &s3Storage{client: s3.New(sess)}
}

func (s *s3Storage) Delete(ctx context.Context, bucket, key string) error {
	ctx, span := tracer.Start(ctx, "Reaper.Storage.Delete")
	defer span.End()

	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		span.RecordError(err)
		return errors.Wrapf(err, "delete object %s/%s", bucket, key)
	}
	return nil
}
