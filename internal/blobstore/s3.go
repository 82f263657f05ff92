package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/itssimple/manifest-report-site/internal/common"
	"github.com/itssimple/manifest-report-site/internal/config"
)

// Reader fetches whole objects by key.
type Reader interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// ObjectGetter is the part of *s3.Client used by S3Reader.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Swapped in tests.
var (
	loadDefaultAWSConfig  = awsconfig.LoadDefaultConfig
	newS3ClientFromConfig = s3.NewFromConfig
)

// S3Reader reads objects from one bucket.
type S3Reader struct {
	client ObjectGetter
	bucket string
}

var _ Reader = (*S3Reader)(nil)

// NewS3Reader builds a path-style S3 client for the configured endpoint.
// Empty credentials fall back to anonymous access.
func NewS3Reader(ctx context.Context, c *config.Config) (*S3Reader, error) {
	var creds aws.CredentialsProvider = aws.AnonymousCredentials{}
	if c.S3AccessKey != "" {
		creds = credentials.NewStaticCredentialsProvider(c.S3AccessKey, c.S3SecretKey, "")
	}

	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(c.S3Region),
		awsconfig.WithCredentialsProvider(creds),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(c.S3Endpoint)
		o.UsePathStyle = true
	})

	return NewS3ReaderWithClient(client, c.S3Bucket), nil
}

// NewS3ReaderWithClient wraps an existing client.
func NewS3ReaderWithClient(client ObjectGetter, bucket string) *S3Reader {
	return &S3Reader{client: client, bucket: bucket}
}

// Get downloads the object at key.
func (r *S3Reader) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isMissingKey(err) {
			return nil, fmt.Errorf("get %s: %w: %w", key, common.ErrUnavailable, common.ErrorNotFound)
		}
		return nil, fmt.Errorf("get %s: %w: %w", key, common.ErrUnavailable, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w: %w", key, common.ErrUnavailable, err)
	}

	return data, nil
}

func isMissingKey(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}
