package store

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/MKhiriev/go-room-design/internal/config"
	"github.com/MKhiriev/go-room-design/internal/logger"
)

// objectClient is the part of *s3.Client used by the storage.
type objectClient interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3FileStorage uploads files to an S3 compatible bucket.
type S3FileStorage struct {
	client  objectClient
	bucket  string
	baseURL string
	newID   func() string
	logger  *logger.Logger
}

// NewS3FileStorage builds an S3 client from cfg. Static credentials are used
// when both keys are set, otherwise the default AWS credential chain applies.
func NewS3FileStorage(ctx context.Context, cfg config.Files, log *logger.Logger) (*S3FileStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.S3.Region)}
	if cfg.S3.AccessKeyID != "" && cfg.S3.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3.AccessKeyID, cfg.S3.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewS3FileStorage").Msg("error loading aws config")
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3.Endpoint)
		}
		o.UsePathStyle = cfg.S3.UsePathStyle
	})

	return newS3FileStorage(client, cfg, log), nil
}

func newS3FileStorage(client objectClient, cfg config.Files, log *logger.Logger) *S3FileStorage {
	return &S3FileStorage{
		client:  client,
		bucket:  cfg.S3.Bucket,
		baseURL: s3BaseURL(cfg),
		newID:   newObjectID,
		logger:  log,
	}
}

// Save uploads content with PutObject and returns the object URL.
func (s *S3FileStorage) Save(ctx context.Context, folder, filename string, content io.Reader, size int64, contentType string) (string, error) {
	log := logger.FromContext(ctx)

	key := objectKey(folder, filename, s.newID)
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   content,
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		log.Err(err).Str("func", "*S3FileStorage.Save").Str("key", key).Msg("error uploading object")
		return "", fmt.Errorf("error uploading object: %w", err)
	}

	return s.baseURL + "/" + key, nil
}

// Delete removes the object behind url. S3 reports success for missing keys.
func (s *S3FileStorage) Delete(ctx context.Context, url string) error {
	key, ok := strings.CutPrefix(url, s.baseURL+"/")
	if !ok || key == "" {
		return fmt.Errorf("%w: %s", ErrForeignFileURL, url)
	}

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*S3FileStorage.Delete").Str("key", key).Msg("error deleting object")
		return fmt.Errorf("error deleting object: %w", err)
	}

	return nil
}

// s3BaseURL resolves the public prefix of stored objects: an explicit base
// URL wins, then the custom endpoint (path or virtual-hosted style), then
// the AWS regional host.
func s3BaseURL(cfg config.Files) string {
	if cfg.BaseURL != "" {
		return strings.TrimRight(cfg.BaseURL, "/")
	}

	if cfg.S3.Endpoint != "" {
		endpoint := strings.TrimRight(cfg.S3.Endpoint, "/")
		if cfg.S3.UsePathStyle {
			return endpoint + "/" + cfg.S3.Bucket
		}
		if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
			u.Host = cfg.S3.Bucket + "." + u.Host
			return u.String()
		}
		return endpoint + "/" + cfg.S3.Bucket
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3.Bucket, cfg.S3.Region)
}
