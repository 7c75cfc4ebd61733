package storage

import (
	"fmt"
	"strings"

	"github.com/Tastrnet/mainversion-sub000/pkg/utils"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"go.uber.org/zap"
)

// Bucket names mirror the storage buckets the app consumes.
const (
	BucketAvatars = "avatars"
	BucketPhotos  = "review-photos"
)

// MediaStorage issues presigned URLs against the avatar and review-photo
// buckets. Objects are written and read by clients directly; the service
// never proxies image bytes.
type MediaStorage struct {
	s3Client     *s3.S3
	avatarBucket string
	photoBucket  string
	expiry       utils.StorageConfig
	log          *zap.Logger
}

func NewMediaStorage(config utils.StorageConfig, log *zap.Logger) (*MediaStorage, error) {
	awsConfig := aws.NewConfig().WithRegion(config.Region)
	if config.Endpoint != "" {
		// Non-AWS endpoints (minio etc) need path-style addressing
		awsConfig = awsConfig.WithEndpoint(config.Endpoint).WithS3ForcePathStyle(true)
	}
	if config.AccessKey != "" {
		awsConfig = awsConfig.WithCredentials(
			credentials.NewStaticCredentials(config.AccessKey, config.SecretKey, ""))
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("create aws session: %w", err)
	}

	return &MediaStorage{
		s3Client:     s3.New(sess),
		avatarBucket: config.AvatarBucket,
		photoBucket:  config.PhotoBucket,
		expiry:       config,
		log:          log.With(zap.String("component", "storage")),
	}, nil
}

func (m *MediaStorage) bucketName(bucket string) (string, error) {
	switch bucket {
	case BucketAvatars:
		return m.avatarBucket, nil
	case BucketPhotos:
		return m.photoBucket, nil
	default:
		return "", fmt.Errorf("unknown bucket %q", bucket)
	}
}

// PresignUpload returns a presigned PUT URL for the given object key.
func (m *MediaStorage) PresignUpload(bucket, key, contentType string) (string, error) {
	name, err := m.bucketName(bucket)
	if err != nil {
		return "", err
	}

	req, _ := m.s3Client.PutObjectRequest(&s3.PutObjectInput{
		Bucket:      aws.String(name),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	})

	url, err := req.Presign(m.expiry.PresignExpiry())
	if err != nil {
		m.log.Error("Failed to presign upload",
			zap.Error(err),
			zap.String("bucket", bucket),
			zap.String("key", key),
		)
		return "", fmt.Errorf("presign upload %s/%s: %w", bucket, key, err)
	}

	return url, nil
}

// PresignDownload returns a presigned GET URL for the given object key.
// Empty keys resolve to an empty URL so callers can pass through optional
// avatar/photo fields unconditionally.
func (m *MediaStorage) PresignDownload(bucket, key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", nil
	}

	name, err := m.bucketName(bucket)
	if err != nil {
		return "", err
	}

	req, _ := m.s3Client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(name),
		Key:    aws.String(key),
	})

	url, err := req.Presign(m.expiry.PresignExpiry())
	if err != nil {
		m.log.Error("Failed to presign download",
			zap.Error(err),
			zap.String("bucket", bucket),
			zap.String("key", key),
		)
		return "", fmt.Errorf("presign download %s/%s: %w", bucket, key, err)
	}

	return url, nil
}

// DeleteObject removes an object, used when a review photo or avatar is
// replaced or its parent row is deleted.
func (m *MediaStorage) DeleteObject(bucket, key string) error {
	name, err := m.bucketName(bucket)
	if err != nil {
		return err
	}

	_, err = m.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(name),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %s/%s: %w", bucket, key, err)
	}

	return nil
}
