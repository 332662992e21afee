package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"files-manager/internal/config"
	apperrors "files-manager/pkg/errors"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

const (
	emptyAWSSessionToken         = ""
	errFailedCreateAWSSessionFmt = "failed to create AWS session: %w"
	errFailedPutObject           = "failed to put object"
	errFailedGetObject           = "failed to get object"
	errFailedReadObjectBody      = "failed to read object body"
)

// S3Store keeps content blobs in a single bucket, one object per reference.
// Variant objects follow the same <ref>_<width> convention as the local store.
type S3Store struct {
	svc    *s3.S3
	bucket string
}

func NewS3(cfg *config.StorageConfig) (*S3Store, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			emptyAWSSessionToken,
		),
	})

	if err != nil {
		return nil, fmt.Errorf(errFailedCreateAWSSessionFmt, err)
	}

	return &S3Store{
		svc:    s3.New(sess),
		bucket: cfg.S3Bucket,
	}, nil
}

func (s *S3Store) Put(ctx context.Context, data []byte) (string, error) {
	ref := uuid.New().String()
	if err := s.putObject(ctx, ref, data); err != nil {
		return "", err
	}
	return ref, nil
}

func (s *S3Store) PutVariant(ctx context.Context, ref string, width int, data []byte) error {
	return s.putObject(ctx, VariantRef(ref, width), data)
}

func (s *S3Store) putObject(ctx context.Context, key string, data []byte) error {
	_, err := s.svc.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return apperrors.Storage(errFailedPutObject, err)
	}
	return nil
}

func (s *S3Store) Get(ctx context.Context, ref string) ([]byte, error) {
	out, err := s.svc.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(ref),
	})
	if err != nil {
		if isNoSuchKey(err) {
			return nil, apperrors.NotFound(errBlobNotFound)
		}
		return nil, apperrors.Storage(errFailedGetObject, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, apperrors.Storage(errFailedReadObjectBody, err)
	}
	return data, nil
}

func (s *S3Store) Exists(ctx context.Context, ref string) bool {
	_, err := s.svc.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(ref),
	})
	return err == nil
}

func isNoSuchKey(err error) bool {
	var aerr awserr.Error
	return errors.As(err, &aerr) && aerr.Code() == s3.ErrCodeNoSuchKey
}
