// Package storage keeps uploaded PDFs in an S3 compatible bucket.
package storage

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"time"

	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

const locatorScheme = "s3://"

var ErrBucketNotConfigured = errors.New("documents bucket not configured")

// ObjectAPI is the subset of *s3.Client used by S3DocumentStorage.
type ObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Presigner is the subset of *s3.PresignClient used for download links.
type Presigner interface {
	PresignGetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

var (
	_ ObjectAPI = (*s3.Client)(nil)
	_ Presigner = (*s3.PresignClient)(nil)
)

type S3DocumentStorage struct {
	objects   ObjectAPI
	presigner Presigner
	bucket    string
	logger    *zap.Logger
}

var _ interfaces.IDocumentStorage = (*S3DocumentStorage)(nil)

// NewS3Client builds the S3 client. A custom endpoint (MinIO, LocalStack)
// switches to path-style addressing.
func NewS3Client(awsCfg aws.Config, endpoint string) *s3.Client {
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
}

func NewS3DocumentStorage(objects ObjectAPI, presigner Presigner, bucket string, logger *zap.Logger) *S3DocumentStorage {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &S3DocumentStorage{objects: objects, presigner: presigner, bucket: bucket, logger: logger}
}

// NewFromClient wires both the object API and the presigner from one client.
func NewFromClient(client *s3.Client, bucket string, logger *zap.Logger) *S3DocumentStorage {
	return NewS3DocumentStorage(client, s3.NewPresignClient(client), bucket, logger)
}

func (s *S3DocumentStorage) Put(ctx context.Context, key string, doc entities.Document) (string, error) {
	if s.bucket == "" {
		return "", ErrBucketNotConfigured
	}
	contentType := doc.ContentType
	if contentType == "" {
		contentType = entities.PDFContentType
	}

	_, err := s.objects.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(doc.Data),
		ContentLength: aws.Int64(doc.Size()),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		s.logger.Error("[document][storage] put failed", zap.String("key", key), zap.Error(err))
		return "", err
	}
	s.logger.Info("[document][storage] object stored", zap.String("key", key), zap.Int64("size", doc.Size()))
	return Locator(s.bucket, key), nil
}

func (s *S3DocumentStorage) Delete(ctx context.Context, key string) error {
	if s.bucket == "" {
		return ErrBucketNotConfigured
	}
	_, err := s.objects.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.logger.Error("[document][storage] delete failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

func (s *S3DocumentStorage) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	if s.bucket == "" {
		return "", ErrBucketNotConfigured
	}
	if _, k, ok := ParseLocator(key); ok {
		key = k
	}
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// Locator is the value recorded on the entity, s3://bucket/key.
func Locator(bucket, key string) string {
	return locatorScheme + bucket + "/" + key
}

// ParseLocator splits a locator produced by Locator.
func ParseLocator(locator string) (bucket, key string, ok bool) {
	rest, found := strings.CutPrefix(locator, locatorScheme)
	if !found {
		return "", "", false
	}
	bucket, key, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", false
	}
	return bucket, key, true
}
