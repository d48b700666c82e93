package storage

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"seguros_xpto/internal/domain/entities"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjects struct {
	put     *s3.PutObjectInput
	body    []byte
	deleted string
	err     error
}

func (f *fakeObjects) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.put = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjects) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deleted = *in.Key
	return &s3.DeleteObjectOutput{}, nil
}

type fakePresigner struct {
	key     string
	expires time.Duration
}

func (f *fakePresigner) PresignGetObject(_ context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	opts := s3.PresignOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	f.key = *in.Key
	f.expires = opts.Expires
	return &v4.PresignedHTTPRequest{URL: "https://minio.local/" + *in.Bucket + "/" + *in.Key + "?X-Amz-Signature=abc"}, nil
}

func TestS3DocumentStorage_Put(t *testing.T) {
	objects := &fakeObjects{}
	st := NewS3DocumentStorage(objects, &fakePresigner{}, "docs", nil)

	key := entities.StoragePath(entities.EntityKindPolicy, "uid-1", "pol-1", entities.SlotPolicy)
	locator, err := st.Put(context.Background(), key, entities.Document{Data: []byte("%PDF-1.4")})
	require.NoError(t, err)

	assert.Equal(t, "s3://docs/policies/uid-1/pol-1/policy.pdf", locator)
	assert.Equal(t, "application/pdf", *objects.put.ContentType)
	assert.Equal(t, int64(8), *objects.put.ContentLength)
	assert.Equal(t, []byte("%PDF-1.4"), objects.body)
}

func TestS3DocumentStorage_Errors(t *testing.T) {
	boom := errors.New("connection reset")
	st := NewS3DocumentStorage(&fakeObjects{err: boom}, &fakePresigner{}, "docs", nil)

	_, err := st.Put(context.Background(), "k", entities.Document{Data: []byte("x")})
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, st.Delete(context.Background(), "k"), boom)

	unconfigured := NewS3DocumentStorage(&fakeObjects{}, &fakePresigner{}, "", nil)
	_, err = unconfigured.Put(context.Background(), "k", entities.Document{})
	assert.ErrorIs(t, err, ErrBucketNotConfigured)
}

func TestS3DocumentStorage_PresignGet(t *testing.T) {
	presigner := &fakePresigner{}
	st := NewS3DocumentStorage(&fakeObjects{}, presigner, "docs", nil)

	url, err := st.PresignGet(context.Background(), "s3://docs/simulations/uid-1/sim-1/quote.pdf", 10*time.Minute)
	require.NoError(t, err)

	assert.Contains(t, url, "simulations/uid-1/sim-1/quote.pdf")
	assert.Equal(t, "simulations/uid-1/sim-1/quote.pdf", presigner.key)
	assert.Equal(t, 10*time.Minute, presigner.expires)
}

func TestParseLocator(t *testing.T) {
	bucket, key, ok := ParseLocator(Locator("docs", "a/b.pdf"))
	assert.True(t, ok)
	assert.Equal(t, "docs", bucket)
	assert.Equal(t, "a/b.pdf", key)

	for _, bad := range []string{"", "https://x/y", "s3://", "s3://docs", "s3:///key"} {
		_, _, ok := ParseLocator(bad)
		assert.False(t, ok, bad)
	}
}
