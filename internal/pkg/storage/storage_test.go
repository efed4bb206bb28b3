package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromDriver(t *testing.T) {
	ctx := context.Background()

	_, err := NewFromDriver(ctx, "gcs", FactoryOptions{})
	assert.ErrorIs(t, err, ErrUnknownDriver)

	stg, err := NewFromDriver(ctx, " MinIO ", FactoryOptions{MinIO: MinIOOptions{
		Endpoint:  "localhost:9000",
		AccessKey: "minio",
		SecretKey: "minio123",
	}})
	require.NoError(t, err)
	assert.IsType(t, &MinIOAdapter{}, stg)
	assert.NoError(t, stg.Close())
}

func TestPresignGet_Offline(t *testing.T) {
	ctx := context.Background()

	s3a, err := NewS3(ctx, S3Options{
		Endpoint:     "http://localhost:4566",
		AccessKey:    "test",
		SecretKey:    "test",
		UsePathStyle: true,
	})
	require.NoError(t, err)

	url, err := s3a.PresignGet(ctx, "covers", "blogs/1/cover.png", 15*time.Minute)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:4566/covers/blogs/1/cover.png?"))
	assert.Contains(t, url, "X-Amz-Expires=900")

	mn, err := NewMinIO(MinIOOptions{Endpoint: "localhost:9000", AccessKey: "minio", SecretKey: "minio123", Region: "us-east-1"})
	require.NoError(t, err)

	url, err = mn.PresignGet(ctx, "covers", "blogs/1/cover.png", 15*time.Minute)
	require.NoError(t, err)
	assert.Contains(t, url, "/covers/blogs/1/cover.png")
}
