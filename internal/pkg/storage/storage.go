// Package storage wraps S3-compatible object stores behind one small interface.
package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrBucketNotFound is returned by Ping when the bucket does not exist.
var ErrBucketNotFound = errors.New("storage: bucket not found")

// Storage defines the object storage operations used by the application.
type Storage interface {
	io.Closer

	// Ping checks that the bucket is reachable.
	Ping(ctx context.Context, bucket string) error
	// PutObject stores data and returns object metadata.
	PutObject(ctx context.Context, bucket, key string, r io.Reader, opts PutOptions) (ObjectInfo, error)
	// DeleteObject removes the object. Deleting a missing object is not an error.
	DeleteObject(ctx context.Context, bucket, key string) error
	// PresignGet returns a signed URL for downloading.
	PresignGet(ctx context.Context, bucket, key string, expiry time.Duration) (string, error)
}

// PutOptions configures upload behavior.
type PutOptions struct {
	// Size is the content length, or -1 when unknown.
	Size int64
	// ContentType is the MIME type for the object.
	ContentType string
	// Metadata includes custom key/value metadata.
	Metadata map[string]string
}

// ObjectInfo describes object metadata.
type ObjectInfo struct {
	Bucket      string
	Key         string
	Size        int64
	ETag        string
	ContentType string
}
