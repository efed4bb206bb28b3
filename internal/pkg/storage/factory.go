package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	// DriverS3 selects the AWS S3 backend.
	DriverS3 = "s3"
	// DriverMinIO selects the MinIO backend.
	DriverMinIO = "minio"
)

// ErrUnknownDriver indicates an unsupported storage driver.
var ErrUnknownDriver = errors.New("storage: unknown driver")

// FactoryOptions carries the per-driver settings; only the selected one is read.
type FactoryOptions struct {
	S3    S3Options
	MinIO MinIOOptions
}

var drivers = map[string]func(context.Context, FactoryOptions) (Storage, error){
	DriverS3:    func(ctx context.Context, o FactoryOptions) (Storage, error) { return NewS3(ctx, o.S3) },
	DriverMinIO: func(_ context.Context, o FactoryOptions) (Storage, error) { return NewMinIO(o.MinIO) },
}

// NewFromDriver builds the backend registered under driver (case-insensitive).
func NewFromDriver(ctx context.Context, driver string, opts FactoryOptions) (Storage, error) {
	build, ok := drivers[strings.ToLower(strings.TrimSpace(driver))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
	return build(ctx, opts)
}
