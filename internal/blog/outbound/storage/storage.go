package storage

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shandysiswandi/venture/internal/pkg/instrument"
	"github.com/shandysiswandi/venture/internal/pkg/storage"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const defaultPresignExpiry = 15 * time.Minute

// Cover stores blog cover images in one bucket.
type Cover struct {
	client storage.Storage
	bucket string
	expiry time.Duration
	ins    instrument.Instrumentation
}

func NewCover(client storage.Storage, bucket string, expiry time.Duration, ins instrument.Instrumentation) *Cover {
	if expiry <= 0 {
		expiry = defaultPresignExpiry
	}
	return &Cover{client: client, bucket: bucket, expiry: expiry, ins: ins}
}

func (c *Cover) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return c.ins.Tracer("blog.outbound.storage").Start(ctx, name)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (c *Cover) PutCover(ctx context.Context, blogID int64, key string, r io.Reader, contentType string) (err error) {
	ctx, span := c.startSpan(ctx, "PutCover")
	defer func() { endSpan(span, err) }()

	_, err = c.client.PutObject(ctx, c.bucket, key, r, storage.PutOptions{
		Size:        -1,
		ContentType: contentType,
		Metadata:    map[string]string{"blog_id": strconv.FormatInt(blogID, 10)},
	})
	if err != nil {
		return fmt.Errorf("put cover %s: %w", key, err)
	}

	return nil
}

func (c *Cover) DeleteCover(ctx context.Context, key string) (err error) {
	ctx, span := c.startSpan(ctx, "DeleteCover")
	defer func() { endSpan(span, err) }()

	return c.client.DeleteObject(ctx, c.bucket, key)
}

// CoverURL returns a presigned download URL valid for the configured expiry.
func (c *Cover) CoverURL(ctx context.Context, key string) (_ string, err error) {
	ctx, span := c.startSpan(ctx, "CoverURL")
	defer func() { endSpan(span, err) }()

	return c.client.PresignGet(ctx, c.bucket, key, c.expiry)
}
