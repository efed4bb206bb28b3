package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/venture/internal/pkg/goerror"
)

const defaultCoverMaxSize int64 = 2 << 20

//nolint:gochecknoglobals // global for fast reuse
var coverContentTypeExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

var errCoverTooLarge = errors.New("cover exceeds max size")

type BlogUpdateCoverInput struct {
	ID          int64
	File        io.Reader
	ContentType string
}

type BlogUpdateCoverOutput struct {
	CoverURL string
}

// BlogUpdateCover uploads a new cover image for a blog the caller wrote and
// removes the previous one.
func (s *Usecase) BlogUpdateCover(ctx context.Context, in BlogUpdateCoverInput) (*BlogUpdateCoverOutput, error) {
	ctx, span := s.startSpan(ctx, "BlogUpdateCover")
	defer span.End()

	clm, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	if in.File == nil {
		return nil, goerror.NewInvalidInput(nil, "cover", "cover file is required")
	}

	contentType := strings.ToLower(strings.TrimSpace(in.ContentType))
	ext, ok := coverContentTypeExt[contentType]
	if !ok {
		return nil, goerror.NewInvalidInput(nil, "cover", "unsupported cover content type")
	}

	blog, err := s.repoDB.GetBlog(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) || (err == nil && blog.AuthorID != clm.UserID) {
		slog.WarnContext(ctx, "blog not found or not owned", "blog_id", in.ID, "user_id", clm.UserID)
		return nil, errBlogNotFound()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get blog", "blog_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	maxSize := s.cfg.GetInt64("modules.blog.cover_max_size_bytes")
	if maxSize <= 0 {
		maxSize = defaultCoverMaxSize
	}

	key := fmt.Sprintf("blogs/%d/cover/%s%s", blog.ID, s.uuid.Generate(), ext)
	err = s.repoStorage.PutCover(ctx, blog.ID, key, &maxBytesReader{r: in.File, max: maxSize}, contentType)
	if errors.Is(err, errCoverTooLarge) {
		return nil, goerror.NewInvalidInput(nil, "cover", fmt.Sprintf("cover must be at most %d bytes", maxSize))
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to upload blog cover", "blog_id", blog.ID, "error", err)
		return nil, goerror.NewDependency(err, "Failed to store cover image")
	}

	previous, err := s.repoDB.UpdateBlogCover(ctx, blog.ID, clm.UserID, key)
	if err != nil {
		s.dropCover(ctx, key)
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, errBlogNotFound()
		}
		slog.ErrorContext(ctx, "failed to repo update blog cover", "blog_id", blog.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	s.dropCover(ctx, previous)

	return &BlogUpdateCoverOutput{CoverURL: s.coverURL(ctx, key)}, nil
}

// maxBytesReader fails with errCoverTooLarge once more than max bytes are read.
type maxBytesReader struct {
	r     io.Reader
	max   int64
	read  int64
	buf   [1]byte
	ended bool
}

func (m *maxBytesReader) Read(p []byte) (int, error) {
	if m.read >= m.max {
		if m.ended {
			return 0, errCoverTooLarge
		}

		n, err := m.r.Read(m.buf[:])
		if n > 0 || err == nil {
			m.ended = true
			return 0, errCoverTooLarge
		}
		return 0, err
	}

	remaining := m.max - m.read
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err := m.r.Read(p)
	m.read += int64(n)
	return n, err
}
