package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/samber/lo"
	"github.com/shandysiswandi/venture/internal/blog/entity"
	"github.com/shandysiswandi/venture/internal/pkg/goerror"
)

type BlogListInput struct {
	Pagination
}

type BlogItem struct {
	ID         int64
	AuthorID   int64
	AuthorName string
	Title      string
	Content    string
	CoverURL   string
	Votes      int64
	UpdatedAt  time.Time
}

type BlogListOutput struct {
	Blogs []BlogItem
	Total int64
	Page  int32
	Size  int32
}

type BlogDetailOutput struct {
	ID          int64
	AuthorID    int64
	AuthorName  string
	AuthorEmail string
	Title       string
	Content     string
	CoverURL    string
	Votes       int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BlogList returns every blog, most recently updated first.
func (s *Usecase) BlogList(ctx context.Context, in BlogListInput) (*BlogListOutput, error) {
	ctx, span := s.startSpan(ctx, "BlogList")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	page := in.normalize()
	limit, offset := page.limitOffset()

	blogs, total, err := s.repoDB.ListBlogs(ctx, limit, offset)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list blogs", "page", page.Page, "size", page.Size, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &BlogListOutput{
		Blogs: s.blogItems(ctx, blogs),
		Total: total,
		Page:  page.Page,
		Size:  page.Size,
	}, nil
}

// UserBlogs returns the blogs written by the signed-in user.
func (s *Usecase) UserBlogs(ctx context.Context, in BlogListInput) (*BlogListOutput, error) {
	ctx, span := s.startSpan(ctx, "UserBlogs")
	defer span.End()

	clm, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	page := in.normalize()
	limit, offset := page.limitOffset()

	blogs, total, err := s.repoDB.ListUserBlogs(ctx, clm.UserID, limit, offset)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list user blogs", "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &BlogListOutput{
		Blogs: s.blogItems(ctx, blogs),
		Total: total,
		Page:  page.Page,
		Size:  page.Size,
	}, nil
}

func (s *Usecase) BlogDetail(ctx context.Context, id int64) (*BlogDetailOutput, error) {
	ctx, span := s.startSpan(ctx, "BlogDetail")
	defer span.End()

	blog, err := s.repoDB.GetBlogDetail(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, errBlogNotFound()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get blog detail", "blog_id", id, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &BlogDetailOutput{
		ID:          blog.ID,
		AuthorID:    blog.AuthorID,
		AuthorName:  blog.AuthorName,
		AuthorEmail: blog.AuthorEmail,
		Title:       blog.Title,
		Content:     blog.Content,
		CoverURL:    s.coverURL(ctx, blog.CoverKey),
		Votes:       blog.Votes,
		CreatedAt:   blog.CreatedAt,
		UpdatedAt:   blog.UpdatedAt,
	}, nil
}

func (s *Usecase) blogItems(ctx context.Context, blogs []entity.BlogSummary) []BlogItem {
	return lo.Map(blogs, func(b entity.BlogSummary, _ int) BlogItem {
		return BlogItem{
			ID:         b.ID,
			AuthorID:   b.AuthorID,
			AuthorName: b.AuthorName,
			Title:      b.Title,
			Content:    b.Content,
			CoverURL:   s.coverURL(ctx, b.CoverKey),
			Votes:      b.Votes,
			UpdatedAt:  b.UpdatedAt,
		}
	})
}
