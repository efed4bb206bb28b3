package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/venture/internal/blog/entity"
	"github.com/shandysiswandi/venture/internal/pkg/goerror"
)

type BlogCreateInput struct {
	Title   string `validate:"required,max=200"`
	Content string `validate:"required,max=5000"`
}

type BlogCreateOutput struct {
	ID int64
}

func (s *Usecase) BlogCreate(ctx context.Context, in BlogCreateInput) (*BlogCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "BlogCreate")
	defer span.End()

	clm, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	blog, err := s.repoDB.CreateBlog(ctx, entity.NewBlog{
		ID:       s.uid.Generate(),
		AuthorID: clm.UserID,
		Title:    in.Title,
		Content:  in.Content,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create blog", "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &BlogCreateOutput{ID: blog.ID}, nil
}

// BlogUpdateInput changes the title, the content or both. A nil or blank
// field keeps its current value.
type BlogUpdateInput struct {
	ID      int64   `validate:"required"`
	Title   *string `validate:"omitempty,max=200"`
	Content *string `validate:"omitempty,max=5000"`
}

func (s *Usecase) BlogUpdate(ctx context.Context, in BlogUpdateInput) error {
	ctx, span := s.startSpan(ctx, "BlogUpdate")
	defer span.End()

	clm, err := s.session(ctx)
	if err != nil {
		return err
	}

	in.Title = trimmedOrNil(in.Title)
	in.Content = trimmedOrNil(in.Content)
	if in.Title == nil && in.Content == nil {
		return goerror.NewInvalidInput(nil, "title", "title or content is required")
	}
	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	err = s.repoDB.UpdateBlog(ctx, in.ID, clm.UserID, entity.BlogPatch{Title: in.Title, Content: in.Content})
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "blog not found or not owned", "blog_id", in.ID, "user_id", clm.UserID)
		return errBlogNotFound()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update blog", "blog_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

func (s *Usecase) BlogDelete(ctx context.Context, id int64) error {
	ctx, span := s.startSpan(ctx, "BlogDelete")
	defer span.End()

	clm, err := s.session(ctx)
	if err != nil {
		return err
	}

	coverKey, err := s.repoDB.DeleteBlog(ctx, id, clm.UserID)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "blog not found or not owned", "blog_id", id, "user_id", clm.UserID)
		return errBlogNotFound()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete blog", "blog_id", id, "error", err)
		return goerror.NewServer(err)
	}

	s.dropCover(ctx, coverKey)

	return nil
}

// dropCover removes an object that no blog references anymore.
func (s *Usecase) dropCover(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.repoStorage.DeleteCover(ctx, key); err != nil {
		slog.WarnContext(ctx, "failed to delete orphan blog cover", "key", key, "error", err)
	}
}

func trimmedOrNil(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}
	return &t
}
