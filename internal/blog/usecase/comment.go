package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/shandysiswandi/venture/internal/blog/entity"
	"github.com/shandysiswandi/venture/internal/pkg/goerror"
)

type CommentListInput struct {
	BlogID int64 `validate:"required"`
	Pagination
}

type CommentItem struct {
	ID        int64
	UserID    int64
	UserName  string
	Content   string
	CreatedAt time.Time
}

type CommentListOutput struct {
	Comments []CommentItem
	Total    int64
	Page     int32
	Size     int32
}

// CommentList returns the comments of a blog, newest first.
func (s *Usecase) CommentList(ctx context.Context, in CommentListInput) (*CommentListOutput, error) {
	ctx, span := s.startSpan(ctx, "CommentList")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if _, err := s.repoDB.GetBlog(ctx, in.BlogID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, errBlogNotFound()
		}
		slog.ErrorContext(ctx, "failed to repo get blog", "blog_id", in.BlogID, "error", err)
		return nil, goerror.NewServer(err)
	}

	page := in.normalize()
	limit, offset := page.limitOffset()

	comments, total, err := s.repoDB.ListComments(ctx, in.BlogID, limit, offset)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list comments", "blog_id", in.BlogID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &CommentListOutput{
		Comments: lo.Map(comments, func(c entity.Comment, _ int) CommentItem { return commentItem(c) }),
		Total:    total,
		Page:     page.Page,
		Size:     page.Size,
	}, nil
}

type CommentCreateInput struct {
	BlogID  int64  `validate:"required"`
	Content string `validate:"required,max=1000"`
}

// CommentCreate adds a comment by the caller and notifies the blog author.
func (s *Usecase) CommentCreate(ctx context.Context, in CommentCreateInput) (*CommentItem, error) {
	ctx, span := s.startSpan(ctx, "CommentCreate")
	defer span.End()

	clm, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	in.Content = strings.TrimSpace(in.Content)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	blog, err := s.repoDB.GetBlogDetail(ctx, in.BlogID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, errBlogNotFound()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get blog detail", "blog_id", in.BlogID, "error", err)
		return nil, goerror.NewServer(err)
	}

	comment, err := s.repoDB.CreateComment(ctx, entity.NewComment{
		ID:      s.uid.Generate(),
		BlogID:  blog.ID,
		UserID:  clm.UserID,
		Content: in.Content,
	})
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "blog deleted before comment insert", "blog_id", blog.ID)
		return nil, errBlogNotFound()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create comment", "blog_id", blog.ID, "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoMessaging.PublishBlogCommentCreated(ctx, BlogCommentCreatedEvent{
		CommentID:     comment.ID,
		BlogID:        blog.ID,
		BlogTitle:     blog.Title,
		AuthorID:      blog.AuthorID,
		AuthorEmail:   blog.AuthorEmail,
		CommenterID:   comment.UserID,
		CommenterName: comment.UserName,
		Content:       comment.Content,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish blog comment created", "comment_id", comment.ID, "error", err)
	}

	item := commentItem(*comment)
	return &item, nil
}

func commentItem(c entity.Comment) CommentItem {
	return CommentItem{
		ID:        c.ID,
		UserID:    c.UserID,
		UserName:  c.UserName,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}
