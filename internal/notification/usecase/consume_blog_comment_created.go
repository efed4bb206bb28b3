package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/venture/internal/pkg/goerror"
	"github.com/shandysiswandi/venture/internal/pkg/mail"
)

type ConsumeBlogCommentCreatedInput struct {
	CommentID     int64  `validate:"required,gt=0"`
	BlogID        int64  `validate:"required,gt=0"`
	BlogTitle     string `validate:"required"`
	AuthorID      int64  `validate:"required,gt=0"`
	AuthorEmail   string `validate:"required,email"`
	CommenterID   int64  `validate:"required,gt=0"`
	CommenterName string `validate:"required"`
	Content       string `validate:"required"`
}

// ConsumeBlogCommentCreated tells the blog author about a new comment.
// Authors are not notified about their own comments.
func (s *Usecase) ConsumeBlogCommentCreated(ctx context.Context, in ConsumeBlogCommentCreatedInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeBlogCommentCreated")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "Validation failed", "comment_id", in.CommentID, "error", err)
		return nil
	}

	if in.CommenterID == in.AuthorID {
		slog.DebugContext(ctx, "skip notification for own comment", "comment_id", in.CommentID)
		return nil
	}

	data := s.baseTemplateData()
	data["blog_title"] = in.BlogTitle
	data["commenter_name"] = in.CommenterName
	data["content"] = in.Content
	if web, _ := data["web_url"].(string); web != "" {
		data["blog_url"] = fmt.Sprintf("%s/blogs/%d", strings.TrimSuffix(web, "/"), in.BlogID)
	}

	html, err := render(commentHTML, data)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render comment email", "comment_id", in.CommentID, "error", err)
		return goerror.NewServer(err)
	}

	text, err := render(commentText, data)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render comment email text", "comment_id", in.CommentID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoMail.Send(ctx, mail.Message{
		To:       []string{in.AuthorEmail},
		Subject:  "New comment on " + in.BlogTitle,
		TextBody: text,
		HTMLBody: html,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to send comment email", "comment_id", in.CommentID, "error", err)
		return goerror.NewDependency(err, "Failed to send comment email")
	}

	slog.InfoContext(ctx, "comment email sent", "comment_id", in.CommentID, "author_id", in.AuthorID)
	return nil
}
