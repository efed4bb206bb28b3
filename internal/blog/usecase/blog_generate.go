package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shandysiswandi/venture/internal/blog/entity"
	"github.com/shandysiswandi/venture/internal/pkg/goerror"
	"github.com/shandysiswandi/venture/internal/pkg/idempotency"
)

const (
	maxTitleRunes   = 200
	maxContentRunes = 5000

	generateKeyPrefix    = "blog:generate:"
	defaultGenerateLock  = 2 * time.Minute
	defaultGenerateState = 24 * time.Hour
)

type BlogGenerateInput struct {
	Topic          string `validate:"required,max=200"`
	IdempotencyKey string `validate:"required,max=100"`
}

// BlogGenerate asks the AI provider for a draft on topic and saves it as a
// blog of the caller. One Idempotency-Key produces at most one blog.
func (s *Usecase) BlogGenerate(ctx context.Context, in BlogGenerateInput) (*BlogCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "BlogGenerate")
	defer span.End()

	clm, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	in.Topic = strings.TrimSpace(in.Topic)
	in.IdempotencyKey = strings.TrimSpace(in.IdempotencyKey)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	lock := s.cfg.GetSecond("modules.blog.ai_lock_seconds")
	if lock <= 0 {
		lock = defaultGenerateLock
	}

	var out *BlogCreateOutput
	key := fmt.Sprintf("%s%d:%s", generateKeyPrefix, clm.UserID, in.IdempotencyKey)
	err = s.idemp.Exec(ctx, key, func(ctx context.Context) error {
		var errRun error
		out, errRun = s.generate(ctx, clm.UserID, in.Topic)
		return errRun
	}, idempotency.WithLockDuration(lock), idempotency.WithStateTTL(defaultGenerateState))

	switch {
	case err == nil:
		return out, nil
	case errors.Is(err, idempotency.ErrAlreadyInProgress):
		return nil, goerror.NewBusiness("Request with this Idempotency-Key is in progress", goerror.CodeConflict)
	case errors.Is(err, idempotency.ErrAlreadyCompleted):
		return nil, goerror.NewBusiness("Idempotency-Key already used", goerror.CodeConflict)
	case errors.Is(err, idempotency.ErrAlreadyFailed):
		return nil, goerror.NewBusiness("Request with this Idempotency-Key failed, use a new key", goerror.CodeConflict)
	}

	var gerr *goerror.Error
	if errors.As(err, &gerr) {
		return nil, err
	}

	slog.ErrorContext(ctx, "failed to run blog generation", "user_id", clm.UserID, "error", err)
	return nil, goerror.NewServer(err)
}

func (s *Usecase) generate(ctx context.Context, authorID int64, topic string) (*BlogCreateOutput, error) {
	draft, err := s.repoAI.GenerateDraft(ctx, topic)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate blog draft", "user_id", authorID, "error", err)
		return nil, goerror.NewDependency(err, "Failed to generate blog")
	}

	title := truncateRunes(strings.TrimSpace(draft.Title), maxTitleRunes)
	content := truncateRunes(strings.TrimSpace(draft.Content), maxContentRunes)
	if title == "" {
		title = truncateRunes(topic, maxTitleRunes)
	}
	if content == "" {
		slog.ErrorContext(ctx, "blog draft has no content", "user_id", authorID)
		return nil, goerror.NewDependency(errors.New("empty draft content"), "Failed to generate blog")
	}

	blog, err := s.repoDB.CreateBlog(ctx, entity.NewBlog{
		ID:       s.uid.Generate(),
		AuthorID: authorID,
		Title:    title,
		Content:  content,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create generated blog", "user_id", authorID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &BlogCreateOutput{ID: blog.ID}, nil
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n]))
}
