package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/shandysiswandi/venture/internal/blog/entity"
	"github.com/shandysiswandi/venture/internal/pkg/config"
	"github.com/shandysiswandi/venture/internal/pkg/goerror"
	"github.com/shandysiswandi/venture/internal/pkg/idempotency"
	"github.com/shandysiswandi/venture/internal/pkg/instrument"
	"github.com/shandysiswandi/venture/internal/pkg/jwt"
	"github.com/shandysiswandi/venture/internal/pkg/uid"
	"github.com/shandysiswandi/venture/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type BlogCommentCreatedEvent struct {
	CommentID     int64
	BlogID        int64
	BlogTitle     string
	AuthorID      int64
	AuthorEmail   string
	CommenterID   int64
	CommenterName string
	Content       string
}

type repoMessaging interface {
	PublishBlogCommentCreated(ctx context.Context, msg BlogCommentCreatedEvent) error
}

type repoDB interface {
	ListBlogs(ctx context.Context, limit, offset int32) ([]entity.BlogSummary, int64, error)
	ListUserBlogs(ctx context.Context, authorID int64, limit, offset int32) ([]entity.BlogSummary, int64, error)
	GetBlog(ctx context.Context, id int64) (*entity.Blog, error)
	GetBlogDetail(ctx context.Context, id int64) (*entity.BlogDetail, error)

	CreateBlog(ctx context.Context, in entity.NewBlog) (*entity.Blog, error)
	UpdateBlog(ctx context.Context, id, authorID int64, patch entity.BlogPatch) error
	UpdateBlogCover(ctx context.Context, id, authorID int64, key string) (string, error)
	DeleteBlog(ctx context.Context, id, authorID int64) (string, error)

	GetVoteState(ctx context.Context, blogID, userID int64) (*entity.VoteState, error)
	AddVote(ctx context.Context, blogID, userID int64) error
	RemoveVote(ctx context.Context, blogID, userID int64) error

	ListComments(ctx context.Context, blogID int64, limit, offset int32) ([]entity.Comment, int64, error)
	CreateComment(ctx context.Context, in entity.NewComment) (*entity.Comment, error)
}

type repoStorage interface {
	PutCover(ctx context.Context, blogID int64, key string, r io.Reader, contentType string) error
	DeleteCover(ctx context.Context, key string) error
	CoverURL(ctx context.Context, key string) (string, error)
}

type repoAI interface {
	GenerateDraft(ctx context.Context, topic string) (*entity.Draft, error)
}

type Usecase struct {
	repoDB        repoDB
	repoStorage   repoStorage
	repoAI        repoAI
	repoMessaging repoMessaging
	idemp         idempotency.Idempotency
	validator     validator.Validator
	uid           uid.NumberID
	uuid          uid.StringID
	cfg           config.Config
	ins           instrument.Instrumentation
}

type Dependency struct {
	RepoDB        repoDB
	RepoStorage   repoStorage
	RepoAI        repoAI
	RepoMessaging repoMessaging
	Idempotency   idempotency.Idempotency
	Validator     validator.Validator
	UID           uid.NumberID
	UUID          uid.StringID
	Config        config.Config
	Instrument    instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoStorage:   dep.RepoStorage,
		repoAI:        dep.RepoAI,
		repoMessaging: dep.RepoMessaging,
		idemp:         dep.Idempotency,
		validator:     dep.Validator,
		uid:           dep.UID,
		uuid:          dep.UUID,
		cfg:           dep.Config,
		ins:           dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("blog.usecase").Start(ctx, name)
}

func (s *Usecase) session(ctx context.Context) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil || !clm.IsSession() || clm.UserID == 0 {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}
	return clm, nil
}

func errBlogNotFound() error {
	return goerror.NewBusiness("Blog not found", goerror.CodeNotFound)
}

// coverURL presigns key. A presign failure only drops the URL from the response.
func (s *Usecase) coverURL(ctx context.Context, key string) string {
	if key == "" {
		return ""
	}

	url, err := s.repoStorage.CoverURL(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "failed to presign blog cover", "key", key, "error", err)
		return ""
	}
	return url
}
