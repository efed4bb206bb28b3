package usecase

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/shandysiswandi/venture/internal/blog/entity"
	"github.com/shandysiswandi/venture/internal/pkg/config"
	"github.com/shandysiswandi/venture/internal/pkg/goerror"
	"github.com/shandysiswandi/venture/internal/pkg/idempotency"
	"github.com/shandysiswandi/venture/internal/pkg/instrument"
	"github.com/shandysiswandi/venture/internal/pkg/jwt"
	"github.com/shandysiswandi/venture/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepoDB struct {
	mock.Mock
}

func (m *mockRepoDB) ListBlogs(ctx context.Context, limit, offset int32) ([]entity.BlogSummary, int64, error) {
	args := m.Called(ctx, limit, offset)
	b, _ := args.Get(0).([]entity.BlogSummary)
	return b, args.Get(1).(int64), args.Error(2)
}

func (m *mockRepoDB) ListUserBlogs(ctx context.Context, authorID int64, limit, offset int32) ([]entity.BlogSummary, int64, error) {
	args := m.Called(ctx, authorID, limit, offset)
	b, _ := args.Get(0).([]entity.BlogSummary)
	return b, args.Get(1).(int64), args.Error(2)
}

func (m *mockRepoDB) GetBlog(ctx context.Context, id int64) (*entity.Blog, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*entity.Blog)
	return b, args.Error(1)
}

func (m *mockRepoDB) GetBlogDetail(ctx context.Context, id int64) (*entity.BlogDetail, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*entity.BlogDetail)
	return b, args.Error(1)
}

func (m *mockRepoDB) CreateBlog(ctx context.Context, in entity.NewBlog) (*entity.Blog, error) {
	args := m.Called(ctx, in)
	b, _ := args.Get(0).(*entity.Blog)
	return b, args.Error(1)
}

func (m *mockRepoDB) UpdateBlog(ctx context.Context, id, authorID int64, patch entity.BlogPatch) error {
	return m.Called(ctx, id, authorID, patch).Error(0)
}

func (m *mockRepoDB) UpdateBlogCover(ctx context.Context, id, authorID int64, key string) (string, error) {
	args := m.Called(ctx, id, authorID, key)
	return args.String(0), args.Error(1)
}

func (m *mockRepoDB) DeleteBlog(ctx context.Context, id, authorID int64) (string, error) {
	args := m.Called(ctx, id, authorID)
	return args.String(0), args.Error(1)
}

func (m *mockRepoDB) GetVoteState(ctx context.Context, blogID, userID int64) (*entity.VoteState, error) {
	args := m.Called(ctx, blogID, userID)
	v, _ := args.Get(0).(*entity.VoteState)
	return v, args.Error(1)
}

func (m *mockRepoDB) AddVote(ctx context.Context, blogID, userID int64) error {
	return m.Called(ctx, blogID, userID).Error(0)
}

func (m *mockRepoDB) RemoveVote(ctx context.Context, blogID, userID int64) error {
	return m.Called(ctx, blogID, userID).Error(0)
}

func (m *mockRepoDB) ListComments(ctx context.Context, blogID int64, limit, offset int32) ([]entity.Comment, int64, error) {
	args := m.Called(ctx, blogID, limit, offset)
	c, _ := args.Get(0).([]entity.Comment)
	return c, args.Get(1).(int64), args.Error(2)
}

func (m *mockRepoDB) CreateComment(ctx context.Context, in entity.NewComment) (*entity.Comment, error) {
	args := m.Called(ctx, in)
	c, _ := args.Get(0).(*entity.Comment)
	return c, args.Error(1)
}

type mockRepoStorage struct {
	mock.Mock
}

// PutCover drains r first so size limits surface the way a real upload does.
func (m *mockRepoStorage) PutCover(ctx context.Context, blogID int64, key string, r io.Reader, contentType string) error {
	body, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("put cover: %w", err)
	}
	return m.Called(ctx, blogID, key, string(body), contentType).Error(0)
}

func (m *mockRepoStorage) DeleteCover(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockRepoStorage) CoverURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

type mockRepoAI struct {
	mock.Mock
}

func (m *mockRepoAI) GenerateDraft(ctx context.Context, topic string) (*entity.Draft, error) {
	args := m.Called(ctx, topic)
	d, _ := args.Get(0).(*entity.Draft)
	return d, args.Error(1)
}

type mockRepoMessaging struct {
	mock.Mock
}

func (m *mockRepoMessaging) PublishBlogCommentCreated(ctx context.Context, msg BlogCommentCreatedEvent) error {
	return m.Called(ctx, msg).Error(0)
}

// memIdempotency mirrors the Redis tracker: a finished key reports its outcome.
type memIdempotency struct {
	states map[string]idempotency.State
}

func (m *memIdempotency) Acquire(context.Context, string, time.Duration) (idempotency.State, error) {
	return idempotency.StateNone, nil
}

func (m *memIdempotency) MarkCompleted(context.Context, string, time.Duration) error { return nil }

func (m *memIdempotency) MarkFailed(context.Context, string, time.Duration) error { return nil }

func (m *memIdempotency) Exec(ctx context.Context, key string, fn func(context.Context) error, _ ...idempotency.Option) error {
	switch m.states[key] {
	case idempotency.StateCompleted:
		return idempotency.ErrAlreadyCompleted
	case idempotency.StateFailed:
		return idempotency.ErrAlreadyFailed
	case idempotency.StateInProgress:
		return idempotency.ErrAlreadyInProgress
	}

	if err := fn(ctx); err != nil {
		m.states[key] = idempotency.StateFailed
		return err
	}
	m.states[key] = idempotency.StateCompleted
	return nil
}

type fixedUID int64

func (f fixedUID) Generate() int64 { return int64(f) }

type fixedUUID string

func (f fixedUUID) Generate() string { return string(f) }

var testNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

type fixture struct {
	db      *mockRepoDB
	storage *mockRepoStorage
	ai      *mockRepoAI
	mq      *mockRepoMessaging
	idemp   *memIdempotency
	uc      *Usecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	cfg, err := config.NewViperFromBytes("yaml", []byte(`
modules:
  blog:
    cover_max_size_bytes: 16
`))
	require.NoError(t, err)

	f := &fixture{
		db:      new(mockRepoDB),
		storage: new(mockRepoStorage),
		ai:      new(mockRepoAI),
		mq:      new(mockRepoMessaging),
		idemp:   &memIdempotency{states: map[string]idempotency.State{}},
	}
	f.uc = New(Dependency{
		RepoDB:        f.db,
		RepoStorage:   f.storage,
		RepoAI:        f.ai,
		RepoMessaging: f.mq,
		Idempotency:   f.idemp,
		Validator:     v,
		UID:           fixedUID(500),
		UUID:          fixedUUID("u-1"),
		Config:        cfg,
		Instrument:    instrument.NewNoop(),
	})

	t.Cleanup(func() {
		f.db.AssertExpectations(t)
		f.storage.AssertExpectations(t)
		f.ai.AssertExpectations(t)
		f.mq.AssertExpectations(t)
	})
	return f
}

func sessionCtx(uid int64) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{
		Purpose:   jwt.PurposeSession,
		UserID:    uid,
		UserEmail: "user@venture.dev",
	})
}

func verificationCtx() context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{
		Purpose:   jwt.PurposeVerification,
		UserEmail: "user@venture.dev",
	})
}

func requireCode(t *testing.T, err error, code goerror.Code) *goerror.Error {
	t.Helper()

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, code, gerr.Code(), gerr.String())
	return gerr
}

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()

	requireCode(t, err, goerror.CodeInvalidInput)
	var verr validator.V10ValidationError
	require.ErrorAs(t, err, &verr)
	return verr.Values()
}
