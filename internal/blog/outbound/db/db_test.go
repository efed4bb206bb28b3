package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/venture/internal/blog/entity"
	"github.com/shandysiswandi/venture/internal/pkg/goerror"
	"github.com/shandysiswandi/venture/internal/pkg/instrument"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("venture"),
		tcpostgres.WithUsername("venture"),
		tcpostgres.WithPassword("venture"),
		tcpostgres.WithInitScripts(filepath.Join("..", "..", "..", "..", "db", "migrations", "000001_init.up.sql")),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `
INSERT INTO users (id, name, email, password) VALUES
    (1, 'Ada', 'ada@venture.dev', 'x'),
    (2, 'Brian', 'brian@venture.dev', 'x')`)
	require.NoError(t, err)

	return NewDB(pool, instrument.NewNoop())
}

func ptr[T any](v T) *T { return &v }

func TestDB_Blogs(t *testing.T) {
	s := newTestDB(t)
	ctx := context.Background()

	_, err := s.GetBlog(ctx, 404)
	require.ErrorIs(t, err, goerror.ErrNotFound)

	first, err := s.CreateBlog(ctx, entity.NewBlog{ID: 10, AuthorID: 1, Title: "First", Content: "one"})
	require.NoError(t, err)
	assert.Empty(t, first.CoverKey)
	_, err = s.CreateBlog(ctx, entity.NewBlog{ID: 11, AuthorID: 2, Title: "Second", Content: "two"})
	require.NoError(t, err)

	_, err = s.CreateBlog(ctx, entity.NewBlog{ID: 12, AuthorID: 99, Title: "Ghost", Content: "x"})
	require.ErrorIs(t, err, goerror.ErrNotFound)

	// touching the first blog moves it to the top
	require.NoError(t, s.UpdateBlog(ctx, 10, 1, entity.BlogPatch{Title: ptr("First, edited")}))
	require.ErrorIs(t, s.UpdateBlog(ctx, 10, 2, entity.BlogPatch{Title: ptr("hijack")}), goerror.ErrNotFound)

	blogs, total, err := s.ListBlogs(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, blogs, 2)
	assert.Equal(t, int64(10), blogs[0].ID)
	assert.Equal(t, "First, edited", blogs[0].Title)
	assert.Equal(t, "one", blogs[0].Content)
	assert.Equal(t, "Ada", blogs[0].AuthorName)

	page2, total, err := s.ListBlogs(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, page2, 1)
	assert.Equal(t, int64(11), page2[0].ID)

	mine, total, err := s.ListUserBlogs(ctx, 2, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, mine, 1)
	assert.Equal(t, "Second", mine[0].Title)

	prev, err := s.UpdateBlogCover(ctx, 10, 1, "blogs/10/cover/a.png")
	require.NoError(t, err)
	assert.Empty(t, prev)
	prev, err = s.UpdateBlogCover(ctx, 10, 1, "blogs/10/cover/b.png")
	require.NoError(t, err)
	assert.Equal(t, "blogs/10/cover/a.png", prev)
	_, err = s.UpdateBlogCover(ctx, 10, 2, "blogs/10/cover/c.png")
	require.ErrorIs(t, err, goerror.ErrNotFound)

	detail, err := s.GetBlogDetail(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "ada@venture.dev", detail.AuthorEmail)
	assert.Equal(t, "blogs/10/cover/b.png", detail.CoverKey)

	_, err = s.DeleteBlog(ctx, 10, 2)
	require.ErrorIs(t, err, goerror.ErrNotFound)
	key, err := s.DeleteBlog(ctx, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, "blogs/10/cover/b.png", key)

	_, err = s.GetBlogDetail(ctx, 10)
	require.ErrorIs(t, err, goerror.ErrNotFound)
}

func TestDB_VotesAndComments(t *testing.T) {
	s := newTestDB(t)
	ctx := context.Background()

	_, err := s.CreateBlog(ctx, entity.NewBlog{ID: 20, AuthorID: 1, Title: "Votes", Content: "body"})
	require.NoError(t, err)

	_, err = s.GetVoteState(ctx, 404, 1)
	require.ErrorIs(t, err, goerror.ErrNotFound)
	require.ErrorIs(t, s.AddVote(ctx, 404, 1), goerror.ErrNotFound)

	require.NoError(t, s.AddVote(ctx, 20, 2))
	require.NoError(t, s.AddVote(ctx, 20, 2))
	require.NoError(t, s.AddVote(ctx, 20, 1))

	state, err := s.GetVoteState(ctx, 20, 2)
	require.NoError(t, err)
	assert.Equal(t, &entity.VoteState{Count: 2, Voted: true}, state)

	require.NoError(t, s.RemoveVote(ctx, 20, 2))
	require.NoError(t, s.RemoveVote(ctx, 20, 2))
	state, err = s.GetVoteState(ctx, 20, 2)
	require.NoError(t, err)
	assert.Equal(t, &entity.VoteState{Count: 1, Voted: false}, state)

	detail, err := s.GetBlogDetail(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.Votes)

	c1, err := s.CreateComment(ctx, entity.NewComment{ID: 1, BlogID: 20, UserID: 2, Content: "nice"})
	require.NoError(t, err)
	assert.Equal(t, "Brian", c1.UserName)
	_, err = s.CreateComment(ctx, entity.NewComment{ID: 2, BlogID: 20, UserID: 1, Content: "thanks"})
	require.NoError(t, err)

	_, err = s.CreateComment(ctx, entity.NewComment{ID: 3, BlogID: 404, UserID: 1, Content: "lost"})
	require.ErrorIs(t, err, goerror.ErrNotFound)

	comments, total, err := s.ListComments(ctx, 20, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, comments, 2)
	assert.Equal(t, "thanks", comments[0].Content)
	assert.Equal(t, "Ada", comments[0].UserName)
	assert.Equal(t, "nice", comments[1].Content)

	empty, total, err := s.ListComments(ctx, 20, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Empty(t, empty)
}
