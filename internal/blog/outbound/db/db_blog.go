package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/venture/internal/blog/entity"
	"github.com/shandysiswandi/venture/internal/pkg/goerror"
)

func scanBlog(row pgx.Row) (*entity.Blog, error) {
	var b entity.Blog
	if err := row.Scan(&b.ID, &b.AuthorID, &b.Title, &b.Content, &b.CoverKey, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func scanBlogSummary(row pgx.CollectableRow) (entity.BlogSummary, error) {
	var b entity.BlogSummary
	err := row.Scan(&b.ID, &b.AuthorID, &b.AuthorName, &b.Title, &b.Content, &b.CoverKey, &b.Votes, &b.UpdatedAt)
	return b, err
}

func (s *DB) ListBlogs(ctx context.Context, limit, offset int32) (_ []entity.BlogSummary, _ int64, err error) {
	ctx, span := s.startSpan(ctx, "ListBlogs")
	defer func() { s.endSpan(span, err) }()

	blogs, total, err := listPage(ctx, s.conn,
		stmt{sql: queryCountBlogs},
		stmt{sql: queryListBlogs, args: []any{limit, offset}},
		scanBlogSummary,
	)
	if err != nil {
		return nil, 0, s.mapError(err)
	}

	return blogs, total, nil
}

func (s *DB) ListUserBlogs(ctx context.Context, authorID int64, limit, offset int32) (_ []entity.BlogSummary, _ int64, err error) {
	ctx, span := s.startSpan(ctx, "ListUserBlogs")
	defer func() { s.endSpan(span, err) }()

	blogs, total, err := listPage(ctx, s.conn,
		stmt{sql: queryCountUserBlogs, args: []any{authorID}},
		stmt{sql: queryListUserBlogs, args: []any{authorID, limit, offset}},
		scanBlogSummary,
	)
	if err != nil {
		return nil, 0, s.mapError(err)
	}

	return blogs, total, nil
}

func (s *DB) GetBlog(ctx context.Context, id int64) (_ *entity.Blog, err error) {
	ctx, span := s.startSpan(ctx, "GetBlog")
	defer func() { s.endSpan(span, err) }()

	blog, err := scanBlog(s.conn.QueryRow(ctx, queryGetBlog, id))
	if err != nil {
		return nil, s.mapError(err)
	}

	return blog, nil
}

func (s *DB) GetBlogDetail(ctx context.Context, id int64) (_ *entity.BlogDetail, err error) {
	ctx, span := s.startSpan(ctx, "GetBlogDetail")
	defer func() { s.endSpan(span, err) }()

	var b entity.BlogDetail
	err = s.conn.QueryRow(ctx, queryGetBlogDetail, id).Scan(
		&b.ID, &b.AuthorID, &b.Title, &b.Content, &b.CoverKey, &b.CreatedAt, &b.UpdatedAt,
		&b.AuthorName, &b.AuthorEmail, &b.Votes,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &b, nil
}

func (s *DB) CreateBlog(ctx context.Context, in entity.NewBlog) (_ *entity.Blog, err error) {
	ctx, span := s.startSpan(ctx, "CreateBlog")
	defer func() { s.endSpan(span, err) }()

	blog, err := scanBlog(s.conn.QueryRow(ctx, queryCreateBlog, in.ID, in.AuthorID, in.Title, in.Content))
	if err != nil {
		return nil, s.mapError(err)
	}

	return blog, nil
}

// UpdateBlog returns goerror.ErrNotFound when the blog is missing or written by someone else.
func (s *DB) UpdateBlog(ctx context.Context, id, authorID int64, patch entity.BlogPatch) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateBlog")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, queryUpdateBlog, id, authorID, patch.Title, patch.Content)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

func (s *DB) UpdateBlogCover(ctx context.Context, id, authorID int64, key string) (_ string, err error) {
	ctx, span := s.startSpan(ctx, "UpdateBlogCover")
	defer func() { s.endSpan(span, err) }()

	var previous string
	if err := s.conn.QueryRow(ctx, queryUpdateBlogCover, id, authorID, key).Scan(&previous); err != nil {
		return "", s.mapError(err)
	}

	return previous, nil
}

// DeleteBlog returns the cover key of the deleted blog.
func (s *DB) DeleteBlog(ctx context.Context, id, authorID int64) (_ string, err error) {
	ctx, span := s.startSpan(ctx, "DeleteBlog")
	defer func() { s.endSpan(span, err) }()

	var coverKey string
	if err := s.conn.QueryRow(ctx, queryDeleteBlog, id, authorID).Scan(&coverKey); err != nil {
		return "", s.mapError(err)
	}

	return coverKey, nil
}
