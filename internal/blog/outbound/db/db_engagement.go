package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/venture/internal/blog/entity"
)

func (s *DB) GetVoteState(ctx context.Context, blogID, userID int64) (_ *entity.VoteState, err error) {
	ctx, span := s.startSpan(ctx, "GetVoteState")
	defer func() { s.endSpan(span, err) }()

	var v entity.VoteState
	if err := s.conn.QueryRow(ctx, queryGetVoteState, blogID, userID).Scan(&v.Count, &v.Voted); err != nil {
		return nil, s.mapError(err)
	}

	return &v, nil
}

// AddVote is a no-op when the vote already exists.
func (s *DB) AddVote(ctx context.Context, blogID, userID int64) (err error) {
	ctx, span := s.startSpan(ctx, "AddVote")
	defer func() { s.endSpan(span, err) }()

	if _, err := s.conn.Exec(ctx, queryAddVote, blogID, userID); err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *DB) RemoveVote(ctx context.Context, blogID, userID int64) (err error) {
	ctx, span := s.startSpan(ctx, "RemoveVote")
	defer func() { s.endSpan(span, err) }()

	if _, err := s.conn.Exec(ctx, queryRemoveVote, blogID, userID); err != nil {
		return s.mapError(err)
	}

	return nil
}

func scanComment(row pgx.CollectableRow) (entity.Comment, error) {
	var c entity.Comment
	err := row.Scan(&c.ID, &c.BlogID, &c.UserID, &c.UserName, &c.Content, &c.CreatedAt)
	return c, err
}

func (s *DB) ListComments(ctx context.Context, blogID int64, limit, offset int32) (_ []entity.Comment, _ int64, err error) {
	ctx, span := s.startSpan(ctx, "ListComments")
	defer func() { s.endSpan(span, err) }()

	comments, total, err := listPage(ctx, s.conn,
		stmt{sql: queryCountComments, args: []any{blogID}},
		stmt{sql: queryListComments, args: []any{blogID, limit, offset}},
		scanComment,
	)
	if err != nil {
		return nil, 0, s.mapError(err)
	}

	return comments, total, nil
}

func (s *DB) CreateComment(ctx context.Context, in entity.NewComment) (_ *entity.Comment, err error) {
	ctx, span := s.startSpan(ctx, "CreateComment")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, queryCreateComment, in.ID, in.BlogID, in.UserID, in.Content)

	var c entity.Comment
	if err := row.Scan(&c.ID, &c.BlogID, &c.UserID, &c.UserName, &c.Content, &c.CreatedAt); err != nil {
		return nil, s.mapError(err)
	}

	return &c, nil
}
