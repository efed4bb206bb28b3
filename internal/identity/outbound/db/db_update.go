package db

import (
	"context"

	"github.com/shandysiswandi/venture/internal/pkg/goerror"
)

func (s *DB) UpdateUserPassword(ctx context.Context, email, hash string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateUserPassword")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, queryUpdateUserPassword, email, hash)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
