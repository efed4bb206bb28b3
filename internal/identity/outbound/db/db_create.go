package db

import (
	"context"

	"github.com/shandysiswandi/venture/internal/identity/entity"
)

func (s *DB) CreateUser(ctx context.Context, in entity.NewUser) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { s.endSpan(span, err) }()

	user, err := scanUser(s.conn.QueryRow(ctx, queryCreateUser, in.ID, in.Name, in.Email, in.Password))
	if err != nil {
		return nil, translate(err)
	}

	return user, nil
}
