package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type stmt struct {
	sql  string
	args []any
}

// listPage runs the count and the page query in one round trip.
func listPage[T any](ctx context.Context, conn *pgxpool.Pool, count, list stmt, scan pgx.RowToFunc[T]) (_ []T, _ int64, err error) {
	batch := &pgx.Batch{}
	batch.Queue(count.sql, count.args...)
	batch.Queue(list.sql, list.args...)

	br := conn.SendBatch(ctx, batch)
	defer func() { err = errors.Join(err, br.Close()) }()

	var total int64
	if err := br.QueryRow().Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := br.Query()
	if err != nil {
		return nil, 0, err
	}

	items, err := pgx.CollectRows(rows, scan)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}
