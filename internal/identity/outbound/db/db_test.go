package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/venture/internal/identity/entity"
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

	return NewDB(pool, instrument.NewNoop())
}

func TestDB_Users(t *testing.T) {
	s := newTestDB(t)
	ctx := context.Background()

	_, err := s.GetUserByEmail(ctx, "nobody@venture.dev")
	require.ErrorIs(t, err, goerror.ErrNotFound)

	created, err := s.CreateUser(ctx, entity.NewUser{ID: 11, Name: "Ada Lovelace", Email: "ada@venture.dev", Password: "hash-1"})
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = s.CreateUser(ctx, entity.NewUser{ID: 12, Name: "Ada Again", Email: "ada@venture.dev", Password: "hash-2"})
	require.ErrorIs(t, err, goerror.ErrConflict)

	byEmail, err := s.GetUserByEmail(ctx, "ada@venture.dev")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", byEmail.Name)

	require.NoError(t, s.UpdateUserPassword(ctx, "ada@venture.dev", "hash-3"))
	byID, err := s.GetUserByID(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, "hash-3", byID.Password)

	require.ErrorIs(t, s.UpdateUserPassword(ctx, "nobody@venture.dev", "x"), goerror.ErrNotFound)
}
