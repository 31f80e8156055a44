package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestMapWriteError(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "ix_users_email"}
	err := mapWriteError(unique)
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.ErrorIs(t, err, unique)

	other := &pgconn.PgError{Code: "23502"}
	assert.NotErrorIs(t, mapWriteError(other), ErrDuplicateKey)

	plain := errors.New("boom")
	assert.Equal(t, plain, mapWriteError(plain))
	assert.NoError(t, mapWriteError(nil))
}

func TestOneLine(t *testing.T) {
	assert.Equal(t, "SELECT id FROM users WHERE id = $1", oneLine(`
		SELECT id
		FROM users
		WHERE id = $1
	`))
}

func TestExecutor(t *testing.T) {
	db, mock := newMockDB(t)
	ctx := context.Background()

	assert.Equal(t, sqlx.ExtContext(db), executor(ctx, db, nil))
	assert.Equal(t, sqlx.ExtContext(db), executor(ctx, db, func(context.Context) *sqlx.Tx { return nil }))

	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)
	assert.Equal(t, sqlx.ExtContext(tx), executor(ctx, db, func(context.Context) *sqlx.Tx { return tx }))
}
