package dbx

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE kv (k TEXT PRIMARY KEY, v TEXT)`)
	require.NoError(t, err)
	return db
}

func count(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM kv`).Scan(&n))
	return n
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	db := setupDB(t)

	err := WithTx(context.Background(), db, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO kv (k, v) VALUES ('a', '1')`)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count(t, db))
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	db := setupDB(t)
	boom := errors.New("boom")

	err := WithTx(context.Background(), db, func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO kv (k, v) VALUES ('a', '1')`); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Zero(t, count(t, db))
}

func TestWithTx_RollsBackOnPanic(t *testing.T) {
	db := setupDB(t)

	assert.Panics(t, func() {
		_ = WithTx(context.Background(), db, func(ctx context.Context, tx DBTX) error {
			if _, err := tx.ExecContext(ctx, `INSERT INTO kv (k, v) VALUES ('a', '1')`); err != nil {
				return err
			}
			panic("kaboom")
		})
	})
	assert.Zero(t, count(t, db))
}
