// Package dbx holds the tiny database/sql abstractions shared by the
// local repositories: a DBTX interface satisfied by both *sql.DB and
// *sql.Tx, and a transaction helper.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql the repositories use. Passing a
// *sql.Tx instead of a *sql.DB runs the same repository code inside a
// transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs fn inside a transaction, committing on success and
// rolling back on error or panic. Panics are rethrown after rollback.
func WithTx(ctx context.Context, db *sql.DB, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}
