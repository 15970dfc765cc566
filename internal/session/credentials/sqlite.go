package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jkimani/safarihub/internal/dbx"
)

// SQLiteRepository implements Repository over a key/value table.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository binds a repository to an opened database. The
// schema is expected to be migrated already (see Open).
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func get(ctx context.Context, tx dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := tx.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return nil, err
	}
	return value, nil
}

func set(ctx context.Context, tx dbx.DBTX, key string, value []byte) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

// Load reads both entries inside one transaction. A pair with either
// entry missing is treated as absent, never returned half-filled.
func (r *SQLiteRepository) Load(ctx context.Context) (*Pair, error) {
	var p *Pair
	err := dbx.WithTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		token, err := get(ctx, tx, KeyToken)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("load credential token: %w", err)
		}

		user, err := get(ctx, tx, KeyUser)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("load credential user: %w", err)
		}

		p = &Pair{Token: string(token), User: user}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Save upserts both entries in one transaction.
func (r *SQLiteRepository) Save(ctx context.Context, p *Pair) error {
	return dbx.WithTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, KeyToken, []byte(p.Token)); err != nil {
			return fmt.Errorf("save credential token: %w", err)
		}
		if err := set(ctx, tx, KeyUser, p.User); err != nil {
			return fmt.Errorf("save credential user: %w", err)
		}
		return nil
	})
}

// Clear deletes both entries in one transaction.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM credentials WHERE key IN (?, ?)`, KeyToken, KeyUser)
		if err != nil {
			return fmt.Errorf("clear credentials: %w", err)
		}
		return nil
	})
}
