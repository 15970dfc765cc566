package credentials

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/jkimani/safarihub/internal/filex"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Open opens (creating if needed) the local credentials database at
// dsn and brings its schema up to date. The caller owns the returned
// handle.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	if err := filex.EnsureParentDir(dsn); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open credentials db: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate credentials db: %w", err)
	}
	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, "migrations")
}
