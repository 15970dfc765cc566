package credentials

import (
	"context"
	"database/sql"
	"path/filepath"
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

	_, err = db.Exec(`
CREATE TABLE credentials (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestLoad_EmptyStore(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))

	pair, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, pair)
}

func TestSaveThenLoad(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	in := &Pair{Token: "tok-1", User: []byte(`{"id":1}`)}
	require.NoError(t, repo.Save(ctx, in))

	out, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "tok-1", out.Token)
	assert.JSONEq(t, `{"id":1}`, string(out.User))
}

func TestSave_ReplacesPreviousPair(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &Pair{Token: "old", User: []byte(`{"id":1}`)}))
	require.NoError(t, repo.Save(ctx, &Pair{Token: "new", User: []byte(`{"id":2}`)}))

	out, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "new", out.Token)
	assert.JSONEq(t, `{"id":2}`, string(out.User))
}

func TestClear(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &Pair{Token: "tok", User: []byte(`{}`)}))
	require.NoError(t, repo.Clear(ctx))

	pair, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, pair)

	// Clearing an already empty store is fine.
	require.NoError(t, repo.Clear(ctx))
}

// A half-written pair must never be observable. Simulate external
// damage by deleting one key directly; Load treats the remainder as
// absent.
func TestLoad_HalfPairIsAbsent(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &Pair{Token: "tok", User: []byte(`{}`)}))
	_, err := db.Exec(`DELETE FROM credentials WHERE key = ?`, KeyUser)
	require.NoError(t, err)

	pair, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, pair)
}

func TestOpen_RunsMigrations(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "creds.db")

	db, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewSQLiteRepository(db)
	require.NoError(t, repo.Save(context.Background(), &Pair{Token: "t", User: []byte(`{}`)}))
}
