package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state", "creds.db")
	require.NoError(t, EnsureParentDir(path))

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureParentDir_BareFilename(t *testing.T) {
	assert.NoError(t, EnsureParentDir("creds.db"))
}

func TestReadLimited(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pic.jpg")
	require.NoError(t, os.WriteFile(path, []byte("image-bytes"), 0o600))

	data, err := ReadLimited(path, 1024)
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), data)
}

func TestReadLimited_TooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.jpg")
	require.NoError(t, os.WriteFile(path, make([]byte, 100), 0o600))

	_, err := ReadLimited(path, 10)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestReadLimited_Missing(t *testing.T) {
	_, err := ReadLimited(filepath.Join(t.TempDir(), "nope.jpg"), 10)
	assert.Error(t, err)
}
