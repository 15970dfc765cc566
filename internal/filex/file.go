// Package filex holds small filesystem helpers used by the CLI and the
// credential store.
package filex

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrFileTooLarge is returned by ReadLimited when the file exceeds the
// given limit.
var ErrFileTooLarge = errors.New("file too large")

// EnsureParentDir creates the parent directory of path if it does not
// exist yet, so opening a database file in a fresh state directory
// works on first run.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// ReadLimited reads a file whole, refusing files larger than limit
// bytes. Used for profile picture uploads, which the backend caps.
func ReadLimited(path string, limit int64) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > limit {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit %d", ErrFileTooLarge, path, info.Size(), limit)
	}
	return os.ReadFile(path)
}
