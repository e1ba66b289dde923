package blob

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// FSStore keeps objects on the local filesystem. Dev fallback when no
// S3-compatible endpoint is configured; keys map directly to file paths
// under the root directory.
type FSStore struct {
	Root string
}

func NewFSStore(root string) *FSStore {
	return &FSStore{Root: root}
}

func (s *FSStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	path := filepath.Join(s.Root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(path)
		return err
	}
	return f.Sync()
}
