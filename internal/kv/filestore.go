package kv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps one file per key inside a directory. Values are
// written as-is; human-readable, portable. No locking for v1; fine for
// a local single-user CLI.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed and returns a store
// rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// path maps a key to a file inside the store directory. Separators are
// flattened so a key can never escape the directory.
func (f *FileStore) path(key string) string {
	safe := strings.NewReplacer("/", "_", string(filepath.Separator), "_").Replace(key)
	return filepath.Join(f.dir, safe)
}

func (f *FileStore) Get(key string) (string, bool) {
	b, err := os.ReadFile(f.path(key))
	if err != nil {
		return "", false
	}
	return string(b), true
}

func (f *FileStore) Set(key, value string) error {
	p := f.path(key)
	if err := os.WriteFile(p, []byte(value), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", p, err)
	}
	return nil
}
