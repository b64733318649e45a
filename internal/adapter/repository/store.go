package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists builder state as one JSON file per logical key under a
// data directory. There is a single writer, so no locking is needed beyond
// whole-file writes.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Save serializes v under the key, replacing any previous value.
func (s *FileStore) Save(key string, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("store: marshal %s: %w", key, err)
	}
	if err := os.WriteFile(s.path(key), b, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

// Load reads the key into v. Missing or corrupt data returns an error; the
// caller falls back to defaults.
func (s *FileStore) Load(key string, v interface{}) error {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		return fmt.Errorf("store: read %s: %w", key, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("store: corrupt %s: %w", key, err)
	}
	return nil
}
