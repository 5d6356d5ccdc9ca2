package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// File stores each key as a file in a directory.
// Writes go to a temporary file that is renamed into place, so a crash never
// leaves a half-written configuration behind.
type File struct {
	dir string
}

// NewFile creates a file store in dir, creating the directory if needed.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, storageErr(err, "create storage directory %s", dir)
	}
	return &File{dir: dir}, nil
}

// Dir returns the directory the store writes to.
func (f *File) Dir() string { return f.dir }

// Get retrieves a value.
func (f *File) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, storageErr(err, "read %q", key)
	}
	return data, true, nil
}

// Set stores a value.
func (f *File) Set(ctx context.Context, key string, data []byte) error {
	path := f.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return storageErr(err, "create directory for %q", key)
	}

	tmp := filepath.Join(filepath.Dir(path), fmt.Sprintf(".%s.tmp", uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return storageErr(err, "write %q", key)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return storageErr(err, "replace %q", key)
	}
	return nil
}

// Delete removes a value.
func (f *File) Delete(ctx context.Context, key string) error {
	err := os.Remove(f.path(key))
	if err == nil || os.IsNotExist(err) {
		return nil
	}
	return storageErr(err, "delete %q", key)
}

// Close does nothing for the file store.
func (f *File) Close() error { return nil }

// path maps a key to <dir>/<first two hash chars>/<rest>.json.
func (f *File) path(key string) string {
	sum := sha256.Sum256([]byte(key))
	hash := hex.EncodeToString(sum[:])
	return filepath.Join(f.dir, hash[:2], hash[2:]+".json")
}

var _ Storage = (*File)(nil)
