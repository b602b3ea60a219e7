package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shopstream/storefront/internal/core/ports"
)

// File persists each key as a separate file under a state directory.
// Writes go through a temp file and rename so a crash never leaves a
// half-written value behind.
type File struct {
	dir string
}

var _ ports.Storage = (*File)(nil)

// NewFile creates the state directory if needed and returns a
// file-backed Storage rooted there.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("storage: create state dir: %w", err)
	}
	return &File{dir: dir}, nil
}

func (f *File) Get(key string) ([]byte, error) {
	raw, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ports.ErrKeyNotFound
		}
		return nil, err
	}
	return raw, nil
}

func (f *File) Set(key string, value []byte) error {
	tmp, err := os.CreateTemp(f.dir, key+".*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.path(key))
}

func (f *File) Delete(key string) error {
	if err := os.Remove(f.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}
