package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mcoot/hoopsclient/internal/model"
	"github.com/mcoot/hoopsclient/internal/storage"
)

// Storage keeps each key in its own file inside a private directory
type Storage struct {
	dir string
}

// New creates a file storage rooted at dir. The directory is created on first write.
func New(dir string) *Storage {
	return &Storage{dir: dir}
}

// DefaultDir returns ~/.hoops, or a relative .hoops when the home directory is unknown
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hoops"
	}
	return filepath.Join(home, ".hoops")
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Dir returns the directory holding the key files
func (s *Storage) Dir() string {
	return s.dir
}

func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	path, err := s.path(key)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", model.ErrKeyNotFound
		}
		return "", err
	}
	return string(data), nil
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return err
	}

	// Write to a sibling temp file first so a crash never leaves a half-written value
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Storage) path(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.dir, key), nil
}
