package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	apperrors "github.com/alexisbeaulieu97/designvars/pkg/errors"
)

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// FileStore keeps one file per key inside a directory.
type FileStore struct {
	dir string
	mu  sync.RWMutex
}

// NewFileStore creates the directory if needed and returns a FileStore rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory backing the store.
func (s *FileStore) Dir() string {
	return s.dir
}

// Get reads the value stored under key.
func (s *FileStore) Get(ctx context.Context, key string) (string, bool, error) {
	path, err := s.pathFor(key)
	if err != nil {
		return "", false, err
	}
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, apperrors.NewStorageError("get", key, err)
	}

	return string(data), true, nil
}

// Set writes value under key atomically.
func (s *FileStore) Set(ctx context.Context, key, value string) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Each writer gets its own temp file so concurrent processes never share one.
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return apperrors.NewStorageError("set", key, fmt.Errorf("create temporary file: %w", err))
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return apperrors.NewStorageError("set", key, fmt.Errorf("write temporary file: %w", err))
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return apperrors.NewStorageError("set", key, fmt.Errorf("chmod temporary file: %w", err))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return apperrors.NewStorageError("set", key, fmt.Errorf("close temporary file: %w", err))
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return apperrors.NewStorageError("set", key, fmt.Errorf("rename temporary file: %w", err))
	}

	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return apperrors.NewStorageError("delete", key, err)
	}
	return nil
}

func (s *FileStore) pathFor(key string) (string, error) {
	if !keyPattern.MatchString(key) {
		return "", apperrors.NewStorageError("resolve", key, fmt.Errorf("invalid key"))
	}
	return filepath.Join(s.dir, key+".json"), nil
}

var _ KV = (*FileStore)(nil)
