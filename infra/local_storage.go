package infra

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage writes uploads to a single flat directory on disk. Files are
// served back by the static /uploads route.
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &LocalStorage{dir: dir}, nil
}

// Dir returns the directory backing the static file route.
func (s *LocalStorage) Dir() string {
	return s.dir
}

func (s *LocalStorage) Save(_ context.Context, filename string, _ string, src io.Reader, _ int64) (string, error) {
	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", filename, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write file %s: %w", filename, err)
	}

	return "/uploads/" + filename, nil
}

func (s *LocalStorage) Remove(_ context.Context, filename string) error {
	return os.Remove(filepath.Join(s.dir, filename))
}
