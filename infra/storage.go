package infra

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/herocatalog/superhero-catalog/config"
)

// Storage persists uploaded image bytes under a server-generated filename.
// Save returns the public path the file is reachable at. Remove is best-effort
// cleanup and callers are expected to log and continue on failure.
type Storage interface {
	Save(ctx context.Context, filename string, contentType string, src io.Reader, size int64) (string, error)
	Remove(ctx context.Context, filename string) error
}

// InitStorage selects the storage driver: MinIO when an endpoint is
// configured, local disk otherwise.
func InitStorage(cfg *config.EnvConfig) (Storage, error) {
	if cfg.Minio.Endpoint != "" {
		return NewMinioStorage(cfg)
	}
	return NewLocalStorage(cfg.Upload.Dir)
}

// GenerateFilename builds a collision-resistant stored filename, keeping the
// original extension: superhero-<unix ms>-<random>.<ext>
func GenerateFilename(originalName string) string {
	ext := filepath.Ext(originalName)
	return fmt.Sprintf("superhero-%d-%d%s", time.Now().UnixMilli(), rand.Int63n(1_000_000_000), ext)
}
