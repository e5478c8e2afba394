package infra

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/herocatalog/superhero-catalog/config"
)

// MinioStorage stores uploads as objects in a single bucket. Public paths
// point at the MinIO endpoint (or a fronting CDN when MINIO_PUBLIC_URL is set).
type MinioStorage struct {
	Client *minio.Client
	bucket string
	base   string
}

func NewMinioStorage(cfg *config.EnvConfig) (*MinioStorage, error) {
	if cfg.Minio.RootUser == "" || cfg.Minio.RootPassword == "" {
		return nil, fmt.Errorf("MinIO credentials are not configured")
	}

	client, err := minio.New(cfg.Minio.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Minio.RootUser, cfg.Minio.RootPassword, ""),
		Secure: cfg.Minio.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MinIO client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Minio.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.Minio.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Minio.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.Minio.Bucket, err)
		}
	}

	base := cfg.Minio.PublicURL
	if base == "" {
		scheme := "http"
		if cfg.Minio.UseSSL {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s", scheme, cfg.Minio.Endpoint)
	}

	return &MinioStorage{
		Client: client,
		bucket: cfg.Minio.Bucket,
		base:   base,
	}, nil
}

func (s *MinioStorage) Save(ctx context.Context, filename string, contentType string, src io.Reader, size int64) (string, error) {
	_, err := s.Client.PutObject(ctx, s.bucket, filename, src, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to store object %s: %w", filename, err)
	}
	return fmt.Sprintf("%s/%s/%s", s.base, s.bucket, filename), nil
}

func (s *MinioStorage) Remove(ctx context.Context, filename string) error {
	return s.Client.RemoveObject(ctx, s.bucket, filename, minio.RemoveObjectOptions{})
}
