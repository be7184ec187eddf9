package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"miniblog/internal/config"
)

// MinIOStorage - альтернативный бэкенд загрузок (STORAGE_BACKEND=minio).
type MinIOStorage struct {
	client *minio.Client
	cfg    *config.Config
}

func NewMinIOStorage(cfg *config.Config) (*MinIOStorage, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("не удалось создать клиент MinIO: %w", err)
	}

	ctx := context.Background()

	exists, err := client.BucketExists(ctx, cfg.MinIO.BucketName)
	if err != nil {
		return nil, fmt.Errorf("ошибка проверки бакета: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.MinIO.BucketName, minio.MakeBucketOptions{
			Region: cfg.MinIO.Region,
		})
		if err != nil {
			return nil, fmt.Errorf("не удалось создать бакет %s: %w", cfg.MinIO.BucketName, err)
		}
	}

	return &MinIOStorage{client: client, cfg: cfg}, nil
}

func (m *MinIOStorage) Save(ctx context.Context, objectName string, file io.Reader, size int64) (string, error) {
	contentType := mime.TypeByExtension(filepath.Ext(objectName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := m.client.PutObject(ctx, m.cfg.MinIO.BucketName, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
		})
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки в MinIO: %w", err)
	}

	scheme := "http"
	if m.cfg.MinIO.UseSSL {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s/%s/%s",
		scheme, m.cfg.MinIO.Endpoint, m.cfg.MinIO.BucketName, objectName), nil
}
