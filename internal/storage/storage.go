package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Storage перекладывает провалидированный файл в публичное хранилище и
// возвращает ссылку, пригодную для подстановки в шаблон.
type Storage interface {
	Save(ctx context.Context, objectName string, file io.Reader, size int64) (string, error)
}

// DiskStorage кладёт файлы в локальный каталог public/uploads.
type DiskStorage struct {
	dir string
}

func NewDiskStorage(dir string) *DiskStorage {
	return &DiskStorage{dir: dir}
}

func (d *DiskStorage) Save(ctx context.Context, objectName string, file io.Reader, size int64) (string, error) {
	if err := os.MkdirAll(d.dir, 0o775); err != nil {
		return "", fmt.Errorf("не удалось создать каталог %s: %w", d.dir, err)
	}

	targetPath := filepath.Join(d.dir, objectName)

	dst, err := os.Create(targetPath)
	if err != nil {
		return "", fmt.Errorf("не удалось создать файл %s: %w", targetPath, err)
	}

	_, err = io.Copy(dst, file)
	closeErr := dst.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		// недописанный файл не оставляем
		os.Remove(targetPath)
		return "", fmt.Errorf("не удалось записать файл %s: %w", targetPath, err)
	}

	return "uploads/" + objectName, nil
}
