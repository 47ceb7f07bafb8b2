package repository

import (
	"context"

	"github.com/noah-isme/myclassprogress/pkg/storage"
)

// FileBackend stores each key as a JSON file through LocalStorage.
type FileBackend struct {
	files *storage.LocalStorage
}

// NewFileBackend wraps a LocalStorage handle.
func NewFileBackend(files *storage.LocalStorage) *FileBackend {
	return &FileBackend{files: files}
}

// Get returns the file contents or appErrors.ErrKeyNotFound.
func (b *FileBackend) Get(_ context.Context, key string) (string, error) {
	data, err := b.files.Read(key)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Set replaces the file for key; quota violations surface as appErrors.ErrQuotaExceeded.
func (b *FileBackend) Set(_ context.Context, key, value string) error {
	return b.files.Write(key, []byte(value))
}

// Remove deletes the file for key.
func (b *FileBackend) Remove(_ context.Context, key string) error {
	return b.files.Delete(key)
}
