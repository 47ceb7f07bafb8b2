package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	appErrors "github.com/noah-isme/myclassprogress/pkg/errors"
)

const fileExt = ".json"

// LocalStorage persists named blobs as files under a base directory.
// A positive capacity caps the total bytes held, mirroring a browser storage quota.
type LocalStorage struct {
	baseDir  string
	capacity int64
}

// NewLocalStorage ensures the base directory exists and returns a handle.
func NewLocalStorage(baseDir string, capacity int64) (*LocalStorage, error) {
	if baseDir == "" {
		baseDir = "./data"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &LocalStorage{baseDir: baseDir, capacity: capacity}, nil
}

// Read returns the blob stored under name or appErrors.ErrKeyNotFound.
func (s *LocalStorage) Read(name string) ([]byte, error) {
	data, err := os.ReadFile(s.resolve(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, appErrors.ErrKeyNotFound
		}
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

// Write replaces the blob stored under name. The write goes to a temp file first
// so a failed write never leaves a truncated blob behind.
func (s *LocalStorage) Write(name string, data []byte) error {
	path := s.resolve(name)
	if s.capacity > 0 {
		used, err := s.usageExcluding(path)
		if err != nil {
			return err
		}
		if used+int64(len(data)) > s.capacity {
			return appErrors.Wrap(
				fmt.Errorf("%d of %d bytes in use, %s needs %d", used, s.capacity, name, len(data)),
				appErrors.ErrQuotaExceeded.Code, appErrors.ErrQuotaExceeded.Status, appErrors.ErrQuotaExceeded.Message,
			)
		}
	}

	tmp, err := os.CreateTemp(s.baseDir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("commit %s: %w", name, err)
	}
	return nil
}

// Delete removes a stored blob if present.
func (s *LocalStorage) Delete(name string) error {
	if err := os.Remove(s.resolve(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	return nil
}

// Usage reports the bytes currently held by stored blobs.
func (s *LocalStorage) Usage() (int64, error) {
	return s.usageExcluding("")
}

// Path exposes the file backing name (useful for debugging).
func (s *LocalStorage) Path(name string) string {
	return s.resolve(name)
}

func (s *LocalStorage) usageExcluding(skip string) (int64, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return 0, fmt.Errorf("scan storage directory: %w", err)
	}
	var total int64
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileExt) {
			continue
		}
		path := filepath.Join(s.baseDir, entry.Name())
		if path == skip {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return 0, fmt.Errorf("stat %s: %w", entry.Name(), err)
		}
		total += info.Size()
	}
	return total, nil
}

func (s *LocalStorage) resolve(name string) string {
	return filepath.Join(s.baseDir, filepath.Base(name)+fileExt)
}
