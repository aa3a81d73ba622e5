// Package storage persists uploaded media on the local filesystem. Files
// are addressed by their generated name; there is no metadata index beyond
// the directory itself.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

var ErrFileNotFound = errors.New("file not found")

type DiskStore struct {
	basePath string
}

func NewDiskStore(basePath string) *DiskStore {
	return &DiskStore{basePath: basePath}
}

// Save streams data to a temp file and renames it into place, so a dropped
// connection never leaves a half-written file under the final name.
func (s *DiskStore) Save(name string, data io.Reader) (int64, error) {
	if err := os.MkdirAll(s.basePath, 0755); err != nil {
		return 0, err
	}

	tmpPath := filepath.Join(s.basePath, fmt.Sprintf("tmp-%d", time.Now().UnixNano()))
	defer os.Remove(tmpPath)

	f, err := os.Create(tmpPath)
	if err != nil {
		return 0, err
	}

	size, err := io.Copy(f, data)
	f.Close()
	if err != nil {
		return 0, err
	}

	if err := os.Rename(tmpPath, filepath.Join(s.basePath, name)); err != nil {
		return 0, err
	}
	return size, nil
}

func (s *DiskStore) Remove(name string) error {
	if err := os.Remove(filepath.Join(s.basePath, name)); err != nil {
		if os.IsNotExist(err) {
			return ErrFileNotFound
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
