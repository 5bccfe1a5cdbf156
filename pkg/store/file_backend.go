package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	tmpSuffix       = ".tmp"
	filePermissions = 0600
)

// FileBackend stores the events blob as a JSON file on disk
type FileBackend struct {
	path string
}

// NewFileBackend creates a backend for the file at path. The file and its
// directory are created on first write.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

func (b *FileBackend) Read() (string, error) {
	data, err := os.ReadFile(b.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", b.path, err)
	}
	return string(data), nil
}

// Write saves through a temp file and a rename so a crash never leaves a
// half-written file behind
func (b *FileBackend) Write(data string) error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmpFile := b.path + tmpSuffix
	if err := os.WriteFile(tmpFile, []byte(data), filePermissions); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmpFile, err)
	}

	if err := os.Rename(tmpFile, b.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", b.path, err)
	}
	return nil
}

func (b *FileBackend) Location() string {
	return b.path
}

func (b *FileBackend) Close() error {
	return nil
}
