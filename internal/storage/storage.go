package storage

import (
	"fmt"
	"io/fs"
	"os"
	"sync"
	"unicode/utf8"
)

// Storage loads the full text of a named file.
type Storage interface {
	ReadContents(path string) (string, error)
}

// FileStorage reads files from the local filesystem.
type FileStorage struct{}

// NewFileStorage returns a Storage backed by the operating system.
func NewFileStorage() *FileStorage {
	return &FileStorage{}
}

// ReadContents reads the whole file into memory and rejects non UTF-8 content.
func (s *FileStorage) ReadContents(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}

	return toText(path, data)
}

// MemoryStorage keeps file contents in-memory and guards access with a RWMutex.
type MemoryStorage struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemoryStorage returns an empty in-memory Storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		files: make(map[string][]byte),
	}
}

// Put stores a copy of data under path, replacing any previous contents.
func (s *MemoryStorage) Put(path string, data []byte) {
	clone := make([]byte, len(data))
	copy(clone, data)

	s.mu.Lock()
	s.files[path] = clone
	s.mu.Unlock()
}

// ReadContents returns the contents stored under path.
func (s *MemoryStorage) ReadContents(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}

	s.mu.RLock()
	data, ok := s.files[path]
	s.mu.RUnlock()

	if !ok {
		return "", fmt.Errorf("read file: %w", &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist})
	}

	return toText(path, data)
}

func toText(path string, data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("read %s: %w", path, ErrInvalidEncoding)
	}
	return string(data), nil
}
