// Package storage keeps saved boards in an opaque keyed blob store.
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"hexagrid/internal/board"
)

// ErrNotFound is returned when no blob exists under a path.
var ErrNotFound = errors.New("storage: not found")

// BlobStore reads and writes whole blobs by path.
type BlobStore interface {
	Read(path string) ([]byte, error)
	Write(path string, data []byte) error
	Exists(path string) (bool, error)
}

// FileStore stores blobs as files under a root directory. Relative paths
// resolve against the root; absolute paths are used as given.
type FileStore struct {
	root string
}

func NewFileStore(root string) *FileStore {
	if root == "" {
		root = "."
	}
	return &FileStore{root: root}
}

// Resolve returns the filesystem path of a blob.
func (s *FileStore) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.root, path)
}

func (s *FileStore) Read(path string) ([]byte, error) {
	b, err := os.ReadFile(s.Resolve(path))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	return b, err
}

func (s *FileStore) Exists(path string) (bool, error) {
	_, err := os.Stat(s.Resolve(path))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Write replaces the blob through a temp file and a rename, so a failed
// write leaves the previous contents in place.
func (s *FileStore) Write(path string, data []byte) error {
	dst := s.Resolve(path)
	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dst)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, dst); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// MemStore is an in-memory BlobStore.
type MemStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
	// FailWrites makes every Write return this error.
	FailWrites error
}

func NewMemStore() *MemStore {
	return &MemStore{blobs: make(map[string][]byte)}
}

func (s *MemStore) Read(path string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.blobs[path]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	return append([]byte(nil), b...), nil
}

func (s *MemStore) Write(path string, data []byte) error {
	if s.FailWrites != nil {
		return s.FailWrites
	}
	s.mu.Lock()
	s.blobs[path] = append([]byte(nil), data...)
	s.mu.Unlock()
	return nil
}

func (s *MemStore) Exists(path string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.blobs[path]
	return ok, nil
}

// Load reads and decodes a saved board. Paths ending in .csv are read as a
// table of cell notes; everything else as a JSON document.
func Load(s BlobStore, path string) (board.Document, error) {
	data, err := s.Read(path)
	if err != nil {
		return board.Document{}, fmt.Errorf("load %s: %w", path, err)
	}
	var d board.Document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		d, err = board.DecodeCSV(bytes.NewReader(data))
	default:
		d, err = board.Decode(data)
	}
	if err != nil {
		return board.Document{}, fmt.Errorf("load %s: %w", path, err)
	}
	return d, nil
}

// Save encodes and writes a board.
func Save(s BlobStore, path string, d board.Document, pretty bool) error {
	data, err := d.Encode(pretty)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := s.Write(path, data); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
