package cart

import (
	"os"
	"path/filepath"
)

// FileStore keeps each key as a JSON file under one directory, the
// durable analog of browser local storage.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Load(key string) ([]byte, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

func (s *FileStore) Save(key string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path(key), data, 0o644)
}

// MemStore holds blobs in a map, for tests.
type MemStore struct {
	blobs map[string][]byte
}

func NewMemStore() *MemStore { return &MemStore{blobs: make(map[string][]byte)} }

func (s *MemStore) Load(key string) ([]byte, bool) {
	data, ok := s.blobs[key]
	return data, ok
}

func (s *MemStore) Save(key string, data []byte) error {
	s.blobs[key] = append([]byte(nil), data...)
	return nil
}
