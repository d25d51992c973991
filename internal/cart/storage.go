package cart

import (
	"errors"
	"os"
	"sync"
)

// StorageKey is the blob key carts persist under.
const StorageKey = "girly-cart"

// ErrNotFound is returned by storage when no blob exists for a key.
var ErrNotFound = errors.New("cart: blob not found")

// Storage persists serialized cart snapshots keyed by a string. A
// missing key returns ErrNotFound.
type Storage interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// MemoryStorage is a process-local Storage, used by tests and by
// callers that do not need the cart to survive restarts.
type MemoryStorage struct {
	mu    sync.RWMutex
	blobs map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{blobs: map[string]string{}}
}

func (m *MemoryStorage) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	blob, ok := m.blobs[key]
	if !ok {
		return "", ErrNotFound
	}
	return blob, nil
}

func (m *MemoryStorage) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = value
	return nil
}

// FileStorage keeps each blob in its own file under a directory.
type FileStorage struct {
	dir string
}

func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStorage{dir: dir}, nil
}

func (f *FileStorage) Get(key string) (string, error) {
	raw, err := os.ReadFile(f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (f *FileStorage) Set(key, value string) error {
	return os.WriteFile(f.path(key), []byte(value), 0o644)
}

func (f *FileStorage) path(key string) string {
	return f.dir + string(os.PathSeparator) + key + ".json"
}
