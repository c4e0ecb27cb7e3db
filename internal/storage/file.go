package storage

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// File is a file-backed key-value store: one JSON file per key under a base
// directory, with a write-through in-memory cache. Reads fall back to disk
// on a cache miss; a missing or unreadable file is an absent key, not an
// error.
type File struct {
	dir string

	mu    sync.RWMutex
	cache map[string][]byte
}

// NewFile creates a file store rooted at dir, creating it if needed.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &File{dir: dir, cache: make(map[string][]byte)}, nil
}

// Get retrieves a value, consulting the cache before disk.
func (f *File) Get(key string) ([]byte, bool) {
	f.mu.RLock()
	cached, ok := f.cache[key]
	f.mu.RUnlock()
	if ok {
		out := make([]byte, len(cached))
		copy(out, cached)
		return out, true
	}

	data, err := os.ReadFile(f.keyPath(key))
	if err != nil {
		return nil, false
	}

	f.mu.Lock()
	f.cache[key] = data
	f.mu.Unlock()
	return data, true
}

// Set writes a value to disk and updates the cache. The cache is updated
// even when the disk write fails so the session keeps its state.
func (f *File) Set(key string, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)

	f.mu.Lock()
	f.cache[key] = v
	f.mu.Unlock()

	return os.WriteFile(f.keyPath(key), v, 0o644)
}

// keyPath maps a key to its file, flattening path separators so a key can
// never escape the base directory.
func (f *File) keyPath(key string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(f.dir, safe+".json")
}
