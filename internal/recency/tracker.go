// Package recency maintains the bounded, deduplicated, most-recent-first
// history of executed action identifiers, persisted through an injected
// key-value store.
package recency

import (
	"sync"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
)

// Store is the persistence slot the tracker writes through. Implementations
// live in internal/storage; tests inject an in-memory fake.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
}

// Defaults.
const (
	DefaultKey      = "servicetree.recent"
	DefaultCapacity = 10
)

// Tracker keeps the recency list. Recording an already-present id moves it
// to the front; the oldest entry is evicted once capacity is exceeded.
// Persistence failures are logged and absorbed: the in-memory list keeps
// serving the session.
type Tracker struct {
	store    Store
	key      string
	capacity int
	log      *zap.Logger

	mu  sync.Mutex
	ids []string
}

// NewTracker creates a tracker and loads any persisted list. Corrupt or
// missing persisted data yields an empty list, never an error.
func NewTracker(store Store, key string, capacity int, log *zap.Logger) *Tracker {
	if key == "" {
		key = DefaultKey
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if log == nil {
		log = zap.NewNop()
	}

	t := &Tracker{store: store, key: key, capacity: capacity, log: log}
	if data, ok := store.Get(key); ok {
		var ids []string
		if err := sonic.Unmarshal(data, &ids); err != nil {
			t.log.Warn("discarding corrupt recency data", zap.Error(err))
		} else {
			if len(ids) > capacity {
				ids = ids[:capacity]
			}
			t.ids = ids
		}
	}
	return t
}

// Record moves actionID to the front of the list, dropping any previous
// occurrence, and persists the result. Returns a copy of the updated list.
func (t *Tracker) Record(actionID string) []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	next := make([]string, 0, len(t.ids)+1)
	next = append(next, actionID)
	for _, id := range t.ids {
		if id != actionID {
			next = append(next, id)
		}
	}
	if len(next) > t.capacity {
		next = next[:t.capacity]
	}
	t.ids = next

	data, err := sonic.Marshal(t.ids)
	if err == nil {
		err = t.store.Set(t.key, data)
	}
	if err != nil {
		t.log.Warn("failed to persist recency list", zap.Error(err))
	}

	return t.snapshot()
}

// List returns a copy of the current list, most recent first.
func (t *Tracker) List() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshot()
}

func (t *Tracker) snapshot() []string {
	out := make([]string, len(t.ids))
	copy(out, t.ids)
	return out
}
