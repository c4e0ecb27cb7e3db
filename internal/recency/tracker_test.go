package recency

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careshift/servicetree/internal/storage"
)

type failingStore struct {
	data map[string][]byte
}

func (s *failingStore) Get(key string) ([]byte, bool) {
	v, ok := s.data[key]
	return v, ok
}

func (s *failingStore) Set(string, []byte) error {
	return errors.New("disk full")
}

func TestRecordDedup(t *testing.T) {
	tr := NewTracker(storage.NewMemory(), "", 0, nil)

	for i := 0; i < 15; i++ {
		tr.Record("calendar.getEvents")
	}
	assert.Equal(t, []string{"calendar.getEvents"}, tr.List())
}

func TestRecordCapAndOrder(t *testing.T) {
	tr := NewTracker(storage.NewMemory(), "", 0, nil)

	for i := 1; i <= 11; i++ {
		tr.Record(fmt.Sprintf("action.%d", i))
	}

	got := tr.List()
	require.Len(t, got, 10)
	assert.Equal(t, "action.11", got[0], "most recent first")
	assert.Equal(t, "action.2", got[9], "oldest surviving entry last")
	assert.NotContains(t, got, "action.1", "oldest entry evicted")
}

func TestRecordMovesToFront(t *testing.T) {
	tr := NewTracker(storage.NewMemory(), "", 0, nil)

	tr.Record("a.one")
	tr.Record("a.two")
	tr.Record("a.one")

	assert.Equal(t, []string{"a.one", "a.two"}, tr.List())
}

func TestPersistedAcrossTrackers(t *testing.T) {
	store := storage.NewMemory()

	first := NewTracker(store, "", 0, nil)
	first.Record("a.one")
	first.Record("a.two")

	second := NewTracker(store, "", 0, nil)
	assert.Equal(t, []string{"a.two", "a.one"}, second.List())
}

func TestCorruptDataTreatedAsEmpty(t *testing.T) {
	store := storage.NewMemory()
	require.NoError(t, store.Set(DefaultKey, []byte("{not json")))

	tr := NewTracker(store, "", 0, nil)
	assert.Empty(t, tr.List())

	tr.Record("a.one")
	assert.Equal(t, []string{"a.one"}, tr.List())
}

func TestPersistFailureKeepsMemoryList(t *testing.T) {
	tr := NewTracker(&failingStore{}, "", 0, nil)

	got := tr.Record("a.one")
	assert.Equal(t, []string{"a.one"}, got)
	assert.Equal(t, []string{"a.one"}, tr.List())
}

func TestCustomCapacity(t *testing.T) {
	tr := NewTracker(storage.NewMemory(), "history", 3, nil)

	for i := 1; i <= 5; i++ {
		tr.Record(fmt.Sprintf("action.%d", i))
	}
	assert.Equal(t, []string{"action.5", "action.4", "action.3"}, tr.List())
}
