package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()

	_, ok := m.Get("missing")
	assert.False(t, ok)

	require.NoError(t, m.Set("k", []byte(`["a"]`)))
	v, ok := m.Get("k")
	assert.True(t, ok)
	assert.Equal(t, `["a"]`, string(v))
}

func TestMemoryCopiesValues(t *testing.T) {
	m := NewMemory()

	in := []byte("abc")
	require.NoError(t, m.Set("k", in))
	in[0] = 'z'

	v, _ := m.Get("k")
	assert.Equal(t, "abc", string(v))
}

func TestFileRoundTrip(t *testing.T) {
	f, err := NewFile(t.TempDir())
	require.NoError(t, err)

	_, ok := f.Get("missing")
	assert.False(t, ok)

	require.NoError(t, f.Set("recent", []byte(`["a","b"]`)))
	v, ok := f.Get("recent")
	assert.True(t, ok)
	assert.Equal(t, `["a","b"]`, string(v))
}

func TestFileSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	first, err := NewFile(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set("recent", []byte(`["a"]`)))

	second, err := NewFile(dir)
	require.NoError(t, err)
	v, ok := second.Get("recent")
	assert.True(t, ok)
	assert.Equal(t, `["a"]`, string(v))
}

func TestFileKeyPathStaysInDir(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(dir)
	require.NoError(t, err)

	require.NoError(t, f.Set("../escape/attempt", []byte("x")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, dir, filepath.Dir(filepath.Join(dir, entries[0].Name())))
}
