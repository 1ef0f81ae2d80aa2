package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memKV struct {
	data    map[string]string
	failSet bool
	failGet bool
}

func newMemKV() *memKV { return &memKV{data: make(map[string]string)} }

func (m *memKV) Get(_ context.Context, key string) (string, bool, error) {
	if m.failGet {
		return "", false, errors.New("kv down")
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Set(_ context.Context, key string, val string) error {
	if m.failSet {
		return errors.New("kv down")
	}
	m.data[key] = val
	return nil
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("absent entry starts empty", func(t *testing.T) {
		s := Load(ctx, newMemKV())
		assert.Equal(t, 0, s.Len())
	})

	t.Run("restores persisted ids in order", func(t *testing.T) {
		kv := newMemKV()
		kv.data[StorageKey] = `["prop-2","prop-1"]`
		s := Load(ctx, kv)
		assert.Equal(t, []string{"prop-2", "prop-1"}, s.IDs())
		assert.True(t, s.Contains("prop-1"))
	})

	t.Run("corrupt entry starts empty", func(t *testing.T) {
		kv := newMemKV()
		kv.data[StorageKey] = `{not json`
		s := Load(ctx, kv)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("read failure starts empty", func(t *testing.T) {
		kv := newMemKV()
		kv.failGet = true
		s := Load(ctx, kv)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("duplicate persisted ids collapse", func(t *testing.T) {
		kv := newMemKV()
		kv.data[StorageKey] = `["prop-1","prop-1","prop-2"]`
		s := Load(ctx, kv)
		assert.Equal(t, []string{"prop-1", "prop-2"}, s.IDs())
	})
}

func TestMutations(t *testing.T) {
	ctx := context.Background()

	t.Run("add is idempotent", func(t *testing.T) {
		s := Load(ctx, newMemKV())
		s.Add(ctx, "prop-1")
		s.Add(ctx, "prop-1")
		assert.Equal(t, []string{"prop-1"}, s.IDs())
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		s := Load(ctx, newMemKV())
		s.Remove(ctx, "prop-1")
		s.Add(ctx, "prop-1")
		s.Remove(ctx, "prop-1")
		s.Remove(ctx, "prop-1")
		assert.False(t, s.Contains("prop-1"))
		assert.Equal(t, 0, s.Len())
	})

	t.Run("toggle twice is identity", func(t *testing.T) {
		s := Load(ctx, newMemKV())
		s.Add(ctx, "prop-2")

		for _, id := range []string{"prop-1", "prop-2"} {
			before := s.Contains(id)
			s.Toggle(ctx, id)
			s.Toggle(ctx, id)
			assert.Equal(t, before, s.Contains(id), id)
		}
	})

	t.Run("membership reflects the net effect of a sequence", func(t *testing.T) {
		s := Load(ctx, newMemKV())
		s.Add(ctx, "a")
		s.Toggle(ctx, "b")
		s.Add(ctx, "c")
		s.Remove(ctx, "a")
		s.Toggle(ctx, "b")
		assert.False(t, s.Contains("a"))
		assert.False(t, s.Contains("b"))
		assert.True(t, s.Contains("c"))
		assert.Equal(t, []string{"c"}, s.IDs())
	})

	t.Run("toggle reports the new state", func(t *testing.T) {
		s := Load(ctx, newMemKV())
		assert.True(t, s.Toggle(ctx, "prop-1"))
		assert.False(t, s.Toggle(ctx, "prop-1"))
	})
}

func TestPersistence(t *testing.T) {
	ctx := context.Background()

	t.Run("writes through after every mutation", func(t *testing.T) {
		kv := newMemKV()
		s := Load(ctx, kv)
		s.Add(ctx, "prop-1")
		s.Add(ctx, "prop-2")

		var got []string
		require.NoError(t, json.Unmarshal([]byte(kv.data[StorageKey]), &got))
		assert.Equal(t, []string{"prop-1", "prop-2"}, got)

		s.Remove(ctx, "prop-1")
		require.NoError(t, json.Unmarshal([]byte(kv.data[StorageKey]), &got))
		assert.Equal(t, []string{"prop-2"}, got)
	})

	t.Run("persist failure is swallowed, memory stays correct", func(t *testing.T) {
		kv := newMemKV()
		kv.failSet = true
		s := Load(ctx, kv)
		s.Add(ctx, "prop-1")
		assert.True(t, s.Contains("prop-1"))
		assert.Empty(t, kv.data)
	})

	t.Run("survives a reload round-trip", func(t *testing.T) {
		kv := newMemKV()
		s := Load(ctx, kv)
		s.Add(ctx, "prop-3")
		s.Add(ctx, "prop-1")

		again := Load(ctx, kv)
		assert.Equal(t, []string{"prop-3", "prop-1"}, again.IDs())
	})
}

func TestFileKV(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	kv := NewFileKV(dir)

	_, ok, err := kv.Get(ctx, StorageKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, StorageKey, `["prop-1"]`))
	val, ok, err := kv.Get(ctx, StorageKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["prop-1"]`, val)
}
