package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T, store BlobStore) {
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("PutGet", func(t *testing.T) {
		data := []byte("hello")
		require.NoError(t, store.Put(ctx, "runs/a.lld", data))

		data[0] = 'j' // must not leak into the store
		got, err := store.Get(ctx, "runs/a.lld")
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), got)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "runs/b.lld", []byte("v1")))
		require.NoError(t, store.Put(ctx, "runs/b.lld", []byte("v2")))

		got, err := store.Get(ctx, "runs/b.lld")
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), got)
	})

	t.Run("List", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "other/c.lld", []byte("c")))

		names, err := store.List(ctx, "runs/")
		require.NoError(t, err)
		assert.Equal(t, []string{"runs/a.lld", "runs/b.lld"}, names)

		all, err := store.List(ctx, "")
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "runs/a.lld"))
		_, err := store.Get(ctx, "runs/a.lld")
		assert.ErrorIs(t, err, ErrNotFound)

		require.NoError(t, store.Delete(ctx, "runs/a.lld"))
	})

	t.Run("Canceled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		assert.ErrorIs(t, store.Put(cctx, "x", []byte("x")), context.Canceled)
	})
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	testStore(t, store)
	assert.Equal(t, 2, store.Len())
}

func TestMemoryStore_Concurrent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := filepath.Join("runs", string(rune('a'+i)))
			_ = store.Put(ctx, name, []byte{byte(i)})
			_, _ = store.Get(ctx, name)
			_, _ = store.List(ctx, "runs/")
		}()
	}
	wg.Wait()
	assert.Equal(t, 16, store.Len())
}

func TestLocalStore(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir)
	assert.Equal(t, dir, store.Root())

	testStore(t, store)

	_, err := os.Stat(filepath.Join(dir, "runs", "b.lld"))
	require.NoError(t, err)
}

func TestLocalStore_MissingRoot(t *testing.T) {
	store := NewLocalStore(filepath.Join(t.TempDir(), "not-yet"))
	names, err := store.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestLocalStore_RejectsEscapes(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()

	assert.Error(t, store.Put(ctx, "../escape", []byte("x")))
	_, err := store.Get(ctx, "../../etc/passwd")
	assert.Error(t, err)
}

func TestCachingStore(t *testing.T) {
	inner := NewMemoryStore()
	store, err := NewCachingStore(inner, 8)
	require.NoError(t, err)

	testStore(t, store)
}

func TestCachingStore_ReadThrough(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()
	store, err := NewCachingStore(inner, 2)
	require.NoError(t, err)

	require.NoError(t, inner.Put(ctx, "a", []byte("1")))
	assert.False(t, store.Cached("a"))

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), got)
	assert.True(t, store.Cached("a"))

	// Served from cache even after the inner blob disappears.
	require.NoError(t, inner.Delete(ctx, "a"))
	got, err = store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), got)

	require.NoError(t, store.Put(ctx, "a", []byte("2")))
	assert.False(t, store.Cached("a"))
	got, err = store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), got)

	_, err = NewCachingStore(inner, 0)
	assert.Error(t, err)
}
