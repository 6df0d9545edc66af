package blobstore

import (
	"context"
	"slices"

	lru "github.com/hashicorp/golang-lru"
)

// CachingStore wraps a BlobStore and keeps recently read blobs in an LRU.
// Writes and deletes go straight to the inner store and evict the name.
type CachingStore struct {
	inner BlobStore
	cache *lru.Cache
}

// NewCachingStore creates a CachingStore holding at most size blobs.
func NewCachingStore(inner BlobStore, size int) (*CachingStore, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &CachingStore{inner: inner, cache: c}, nil
}

// Put writes through and evicts the cached copy.
func (s *CachingStore) Put(ctx context.Context, name string, data []byte) error {
	s.cache.Remove(name)
	return s.inner.Put(ctx, name, data)
}

// Get serves from the cache, falling back to the inner store.
func (s *CachingStore) Get(ctx context.Context, name string) ([]byte, error) {
	if v, ok := s.cache.Get(name); ok {
		return slices.Clone(v.([]byte)), nil
	}

	data, err := s.inner.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	s.cache.Add(name, slices.Clone(data))
	return data, nil
}

// Delete evicts and removes the blob.
func (s *CachingStore) Delete(ctx context.Context, name string) error {
	s.cache.Remove(name)
	return s.inner.Delete(ctx, name)
}

// List is not cached.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

// Cached reports whether name is currently held in the cache.
func (s *CachingStore) Cached(name string) bool {
	return s.cache.Contains(name)
}
