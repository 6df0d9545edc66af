// Package catalog records a summary of every saved run so runs can be
// listed and compared without downloading their snapshots.
package catalog

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"
)

// ErrNotFound is returned when no entry exists for an ID.
var ErrNotFound = errors.New("catalog: entry not found")

// Entry summarizes one saved run.
type Entry struct {
	ID         string    `json:"id"`
	K          int       `json:"k"`
	Points     int       `json:"points"`
	Iterations int       `json:"iterations"`
	Inertia    float64   `json:"inertia"`
	Silhouette *float64  `json:"silhouette,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	// Blob is the blobstore name of the run snapshot.
	Blob string `json:"blob"`
}

// Catalog stores entries keyed by ID.
// Implementations must be safe for concurrent use.
type Catalog interface {
	// Put inserts or replaces an entry.
	Put(ctx context.Context, e Entry) error
	// Get returns the entry for id or ErrNotFound.
	Get(ctx context.Context, id string) (Entry, error)
	// List returns all entries, newest first.
	List(ctx context.Context) ([]Entry, error)
	// Delete removes the entry for id. Missing entries are not an error.
	Delete(ctx context.Context, id string) error
}

// SortNewestFirst orders entries by CreatedAt descending, then ID.
func SortNewestFirst(entries []Entry) {
	slices.SortFunc(entries, func(a, b Entry) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}

// MemoryCatalog is an in-process Catalog.
type MemoryCatalog struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemoryCatalog creates an empty MemoryCatalog.
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{entries: make(map[string]Entry)}
}

// Put implements Catalog.
func (c *MemoryCatalog) Put(ctx context.Context, e Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[e.ID] = e
	return nil
}

// Get implements Catalog.
func (c *MemoryCatalog) Get(_ context.Context, id string) (Entry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[id]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return e, nil
}

// List implements Catalog.
func (c *MemoryCatalog) List(_ context.Context) ([]Entry, error) {
	c.mu.RLock()
	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e)
	}
	c.mu.RUnlock()

	SortNewestFirst(out)
	return out, nil
}

// Delete implements Catalog.
func (c *MemoryCatalog) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
	return nil
}
