// Package runstore saves clustering runs as compressed snapshots in a blob
// store and keeps a catalog of their summaries.
package runstore

import (
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/hupe1980/lloyd"
	"github.com/hupe1980/lloyd/blobstore"
	"github.com/hupe1980/lloyd/catalog"
	"github.com/hupe1980/lloyd/codec"
	"github.com/hupe1980/lloyd/persistence"
	"github.com/hupe1980/lloyd/resource"
)

// Extension is appended to run IDs to form snapshot blob names.
const Extension = ".lld"

// DefaultPrefix is the blob name prefix used when none is configured.
const DefaultPrefix = "runs"

// Options configures a Store.
type Options struct {
	// Codec serializes runs. Defaults to codec.Default.
	Codec codec.Codec
	// Compression applied to snapshots. Defaults to ZSTD.
	Compression persistence.Compression
	// Prefix is prepended to snapshot blob names. Defaults to DefaultPrefix.
	Prefix string
	// Controller rate-limits snapshot IO. Nil imposes no limit.
	Controller *resource.Controller
	// Logger defaults to lloyd.NoopLogger.
	Logger *lloyd.Logger
}

// Store persists runs.
type Store struct {
	blobs   blobstore.BlobStore
	catalog catalog.Catalog
	opts    Options
}

// New creates a Store writing snapshots to blobs and summaries to cat.
func New(blobs blobstore.BlobStore, cat catalog.Catalog, optFns ...func(o *Options)) *Store {
	opts := Options{
		Codec:       codec.Default,
		Compression: persistence.CompressionZSTD,
		Prefix:      DefaultPrefix,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Codec == nil {
		opts.Codec = codec.Default
	}
	if opts.Logger == nil {
		opts.Logger = lloyd.NoopLogger()
	}

	return &Store{blobs: blobs, catalog: cat, opts: opts}
}

// BlobName returns the snapshot blob name for a run ID.
func (s *Store) BlobName(id string) string {
	return path.Join(s.opts.Prefix, id+Extension)
}

// Save writes the snapshot of res and records its catalog entry.
func (s *Store) Save(ctx context.Context, res *lloyd.RunResult) (catalog.Entry, error) {
	if res == nil || res.ID == "" {
		return catalog.Entry{}, &lloyd.InvalidArgumentError{Field: "result", Value: res, Reason: "must have an ID"}
	}

	entry, err := s.save(ctx, res)
	s.opts.Logger.WithK(res.K).LogSave(ctx, res.ID, err)
	return entry, err
}

func (s *Store) save(ctx context.Context, res *lloyd.RunResult) (catalog.Entry, error) {
	data, err := persistence.Encode(res, s.opts.Codec, s.opts.Compression)
	if err != nil {
		return catalog.Entry{}, fmt.Errorf("failed to encode run %s: %w", res.ID, err)
	}

	if err := s.opts.Controller.AcquireIO(ctx, len(data)); err != nil {
		return catalog.Entry{}, err
	}

	name := s.BlobName(res.ID)
	if err := s.blobs.Put(ctx, name, data); err != nil {
		return catalog.Entry{}, fmt.Errorf("failed to write snapshot %s: %w", name, err)
	}

	entry := catalog.Entry{
		ID:         res.ID,
		K:          res.K,
		Points:     len(res.Points),
		Iterations: res.Iterations,
		Inertia:    res.Inertia,
		Silhouette: res.Silhouette,
		CreatedAt:  res.CreatedAt,
		Blob:       name,
	}
	if err := s.catalog.Put(ctx, entry); err != nil {
		return catalog.Entry{}, err
	}

	return entry, nil
}

// Load reads a saved run.
func (s *Store) Load(ctx context.Context, id string) (*lloyd.RunResult, error) {
	res, err := s.load(ctx, id)
	err = translateError(err)
	s.opts.Logger.LogLoad(ctx, id, err)
	return res, err
}

func (s *Store) load(ctx context.Context, id string) (*lloyd.RunResult, error) {
	entry, err := s.catalog.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	data, err := s.blobs.Get(ctx, entry.Blob)
	if err != nil {
		return nil, err
	}

	if err := s.opts.Controller.AcquireIO(ctx, len(data)); err != nil {
		return nil, err
	}

	var res lloyd.RunResult
	if _, err := persistence.Decode(data, &res); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", entry.Blob, err)
	}
	return &res, nil
}

// Entry returns the catalog entry of a saved run.
func (s *Store) Entry(ctx context.Context, id string) (catalog.Entry, error) {
	e, err := s.catalog.Get(ctx, id)
	return e, translateError(err)
}

// List returns the catalog entries of all saved runs, newest first.
func (s *Store) List(ctx context.Context) ([]catalog.Entry, error) {
	entries, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	s.opts.Logger.WithCount(len(entries)).DebugContext(ctx, "runs listed")
	return entries, nil
}

// Delete removes a saved run. Deleting a missing run is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	entry, err := s.catalog.Get(ctx, id)
	if errors.Is(err, catalog.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.blobs.Delete(ctx, entry.Blob); err != nil {
		return fmt.Errorf("failed to delete snapshot %s: %w", entry.Blob, err)
	}
	return s.catalog.Delete(ctx, id)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, catalog.ErrNotFound) || errors.Is(err, blobstore.ErrNotFound) {
		return fmt.Errorf("%w: %w", lloyd.ErrNotFound, err)
	}

	return err
}
