// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package capdex is a catalog of collectible bottle caps.
//
// A Database wires the catalog to its badger-backed storage, the thumbnail
// pipeline, search and statistics. Applications open one Database and use
// it for the lifetime of the process.
package capdex

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/poiesic/capdex/capture"
	"github.com/poiesic/capdex/catalog"
	"github.com/poiesic/capdex/config"
	"github.com/poiesic/capdex/core"
	"github.com/poiesic/capdex/importer"
	"github.com/poiesic/capdex/ingestion"
	"github.com/poiesic/capdex/search"
	"github.com/poiesic/capdex/stats"
	"github.com/poiesic/capdex/storage"
	"github.com/poiesic/capdex/storage/badger"
)

// Database is an open capdex catalog and the services around it.
type Database struct {
	cfg        *config.Config
	backend    *badger.Backend
	kv         *badger.KV
	catalog    *catalog.Catalog
	thumbnails *badger.ThumbnailRepository
	pipeline   *ingestion.Pipeline
	searcher   *search.Searcher
	logger     *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	logger      *slog.Logger
	catalogOpts []catalog.Option
	opener      ingestion.Opener
}

// WithLogger sets the logger shared by every component.
func WithLogger(logger *slog.Logger) DatabaseOption {
	return func(o *databaseOptions) {
		o.logger = logger
	}
}

// WithCatalogOptions passes extra options to the catalog.
func WithCatalogOptions(opts ...catalog.Option) DatabaseOption {
	return func(o *databaseOptions) {
		o.catalogOpts = append(o.catalogOpts, opts...)
	}
}

// WithImageOpener sets how the thumbnail pipeline reads photos.
func WithImageOpener(open ingestion.Opener) DatabaseOption {
	return func(o *databaseOptions) {
		o.opener = open
	}
}

// Open opens the database described by cfg and loads the catalog.
// A catalog that fails to load does not fail Open; it is reported by
// LoadError and reads return catalog.ErrNotLoaded until a Refresh succeeds.
func Open(cfg *config.Config, opts ...DatabaseOption) (*Database, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &databaseOptions{
		logger: slog.Default(),
		opener: ingestion.OpenFile,
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}
	logger := options.logger

	tag, err := cfg.LanguageTag()
	if err != nil {
		return nil, err
	}

	// Open backend
	backend, err := badger.OpenBackend(cfg.DBPath, cfg.InMemory)
	if err != nil {
		return nil, err
	}

	kv, err := badger.NewKV(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	store := storage.NewRecordStore(kv, storage.WithLogger(logger))
	cat, err := catalog.New(store, append([]catalog.Option{catalog.WithLogger(logger)}, options.catalogOpts...)...)
	if err != nil {
		backend.Close()
		return nil, err
	}

	thumbnails := badger.NewThumbnailRepository(backend)
	pipelineOpts := []ingestion.Option{
		ingestion.WithLogger(logger),
		ingestion.WithMaxSize(cfg.ThumbnailSize),
		ingestion.WithQuality(cfg.ThumbnailQuality),
		ingestion.WithOpener(options.opener),
	}
	if cfg.PoolSize > 0 {
		pipelineOpts = append(pipelineOpts, ingestion.WithPoolSize(cfg.PoolSize))
	}
	pipeline, err := ingestion.NewPipeline(thumbnails, pipelineOpts...)
	if err != nil {
		backend.Close()
		return nil, err
	}

	searcher, err := search.NewSearcher(search.WithLanguage(tag), search.WithLogger(logger))
	if err != nil {
		pipeline.Release()
		backend.Close()
		return nil, err
	}

	db := &Database{
		cfg:        cfg,
		backend:    backend,
		kv:         kv,
		catalog:    cat,
		thumbnails: thumbnails,
		pipeline:   pipeline,
		searcher:   searcher,
		logger:     logger,
	}

	logger.Info("database opened", "path", cfg.DBPath, "inMemory", cfg.InMemory, "language", searcher.Language())

	if _, err := cat.Refresh(context.Background()); err != nil {
		logger.Error("catalog could not be loaded", "path", cfg.DBPath, "err", err)
	}

	return db, nil
}

// Close waits for pending thumbnails and closes storage.
func (db *Database) Close() error {
	db.pipeline.Wait()
	db.pipeline.Release()

	if err := db.kv.Close(); err != nil {
		db.logger.Error("error closing kv store", "err", err)
		return err
	}

	// Close backend
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// Config returns the configuration the database was opened with.
func (db *Database) Config() *config.Config {
	return db.cfg
}

// Catalog returns the catalog.
func (db *Database) Catalog() *catalog.Catalog {
	return db.catalog
}

// Thumbnails returns the thumbnail repository.
func (db *Database) Thumbnails() storage.ThumbnailRepository {
	return db.thumbnails
}

// Pipeline returns the thumbnail pipeline.
func (db *Database) Pipeline() *ingestion.Pipeline {
	return db.pipeline
}

// Searcher returns the searcher configured with the collation language.
func (db *Database) Searcher() *search.Searcher {
	return db.searcher
}

// State reports whether the catalog is loaded.
func (db *Database) State() catalog.State {
	return db.catalog.State()
}

// LoadError returns the error from the last failed catalog load, if any.
func (db *Database) LoadError() error {
	return db.catalog.Err()
}

// readable fails when the catalog could not be loaded, so callers never
// mistake a failed load for an empty catalog.
func (db *Database) readable() error {
	if db.catalog.State() == catalog.LoadFailed {
		return fmt.Errorf("%w: %w", catalog.ErrNotLoaded, db.catalog.Err())
	}
	return nil
}

// Refresh reloads the catalog from storage.
func (db *Database) Refresh(ctx context.Context) ([]core.CatalogEntry, error) {
	return db.catalog.Refresh(ctx)
}

// Entries returns every entry in creation order.
func (db *Database) Entries() ([]core.CatalogEntry, error) {
	if err := db.readable(); err != nil {
		return nil, err
	}
	return db.catalog.Entries(), nil
}

// Search filters and sorts the catalog.
func (db *Database) Search(query string, key search.SortKey) ([]core.CatalogEntry, error) {
	if err := db.readable(); err != nil {
		return nil, err
	}
	return db.searcher.FilterSort(db.catalog.Entries(), query, key), nil
}

// Stats computes the catalog statistics.
func (db *Database) Stats() (stats.Stats, error) {
	if err := db.readable(); err != nil {
		return stats.Stats{}, err
	}
	return stats.Compute(db.catalog.Entries()), nil
}

// Get returns one entry.
func (db *Database) Get(id string) (core.CatalogEntry, error) {
	if err := db.readable(); err != nil {
		return core.CatalogEntry{}, err
	}
	return db.catalog.Get(id)
}

// Create adds an entry and queues its thumbnail.
func (db *Database) Create(ctx context.Context, draft core.Draft) (core.CatalogEntry, error) {
	entry, err := db.catalog.Create(ctx, draft)
	if err != nil {
		return core.CatalogEntry{}, err
	}
	db.queueThumbnail(entry)
	return entry, nil
}

// Update replaces the editable attributes of an entry.
func (db *Database) Update(ctx context.Context, id string, a core.Annotation) (core.CatalogEntry, error) {
	return db.catalog.Update(ctx, id, a)
}

// DeleteEntry removes an entry and its thumbnail.
// Deleting an unknown id is not an error.
func (db *Database) DeleteEntry(ctx context.Context, id string) error {
	if err := db.catalog.Delete(ctx, id); err != nil {
		return err
	}
	// A queued render for id could otherwise store its thumbnail after the delete.
	db.pipeline.Wait()
	if err := db.thumbnails.DeleteThumbnail(ctx, id); err != nil {
		db.logger.Warn("error deleting thumbnail", "id", id, "err", err)
	}
	return nil
}

// Thumbnail returns the thumbnail of an entry, rendering it first if
// it has not been generated yet.
func (db *Database) Thumbnail(ctx context.Context, id string) (*core.Thumbnail, error) {
	entry, err := db.Get(id)
	if err != nil {
		return nil, err
	}

	thumb, err := db.thumbnails.GetThumbnail(ctx, id)
	if err == nil {
		return thumb, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	if err := db.pipeline.Process(ctx, entry); err != nil {
		return nil, err
	}
	return db.thumbnails.GetThumbnail(ctx, id)
}

func (db *Database) queueThumbnail(entry core.CatalogEntry) {
	if err := db.pipeline.Submit(entry); err != nil {
		db.logger.Warn("error queueing thumbnail", "id", entry.ID, "err", err)
	}
}

// NewCaptureWorkflow returns a capture workflow that adds entries to this
// catalog and queues their thumbnails. picker may be nil.
func (db *Database) NewCaptureWorkflow(camera capture.Camera, picker capture.Picker, opts ...capture.Option) (*capture.Workflow, error) {
	base := []capture.Option{
		capture.WithLogger(db.logger),
		capture.WithOnCommit(db.queueThumbnail),
	}
	if picker != nil {
		base = append(base, capture.WithPicker(picker))
	}
	return capture.NewWorkflow(camera, db.catalog, append(base, opts...)...)
}

// NewImporter returns an importer that adds entries to this catalog and
// queues their thumbnails.
func (db *Database) NewImporter(opts ...importer.Option) (*importer.Importer, error) {
	base := []importer.Option{
		importer.WithLogger(db.logger),
		importer.WithThumbnails(db.pipeline),
	}
	return importer.New(db.catalog, append(base, opts...)...)
}
