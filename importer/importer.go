package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/poiesic/capdex/catalog"
	"github.com/poiesic/capdex/core"
)

// Catalog is the part of *catalog.Catalog the importer needs.
type Catalog interface {
	Get(id string) (core.CatalogEntry, error)
	Import(ctx context.Context, entries ...core.CatalogEntry) ([]core.CatalogEntry, error)
}

// Submitter queues entries for thumbnail rendering.
// *ingestion.Pipeline implements Submitter.
type Submitter interface {
	Submit(entries ...core.CatalogEntry) error
}

// Report summarizes an import.
type Report struct {
	// Read is the number of entries in the input.
	Read int
	// Imported holds the entries added to the catalog.
	Imported []core.CatalogEntry
	// Existing lists ids skipped because they were already cataloged
	// or repeated in the input.
	Existing []string
	// Invalid counts entries that failed validation.
	Invalid int
}

// Importer adds exported entries to a catalog.
type Importer struct {
	catalog    Catalog
	thumbnails Submitter
	batchSize  int
	retry      RetryPolicy
	progress   io.Writer
	now        func() time.Time
	logger     *slog.Logger
}

// Option configures an Importer.
type Option func(*Importer) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(im *Importer) error {
		if logger == nil {
			logger = slog.Default()
		}
		im.logger = logger
		return nil
	}
}

// WithBatchSize sets how many entries are saved per write.
// Default is 100.
func WithBatchSize(size int) Option {
	return func(im *Importer) error {
		if size < 1 {
			return ErrInvalidBatchSize
		}
		im.batchSize = size
		return nil
	}
}

// WithRetryPolicy sets how failed batch writes are retried.
// Default is DefaultRetryPolicy, retrying persistence failures only.
func WithRetryPolicy(policy RetryPolicy) Option {
	return func(im *Importer) error {
		if policy.MaxAttempts <= 0 {
			return ErrInvalidMaxAttempts
		}
		im.retry = policy
		return nil
	}
}

// WithProgress reports progress to w.
func WithProgress(w io.Writer) Option {
	return func(im *Importer) error {
		im.progress = w
		return nil
	}
}

// WithThumbnails queues imported entries for thumbnail rendering.
func WithThumbnails(s Submitter) Option {
	return func(im *Importer) error {
		im.thumbnails = s
		return nil
	}
}

// WithClock sets the time used for entries without a creation time.
func WithClock(now func() time.Time) Option {
	return func(im *Importer) error {
		if now == nil {
			return fmt.Errorf("clock cannot be nil")
		}
		im.now = now
		return nil
	}
}

func isPersistError(err error) bool {
	return errors.Is(err, catalog.ErrPersist)
}

// New creates an importer for cat.
func New(cat Catalog, opts ...Option) (*Importer, error) {
	if cat == nil {
		return nil, ErrCatalogRequired
	}

	policy := DefaultRetryPolicy
	policy.Retryable = isPersistError

	im := &Importer{
		catalog:   cat,
		batchSize: 100,
		retry:     policy,
		now:       time.Now,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(im); err != nil {
			return nil, err
		}
	}
	im.logger = im.logger.With("component", "importer")

	return im, nil
}

// Run imports every new, valid entry read from r.
// On a write failure Run stops and returns the report so far with the error;
// batches written before the failure stay imported.
func (im *Importer) Run(ctx context.Context, r io.Reader) (*Report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	records, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	report := &Report{Read: len(records), Imported: []core.CatalogEntry{}}

	var tracker *ProgressTracker
	if im.progress != nil {
		tracker = NewProgressTracker(im.progress, len(records), im.batchSize)
		tracker.Start()
		defer tracker.Finish()
	}

	now := im.now()
	seen := make(map[string]bool, len(records))
	batch := make([]core.CatalogEntry, 0, im.batchSize)

	for i := range records {
		entry := records[i].entry(now)
		if entry.ID == "" {
			id, err := uuid.NewV7()
			if err != nil {
				return report, fmt.Errorf("generating entry id: %w", err)
			}
			entry.ID = id.String()
		}

		if err := core.ValidateEntry(&entry); err != nil {
			im.logger.Warn("skipping invalid entry", "index", i, "id", entry.ID, "err", err)
			report.Invalid++
			tracker.skip(1)
			continue
		}
		if seen[entry.ID] || im.exists(entry.ID) {
			im.logger.Info("skipping existing entry", "id", entry.ID)
			report.Existing = append(report.Existing, entry.ID)
			tracker.skip(1)
			continue
		}
		seen[entry.ID] = true

		batch = append(batch, entry)
		if len(batch) == im.batchSize {
			if err := im.flush(ctx, batch, report, tracker); err != nil {
				return report, err
			}
			batch = batch[:0]
		}
	}

	if err := im.flush(ctx, batch, report, tracker); err != nil {
		return report, err
	}

	attrs := []any{"read", report.Read, "imported", len(report.Imported),
		"existing", len(report.Existing), "invalid", report.Invalid}
	if tracker != nil {
		attrs = append(attrs, "elapsed", tracker.Elapsed())
	}
	im.logger.Info("import finished", attrs...)
	return report, nil
}

func (im *Importer) exists(id string) bool {
	_, err := im.catalog.Get(id)
	return err == nil
}

func (im *Importer) flush(ctx context.Context, batch []core.CatalogEntry, report *Report, tracker *ProgressTracker) error {
	if len(batch) == 0 {
		return nil
	}

	var imported []core.CatalogEntry
	err := RetryWithBackoff(ctx, func() error {
		var err error
		imported, err = im.catalog.Import(ctx, batch...)
		return err
	}, im.retry, im.logger)
	if err != nil {
		im.logger.Error("error importing batch", "entries", len(batch), "err", err)
		return err
	}

	report.Imported = append(report.Imported, imported...)
	tracker.imported(len(imported))

	if im.thumbnails != nil {
		if err := im.thumbnails.Submit(imported...); err != nil {
			im.logger.Warn("error queueing thumbnails", "err", err)
		}
	}
	return nil
}
