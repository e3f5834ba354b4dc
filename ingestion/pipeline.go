package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/capdex/core"
	"github.com/poiesic/capdex/storage"
)

const (
	// DefaultMaxSize is the default bound, in pixels, of a thumbnail's longer side.
	DefaultMaxSize = 256
	// DefaultQuality is the default JPEG quality of thumbnails.
	DefaultQuality = 80
)

// Pipeline renders thumbnails for catalog entries.
// It manages concurrent processing with a worker pool.
type Pipeline struct {
	repository storage.ThumbnailRepository
	pool       *ants.Pool
	proc       processor
	open       Opener
	maxSize    int
	quality    int
	pending    sync.WaitGroup
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		// Release old pool
		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithMaxSize sets the bound of a thumbnail's longer side in pixels.
// Default is DefaultMaxSize.
func WithMaxSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			return fmt.Errorf("thumbnail size must be positive, got %d", size)
		}
		p.maxSize = size
		return nil
	}
}

// WithQuality sets the JPEG quality, 1 to 100.
// Default is DefaultQuality.
func WithQuality(quality int) Option {
	return func(p *Pipeline) error {
		if quality < 1 || quality > 100 {
			return fmt.Errorf("thumbnail quality must be between 1 and 100, got %d", quality)
		}
		p.quality = quality
		return nil
	}
}

// WithOpener sets how image references are read.
// Default is OpenFile.
func WithOpener(open Opener) Option {
	return func(p *Pipeline) error {
		if open == nil {
			return fmt.Errorf("opener cannot be nil")
		}
		p.open = open
		return nil
	}
}

// NewPipeline creates a new thumbnail pipeline.
func NewPipeline(repository storage.ThumbnailRepository, opts ...Option) (*Pipeline, error) {
	if repository == nil {
		return nil, ErrThumbnailRepositoryRequired
	}

	// Default pool size
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	// Create pipeline with defaults
	p := &Pipeline{
		repository: repository,
		pool:       pool,
		open:       OpenFile,
		maxSize:    DefaultMaxSize,
		quality:    DefaultQuality,
		logger:     slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	// Create processor after options are applied (so it gets final config)
	proc, err := newThumbnailProcessor(repository, p.open, p.maxSize, p.quality, p.logger)
	if err != nil {
		p.Release()
		return nil, err
	}
	p.proc = proc

	return p, nil
}

// Process renders the thumbnail for entry and waits for the result.
func (p *Pipeline) Process(ctx context.Context, entry core.CatalogEntry) error {
	return p.proc.process(ctx, entry)
}

// Submit queues entries for asynchronous thumbnail rendering.
// Errors during processing are logged, not returned.
func (p *Pipeline) Submit(entries ...core.CatalogEntry) error {
	for _, entry := range entries {
		p.pending.Add(1)
		err := p.pool.Submit(func() {
			defer p.pending.Done()
			if err := p.proc.process(context.Background(), entry); err != nil {
				p.logger.Error("error processing thumbnail", "id", entry.ID, "imageRef", entry.ImageRef, "err", err)
			}
		})
		if err != nil {
			p.pending.Done()
			if err == ants.ErrPoolClosed {
				return ErrPipelineReleased
			}
			return err
		}
	}
	return nil
}

// Wait blocks until all submitted entries have been processed.
func (p *Pipeline) Wait() {
	p.pending.Wait()
}

// Release releases resources including the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
