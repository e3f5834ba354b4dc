package ingestion

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/poiesic/capdex/core"
	"github.com/poiesic/capdex/storage"
)

// Opener returns a reader for the photo behind an image reference.
type Opener func(ctx context.Context, imageRef string) (io.ReadCloser, error)

// OpenFile opens image references that are local paths or file:// URIs.
func OpenFile(_ context.Context, imageRef string) (io.ReadCloser, error) {
	return os.Open(strings.TrimPrefix(imageRef, "file://"))
}

// thumbnailProcessor renders and stores thumbnails.
type thumbnailProcessor struct {
	repository storage.ThumbnailRepository
	open       Opener
	maxSize    int
	quality    int
	logger     *slog.Logger
}

var _ processor = (*thumbnailProcessor)(nil)

// newThumbnailProcessor creates a new thumbnail processor.
func newThumbnailProcessor(repository storage.ThumbnailRepository, open Opener, maxSize, quality int, logger *slog.Logger) (*thumbnailProcessor, error) {
	if repository == nil {
		return nil, ErrThumbnailRepositoryRequired
	}
	if open == nil {
		return nil, fmt.Errorf("opener required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &thumbnailProcessor{
		repository: repository,
		open:       open,
		maxSize:    maxSize,
		quality:    quality,
		logger:     logger.With("processor", "thumbnails"),
	}, nil
}

// process renders the thumbnail for entry unless the stored one was made
// from identical photo bytes.
func (tp *thumbnailProcessor) process(ctx context.Context, entry core.CatalogEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := tp.read(ctx, entry.ImageRef)
	if err != nil {
		return err
	}
	digest := core.DigestOf(data)

	existing, err := tp.repository.GetThumbnail(ctx, entry.ID)
	switch {
	case err == nil && existing.Digest == digest:
		tp.logger.Debug("thumbnail up to date", "id", entry.ID)
		return nil
	case err != nil && !errors.Is(err, storage.ErrNotFound):
		return err
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDecodeImage, entry.ImageRef, err)
	}
	img = imaging.Fit(img, tp.maxSize, tp.maxSize, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(tp.quality)); err != nil {
		return err
	}

	bounds := img.Bounds()
	thumb := &core.Thumbnail{
		EntryID: entry.ID,
		Digest:  digest,
		Width:   bounds.Dx(),
		Height:  bounds.Dy(),
		JPEG:    buf.Bytes(),
	}
	if err := tp.repository.SaveThumbnail(ctx, thumb); err != nil {
		return err
	}

	tp.logger.Debug("thumbnail stored", "id", entry.ID, "width", thumb.Width, "height", thumb.Height, "bytes", len(thumb.JPEG))
	return nil
}

func (tp *thumbnailProcessor) read(ctx context.Context, imageRef string) ([]byte, error) {
	r, err := tp.open(ctx, imageRef)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrOpenImage, imageRef, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrOpenImage, imageRef, err)
	}
	return data, nil
}
