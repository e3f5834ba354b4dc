package ingestion

import "errors"

var (
	// ErrThumbnailRepositoryRequired is returned when a thumbnail repository is not provided.
	ErrThumbnailRepositoryRequired = errors.New("thumbnail repository required")

	// ErrOpenImage is returned when the photo behind an image reference cannot be read.
	ErrOpenImage = errors.New("cannot open image")

	// ErrDecodeImage is returned when photo bytes are not a supported image.
	ErrDecodeImage = errors.New("cannot decode image")

	// ErrPipelineReleased is returned by Submit after Release.
	ErrPipelineReleased = errors.New("pipeline released")
)
