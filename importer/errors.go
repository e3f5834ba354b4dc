package importer

import "errors"

var (
	// ErrCatalogRequired is returned when a catalog is not provided.
	ErrCatalogRequired = errors.New("catalog required")

	// ErrMalformedInput is returned when the input is not a JSON array of entries.
	ErrMalformedInput = errors.New("malformed import file")

	// ErrInvalidMaxAttempts is returned when retry attempts is not positive.
	ErrInvalidMaxAttempts = errors.New("max attempts must be greater than 0")

	// ErrInvalidBatchSize is returned when batch size is not positive.
	ErrInvalidBatchSize = errors.New("batch size must be greater than 0")
)
