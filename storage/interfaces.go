package storage

import (
	"context"

	"github.com/poiesic/capdex/core"
)

// KV is the opaque key-value store the collection lives in.
// Implementations must be safe for concurrent use.
type KV interface {
	// Get returns the value stored under key.
	// Returns ErrKeyNotFound if the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the store.
	Close() error
}

// Collection is the typed view of the persisted catalog.
type Collection interface {
	// LoadAll reads the whole collection.
	// Returns an empty slice if nothing has been saved yet.
	// Any read or decode failure fails the whole load with ErrStorageRead.
	LoadAll(ctx context.Context) ([]core.CatalogEntry, error)

	// SaveAll serializes and writes the whole collection, replacing the stored one.
	// Returns ErrStorageWrite on failure.
	SaveAll(ctx context.Context, entries []core.CatalogEntry) error
}

// ThumbnailRepository provides operations for cached photo thumbnails.
type ThumbnailRepository interface {
	// SaveThumbnail stores or replaces the thumbnail for thumb.EntryID.
	SaveThumbnail(ctx context.Context, thumb *core.Thumbnail) error

	// GetThumbnail retrieves the thumbnail for an entry.
	// Returns ErrNotFound if none has been generated.
	GetThumbnail(ctx context.Context, entryID string) (*core.Thumbnail, error)

	// DeleteThumbnail removes the thumbnail for an entry.
	// Deleting a missing thumbnail is not an error.
	DeleteThumbnail(ctx context.Context, entryID string) error
}
