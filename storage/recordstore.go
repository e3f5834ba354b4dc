package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/poiesic/capdex/core"
)

// CollectionKey is the well-known key the serialized collection is stored under.
const CollectionKey = "photos"

// RecordStore reads and writes the whole catalog collection through a KV.
type RecordStore struct {
	kv     KV
	key    string
	logger *slog.Logger
}

var _ Collection = (*RecordStore)(nil)

// RecordStoreOption configures a RecordStore.
type RecordStoreOption func(*RecordStore)

// WithKey overrides CollectionKey.
func WithKey(key string) RecordStoreOption {
	return func(s *RecordStore) {
		if key != "" {
			s.key = key
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) RecordStoreOption {
	return func(s *RecordStore) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// NewRecordStore creates a RecordStore over kv.
func NewRecordStore(kv KV, opts ...RecordStoreOption) *RecordStore {
	s := &RecordStore{
		kv:     kv,
		key:    CollectionKey,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "recordstore", "key", s.key)
	return s
}

// Key returns the key the collection is stored under.
func (s *RecordStore) Key() string {
	return s.key
}

// LoadAll reads the whole collection.
func (s *RecordStore) LoadAll(ctx context.Context) ([]core.CatalogEntry, error) {
	payload, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			s.logger.Debug("collection not found, starting empty")
			return []core.CatalogEntry{}, nil
		}
		s.logger.Error("error reading collection", "err", err)
		return nil, fmt.Errorf("%w: %w", ErrStorageRead, err)
	}

	entries, err := UnmarshalEntries(payload)
	if err != nil {
		s.logger.Error("error decoding collection", "err", err)
		return nil, fmt.Errorf("%w: %w", ErrStorageRead, err)
	}

	s.logger.Debug("collection loaded", "entries", len(entries))
	return entries, nil
}

// SaveAll writes the whole collection, replacing the stored one.
func (s *RecordStore) SaveAll(ctx context.Context, entries []core.CatalogEntry) error {
	payload, err := MarshalEntries(entries)
	if err != nil {
		s.logger.Error("error encoding collection", "err", err)
		return fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}

	if err := s.kv.Set(ctx, s.key, payload); err != nil {
		s.logger.Error("error writing collection", "err", err)
		return fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}

	s.logger.Debug("collection saved", "entries", len(entries))
	return nil
}
