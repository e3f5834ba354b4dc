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


package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/capdex/core"
	"github.com/poiesic/capdex/storage"
)

// ThumbnailRepository implements storage.ThumbnailRepository for BadgerDB.
type ThumbnailRepository struct {
	backend *Backend
}

var _ storage.ThumbnailRepository = (*ThumbnailRepository)(nil)

// NewThumbnailRepository creates a new ThumbnailRepository.
func NewThumbnailRepository(backend *Backend) *ThumbnailRepository {
	return &ThumbnailRepository{
		backend: backend,
	}
}

// SaveThumbnail persists a thumbnail for its entry.
func (r *ThumbnailRepository) SaveThumbnail(ctx context.Context, thumb *core.Thumbnail) error {
	if thumb == nil || thumb.EntryID == "" {
		return errors.New("thumbnail requires an entry id")
	}
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeThumbnailKey(thumb.EntryID)
		value := storage.MarshalThumbnail(thumb)
		if err := tx.Set(key, value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetThumbnail retrieves the thumbnail for an entry.
func (r *ThumbnailRepository) GetThumbnail(ctx context.Context, entryID string) (*core.Thumbnail, error) {
	var thumb *core.Thumbnail
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeThumbnailKey(entryID))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}

		return item.Value(func(val []byte) error {
			var unmarshalErr error
			thumb, unmarshalErr = storage.UnmarshalThumbnail(val)
			return unmarshalErr
		})
	}, false)

	return thumb, err
}

// DeleteThumbnail removes the thumbnail for an entry.
func (r *ThumbnailRepository) DeleteThumbnail(ctx context.Context, entryID string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Delete(makeThumbnailKey(entryID)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}
