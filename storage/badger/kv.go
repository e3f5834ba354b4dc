package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/capdex/storage"
)

// KV implements storage.KV for BadgerDB.
// Each Set is a single committed transaction, so a value is always replaced whole.
type KV struct {
	backend *Backend
}

var _ storage.KV = (*KV)(nil)

// NewKV creates a KV over an open backend.
func NewKV(backend *Backend) (*KV, error) {
	if backend == nil {
		return nil, errors.New("backend required")
	}
	return &KV{backend: backend}, nil
}

// Get returns the value stored under key.
func (k *KV) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var value string
	err := k.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeKVKey(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrKeyNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			value = string(val)
			return nil
		})
	}, false)

	return value, err
}

// Set stores value under key.
func (k *KV) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return k.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeKVKey(key), []byte(value)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Delete removes key.
func (k *KV) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return k.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Delete(makeKVKey(key)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Close is a no-op; the backend is owned by the caller.
func (k *KV) Close() error {
	return nil
}
