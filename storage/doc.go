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


// Package storage provides the storage abstraction layer for capdex.
//
// The catalog is persisted as a single serialized collection stored under one
// well-known key of an opaque key-value store. This package defines that
// key-value contract (KV), the adapter that reads and writes the whole
// collection through it (RecordStore), and the repository used for cached
// photo thumbnails.
//
// # Architecture
//
//   - KV: asynchronous-style get/set/delete over string keys and string values
//   - RecordStore: typed LoadAll/SaveAll over the collection key
//   - ThumbnailRepository: per-entry thumbnail records
//
// Concrete backends live in sub-packages (see storage/badger).
//
// # Usage
//
//	kv, err := badger.NewKV(backend)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	store := storage.NewRecordStore(kv)
//	entries, err := store.LoadAll(ctx)
//
// # Consistency
//
// SaveAll replaces the whole collection in one KV write. There is no
// versioning: two writers racing on the same key resolve as last writer wins.
//
// # Context Support
//
// All methods accept context.Context for cancellation and timeout support.
package storage
