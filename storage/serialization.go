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


package storage

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/capdex/core"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalEntries serializes a collection to its persisted JSON form.
// A nil collection is written as an empty array.
func MarshalEntries(entries []core.CatalogEntry) (string, error) {
	if entries == nil {
		entries = []core.CatalogEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return string(data), nil
}

// UnmarshalEntries deserializes a persisted collection.
// A JSON null is read as an empty collection.
func UnmarshalEntries(payload string) ([]core.CatalogEntry, error) {
	var entries []core.CatalogEntry
	if err := json.UnmarshalFromString(payload, &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	if entries == nil {
		entries = []core.CatalogEntry{}
	}
	return entries, nil
}

// MarshalThumbnail serializes a Thumbnail to bytes.
func MarshalThumbnail(thumb *core.Thumbnail) []byte {
	jpeg := string(thumb.JPEG)
	size := ord.String.Size(thumb.EntryID) +
		varint.Uint64.Size(uint64(thumb.Digest)) +
		varint.Int.Size(thumb.Width) +
		varint.Int.Size(thumb.Height) +
		ord.String.Size(jpeg)

	buf := make([]byte, size)
	n := ord.String.Marshal(thumb.EntryID, buf)
	n += varint.Uint64.Marshal(uint64(thumb.Digest), buf[n:])
	n += varint.Int.Marshal(thumb.Width, buf[n:])
	n += varint.Int.Marshal(thumb.Height, buf[n:])
	ord.String.Marshal(jpeg, buf[n:])
	return buf
}

// UnmarshalThumbnail deserializes a Thumbnail from bytes.
func UnmarshalThumbnail(data []byte) (*core.Thumbnail, error) {
	var (
		thumb core.Thumbnail
		n     int
	)

	entryID, m, err := ord.String.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: entry id: %w", ErrSerializationFailed, err)
	}
	n += m

	digest, m, err := varint.Uint64.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: digest: %w", ErrSerializationFailed, err)
	}
	n += m

	width, m, err := varint.Int.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: width: %w", ErrSerializationFailed, err)
	}
	n += m

	height, m, err := varint.Int.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: height: %w", ErrSerializationFailed, err)
	}
	n += m

	jpeg, _, err := ord.String.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: image: %w", ErrSerializationFailed, err)
	}

	thumb.EntryID = entryID
	thumb.Digest = core.Digest(digest)
	thumb.Width = width
	thumb.Height = height
	thumb.JPEG = []byte(jpeg)
	return &thumb, nil
}
