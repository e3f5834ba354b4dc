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


package catalog

import "errors"

var (
	// ErrStoreRequired is returned when no record store is provided.
	ErrStoreRequired = errors.New("record store required")

	// ErrNotFound is returned when no entry has the requested id.
	ErrNotFound = errors.New("catalog entry not found")

	// ErrPersist is returned when a mutation could not be saved.
	// The in-memory collection is rolled back before it is returned.
	ErrPersist = errors.New("failed to persist catalog")

	// ErrNotLoaded is returned by mutations after the last load failed.
	ErrNotLoaded = errors.New("catalog not loaded")

	// ErrDuplicateID is returned when an imported entry reuses an existing id.
	ErrDuplicateID = errors.New("duplicate entry id")
)
