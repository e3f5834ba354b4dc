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


package server

import (
	"errors"
	"net/http"

	"github.com/poiesic/capdex/catalog"
	"github.com/poiesic/capdex/core"
	"github.com/poiesic/capdex/search"
	"github.com/poiesic/capdex/storage"
)

var (
	// ErrBadRequest is returned for request bodies that cannot be decoded.
	ErrBadRequest = errors.New("bad request")
)

// statusFor maps an error to an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, catalog.ErrNotFound), errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, catalog.ErrDuplicateID):
		return http.StatusConflict
	case errors.Is(err, catalog.ErrNotLoaded), errors.Is(err, storage.ErrStorageRead):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, core.ErrInvalidDraft),
		errors.Is(err, core.ErrInvalidEntry),
		errors.Is(err, search.ErrUnknownSortKey):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
