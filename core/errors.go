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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidEntry indicates a CatalogEntry failed validation.
	ErrInvalidEntry = errors.New("invalid catalog entry")

	// ErrInvalidDraft indicates a Draft failed validation.
	ErrInvalidDraft = errors.New("invalid draft")

	// ErrEmptyID indicates the ID field is empty.
	ErrEmptyID = errors.New("id cannot be empty")

	// ErrEmptyImageRef indicates the ImageRef field is empty.
	ErrEmptyImageRef = errors.New("image reference cannot be empty")

	// ErrInvalidTimestamp indicates CreatedAt could not be parsed.
	ErrInvalidTimestamp = errors.New("invalid creation timestamp")

	// ErrEmptyValue indicates a numeric attribute was left blank.
	ErrEmptyValue = errors.New("value is empty")

	// ErrInvalidNumber indicates a numeric attribute could not be parsed.
	ErrInvalidNumber = errors.New("value is not a valid number")
)
