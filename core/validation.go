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

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("timestamp", timestampValidator); err != nil {
		panic(err)
	}
	return v
}

// timestampValidator checks that a field holds a creation timestamp.
func timestampValidator(fl validator.FieldLevel) bool {
	_, err := ParseTimestamp(fl.Field().String())
	return err == nil
}

// fieldErrors maps struct fields to the sentinel reported when they fail.
var fieldErrors = map[string]error{
	"ID":        ErrEmptyID,
	"ImageRef":  ErrEmptyImageRef,
	"CreatedAt": ErrInvalidTimestamp,
}

// validationError converts the first failed field of a validator error
// into kind wrapping the field's sentinel.
func validationError(kind error, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %w", kind, err)
	}
	fe := fieldErrs[0]
	sentinel, ok := fieldErrors[fe.StructField()]
	if !ok {
		return fmt.Errorf("%w: %s failed %s", kind, fe.StructField(), fe.Tag())
	}
	if fe.Tag() == "timestamp" {
		return fmt.Errorf("%w: %w: %q", kind, sentinel, fe.Value())
	}
	return fmt.Errorf("%w: %w", kind, sentinel)
}

// ValidateEntry validates a CatalogEntry according to domain rules.
//
// Validation rules:
//   - ID must not be empty
//   - ImageRef must not be empty
//   - CreatedAt must parse as a timestamp
//
// NOT validated (free text, empty allowed):
//   - every Annotation field, including the numeric ones
func ValidateEntry(entry *CatalogEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidEntry)
	}
	if err := validate.Struct(entry); err != nil {
		return validationError(ErrInvalidEntry, err)
	}
	return nil
}

// ValidateDraft validates a Draft before it becomes an entry.
// Only the photo is mandatory.
func ValidateDraft(draft *Draft) error {
	if draft == nil {
		return fmt.Errorf("%w: draft is nil", ErrInvalidDraft)
	}
	if err := validate.Struct(draft); err != nil {
		return validationError(ErrInvalidDraft, err)
	}
	return nil
}
