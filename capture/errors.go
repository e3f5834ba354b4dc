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


package capture

import "errors"

var (
	// ErrCapture is returned when the camera fails or returns no photo.
	ErrCapture = errors.New("capture failed")

	// ErrInvalidTransition is returned when an operation is not allowed in the current state.
	ErrInvalidTransition = errors.New("invalid workflow transition")

	// ErrUnknownField is returned by SetField for a field that does not exist.
	ErrUnknownField = errors.New("unknown annotation field")

	// ErrCameraRequired is returned when a camera is not provided.
	ErrCameraRequired = errors.New("camera required")

	// ErrCreatorRequired is returned when a creator is not provided.
	ErrCreatorRequired = errors.New("creator required")
)
