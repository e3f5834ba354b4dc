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


package mock

import (
	"context"
	"sync"
)

// MockPicker is a test double for capture.Picker.
type MockPicker struct {
	// PickFunc is called by Pick if set.
	PickFunc func(ctx context.Context, options []string) (string, bool, error)

	mu        sync.Mutex
	choices   []string
	offered   [][]string
	callCount int
}

// NewMockPicker creates a picker that returns choices in order.
// An empty choice dismisses the list.
func NewMockPicker(choices ...string) *MockPicker {
	return &MockPicker{choices: choices}
}

// WithPickFunc sets custom pick behavior.
func (m *MockPicker) WithPickFunc(fn func(ctx context.Context, options []string) (string, bool, error)) *MockPicker {
	m.PickFunc = fn
	return m
}

// Pick returns the next scripted choice, or the first option once the script runs out.
func (m *MockPicker) Pick(ctx context.Context, options []string) (string, bool, error) {
	m.mu.Lock()
	m.callCount++
	m.offered = append(m.offered, options)
	fn := m.PickFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, options)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.choices) > 0 {
		choice := m.choices[0]
		m.choices = m.choices[1:]
		return choice, choice != "", nil
	}
	if len(options) == 0 {
		return "", false, nil
	}
	return options[0], true, nil
}

// Offered returns the option lists passed to Pick, in call order.
func (m *MockPicker) Offered() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]string(nil), m.offered...)
}

// CallCount returns the number of times Pick was called.
func (m *MockPicker) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}
