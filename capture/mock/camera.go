package mock

import (
	"context"
	"fmt"
	"sync"
)

// MockCamera is a test double for capture.Camera.
type MockCamera struct {
	// CaptureFunc is called by Capture if set.
	CaptureFunc func(ctx context.Context) (string, error)

	mu        sync.Mutex
	refs      []string
	callCount int
}

// NewMockCamera creates a camera that returns refs in order.
func NewMockCamera(refs ...string) *MockCamera {
	return &MockCamera{refs: refs}
}

// WithCaptureFunc sets custom capture behavior.
func (m *MockCamera) WithCaptureFunc(fn func(ctx context.Context) (string, error)) *MockCamera {
	m.CaptureFunc = fn
	return m
}

// Capture returns the next scripted reference.
func (m *MockCamera) Capture(ctx context.Context) (string, error) {
	m.mu.Lock()
	m.callCount++
	n := m.callCount
	fn := m.CaptureFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.refs) > 0 {
		ref := m.refs[0]
		m.refs = m.refs[1:]
		return ref, nil
	}
	return fmt.Sprintf("mock://photo/%d", n), nil
}

// CallCount returns the number of times Capture was called.
func (m *MockCamera) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}
