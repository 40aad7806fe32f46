package services

import "sync"

// MockExporter is a mock implementation of Exporter for testing. It counts
// invocations and can be told to fail, so lifecycle tests can assert the
// export trigger without touching the filesystem.
type MockExporter struct {
	mu       sync.Mutex
	calls    int
	failWith error
}

// NewMockExporter creates a new mock exporter
func NewMockExporter() *MockExporter {
	return &MockExporter{}
}

// SetAsMockForTesting sets this mock as the global exporter instance for testing
func (m *MockExporter) SetAsMockForTesting() {
	SetExporter(m)
}

// ExportSnapshot records the invocation and returns the configured failure, if any
func (m *MockExporter) ExportSnapshot() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.failWith
}

// Calls returns how many times ExportSnapshot was invoked
func (m *MockExporter) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// FailWith makes subsequent ExportSnapshot calls return err
func (m *MockExporter) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWith = err
}

// Reset clears the call count and configured failure
func (m *MockExporter) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = 0
	m.failWith = nil
}
