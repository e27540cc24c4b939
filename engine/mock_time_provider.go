package engine

import (
	"sync"
	"time"
)

// MockClock is a Clock driven by the test
// With a non-zero step every Now call moves time forward by that step after
// reading, so a handler ticked by a real Loop still sees fixed frame times
type MockClock struct {
	mu    sync.Mutex
	now   time.Time
	step  time.Duration
	reads int
}

// NewMockClock creates a stopped clock at start
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{now: start}
}

// NewSteppingClock creates a clock that advances by step on each read
func NewSteppingClock(start time.Time, step time.Duration) *MockClock {
	return &MockClock{now: start, step: step}
}

func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := m.now
	m.now = m.now.Add(m.step)
	m.reads++
	return t
}

// Set jumps to t, which may lie in the past
func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// Reads returns how many times Now was called
func (m *MockClock) Reads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reads
}
