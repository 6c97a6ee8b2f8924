package page

import (
	"sort"
	"sync"
	"time"
)

// MockClock provides a controllable time source for testing
type MockClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMockClock creates a mock clock at the given start time
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{now: start}
}

// Now returns the current mocked time
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// SetTime sets the current time
func (m *MockClock) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the clock forward by d
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// MockScheduler defers calls against a MockClock instead of real timers
// Advance fires due entries in order, stepping the clock to each due time
// so deferred functions observe the moment they were scheduled for
type MockScheduler struct {
	mu      sync.Mutex
	clock   *MockClock
	entries []*mockTimer
}

type mockTimer struct {
	due       time.Time
	fn        func()
	cancelled bool
	fired     bool
}

// NewMockScheduler creates a scheduler bound to the clock
func NewMockScheduler(clock *MockClock) *MockScheduler {
	return &MockScheduler{clock: clock}
}

// AfterFunc schedules fn at clock.Now() + d
func (s *MockScheduler) AfterFunc(d time.Duration, fn func()) func() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := &mockTimer{due: s.clock.Now().Add(d), fn: fn}
	s.entries = append(s.entries, entry)

	return func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		if entry.fired || entry.cancelled {
			return false
		}
		entry.cancelled = true
		return true
	}
}

// Advance moves the clock forward by d, firing due entries in due order
func (s *MockScheduler) Advance(d time.Duration) {
	target := s.clock.Now().Add(d)

	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		s.clock.SetTime(next.due)
		next.fn()
	}

	s.clock.SetTime(target)
}

// nextDue pops the earliest live entry due at or before target
func (s *MockScheduler) nextDue(target time.Time) *mockTimer {
	s.mu.Lock()
	defer s.mu.Unlock()

	live := s.entries[:0]
	for _, e := range s.entries {
		if !e.fired && !e.cancelled {
			live = append(live, e)
		}
	}
	s.entries = live

	sort.SliceStable(s.entries, func(i, j int) bool {
		return s.entries[i].due.Before(s.entries[j].due)
	})

	if len(s.entries) == 0 || s.entries[0].due.After(target) {
		return nil
	}
	next := s.entries[0]
	next.fired = true
	return next
}

// Pending returns the number of live scheduled entries
func (s *MockScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, e := range s.entries {
		if !e.fired && !e.cancelled {
			n++
		}
	}
	return n
}
