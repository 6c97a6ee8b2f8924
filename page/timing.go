package page

import (
	"sync"
	"time"
)

// Clock abstracts the time source for timing helpers
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

// Now returns the current time with monotonic clock reading
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Scheduler defers a function call
// The returned cancel reports whether it prevented the call
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (cancel func() bool)
}

// TimerScheduler defers calls onto runtime timers
// Deferred functions run on a timer goroutine
type TimerScheduler struct{}

// AfterFunc schedules fn after d
func (TimerScheduler) AfterFunc(d time.Duration, fn func()) func() bool {
	t := time.AfterFunc(d, fn)
	return t.Stop
}

// Debounce returns a trailing-edge wrapper around fn
// Every call restarts the wait window; fn runs once the window lapses with
// no further calls, and receives the argument from the most recent call.
// Safe for concurrent callers.
func Debounce[T any](fn func(T), wait time.Duration, sched Scheduler) func(T) {
	var mu sync.Mutex
	var cancel func() bool
	var latest T

	return func(arg T) {
		mu.Lock()
		defer mu.Unlock()
		latest = arg
		if cancel != nil {
			cancel()
		}
		cancel = sched.AfterFunc(wait, func() {
			mu.Lock()
			arg := latest
			mu.Unlock()
			fn(arg)
		})
	}
}

// Throttle returns a leading-edge rate limiter around fn
// The first call fires immediately; later calls fire only once at least
// limit has passed since the last accepted call. Accepted calls pass their
// own argument through; suppressed calls are dropped whole. Safe for
// concurrent callers.
func Throttle[T any](fn func(T), limit time.Duration, clock Clock) func(T) {
	var mu sync.Mutex
	var last time.Time
	var fired bool

	return func(arg T) {
		mu.Lock()
		now := clock.Now()
		ok := !fired || now.Sub(last) >= limit
		if ok {
			fired = true
			last = now
		}
		mu.Unlock()

		if ok {
			fn(arg)
		}
	}
}
