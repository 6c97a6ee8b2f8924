package page

import (
	"errors"
	"testing"
	"time"
)

func TestDebounceCollapsesBurst(t *testing.T) {
	start := time.Unix(0, 0)
	clock := NewMockClock(start)
	sched := NewMockScheduler(clock)

	var firedAt []time.Duration
	var gotArg int
	debounced := Debounce(func(arg int) {
		firedAt = append(firedAt, clock.Now().Sub(start))
		gotArg = arg
	}, 100*time.Millisecond, sched)

	// Calls at t=0, t=50, t=90: each restarts the window
	debounced(1)
	sched.Advance(50 * time.Millisecond)
	debounced(2)
	sched.Advance(40 * time.Millisecond)
	debounced(3)

	// Let the final window lapse
	sched.Advance(200 * time.Millisecond)

	if len(firedAt) != 1 {
		t.Fatalf("Expected exactly one invocation, got %d at %v", len(firedAt), firedAt)
	}
	if firedAt[0] != 190*time.Millisecond {
		t.Errorf("Expected invocation at 190ms, got %v", firedAt[0])
	}
	if gotArg != 3 {
		t.Errorf("Expected the most recent argument 3, got %d", gotArg)
	}
	if sched.Pending() != 0 {
		t.Errorf("Expected no pending timers, got %d", sched.Pending())
	}
}

func TestDebounceFiresAgainAfterQuiet(t *testing.T) {
	clock := NewMockClock(time.Unix(0, 0))
	sched := NewMockScheduler(clock)

	count := 0
	debounced := Debounce(func(struct{}) { count++ }, 100*time.Millisecond, sched)

	debounced(struct{}{})
	sched.Advance(150 * time.Millisecond)
	debounced(struct{}{})
	sched.Advance(150 * time.Millisecond)

	if count != 2 {
		t.Errorf("Expected two invocations across quiet gaps, got %d", count)
	}
}

func TestThrottleLeadingEdge(t *testing.T) {
	start := time.Unix(0, 0)
	clock := NewMockClock(start)

	var firedAt []time.Duration
	var args []string
	throttled := Throttle(func(arg string) {
		firedAt = append(firedAt, clock.Now().Sub(start))
		args = append(args, arg)
	}, 10*time.Millisecond, clock)

	// Calls at t=0, t=5, t=15
	throttled("a")
	clock.Advance(5 * time.Millisecond)
	throttled("b")
	clock.Advance(10 * time.Millisecond)
	throttled("c")

	if len(firedAt) != 2 {
		t.Fatalf("Expected two invocations, got %d at %v", len(firedAt), firedAt)
	}
	if firedAt[0] != 0 {
		t.Errorf("Expected first invocation at 0ms, got %v", firedAt[0])
	}
	if firedAt[1] != 15*time.Millisecond {
		t.Errorf("Expected second invocation at 15ms, got %v", firedAt[1])
	}
	// Accepted calls carry their own argument, the suppressed b is dropped
	if len(args) != 2 || args[0] != "a" || args[1] != "c" {
		t.Errorf("Expected arguments [a c], got %v", args)
	}
}

func TestThrottleExactBoundary(t *testing.T) {
	clock := NewMockClock(time.Unix(0, 0))

	count := 0
	throttled := Throttle(func(struct{}) { count++ }, 10*time.Millisecond, clock)

	throttled(struct{}{})
	clock.Advance(10 * time.Millisecond)
	throttled(struct{}{}) // Exactly limit apart: accepted

	if count != 2 {
		t.Errorf("Expected boundary call accepted, got %d invocations", count)
	}
}

func TestWaiterResolves(t *testing.T) {
	clock := NewMockClock(time.Unix(0, 0))
	root := NewNode(KindRoot, NodeOpts{ID: "app"})

	w := NewWaiter("late", 5*time.Second, clock)

	if w.Check(root, clock) {
		t.Fatal("Expected wait unresolved while node absent")
	}

	root.Append(NewNode(KindBox, NodeOpts{ID: "late"}))
	if !w.Check(root, clock) {
		t.Fatal("Expected wait resolved once node attached")
	}

	n, err := w.Result()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if n == nil || n.ID != "late" {
		t.Errorf("Expected resolved node 'late', got %v", n)
	}
}

func TestWaiterTimesOut(t *testing.T) {
	clock := NewMockClock(time.Unix(0, 0))
	root := NewNode(KindRoot, NodeOpts{ID: "app"})

	w := NewWaiter("never", 2*time.Second, clock)

	if w.Check(root, clock) {
		t.Fatal("Expected wait unresolved before deadline")
	}

	clock.Advance(3 * time.Second)
	if !w.Check(root, clock) {
		t.Fatal("Expected wait settled after deadline")
	}

	n, err := w.Result()
	if n != nil {
		t.Errorf("Expected nil node on timeout, got %v", n)
	}
	if !errors.Is(err, ErrWaitTimeout) {
		t.Errorf("Expected ErrWaitTimeout, got %v", err)
	}
}
