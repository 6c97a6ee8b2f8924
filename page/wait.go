package page

import (
	"errors"
	"fmt"
	"time"
)

// ErrWaitTimeout is returned when a node fails to appear before the deadline
var ErrWaitTimeout = errors.New("wait for node timed out")

// Waiter resolves once a node with the wanted id attaches to the tree, or
// fails when the deadline passes first. The frame loop drives it via Check.
type Waiter struct {
	id       string
	deadline time.Time
	done     bool
	node     *Node
	err      error
}

// NewWaiter starts a wait for the node id with the given timeout
func NewWaiter(id string, timeout time.Duration, clock Clock) *Waiter {
	return &Waiter{
		id:       id,
		deadline: clock.Now().Add(timeout),
	}
}

// Check scans the tree for the node, resolving the wait on a hit or timing
// it out past the deadline. Returns true once the wait is settled.
func (w *Waiter) Check(root *Node, clock Clock) bool {
	if w == nil {
		return true
	}
	if w.done {
		return true
	}

	if n := root.ByID(w.id); n != nil {
		w.node = n
		w.done = true
		return true
	}

	if clock.Now().After(w.deadline) {
		w.err = fmt.Errorf("node %q: %w", w.id, ErrWaitTimeout)
		w.done = true
		return true
	}

	return false
}

// Done reports whether the wait has settled
func (w *Waiter) Done() bool {
	return w == nil || w.done
}

// Result returns the found node or the timeout error
// Only meaningful once Done reports true
func (w *Waiter) Result() (*Node, error) {
	if w == nil {
		return nil, nil
	}
	return w.node, w.err
}
