package motion

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/landline-sh/landline/page"
)

// Timing for the stock animations
const (
	RevealDuration  = 600 * time.Millisecond
	StaggerStep     = 100 * time.Millisecond
	CounterDuration = 2000 * time.Millisecond
	ScrollDuration  = 800 * time.Millisecond
	FadeDuration    = 400 * time.Millisecond
	PulseDuration   = 400 * time.Millisecond
	TypeCharEvery   = 40 * time.Millisecond

	// CursorFactor is the fraction of remaining distance the cursor
	// closes per frame
	CursorFactor = 0.2

	// RevealRise is how many rows a revealing node settles upward
	RevealRise = 2.0
)

// Options configures an animator once at construction
// Reduced motion is captured here and never re-read, so changing the
// preference mid-session has no effect until restart
type Options struct {
	ReducedMotion bool
}

// Animator runs animation tasks against the page tree
// It belongs to the main loop and is not safe for concurrent use
type Animator struct {
	clock   page.Clock
	reduced bool
	tasks   []*Task
	byKey   map[taskKey]*Task
	log     *slog.Logger
}

// NewAnimator creates an animator driven by the given clock
func NewAnimator(clock page.Clock, opts Options, log *slog.Logger) *Animator {
	if clock == nil {
		clock = page.SystemClock{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Animator{
		clock:   clock,
		reduced: opts.ReducedMotion,
		byKey:   make(map[taskKey]*Task),
		log:     log,
	}
}

// Reduced reports whether animations jump straight to their final state
func (a *Animator) Reduced() bool {
	return a.reduced
}

// Active returns the number of live tasks
func (a *Animator) Active() int {
	return len(a.tasks)
}

// Start schedules a task, displacing any running task with the same node
// and kind. Under reduced motion the final state applies immediately and
// the returned token is already done.
func (a *Animator) Start(spec TaskSpec) Token {
	if spec.Apply == nil {
		return Token{}
	}
	if a.reduced {
		spec.Apply(1)
		if spec.Done != nil {
			spec.Done()
		}
		return Token{}
	}

	key := taskKey{node: spec.Node, kind: spec.Kind}
	if prev := a.byKey[key]; prev != nil {
		prev.cancelled = true
	}

	t := &Task{
		ID:       uuid.New(),
		Kind:     spec.Kind,
		node:     spec.Node,
		start:    a.clock.Now(),
		delay:    spec.Delay,
		duration: spec.Duration,
		ease:     spec.Ease,
		apply:    spec.Apply,
		done:     spec.Done,
	}
	if t.ease == nil {
		t.ease = Linear
	}
	a.tasks = append(a.tasks, t)
	a.byKey[key] = t
	return Token{task: t}
}

// Update advances every live task to now
// Tasks past their delay apply eased progress, tasks reaching full
// progress fire their completion hook and drop out
func (a *Animator) Update(now time.Time) {
	kept := a.tasks[:0]
	for _, t := range a.tasks {
		if t.cancelled {
			a.release(t)
			continue
		}
		elapsed := now.Sub(t.start) - t.delay
		if elapsed < 0 {
			kept = append(kept, t)
			continue
		}
		p := 1.0
		if t.duration > 0 {
			p = clamp01(float64(elapsed) / float64(t.duration))
		}
		t.apply(t.ease(p))
		if p >= 1 {
			t.finished = true
			if t.done != nil {
				t.done()
			}
			a.release(t)
			continue
		}
		kept = append(kept, t)
	}
	// Clear dropped slots so finished tasks free promptly
	for i := len(kept); i < len(a.tasks); i++ {
		a.tasks[i] = nil
	}
	a.tasks = kept
}

// Cancel stops the running task for a node and kind, if any
func (a *Animator) Cancel(node *page.Node, kind TaskKind) {
	if t := a.byKey[taskKey{node: node, kind: kind}]; t != nil {
		t.cancelled = true
	}
}

// CancelAll stops every task without applying final states
func (a *Animator) CancelAll() {
	for _, t := range a.tasks {
		t.cancelled = true
	}
	a.tasks = nil
	a.byKey = make(map[taskKey]*Task)
}

func (a *Animator) release(t *Task) {
	key := taskKey{node: t.node, kind: t.Kind}
	if a.byKey[key] == t {
		delete(a.byKey, key)
	}
}
