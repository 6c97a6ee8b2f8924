package motion

import (
	"time"

	"github.com/google/uuid"

	"github.com/landline-sh/landline/page"
)

// TaskKind classifies animations so a new task can displace the one it
// supersedes on the same node
type TaskKind string

const (
	TaskReveal  TaskKind = "reveal"
	TaskCounter TaskKind = "counter"
	TaskFade    TaskKind = "fade"
	TaskSlide   TaskKind = "slide"
	TaskScale   TaskKind = "scale"
	TaskPulse   TaskKind = "pulse"
	TaskScroll  TaskKind = "scroll"
	TaskType    TaskKind = "type"
)

// TaskSpec describes one animation to start
type TaskSpec struct {
	// Node scopes exclusivity, nil is valid for tasks that animate
	// something other than a node, like the scroll offset
	Node *page.Node
	Kind TaskKind

	Delay    time.Duration
	Duration time.Duration

	// Ease shapes progress, Linear when nil
	Ease func(float64) float64

	// Apply receives eased progress in [0,1] once per frame
	Apply func(t float64)

	// Done runs after the final Apply(1)
	Done func()
}

// Task is one running animation
type Task struct {
	ID   uuid.UUID
	Kind TaskKind

	node     *page.Node
	start    time.Time
	delay    time.Duration
	duration time.Duration
	ease     func(float64) float64
	apply    func(float64)
	done     func()

	cancelled bool
	finished  bool
}

type taskKey struct {
	node *page.Node
	kind TaskKind
}

// Token identifies a started task and can cancel it
// The zero Token is inert and already done, returned for animations that
// completed synchronously or never started
type Token struct {
	task *Task
}

// Cancel stops the task before its next frame, idempotent
func (t Token) Cancel() {
	if t.task != nil {
		t.task.cancelled = true
	}
}

// Done reports whether the task has finished or been cancelled
func (t Token) Done() bool {
	return t.task == nil || t.task.finished || t.task.cancelled
}
