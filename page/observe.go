package page

import (
	"sync"

	"github.com/google/uuid"
)

// Entry reports one observed node's visibility at evaluation time
type Entry struct {
	Node         *Node
	Ratio        float64 // Visible fraction of the node's height, 0.0-1.0
	Intersecting bool
}

// ObserverOpts configures visibility detection
type ObserverOpts struct {
	// Threshold is the visible ratio at which a node counts as intersecting
	Threshold float64
	// MarginRows expands the viewport band on both vertical edges, so nodes
	// trip the observer shortly before they scroll into view
	MarginRows int
}

// Observer watches node rects against the viewport and reports transitions
// Callbacks fire during Evaluate on the evaluating goroutine
type Observer struct {
	id       uuid.UUID
	opts     ObserverOpts
	callback func([]Entry)
	registry *Registry

	nodes []*Node
	seen  map[*Node]bool // Last reported intersecting state
	fresh map[*Node]bool // Nodes never reported yet
	dead  bool
}

// ID returns the observer's registry handle
func (o *Observer) ID() uuid.UUID {
	return o.id
}

// Observe adds a node to the watch set
func (o *Observer) Observe(n *Node) {
	if o == nil || o.dead || n == nil {
		return
	}
	if _, ok := o.seen[n]; ok {
		return
	}
	o.nodes = append(o.nodes, n)
	o.seen[n] = false
	o.fresh[n] = true
}

// Unobserve drops a node from the watch set
func (o *Observer) Unobserve(n *Node) {
	if o == nil || n == nil {
		return
	}
	for i, watched := range o.nodes {
		if watched == n {
			o.nodes = append(o.nodes[:i], o.nodes[i+1:]...)
			break
		}
	}
	delete(o.seen, n)
	delete(o.fresh, n)
}

// Disconnect stops the observer and removes it from its registry
func (o *Observer) Disconnect() {
	if o == nil || o.dead {
		return
	}
	o.dead = true
	o.nodes = nil
	o.seen = nil
	o.fresh = nil
	if o.registry != nil {
		o.registry.remove(o.id)
	}
}

// Active reports whether the observer still evaluates
func (o *Observer) Active() bool {
	return o != nil && !o.dead
}

// Evaluate recomputes visibility for all watched nodes against the viewport
// band [viewTop, viewTop+viewH) and fires the callback with nodes whose
// intersecting state changed. Freshly observed nodes always report once.
func (o *Observer) Evaluate(viewTop, viewH int) {
	if o == nil || o.dead || len(o.nodes) == 0 {
		return
	}

	top := viewTop - o.opts.MarginRows
	bottom := viewTop + viewH + o.opts.MarginRows

	var changed []Entry
	for _, n := range o.nodes {
		ratio := visibleRatio(n.Rect, top, bottom)
		intersecting := ratio > 0 && ratio >= o.opts.Threshold

		if o.fresh[n] || intersecting != o.seen[n] {
			delete(o.fresh, n)
			o.seen[n] = intersecting
			changed = append(changed, Entry{Node: n, Ratio: ratio, Intersecting: intersecting})
		}
	}

	if len(changed) > 0 && o.callback != nil {
		o.callback(changed)
	}
}

// visibleRatio returns the fraction of rect rows inside [top, bottom)
func visibleRatio(r Rect, top, bottom int) float64 {
	if r.H <= 0 {
		return 0
	}
	visTop := r.Y
	if visTop < top {
		visTop = top
	}
	visBottom := r.Bottom()
	if visBottom > bottom {
		visBottom = bottom
	}
	if visBottom <= visTop {
		return 0
	}
	return float64(visBottom-visTop) / float64(r.H)
}

// Registry tracks every live observer so teardown can disconnect them all
type Registry struct {
	mu        sync.Mutex
	observers map[uuid.UUID]*Observer
}

// NewRegistry creates an empty observer registry
func NewRegistry() *Registry {
	return &Registry{
		observers: make(map[uuid.UUID]*Observer),
	}
}

// NewObserver creates and tracks an observer
func (r *Registry) NewObserver(callback func([]Entry), opts ObserverOpts) *Observer {
	o := &Observer{
		id:       uuid.New(),
		opts:     opts,
		callback: callback,
		registry: r,
		seen:     make(map[*Node]bool),
		fresh:    make(map[*Node]bool),
	}
	r.mu.Lock()
	r.observers[o.id] = o
	r.mu.Unlock()
	return o
}

// remove drops an observer from tracking, called by Disconnect
func (r *Registry) remove(id uuid.UUID) {
	r.mu.Lock()
	delete(r.observers, id)
	r.mu.Unlock()
}

// EvaluateAll runs every live observer against the viewport band
func (r *Registry) EvaluateAll(viewTop, viewH int) {
	r.mu.Lock()
	live := make([]*Observer, 0, len(r.observers))
	for _, o := range r.observers {
		live = append(live, o)
	}
	r.mu.Unlock()

	for _, o := range live {
		o.Evaluate(viewTop, viewH)
	}
}

// DisconnectAll disconnects every tracked observer, returns how many it closed
func (r *Registry) DisconnectAll() int {
	r.mu.Lock()
	live := make([]*Observer, 0, len(r.observers))
	for _, o := range r.observers {
		live = append(live, o)
	}
	r.mu.Unlock()

	for _, o := range live {
		o.Disconnect()
	}
	return len(live)
}

// Len returns the number of live observers
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.observers)
}
