package render

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/landline-sh/landline/page"
)

// SlotAttr marks a skeleton descendant as a named fill target
const SlotAttr = "data-slot"

// IndexAttr carries a rendered instance's position for staggered reveals
const IndexAttr = "data-index"

// ErrUnknownSkeleton is returned for lookups of unregistered names
var ErrUnknownSkeleton = errors.New("unknown skeleton")

// Factory builds one fresh skeleton instance
type Factory func() *page.Node

// Registry maps skeleton names to factories
type Registry struct {
	mu        sync.RWMutex
	skeletons map[string]Factory
}

// NewRegistry creates an empty skeleton registry
func NewRegistry() *Registry {
	return &Registry{skeletons: make(map[string]Factory)}
}

// Register adds a skeleton factory under a name, replacing any previous one
func (r *Registry) Register(name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.skeletons[name] = f
}

// New builds an instance of the named skeleton
func (r *Registry) New(name string) (*page.Node, error) {
	r.mu.RLock()
	f, ok := r.skeletons[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSkeleton, name)
	}
	return f(), nil
}

// Names returns all registered skeleton names
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.skeletons))
	for name := range r.skeletons {
		names = append(names, name)
	}
	return names
}

// Fill writes text into slot-marked descendants
// Slots without a matching entry keep their placeholder text
func Fill(root *page.Node, slots map[string]string) {
	if root == nil {
		return
	}
	root.Walk(func(n *page.Node) bool {
		if name := n.Attr(SlotAttr); name != "" {
			if text, ok := slots[name]; ok {
				n.SetText(text)
			}
		}
		return true
	})
}

// Slot returns the slot-marked descendant with the given name, nil when absent
func Slot(root *page.Node, name string) *page.Node {
	return root.Find(func(n *page.Node) bool {
		return n.Attr(SlotAttr) == name
	})
}

// RenderList appends one skeleton instance per item to the container, in
// item order. Each instance is stamped with its position within the batch
// under IndexAttr before fill runs, so reveal staggering follows render
// order. Existing children are left alone; callers wanting replacement
// clear the container first via ClearContainer.
// A nil container is a silent no-op.
func (r *Registry) RenderList(container *page.Node, skeleton string, count int, fill func(i int, item *page.Node)) error {
	if container == nil {
		return nil
	}

	r.mu.RLock()
	factory, ok := r.skeletons[skeleton]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSkeleton, skeleton)
	}

	for i := 0; i < count; i++ {
		item := factory()
		item.SetAttr(IndexAttr, strconv.Itoa(i))
		if fill != nil {
			fill(i, item)
		}
		container.Append(item)
	}
	return nil
}

// ClearContainer drops all children of a container ahead of a fresh
// RenderList pass. Safe on nil.
func ClearContainer(container *page.Node) {
	if container == nil {
		return
	}
	container.RemoveChildren()
}

// StaggerIndex reads a node's stamped position, 0 when missing or malformed
func StaggerIndex(n *page.Node) int {
	idx, err := strconv.Atoi(n.Attr(IndexAttr))
	if err != nil || idx < 0 {
		return 0
	}
	return idx
}
