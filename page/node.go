package page

// Kind identifies a node's structural role, which the renderer maps to a
// layout and draw strategy
type Kind string

const (
	KindRoot     Kind = "root"
	KindNav      Kind = "nav"
	KindMain     Kind = "main"
	KindSection  Kind = "section"
	KindGrid     Kind = "grid"
	KindList     Kind = "list"
	KindCard     Kind = "card"
	KindBox      Kind = "box"
	KindHeading  Kind = "heading"
	KindText     Kind = "text"
	KindLink     Kind = "link"
	KindButton   Kind = "button"
	KindForm     Kind = "form"
	KindField    Kind = "field"
	KindIcon     Kind = "icon"
	KindTerminal Kind = "terminal"
	KindFooter   Kind = "footer"
	KindOverlay  Kind = "overlay"
)

// Rect is a node's layout box in page coordinates
// Y counts rows from the top of the scrollable page, not the viewport
type Rect struct {
	X, Y, W, H int
}

// Bottom returns the first row below the rect
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rect has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Node is one element of the page tree
type Node struct {
	Kind     Kind
	ID       string
	Text     string
	Children []*Node

	parent  *Node
	classes []string
	attrs   map[string]string

	// Layout box, assigned by the layout pass each frame
	Rect Rect

	// Visual state, mutated by motion tasks
	Alpha   float64 // 0 transparent, 1 opaque
	OffsetY float64 // Rows of downward displacement
	Scale   float64 // Box scale, 1 is natural size
	Glow    float64 // Highlight blend toward the accent color
	Hidden  bool    // Excluded from layout and draw
}

// NodeOpts configures node construction
type NodeOpts struct {
	ID      string
	Classes []string
	Attrs   map[string]string
	Text    string
}

// NewNode creates a node and appends the given children
func NewNode(kind Kind, opts NodeOpts, children ...*Node) *Node {
	n := &Node{
		Kind:  kind,
		ID:    opts.ID,
		Text:  opts.Text,
		Alpha: 1,
		Scale: 1,
	}
	for _, c := range opts.Classes {
		n.AddClass(c)
	}
	for k, v := range opts.Attrs {
		n.SetAttr(k, v)
	}
	n.Append(children...)
	return n
}

// Clone returns a deep copy of the subtree, detached from any parent
// Layout and visual state reset to construction defaults
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{
		Kind:  n.Kind,
		ID:    n.ID,
		Text:  n.Text,
		Alpha: 1,
		Scale: 1,
	}
	if len(n.classes) > 0 {
		out.classes = make([]string, len(n.classes))
		copy(out.classes, n.classes)
	}
	if len(n.attrs) > 0 {
		out.attrs = make(map[string]string, len(n.attrs))
		for k, v := range n.attrs {
			out.attrs[k] = v
		}
	}
	for _, c := range n.Children {
		out.Append(c.Clone())
	}
	return out
}

// Append attaches children, detaching them from any previous parent
func (n *Node) Append(children ...*Node) *Node {
	if n == nil {
		return nil
	}
	for _, c := range children {
		if c == nil {
			continue
		}
		c.Detach()
		c.parent = n
		n.Children = append(n.Children, c)
	}
	return n
}

// Detach removes the node from its parent, no-op for roots
func (n *Node) Detach() {
	if n == nil || n.parent == nil {
		return
	}
	siblings := n.parent.Children
	for i, c := range siblings {
		if c == n {
			n.parent.Children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// Parent returns the containing node, nil for roots
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// RemoveChildren detaches all children
func (n *Node) RemoveChildren() {
	if n == nil {
		return
	}
	for _, c := range n.Children {
		c.parent = nil
	}
	n.Children = nil
}

// SetText replaces the node's text content
func (n *Node) SetText(s string) {
	if n == nil {
		return
	}
	n.Text = s
}

// HasClass reports whether the class is present
func (n *Node) HasClass(class string) bool {
	if n == nil {
		return false
	}
	for _, c := range n.classes {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass appends a class if absent
func (n *Node) AddClass(class string) {
	if n == nil || class == "" || n.HasClass(class) {
		return
	}
	n.classes = append(n.classes, class)
}

// RemoveClass deletes a class if present
func (n *Node) RemoveClass(class string) {
	if n == nil {
		return
	}
	for i, c := range n.classes {
		if c == class {
			n.classes = append(n.classes[:i], n.classes[i+1:]...)
			return
		}
	}
}

// ToggleClass flips class membership, returns resulting presence
func (n *Node) ToggleClass(class string) bool {
	if n == nil {
		return false
	}
	if n.HasClass(class) {
		n.RemoveClass(class)
		return false
	}
	n.AddClass(class)
	return true
}

// Classes returns a copy of the class list
func (n *Node) Classes() []string {
	if n == nil || len(n.classes) == 0 {
		return nil
	}
	out := make([]string, len(n.classes))
	copy(out, n.classes)
	return out
}

// Attr returns an attribute value, empty string when unset
func (n *Node) Attr(name string) string {
	if n == nil {
		return ""
	}
	return n.attrs[name]
}

// SetAttr sets an attribute
func (n *Node) SetAttr(name, value string) {
	if n == nil || name == "" {
		return
	}
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[name] = value
}

// DelAttr removes an attribute
func (n *Node) DelAttr(name string) {
	if n == nil {
		return
	}
	delete(n.attrs, name)
}

// ByID returns the first node in the subtree with the id, nil when absent
func (n *Node) ByID(id string) *Node {
	if n == nil || id == "" {
		return nil
	}
	if n.ID == id {
		return n
	}
	for _, c := range n.Children {
		if found := c.ByID(id); found != nil {
			return found
		}
	}
	return nil
}

// ByClass collects subtree nodes carrying the class, in document order
func (n *Node) ByClass(class string) []*Node {
	if n == nil || class == "" {
		return nil
	}
	var out []*Node
	n.Walk(func(node *Node) bool {
		if node.HasClass(class) {
			out = append(out, node)
		}
		return true
	})
	return out
}

// ByKind collects subtree nodes of the kind, in document order
func (n *Node) ByKind(kind Kind) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	n.Walk(func(node *Node) bool {
		if node.Kind == kind {
			out = append(out, node)
		}
		return true
	})
	return out
}

// Find returns the first subtree node satisfying pred, nil when none does
func (n *Node) Find(pred func(*Node) bool) *Node {
	if n == nil || pred == nil {
		return nil
	}
	var found *Node
	n.Walk(func(node *Node) bool {
		if pred(node) {
			found = node
			return false
		}
		return true
	})
	return found
}

// Walk visits the subtree depth-first in document order
// The visitor returns false to stop the walk
func (n *Node) Walk(visit func(*Node) bool) {
	if n == nil || visit == nil {
		return
	}
	n.walk(visit)
}

func (n *Node) walk(visit func(*Node) bool) bool {
	if !visit(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.walk(visit) {
			return false
		}
	}
	return true
}
