package motion

import (
	"math"

	"github.com/landline-sh/landline/page"
)

// Cursor trails the pointer with an exponential follow
// Each frame it closes a fixed fraction of the remaining distance, so a
// fast pointer move leaves a visible lag that settles quickly
type Cursor struct {
	node   *page.Node
	x, y   float64
	tx, ty int
	active bool
}

// NewCursor wraps the cursor node, hidden until the pointer first moves
func NewCursor(node *page.Node) *Cursor {
	if node != nil {
		node.Hidden = true
	}
	return &Cursor{node: node}
}

// Point retargets the cursor, snapping to the pointer on first use
func (c *Cursor) Point(x, y int) {
	c.tx, c.ty = x, y
	if !c.active {
		c.active = true
		c.x, c.y = float64(x), float64(y)
		if c.node != nil {
			c.node.Hidden = false
		}
	}
}

// Hide takes the cursor off screen until the next pointer event
func (c *Cursor) Hide() {
	c.active = false
	if c.node != nil {
		c.node.Hidden = true
	}
}

// Active reports whether a pointer has been seen
func (c *Cursor) Active() bool {
	return c.active
}

// Update advances one frame of follow and positions the node
func (c *Cursor) Update() {
	if !c.active {
		return
	}
	c.x += (float64(c.tx) - c.x) * CursorFactor
	c.y += (float64(c.ty) - c.y) * CursorFactor
	if c.node != nil {
		c.node.Rect.X = int(math.Round(c.x))
		c.node.Rect.Y = int(math.Round(c.y))
	}
}

// Pos returns the cursor cell
func (c *Cursor) Pos() (int, int) {
	return int(math.Round(c.x)), int(math.Round(c.y))
}
