package motion

import (
	"testing"

	"github.com/landline-sh/landline/page"
)

func TestCursorHiddenUntilPointed(t *testing.T) {
	node := page.NewNode(page.KindOverlay, page.NodeOpts{ID: "cursor"})
	c := NewCursor(node)

	if !node.Hidden {
		t.Error("Expected cursor node hidden before any pointer event")
	}
	if c.Active() {
		t.Error("Expected cursor inactive before any pointer event")
	}

	c.Point(10, 4)
	if node.Hidden {
		t.Error("Expected cursor node visible after pointer event")
	}
	if !c.Active() {
		t.Error("Expected cursor active after pointer event")
	}

	c.Hide()
	if !node.Hidden {
		t.Error("Expected cursor node hidden again")
	}
}

func TestCursorSnapsOnActivation(t *testing.T) {
	c := NewCursor(nil)

	c.Point(10, 4)
	x, y := c.Pos()
	if x != 10 || y != 4 {
		t.Errorf("Expected cursor to snap to (10,4), got (%d,%d)", x, y)
	}
}

func TestCursorFollowsByFixedFraction(t *testing.T) {
	node := page.NewNode(page.KindOverlay, page.NodeOpts{ID: "cursor"})
	c := NewCursor(node)

	c.Point(10, 0)
	c.Point(20, 0)

	x, _ := c.Pos()
	if x != 10 {
		t.Fatalf("Expected cursor to stay at 10 before update, got %d", x)
	}

	c.Update()
	x, _ = c.Pos()
	if x != 12 {
		t.Errorf("Expected cursor at 12 after one frame, got %d", x)
	}
	if node.Rect.X != 12 {
		t.Errorf("Expected node positioned at 12, got %d", node.Rect.X)
	}

	c.Update()
	x, _ = c.Pos()
	if x != 14 {
		t.Errorf("Expected cursor at 14 after two frames, got %d", x)
	}
}

func TestCursorUpdateInactiveIsNoop(t *testing.T) {
	node := page.NewNode(page.KindOverlay, page.NodeOpts{ID: "cursor"})
	c := NewCursor(node)

	c.Update()
	if node.Rect.X != 0 || node.Rect.Y != 0 {
		t.Errorf("Expected node untouched, got (%d,%d)", node.Rect.X, node.Rect.Y)
	}
}
