package tui

import (
	"testing"

	"github.com/landline-sh/landline/term"
)

func makeBuffer(w, h int) ([]term.Cell, Region) {
	cells := make([]term.Cell, w*h)
	return cells, NewRegion(cells, w, 0, 0, w, h)
}

func TestSubClipping(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
		wantW      int
		wantH      int
	}{
		{"Fits inside", 2, 2, 5, 3, 5, 3},
		{"Overflows right", 8, 0, 5, 5, 2, 5},
		{"Overflows bottom", 0, 8, 5, 5, 5, 2},
		{"Negative origin", -2, -2, 5, 5, 3, 3},
		{"Fully outside", 20, 20, 5, 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, root := makeBuffer(10, 10)
			sub := root.Sub(tt.x, tt.y, tt.w, tt.h)
			if sub.W != tt.wantW {
				t.Errorf("Expected W to be %d, got %d", tt.wantW, sub.W)
			}
			if sub.H != tt.wantH {
				t.Errorf("Expected H to be %d, got %d", tt.wantH, sub.H)
			}
		})
	}
}

func TestCellBoundsChecking(t *testing.T) {
	cells, root := makeBuffer(4, 4)
	sub := root.Sub(1, 1, 2, 2)

	// Writes outside the sub-region must not touch the buffer
	sub.Cell(-1, 0, 'x', term.RGB{R: 255}, term.RGB{}, term.AttrNone)
	sub.Cell(2, 0, 'x', term.RGB{R: 255}, term.RGB{}, term.AttrNone)
	sub.Cell(0, 2, 'x', term.RGB{R: 255}, term.RGB{}, term.AttrNone)

	for i, c := range cells {
		if c.Rune != 0 {
			t.Errorf("Expected buffer untouched at %d, got %q", i, c.Rune)
		}
	}

	// Write inside lands at the absolute offset
	sub.Cell(0, 0, 'a', term.RGB{}, term.RGB{}, term.AttrNone)
	if cells[1*4+1].Rune != 'a' {
		t.Errorf("Expected 'a' at (1,1), got %q", cells[1*4+1].Rune)
	}
}

func TestTextTruncatesAtEdge(t *testing.T) {
	cells, root := makeBuffer(5, 1)
	root.Text(0, 0, "hello world", term.RGB{R: 1}, term.RGB{}, term.AttrNone)

	got := ""
	for x := 0; x < 5; x++ {
		got += string(cells[x].Rune)
	}
	if got != "hello" {
		t.Errorf("Expected 'hello', got %q", got)
	}
}

func TestTextCenter(t *testing.T) {
	_, root := makeBuffer(11, 1)
	root.TextCenter(0, "abc", term.RGB{R: 1}, term.RGB{}, term.AttrNone)

	if root.Get(4, 0).Rune != 'a' || root.Get(5, 0).Rune != 'b' || root.Get(6, 0).Rune != 'c' {
		t.Errorf("Expected 'abc' centered at x=4, got %q%q%q",
			root.Get(4, 0).Rune, root.Get(5, 0).Rune, root.Get(6, 0).Rune)
	}
}

func TestBoxCorners(t *testing.T) {
	_, root := makeBuffer(6, 4)
	root.Box(LineSingle, term.RGB{R: 100})

	corners := []struct {
		x, y int
		want rune
	}{
		{0, 0, '┌'},
		{5, 0, '┐'},
		{0, 3, '└'},
		{5, 3, '┘'},
	}
	for _, c := range corners {
		if got := root.Get(c.x, c.y).Rune; got != c.want {
			t.Errorf("Expected %q at (%d,%d), got %q", c.want, c.x, c.y, got)
		}
	}
}

func TestGridLayoutDimensions(t *testing.T) {
	_, root := makeBuffer(20, 10)
	grid := GridLayout(root, 2, 2, 0, 0)

	if len(grid) != 4 {
		t.Fatalf("Expected 4 regions, got %d", len(grid))
	}
	for i, g := range grid {
		if g.W != 10 || g.H != 5 {
			t.Errorf("Expected region %d to be 10x5, got %dx%d", i, g.W, g.H)
		}
	}
}

func TestSplitFixedCoversWholeRegion(t *testing.T) {
	_, root := makeBuffer(20, 10)

	left, right := SplitHFixed(root, 6)
	if left.W != 6 || right.W != 14 || right.X != 6 {
		t.Errorf("Expected 6/14 horizontal split, got %d at %d / %d at %d", left.W, left.X, right.W, right.X)
	}

	top, bottom := SplitVFixed(root, 3)
	if top.H != 3 || bottom.H != 7 || bottom.Y != 3 {
		t.Errorf("Expected 3/7 vertical split, got %d at %d / %d at %d", top.H, top.Y, bottom.H, bottom.Y)
	}

	// Oversized fixed band clamps to the region
	left, right = SplitHFixed(root, 99)
	if left.W != 20 || right.W != 0 {
		t.Errorf("Expected clamped split 20/0, got %d/%d", left.W, right.W)
	}
}

func TestColumnsFit(t *testing.T) {
	tests := []struct {
		name string
		w    int
		want int
	}{
		{"Three fit", 40, 3},
		{"Two fit", 27, 2},
		{"One fits", 12, 1},
		{"None fit", 8, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Columns(tt.w, 12, 2); got != tt.want {
				t.Errorf("Expected %d columns at width %d, got %d", tt.want, tt.w, got)
			}
		})
	}
}

func TestBreakpointH(t *testing.T) {
	tests := []struct {
		name string
		w    int
		want int
	}{
		{"Wide", 150, 0},
		{"Medium", 100, 1},
		{"Narrow", 60, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BreakpointH(tt.w, 120, 80); got != tt.want {
				t.Errorf("Expected breakpoint %d for width %d, got %d", tt.want, tt.w, got)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		maxW int
		want string
	}{
		{"Fits", "abc", 5, "abc"},
		{"Exact", "abcde", 5, "abcde"},
		{"Truncated", "abcdef", 5, "abcd…"},
		{"Single cell", "abcdef", 1, "…"},
		{"Zero", "abcdef", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.maxW); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestWrapText(t *testing.T) {
	lines := WrapText("the quick brown fox", 9)
	want := []string{"the quick", "brown fox"}
	if len(lines) != len(want) {
		t.Fatalf("Expected %d lines, got %d: %v", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("Expected line %d to be %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestGradientEndpoints(t *testing.T) {
	from := term.RGB{R: 0, G: 0, B: 0}
	to := term.RGB{R: 200, G: 100, B: 50}
	ramp := Gradient(from, to, 5)

	if len(ramp) != 5 {
		t.Fatalf("Expected 5 colors, got %d", len(ramp))
	}
	if ramp[0] != from {
		t.Errorf("Expected first color %v, got %v", from, ramp[0])
	}
	if ramp[4] != to {
		t.Errorf("Expected last color %v, got %v", to, ramp[4])
	}
}

func TestToastStateLifecycle(t *testing.T) {
	toast := NewToastState(DefaultToastOpts("saved", ToastSuccess), 3)

	if !toast.Visible {
		t.Fatal("Expected toast to start visible")
	}
	if toast.Tick() {
		t.Error("Expected no dismiss on first tick")
	}
	if toast.Tick() {
		t.Error("Expected no dismiss on second tick")
	}
	if !toast.Tick() {
		t.Error("Expected dismiss on third tick")
	}
	if toast.Visible {
		t.Error("Expected toast hidden after countdown")
	}
}

func TestToastStatePersistent(t *testing.T) {
	toast := NewToastState(DefaultToastOpts("error", ToastError), -1)

	for i := 0; i < 100; i++ {
		if toast.Tick() {
			t.Fatal("Expected persistent toast to never auto-dismiss")
		}
	}
	if !toast.Visible {
		t.Error("Expected persistent toast to stay visible")
	}

	toast.Dismiss()
	if toast.Visible {
		t.Error("Expected toast hidden after Dismiss")
	}
}

func TestTextFieldStateEditing(t *testing.T) {
	state := NewTextFieldState("")

	for _, r := range "hello" {
		state.HandleKey(term.KeyRune, r, term.ModNone)
	}
	if state.Value() != "hello" {
		t.Errorf("Expected 'hello', got %q", state.Value())
	}

	state.HandleKey(term.KeyBackspace, 0, term.ModNone)
	if state.Value() != "hell" {
		t.Errorf("Expected 'hell' after backspace, got %q", state.Value())
	}

	state.HandleKey(term.KeyHome, 0, term.ModNone)
	state.HandleKey(term.KeyRune, 's', term.ModNone)
	if state.Value() != "shell" {
		t.Errorf("Expected 'shell' after insert at start, got %q", state.Value())
	}

	state.HandleKey(term.KeyCtrlU, 0, term.ModNone)
	if state.Value() != "shell" {
		t.Errorf("Expected Ctrl+U at start to be a no-op, got %q", state.Value())
	}

	state.HandleKey(term.KeyEnd, 0, term.ModNone)
	state.HandleKey(term.KeyCtrlU, 0, term.ModNone)
	if state.Value() != "" {
		t.Errorf("Expected empty after Ctrl+U at end, got %q", state.Value())
	}
}
