package tui

import "github.com/landline-sh/landline/term"

// Region is a rectangular window onto a flat cell buffer. Drawing
// calls take coordinates relative to the region's own origin and clip
// to its bounds, so callers never index the buffer directly
type Region struct {
	Cells  []term.Cell
	TotalW int // Total width of the underlying cell buffer
	X, Y   int // Absolute position in cell buffer
	W, H   int // Region dimensions
}

// NewRegion wraps a cell slice. A nil slice still supports Sub and
// the layout helpers, only drawing needs backing cells
func NewRegion(cells []term.Cell, totalW, x, y, w, h int) Region {
	return Region{
		Cells:  cells,
		TotalW: totalW,
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
	}
}

// Sub carves a nested region, clipped so a child can never draw
// outside its parent
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return Region{
		Cells:  r.Cells,
		TotalW: r.TotalW,
		X:      r.X + x,
		Y:      r.Y + y,
		W:      w,
		H:      h,
	}
}

// Inset shrinks the region by n cells on every side, the usual step
// inside a border
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Cell writes one cell, silently dropping anything out of bounds
func (r Region) Cell(x, y int, ch rune, fg, bg term.RGB, attr term.Attr) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	absX := r.X + x
	absY := r.Y + y

	// The region may be wider than the buffer after a shrinking resize
	if uint(absX) >= uint(r.TotalW) {
		return
	}

	idx := absY*r.TotalW + absX
	if uint(idx) < uint(len(r.Cells)) {
		r.Cells[idx] = term.Cell{Rune: ch, Fg: fg, Bg: bg, Attrs: attr}
	}
}

// Get reads a cell back, zero Cell when out of bounds. Tests use
// this to assert on drawn frames
func (r Region) Get(x, y int) term.Cell {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return term.Cell{}
	}
	idx := (r.Y+y)*r.TotalW + r.X + x
	if uint(idx) < uint(len(r.Cells)) {
		return r.Cells[idx]
	}
	return term.Cell{}
}

// Fill paints the whole region with spaces in bg
func (r Region) Fill(bg term.RGB) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', term.RGB{}, bg, term.AttrNone)
		}
	}
}

// Clear resets the region to spaces with zero colors
func (r Region) Clear() {
	r.Fill(term.RGB{})
}

// Width returns the region width
func (r Region) Width() int {
	return r.W
}

// Height returns the region height
func (r Region) Height() int {
	return r.H
}

// Bounds reports the absolute position and size in the buffer
func (r Region) Bounds() (x, y, w, h int) {
	return r.X, r.Y, r.W, r.H
}

// Contains reports whether an absolute buffer coordinate falls
// inside the region, used for hit testing
func (r Region) Contains(absX, absY int) bool {
	return absX >= r.X && absX < r.X+r.W && absY >= r.Y && absY < r.Y+r.H
}
