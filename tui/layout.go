package tui

// Center carves a w-by-h region centered inside outer
func Center(outer Region, w, h int) Region {
	x := (outer.W - w) / 2
	y := (outer.H - h) / 2
	return outer.Sub(x, y, w, h)
}

// SplitHFixed gives the left band a fixed width, the rest goes right
func SplitHFixed(r Region, leftW int) (left, right Region) {
	if leftW > r.W {
		leftW = r.W
	}
	if leftW < 0 {
		leftW = 0
	}
	left = r.Sub(0, 0, leftW, r.H)
	right = r.Sub(leftW, 0, r.W-leftW, r.H)
	return
}

// SplitVFixed gives the top band a fixed height, the rest goes below.
// This is how the fixed navbar claims its rows
func SplitVFixed(r Region, topH int) (top, bottom Region) {
	if topH > r.H {
		topH = r.H
	}
	if topH < 0 {
		topH = 0
	}
	top = r.Sub(0, 0, r.W, topH)
	bottom = r.Sub(0, topH, r.W, r.H-topH)
	return
}

// Columns reports how many itemW-wide columns fit in availableW with
// gap cells between them, zero when not even one fits
func Columns(availableW, itemW, gap int) int {
	if itemW <= 0 {
		return 0
	}
	if availableW < itemW {
		return 0
	}
	cols := 1 + (availableW-itemW)/(itemW+gap)
	if cols < 0 {
		cols = 0
	}
	return cols
}

// GridLayout carves r into a cols-by-rows grid of equal cells. The
// responsive card grids are laid out on this in page coordinates
func GridLayout(r Region, cols, rows, gapX, gapY int) []Region {
	if cols <= 0 || rows <= 0 {
		return nil
	}

	cellW := (r.W - gapX*(cols-1)) / cols
	cellH := (r.H - gapY*(rows-1)) / rows

	if cellW < 1 {
		cellW = 1
	}
	if cellH < 1 {
		cellH = 1
	}

	regions := make([]Region, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := col * (cellW + gapX)
			y := row * (cellH + gapY)
			regions[row*cols+col] = r.Sub(x, y, cellW, cellH)
		}
	}

	return regions
}

// BreakpointH returns the index of the first breakpoint w reaches,
// or len(breakpoints) when narrower than all of them. Breakpoints are
// given widest first
func BreakpointH(w int, breakpoints ...int) int {
	for i, bp := range breakpoints {
		if w >= bp {
			return i
		}
	}
	return len(breakpoints)
}
