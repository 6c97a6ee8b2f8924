// Package tui provides immediate-mode drawing primitives for the term package.
//
// Core abstraction is Region, representing a rectangular area within a cell buffer.
// All drawing operations are relative to region bounds with automatic clipping.
//
// Design principles:
//   - Immediate mode: no retained widget state, app owns render loop
//   - Zero allocation in hot paths: Region is a small value type
//   - Composable: regions nest via Sub(), layout helpers split regions
//   - Responsive: BreakpointH enables adaptive layouts
//
// Usage pattern:
//
//	cells := make([]term.Cell, w*h)
//	root := tui.NewRegion(cells, w, 0, 0, w, h)
//	root.Fill(bgColor)
//
//	// Fixed chrome above a content band
//	bar, body := tui.SplitVFixed(root, 3)
//
//	// Responsive column count
//	cols := 1
//	if tui.BreakpointH(w, 120, 80) == 0 {
//	    cols = 3
//	}
//	cards := tui.GridLayout(body, cols, rows, 2, 1)
//
//	// Card with content
//	content := cards[0].Card("TITLE", tui.LineDouble, borderColor)
//	content.Text(0, 0, "Hello", fg, bg, 0)
//
//	screen.Flush(cells, w, h)
package tui
